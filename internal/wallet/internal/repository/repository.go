// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/wallet/internal/domain"
	"github.com/ecodeclub/mall/internal/wallet/internal/repository/dao"
)

type WalletRepository interface {
	// Find 钱包不存在时返回一个未激活的空钱包
	Find(ctx context.Context, uid int64) (domain.Wallet, error)
	Refund(ctx context.Context, t domain.Transaction) error
	Pay(ctx context.Context, t domain.Transaction) error
	ListTransactions(ctx context.Context, uid int64, offset, limit int) ([]domain.Transaction, error)
	CountTransactions(ctx context.Context, uid int64) (int64, error)
}

type walletRepository struct {
	dao dao.WalletDAO
}

func NewWalletRepository(d dao.WalletDAO) WalletRepository {
	return &walletRepository{dao: d}
}

func (r *walletRepository) Find(ctx context.Context, uid int64) (domain.Wallet, error) {
	w, err := r.dao.FindByUID(ctx, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Wallet{UID: uid}, nil
	}
	if err != nil {
		return domain.Wallet{}, err
	}
	return domain.Wallet{
		UID:      w.Uid,
		Balance:  w.Balance,
		IsActive: w.IsActive,
	}, nil
}

func (r *walletRepository) Refund(ctx context.Context, t domain.Transaction) error {
	return r.dao.Refund(ctx, r.toEntity(t))
}

func (r *walletRepository) Pay(ctx context.Context, t domain.Transaction) error {
	err := r.dao.Pay(ctx, r.toEntity(t))
	if errors.Is(err, dao.ErrInsufficientBalance) {
		return domain.ErrInsufficientBalance
	}
	return err
}

func (r *walletRepository) ListTransactions(ctx context.Context, uid int64, offset, limit int) ([]domain.Transaction, error) {
	ts, err := r.dao.ListTransactions(ctx, uid, offset, limit)
	return slice.Map(ts, func(idx int, src dao.Transaction) domain.Transaction {
		return domain.Transaction{
			ID:     src.Id,
			UID:    src.Uid,
			Type:   domain.TransactionType(src.Type),
			Amount: src.Amount,
			BizKey: src.BizKey,
			Desc:   src.Desc,
			Ctime:  src.Ctime,
		}
	}), err
}

func (r *walletRepository) CountTransactions(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountTransactions(ctx, uid)
}

func (r *walletRepository) toEntity(t domain.Transaction) dao.Transaction {
	return dao.Transaction{
		Uid:    t.UID,
		Type:   t.Type.ToUint8(),
		Amount: t.Amount,
		BizKey: t.BizKey,
		Desc:   t.Desc,
	}
}
