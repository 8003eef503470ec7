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

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/mall/internal/pkg/money"
	"github.com/ecodeclub/mall/internal/wallet/internal/domain"
	"github.com/ecodeclub/mall/internal/wallet/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/wallet.mock.go -package=walletmocks -typed Service
type Service interface {
	Find(ctx context.Context, uid int64) (domain.Wallet, error)
	// Refund 入账，钱包不存在时自动创建；bizKey 相同的重复调用只入账一次
	Refund(ctx context.Context, uid int64, amount decimal.Decimal, bizKey, desc string) error
	// Pay 扣款，余额不足返回 domain.ErrInsufficientBalance
	Pay(ctx context.Context, uid int64, amount decimal.Decimal, bizKey, desc string) error
	ListTransactions(ctx context.Context, uid int64, offset, limit int) ([]domain.Transaction, int64, error)
}

type service struct {
	repo repository.WalletRepository
	l    *elog.Component
}

func NewService(repo repository.WalletRepository) Service {
	return &service{
		repo: repo,
		l:    elog.DefaultLogger,
	}
}

func (s *service) Find(ctx context.Context, uid int64) (domain.Wallet, error) {
	return s.repo.Find(ctx, uid)
}

func (s *service) Refund(ctx context.Context, uid int64, amount decimal.Decimal, bizKey, desc string) error {
	amount = money.Round(amount)
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}
	err := s.repo.Refund(ctx, domain.Transaction{
		UID:    uid,
		Type:   domain.TransactionTypeRefund,
		Amount: amount,
		BizKey: bizKey,
		Desc:   desc,
	})
	if err != nil {
		s.l.Error("退款入账失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.String("bizKey", bizKey),
			elog.String("amount", amount.String()))
	}
	return err
}

func (s *service) Pay(ctx context.Context, uid int64, amount decimal.Decimal, bizKey, desc string) error {
	amount = money.Round(amount)
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}
	return s.repo.Pay(ctx, domain.Transaction{
		UID:    uid,
		Type:   domain.TransactionTypePayment,
		Amount: amount,
		BizKey: bizKey,
		Desc:   desc,
	})
}

func (s *service) ListTransactions(ctx context.Context, uid int64, offset, limit int) ([]domain.Transaction, int64, error) {
	var (
		eg    errgroup.Group
		ts    []domain.Transaction
		total int64
	)
	eg.Go(func() error {
		var err error
		ts, err = s.repo.ListTransactions(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountTransactions(ctx, uid)
		return err
	})
	return ts, total, eg.Wait()
}
