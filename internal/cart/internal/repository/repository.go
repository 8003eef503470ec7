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
	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var ErrItemNotFound = dao.ErrItemNotFound

type CartRepository interface {
	// Find 返回的购物车已经计算好金额
	Find(ctx context.Context, uid int64) (domain.Cart, error)
	SaveItem(ctx context.Context, uid int64, item domain.Item) error
	UpdateItem(ctx context.Context, uid int64, item domain.Item) error
	RemoveItems(ctx context.Context, uid int64, ids ...int64) error
	SetCoupon(ctx context.Context, uid int64, code string) error
	Clear(ctx context.Context, uid int64) error
}

type cartRepository struct {
	dao dao.CartDAO
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

func (r *cartRepository) Find(ctx context.Context, uid int64) (domain.Cart, error) {
	var (
		eg    errgroup.Group
		c     dao.Cart
		items []dao.CartItem
	)
	eg.Go(func() error {
		var err error
		c, err = r.dao.FindCart(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		items, err = r.dao.FindItems(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Cart{}, err
	}
	res := domain.Cart{
		UID:        uid,
		CouponCode: c.CouponCode,
		Items: slice.Map(items, func(idx int, src dao.CartItem) domain.Item {
			return r.toDomainItem(src)
		}),
	}
	res.Recalculate()
	return res, nil
}

func (r *cartRepository) SaveItem(ctx context.Context, uid int64, item domain.Item) error {
	return r.dao.UpsertItem(ctx, r.toEntity(uid, item))
}

func (r *cartRepository) UpdateItem(ctx context.Context, uid int64, item domain.Item) error {
	return r.dao.UpdateItem(ctx, r.toEntity(uid, item))
}

func (r *cartRepository) RemoveItems(ctx context.Context, uid int64, ids ...int64) error {
	err := r.dao.DeleteItems(ctx, uid, ids)
	if errors.Is(err, dao.ErrItemNotFound) {
		return ErrItemNotFound
	}
	return err
}

func (r *cartRepository) SetCoupon(ctx context.Context, uid int64, code string) error {
	return r.dao.SetCoupon(ctx, uid, code)
}

func (r *cartRepository) Clear(ctx context.Context, uid int64) error {
	return r.dao.Clear(ctx, uid)
}

func (r *cartRepository) toEntity(uid int64, item domain.Item) dao.CartItem {
	return dao.CartItem{
		Id:        item.ID,
		Uid:       uid,
		ProductId: item.ProductID,
		Color:     item.Color,
		Size:      item.Size,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		LineTotal: item.LineTotal,
	}
}

func (r *cartRepository) toDomainItem(item dao.CartItem) domain.Item {
	return domain.Item{
		ID:        item.Id,
		ProductID: item.ProductId,
		Name:      item.Name,
		Color:     item.Color,
		Size:      item.Size,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		LineTotal: item.LineTotal,
	}
}
