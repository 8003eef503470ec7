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
	"github.com/ecodeclub/mall/internal/inventory/internal/domain"
	"github.com/ecodeclub/mall/internal/inventory/internal/repository/dao"
)

type InventoryRepository interface {
	FindVariant(ctx context.Context, key domain.Key) (domain.Variant, error)
	FindVariants(ctx context.Context, productID int64) ([]domain.Variant, error)
	SaveVariant(ctx context.Context, v domain.Variant) error
	Reserve(ctx context.Context, bizKey string, items []domain.Item) error
	Release(ctx context.Context, bizKey string, items []domain.Item) error
}

type inventoryRepository struct {
	dao dao.InventoryDAO
}

func NewInventoryRepository(d dao.InventoryDAO) InventoryRepository {
	return &inventoryRepository{dao: d}
}

func (r *inventoryRepository) FindVariant(ctx context.Context, key domain.Key) (domain.Variant, error) {
	v, err := r.dao.FindVariant(ctx, key.ProductID, key.Color, key.Size.String())
	if errors.Is(err, dao.ErrVariantNotFound) {
		return domain.Variant{}, domain.ErrVariantNotFound
	}
	return r.toDomain(v), err
}

func (r *inventoryRepository) FindVariants(ctx context.Context, productID int64) ([]domain.Variant, error) {
	vs, err := r.dao.FindVariantsByProduct(ctx, productID)
	return slice.Map(vs, func(idx int, src dao.Variant) domain.Variant {
		return r.toDomain(src)
	}), err
}

func (r *inventoryRepository) SaveVariant(ctx context.Context, v domain.Variant) error {
	return r.dao.UpsertVariant(ctx, dao.Variant{
		ProductId: v.ProductID,
		Color:     v.Color,
		Size:      v.Size.String(),
		Stock:     v.Stock,
	})
}

func (r *inventoryRepository) Reserve(ctx context.Context, bizKey string, items []domain.Item) error {
	err := r.dao.Reserve(ctx, bizKey, r.toLogs(items))
	var se *dao.ShortageError
	if errors.As(err, &se) {
		it := items[se.Index]
		return &domain.InsufficientStockError{
			Name:      it.Name,
			Color:     it.Color,
			Size:      it.Size,
			Available: se.Available,
		}
	}
	if errors.Is(err, dao.ErrVariantNotFound) {
		return domain.ErrVariantNotFound
	}
	return err
}

func (r *inventoryRepository) Release(ctx context.Context, bizKey string, items []domain.Item) error {
	return r.dao.Release(ctx, bizKey, r.toLogs(items))
}

func (r *inventoryRepository) toLogs(items []domain.Item) []dao.StockLog {
	return slice.Map(items, func(idx int, src domain.Item) dao.StockLog {
		return dao.StockLog{
			ProductId: src.ProductID,
			Color:     src.Color,
			Size:      src.Size.String(),
			Delta:     src.Quantity,
		}
	})
}

func (r *inventoryRepository) toDomain(v dao.Variant) domain.Variant {
	return domain.Variant{
		ProductID: v.ProductId,
		Color:     v.Color,
		Size:      domain.Size(v.Size),
		Stock:     v.Stock,
	}
}
