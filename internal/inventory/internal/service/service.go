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
	"errors"
	"fmt"

	"github.com/ecodeclub/mall/internal/inventory/internal/domain"
	"github.com/ecodeclub/mall/internal/inventory/internal/repository"
)

var ErrInvalidVariant = errors.New("非法的商品规格")

//go:generate mockgen -source=./service.go -destination=../../mocks/inventory.mock.go -package=invmocks -typed Service
type Service interface {
	// Check 只校验，不扣减
	Check(ctx context.Context, items []domain.Item) error
	// Reserve 扣减库存，任何一项不足都不会扣减，同一个 bizKey 只扣减一次
	Reserve(ctx context.Context, bizKey string, items []domain.Item) error
	// Release 回补库存，同一个 bizKey 只回补一次。
	// 库存流水按 bizKey 去重，所以 Release 不能复用 Reserve 的 bizKey
	Release(ctx context.Context, bizKey string, items []domain.Item) error
	Stock(ctx context.Context, key domain.Key) (int64, error)
	List(ctx context.Context, productID int64) ([]domain.Variant, error)
	Save(ctx context.Context, v domain.Variant) error
}

type service struct {
	repo repository.InventoryRepository
}

func NewService(repo repository.InventoryRepository) Service {
	return &service{repo: repo}
}

func (s *service) Check(ctx context.Context, items []domain.Item) error {
	for _, it := range domain.Merge(items) {
		v, err := s.repo.FindVariant(ctx, it.Key())
		if errors.Is(err, domain.ErrVariantNotFound) {
			return &domain.InsufficientStockError{Name: it.Name, Color: it.Color, Size: it.Size}
		}
		if err != nil {
			return err
		}
		if v.Stock < it.Quantity {
			return &domain.InsufficientStockError{
				Name:      it.Name,
				Color:     it.Color,
				Size:      it.Size,
				Available: v.Stock,
			}
		}
	}
	return nil
}

func (s *service) Reserve(ctx context.Context, bizKey string, items []domain.Item) error {
	items = domain.Merge(items)
	if len(items) == 0 {
		return nil
	}
	err := s.repo.Reserve(ctx, bizKey, items)
	if err != nil {
		return fmt.Errorf("预占库存失败 bizKey=%s: %w", bizKey, err)
	}
	return nil
}

func (s *service) Release(ctx context.Context, bizKey string, items []domain.Item) error {
	items = domain.Merge(items)
	if len(items) == 0 {
		return nil
	}
	err := s.repo.Release(ctx, bizKey, items)
	if err != nil {
		return fmt.Errorf("回补库存失败 bizKey=%s: %w", bizKey, err)
	}
	return nil
}

func (s *service) Stock(ctx context.Context, key domain.Key) (int64, error) {
	v, err := s.repo.FindVariant(ctx, key)
	if errors.Is(err, domain.ErrVariantNotFound) {
		return 0, nil
	}
	return v.Stock, err
}

func (s *service) List(ctx context.Context, productID int64) ([]domain.Variant, error) {
	return s.repo.FindVariants(ctx, productID)
}

func (s *service) Save(ctx context.Context, v domain.Variant) error {
	if !v.Size.Valid() || v.Stock < 0 || v.Color == "" {
		return fmt.Errorf("%w: %+v", ErrInvalidVariant, v)
	}
	return s.repo.SaveVariant(ctx, v)
}
