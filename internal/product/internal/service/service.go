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

	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidPrice = errors.New("售价必须大于0")

//go:generate mockgen -source=./service.go -destination=../../mocks/product.mock.go -package=productmocks -typed Service
type Service interface {
	Save(ctx context.Context, p domain.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	SaveCategory(ctx context.Context, c domain.Category) (int64, error)
	FindCategory(ctx context.Context, id int64) (domain.Category, error)
}

type service struct {
	repo repository.ProductRepository
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, p domain.Product) (int64, error) {
	if !p.SalePrice.IsPositive() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPrice, p.SalePrice)
	}
	if p.Status == domain.StatusUnknown {
		p.Status = domain.StatusListed
	}
	return s.repo.Save(ctx, p)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) SaveCategory(ctx context.Context, c domain.Category) (int64, error) {
	return s.repo.SaveCategory(ctx, c)
}

func (s *service) FindCategory(ctx context.Context, id int64) (domain.Category, error) {
	return s.repo.FindCategoryByID(ctx, id)
}
