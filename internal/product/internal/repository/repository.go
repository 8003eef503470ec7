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
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository/cache"
	"github.com/ecodeclub/mall/internal/product/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrProductNotFound  = errors.New("商品不存在")
	ErrCategoryNotFound = errors.New("分类不存在")
	ErrDuplicateName    = dao.ErrDuplicateName
)

type ProductRepository interface {
	Save(ctx context.Context, p domain.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
	SaveCategory(ctx context.Context, c domain.Category) (int64, error)
	FindCategoryByID(ctx context.Context, id int64) (domain.Category, error)
}

type productRepository struct {
	dao   dao.ProductDAO
	cache cache.ProductCache
	l     *elog.Component
}

func NewProductRepository(d dao.ProductDAO, c cache.ProductCache) ProductRepository {
	return &productRepository{dao: d, cache: c, l: elog.DefaultLogger}
}

func (r *productRepository) Save(ctx context.Context, p domain.Product) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(p))
	if err != nil {
		return 0, err
	}
	if er := r.cache.Delete(ctx, id); er != nil {
		r.l.Warn("删除商品缓存失败", elog.FieldErr(er), elog.Int64("id", id))
	}
	return id, nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.cache.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	entity, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Product{}, ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	p = r.toDomain(entity)
	if er := r.cache.Set(ctx, p); er != nil {
		r.l.Warn("回写商品缓存失败", elog.FieldErr(er), elog.Int64("id", id))
	}
	return p, nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	ps, err := r.dao.FindByIDs(ctx, ids)
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), err
}

func (r *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.List(ctx, offset, limit)
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), err
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *productRepository) SaveCategory(ctx context.Context, c domain.Category) (int64, error) {
	return r.dao.SaveCategory(ctx, dao.Category{
		Id:      c.ID,
		Name:    c.Name,
		OfferId: c.OfferID,
	})
}

func (r *productRepository) FindCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	c, err := r.dao.FindCategoryByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Category{}, ErrCategoryNotFound
	}
	return domain.Category{
		ID:      c.Id,
		Name:    c.Name,
		OfferID: c.OfferId,
	}, err
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:         p.ID,
		Name:       p.Name,
		CategoryId: p.CategoryID,
		SalePrice:  p.SalePrice,
		OfferId:    p.OfferID,
		Status:     p.Status.ToUint8(),
	}
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:         p.Id,
		Name:       p.Name,
		CategoryID: p.CategoryId,
		SalePrice:  p.SalePrice,
		OfferID:    p.OfferId,
		Status:     domain.Status(p.Status),
		Ctime:      p.Ctime,
		Utime:      p.Utime,
	}
}
