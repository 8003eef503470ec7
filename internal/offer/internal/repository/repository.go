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
	"github.com/ecodeclub/mall/internal/offer/internal/domain"
	"github.com/ecodeclub/mall/internal/offer/internal/repository/dao"
)

var ErrOfferNotFound = errors.New("优惠不存在")

type OfferRepository interface {
	Save(ctx context.Context, o domain.Offer) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Offer, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Offer, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Expire(ctx context.Context, id int64, now int64) (bool, error)
	ExpireBefore(ctx context.Context, now int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Offer, error)
	Count(ctx context.Context) (int64, error)
}

type offerRepository struct {
	dao dao.OfferDAO
}

func NewOfferRepository(d dao.OfferDAO) OfferRepository {
	return &offerRepository{dao: d}
}

func (r *offerRepository) Save(ctx context.Context, o domain.Offer) (int64, error) {
	return r.dao.Save(ctx, dao.Offer{
		Id:           o.ID,
		Name:         o.Name,
		Scope:        o.Scope.ToUint8(),
		DiscountType: o.DiscountType.ToUint8(),
		DiscountVal:  o.DiscountVal,
		MaxDiscount:  o.MaxDiscount,
		StartDate:    o.StartDate,
		EndDate:      o.EndDate,
		Status:       o.Status.ToUint8(),
	})
}

func (r *offerRepository) FindByID(ctx context.Context, id int64) (domain.Offer, error) {
	o, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Offer{}, ErrOfferNotFound
	}
	return r.toDomain(o), err
}

func (r *offerRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Offer, error) {
	os, err := r.dao.FindByIDs(ctx, ids)
	return slice.Map(os, func(idx int, src dao.Offer) domain.Offer {
		return r.toDomain(src)
	}), err
}

func (r *offerRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	err := r.dao.UpdateStatus(ctx, id, status.ToUint8())
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrOfferNotFound
	}
	return err
}

func (r *offerRepository) Expire(ctx context.Context, id int64, now int64) (bool, error) {
	return r.dao.Expire(ctx, id, now)
}

func (r *offerRepository) ExpireBefore(ctx context.Context, now int64) (int64, error) {
	return r.dao.ExpireBefore(ctx, now)
}

func (r *offerRepository) List(ctx context.Context, offset, limit int) ([]domain.Offer, error) {
	os, err := r.dao.List(ctx, offset, limit)
	return slice.Map(os, func(idx int, src dao.Offer) domain.Offer {
		return r.toDomain(src)
	}), err
}

func (r *offerRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *offerRepository) toDomain(o dao.Offer) domain.Offer {
	return domain.Offer{
		ID:           o.Id,
		Name:         o.Name,
		Scope:        domain.Scope(o.Scope),
		DiscountType: domain.DiscountType(o.DiscountType),
		DiscountVal:  o.DiscountVal,
		MaxDiscount:  o.MaxDiscount,
		StartDate:    o.StartDate,
		EndDate:      o.EndDate,
		Status:       domain.Status(o.Status),
		Ctime:        o.Ctime,
		Utime:        o.Utime,
	}
}
