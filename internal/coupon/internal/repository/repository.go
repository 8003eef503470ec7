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
	"github.com/ecodeclub/mall/internal/coupon/internal/domain"
	"github.com/ecodeclub/mall/internal/coupon/internal/repository/dao"
)

var (
	ErrCouponNotFound = errors.New("优惠券不存在")
	ErrDuplicateCode  = dao.ErrDuplicateCode
)

type CouponRepository interface {
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Coupon, error)
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Expire(ctx context.Context, id int64, now int64) (bool, error)
	ExpireBefore(ctx context.Context, now int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Coupon, error)
	Count(ctx context.Context) (int64, error)
	ListAvailable(ctx context.Context, now int64) ([]domain.Coupon, error)
	// UserUsed 用户已经使用某张优惠券的次数
	UserUsed(ctx context.Context, uid, couponID int64) (int64, error)
	UserUsages(ctx context.Context, uid int64) (map[int64]int64, error)
	Redeem(ctx context.Context, r domain.Redemption, perUserLimit int64) error
	Revert(ctx context.Context, bizKey string) error
}

type couponRepository struct {
	dao dao.CouponDAO
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{dao: d}
}

func (r *couponRepository) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(c))
}

func (r *couponRepository) FindByID(ctx context.Context, id int64) (domain.Coupon, error) {
	c, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Coupon{}, ErrCouponNotFound
	}
	return r.toDomain(c), err
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	c, err := r.dao.FindByCode(ctx, code)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Coupon{}, ErrCouponNotFound
	}
	return r.toDomain(c), err
}

func (r *couponRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	err := r.dao.UpdateStatus(ctx, id, status.ToUint8())
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrCouponNotFound
	}
	return err
}

func (r *couponRepository) Expire(ctx context.Context, id int64, now int64) (bool, error) {
	return r.dao.Expire(ctx, id, now)
}

func (r *couponRepository) ExpireBefore(ctx context.Context, now int64) (int64, error) {
	return r.dao.ExpireBefore(ctx, now)
}

func (r *couponRepository) List(ctx context.Context, offset, limit int) ([]domain.Coupon, error) {
	cs, err := r.dao.List(ctx, offset, limit)
	return slice.Map(cs, func(idx int, src dao.Coupon) domain.Coupon {
		return r.toDomain(src)
	}), err
}

func (r *couponRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *couponRepository) ListAvailable(ctx context.Context, now int64) ([]domain.Coupon, error) {
	cs, err := r.dao.ListAvailable(ctx, now)
	return slice.Map(cs, func(idx int, src dao.Coupon) domain.Coupon {
		return r.toDomain(src)
	}), err
}

func (r *couponRepository) UserUsed(ctx context.Context, uid, couponID int64) (int64, error) {
	u, err := r.dao.FindUsage(ctx, uid, couponID)
	return u.Cnt, err
}

func (r *couponRepository) UserUsages(ctx context.Context, uid int64) (map[int64]int64, error) {
	us, err := r.dao.FindUsagesByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(us))
	for _, u := range us {
		res[u.CouponId] = u.Cnt
	}
	return res, nil
}

func (r *couponRepository) Redeem(ctx context.Context, rd domain.Redemption, perUserLimit int64) error {
	err := r.dao.Redeem(ctx, dao.Redemption{
		BizKey:   rd.BizKey,
		Uid:      rd.UID,
		CouponId: rd.CouponID,
	}, perUserLimit)
	switch {
	case errors.Is(err, dao.ErrUsageLimitExceeded):
		return domain.ErrUsageLimitExceeded
	case errors.Is(err, dao.ErrUserLimitExceeded):
		return domain.ErrUserLimitExceeded
	default:
		return err
	}
}

func (r *couponRepository) Revert(ctx context.Context, bizKey string) error {
	return r.dao.Revert(ctx, bizKey)
}

func (r *couponRepository) toEntity(c domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:                c.ID,
		Code:              c.Code,
		Type:              c.Type.ToUint8(),
		DiscountValue:     c.DiscountValue,
		MinCartValue:      c.MinCartValue,
		MaxDiscount:       c.MaxDiscount,
		UsageLimitPerUser: c.UsageLimitPerUser,
		TotalUsageLimit:   c.TotalUsageLimit,
		Status:            c.Status.ToUint8(),
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
	}
}

func (r *couponRepository) toDomain(c dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:                c.Id,
		Code:              c.Code,
		Type:              domain.Type(c.Type),
		DiscountValue:     c.DiscountValue,
		MinCartValue:      c.MinCartValue,
		MaxDiscount:       c.MaxDiscount,
		UsageLimitPerUser: c.UsageLimitPerUser,
		TotalUsageLimit:   c.TotalUsageLimit,
		UsedCount:         c.UsedCount,
		Status:            domain.Status(c.Status),
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Ctime:             c.Ctime,
		Utime:             c.Utime,
	}
}
