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
	"strings"
	"time"

	"github.com/ecodeclub/mall/internal/coupon/internal/domain"
	"github.com/ecodeclub/mall/internal/coupon/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidCoupon = errors.New("非法的优惠券")

//go:generate mockgen -source=./service.go -destination=../../mocks/coupon.mock.go -package=couponmocks -typed Service
type Service interface {
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	ChangeStatus(ctx context.Context, id int64, status domain.Status) error
	FindByID(ctx context.Context, id int64) (domain.Coupon, error)
	List(ctx context.Context, offset, limit int) ([]domain.Coupon, int64, error)
	// ListAvailable 用户当前还能使用的优惠券
	ListAvailable(ctx context.Context, uid int64) ([]domain.Coupon, error)
	// Validate 校验用户能否在该购物车金额下使用优惠码，返回优惠券和优惠金额
	Validate(ctx context.Context, uid int64, code string, cartTotal decimal.Decimal) (domain.Coupon, decimal.Decimal, error)
	// Redeem 核销优惠券，同一个 bizKey 只核销一次
	Redeem(ctx context.Context, uid, couponID int64, bizKey string) error
	// Revert 撤销 bizKey 对应的核销
	Revert(ctx context.Context, bizKey string) error
	ExpireAll(ctx context.Context) (int64, error)
}

type service struct {
	repo    repository.CouponRepository
	nowFunc func() int64
	l       *elog.Component
}

func NewService(repo repository.CouponRepository) Service {
	return &service{
		repo:    repo,
		nowFunc: func() int64 { return time.Now().UnixMilli() },
		l:       elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	c.Code = strings.TrimSpace(c.Code)
	if err := s.validate(c); err != nil {
		return 0, err
	}
	if c.Status == domain.StatusUnknown {
		c.Status = domain.StatusInactive
	}
	if c.Status == domain.StatusActive && !c.Started(s.nowFunc()) {
		return 0, domain.ErrCouponNotStarted
	}
	return s.repo.Save(ctx, c)
}

func (s *service) validate(c domain.Coupon) error {
	if c.Code == "" {
		return fmt.Errorf("%w: 优惠码不能为空", ErrInvalidCoupon)
	}
	if c.EndDate <= c.StartDate {
		return fmt.Errorf("%w: 结束时间必须晚于开始时间", ErrInvalidCoupon)
	}
	if c.UsageLimitPerUser < 1 {
		return fmt.Errorf("%w: 每人限用次数至少为 1", ErrInvalidCoupon)
	}
	if c.MinCartValue.IsNegative() {
		return fmt.Errorf("%w: 门槛不能为负数", ErrInvalidCoupon)
	}
	switch c.Type {
	case domain.TypePercentage:
		if !c.DiscountValue.IsPositive() || c.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%w: 折扣比例 %s", ErrInvalidCoupon, c.DiscountValue)
		}
	case domain.TypeFixed:
		if !c.DiscountValue.IsPositive() {
			return fmt.Errorf("%w: 优惠金额 %s", ErrInvalidCoupon, c.DiscountValue)
		}
	default:
		return fmt.Errorf("%w: 未知的优惠券类型 %d", ErrInvalidCoupon, c.Type)
	}
	return nil
}

func (s *service) ChangeStatus(ctx context.Context, id int64, status domain.Status) error {
	if status != domain.StatusActive && status != domain.StatusInactive {
		return fmt.Errorf("%w: 非法的状态 %d", ErrInvalidCoupon, status)
	}
	if status == domain.StatusActive {
		c, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		now := s.nowFunc()
		if c.Expired(now) {
			return domain.ErrCouponExpired
		}
		if !c.Started(now) {
			return domain.ErrCouponNotStarted
		}
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Coupon, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Coupon, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Coupon
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return cs, total, eg.Wait()
}

func (s *service) ListAvailable(ctx context.Context, uid int64) ([]domain.Coupon, error) {
	var (
		eg     errgroup.Group
		cs     []domain.Coupon
		usages map[int64]int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.ListAvailable(ctx, s.nowFunc())
		return err
	})
	eg.Go(func() error {
		var err error
		usages, err = s.repo.UserUsages(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	res := make([]domain.Coupon, 0, len(cs))
	for _, c := range cs {
		if usages[c.ID] < c.UsageLimitPerUser {
			res = append(res, c)
		}
	}
	return res, nil
}

func (s *service) Validate(ctx context.Context, uid int64, code string, cartTotal decimal.Decimal) (domain.Coupon, decimal.Decimal, error) {
	c, err := s.repo.FindByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return domain.Coupon{}, decimal.Zero, err
	}
	now := s.nowFunc()
	if c.Status != domain.StatusExpired && c.Expired(now) {
		// 顺手把状态持久化，失败了由定时任务兜底
		_, er := s.repo.Expire(ctx, c.ID, now)
		if er != nil {
			s.l.Warn("标记优惠券过期失败", elog.FieldErr(er), elog.Int64("couponId", c.ID))
		}
		return domain.Coupon{}, decimal.Zero, domain.ErrCouponExpired
	}
	used, err := s.repo.UserUsed(ctx, uid, c.ID)
	if err != nil {
		return domain.Coupon{}, decimal.Zero, err
	}
	err = c.Check(now, cartTotal, used)
	if err != nil {
		return domain.Coupon{}, decimal.Zero, err
	}
	discount, err := c.Discount(cartTotal)
	if err != nil {
		return domain.Coupon{}, decimal.Zero, err
	}
	return c, discount, nil
}

func (s *service) Redeem(ctx context.Context, uid, couponID int64, bizKey string) error {
	c, err := s.repo.FindByID(ctx, couponID)
	if err != nil {
		return err
	}
	return s.repo.Redeem(ctx, domain.Redemption{
		BizKey:   bizKey,
		UID:      uid,
		CouponID: couponID,
	}, c.UsageLimitPerUser)
}

func (s *service) Revert(ctx context.Context, bizKey string) error {
	return s.repo.Revert(ctx, bizKey)
}

func (s *service) ExpireAll(ctx context.Context) (int64, error) {
	return s.repo.ExpireBefore(ctx, s.nowFunc())
}
