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
	"sync"
	"testing"

	"github.com/ecodeclub/mall/internal/coupon/internal/domain"
	"github.com/ecodeclub/mall/internal/coupon/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const now int64 = 1_700_000_000_000

type usageKey struct {
	uid      int64
	couponID int64
}

// memoryRepository 用互斥锁模拟数据库事务
type memoryRepository struct {
	mu          sync.Mutex
	coupons     map[int64]domain.Coupon
	usages      map[usageKey]int64
	redemptions map[string]domain.Redemption
	reverted    map[string]bool
	expired     []int64
}

func newMemoryRepository(cs ...domain.Coupon) *memoryRepository {
	r := &memoryRepository{
		coupons:     make(map[int64]domain.Coupon),
		usages:      make(map[usageKey]int64),
		redemptions: make(map[string]domain.Redemption),
		reverted:    make(map[string]bool),
	}
	for _, c := range cs {
		r.coupons[c.ID] = c
	}
	return r
}

func (r *memoryRepository) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, exist := range r.coupons {
		if exist.Code == c.Code && exist.ID != c.ID {
			return 0, repository.ErrDuplicateCode
		}
	}
	if c.ID == 0 {
		c.ID = int64(len(r.coupons) + 1)
	}
	r.coupons[c.ID] = c
	return c.ID, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.coupons[id]
	if !ok {
		return domain.Coupon{}, repository.ErrCouponNotFound
	}
	return c, nil
}

func (r *memoryRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return domain.Coupon{}, repository.ErrCouponNotFound
}

func (r *memoryRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.coupons[id]
	if !ok {
		return repository.ErrCouponNotFound
	}
	c.Status = status
	r.coupons[id] = c
	return nil
}

func (r *memoryRepository) Expire(ctx context.Context, id int64, now int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.coupons[id]
	if c.Status == domain.StatusExpired || c.EndDate >= now {
		return false, nil
	}
	c.Status = domain.StatusExpired
	r.coupons[id] = c
	r.expired = append(r.expired, id)
	return true, nil
}

func (r *memoryRepository) ExpireBefore(ctx context.Context, now int64) (int64, error) {
	var cnt int64
	for id := range r.coupons {
		ok, _ := r.Expire(ctx, id, now)
		if ok {
			cnt++
		}
	}
	return cnt, nil
}

func (r *memoryRepository) List(ctx context.Context, offset, limit int) ([]domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]domain.Coupon, 0, len(r.coupons))
	for _, c := range r.coupons {
		res = append(res, c)
	}
	return res, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.coupons)), nil
}

func (r *memoryRepository) ListAvailable(ctx context.Context, now int64) ([]domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []domain.Coupon
	for _, c := range r.coupons {
		if c.Status == domain.StatusActive && c.Started(now) && !c.Expired(now) && !c.Exhausted() {
			res = append(res, c)
		}
	}
	return res, nil
}

func (r *memoryRepository) UserUsed(ctx context.Context, uid, couponID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.usages[usageKey{uid: uid, couponID: couponID}], nil
}

func (r *memoryRepository) UserUsages(ctx context.Context, uid int64) (map[int64]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make(map[int64]int64)
	for k, v := range r.usages {
		if k.uid == uid {
			res[k.couponID] = v
		}
	}
	return res, nil
}

func (r *memoryRepository) Redeem(ctx context.Context, rd domain.Redemption, perUserLimit int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.redemptions[rd.BizKey]; ok {
		return nil
	}
	c := r.coupons[rd.CouponID]
	if c.Exhausted() {
		return domain.ErrUsageLimitExceeded
	}
	key := usageKey{uid: rd.UID, couponID: rd.CouponID}
	if r.usages[key] >= perUserLimit {
		return domain.ErrUserLimitExceeded
	}
	c.UsedCount++
	r.coupons[rd.CouponID] = c
	r.usages[key]++
	r.redemptions[rd.BizKey] = rd
	return nil
}

func (r *memoryRepository) Revert(ctx context.Context, bizKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rd, ok := r.redemptions[bizKey]
	if !ok || r.reverted[bizKey] {
		return nil
	}
	r.reverted[bizKey] = true
	c := r.coupons[rd.CouponID]
	c.UsedCount--
	r.coupons[rd.CouponID] = c
	r.usages[usageKey{uid: rd.UID, couponID: rd.CouponID}]--
	return nil
}

func newTestService(repo repository.CouponRepository) *service {
	svc := NewService(repo).(*service)
	svc.nowFunc = func() int64 { return now }
	return svc
}

func save10() domain.Coupon {
	return domain.Coupon{
		ID:                1,
		Code:              "SAVE10",
		Type:              domain.TypePercentage,
		DiscountValue:     decimal.NewFromInt(10),
		MinCartValue:      decimal.NewFromInt(20),
		MaxDiscount:       decimal.NewFromInt(5),
		UsageLimitPerUser: 1,
		TotalUsageLimit:   2,
		Status:            domain.StatusActive,
		StartDate:         now - 1000,
		EndDate:           now + 1000,
	}
}

func TestService_Validate(t *testing.T) {
	expired := save10()
	expired.ID = 2
	expired.Code = "OLD"
	expired.EndDate = now - 1
	repo := newMemoryRepository(save10(), expired)
	svc := newTestService(repo)
	ctx := context.Background()

	c, discount, err := svc.Validate(ctx, 1, " SAVE10 ", decimal.NewFromInt(80))
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "5", discount.String())

	_, _, err = svc.Validate(ctx, 1, "SAVE10", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrBelowMinCartValue)

	_, _, err = svc.Validate(ctx, 1, "NONE", decimal.NewFromInt(80))
	assert.ErrorIs(t, err, repository.ErrCouponNotFound)

	// 过期的优惠券会顺手持久化状态
	_, _, err = svc.Validate(ctx, 1, "OLD", decimal.NewFromInt(80))
	assert.ErrorIs(t, err, domain.ErrCouponExpired)
	assert.Equal(t, []int64{2}, repo.expired)
	_, _, err = svc.Validate(ctx, 1, "OLD", decimal.NewFromInt(80))
	assert.ErrorIs(t, err, domain.ErrCouponExpired)
	assert.Equal(t, []int64{2}, repo.expired)
}

// 每人限用一次的优惠券，同一个用户在两个订单里使用，第二次失败
func TestService_RedeemTwice(t *testing.T) {
	repo := newMemoryRepository(save10())
	svc := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Redeem(ctx, 1, 1, "ORD-1"))
	// 同一个订单重复核销没有副作用
	require.NoError(t, svc.Redeem(ctx, 1, 1, "ORD-1"))

	_, _, err := svc.Validate(ctx, 1, "SAVE10", decimal.NewFromInt(80))
	assert.ErrorIs(t, err, domain.ErrUserLimitExceeded)
	err = svc.Redeem(ctx, 1, 1, "ORD-2")
	assert.ErrorIs(t, err, domain.ErrUserLimitExceeded)

	// 撤销之后可以再次使用
	require.NoError(t, svc.Revert(ctx, "ORD-1"))
	require.NoError(t, svc.Revert(ctx, "ORD-1"))
	require.NoError(t, svc.Redeem(ctx, 1, 1, "ORD-2"))

	c, err := svc.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.UsedCount)
}

func TestService_RedeemTotalLimit(t *testing.T) {
	repo := newMemoryRepository(save10())
	svc := newTestService(repo)
	ctx := context.Background()
	require.NoError(t, svc.Redeem(ctx, 1, 1, "ORD-1"))
	require.NoError(t, svc.Redeem(ctx, 2, 1, "ORD-2"))
	err := svc.Redeem(ctx, 3, 1, "ORD-3")
	assert.ErrorIs(t, err, domain.ErrUsageLimitExceeded)
	_, _, err = svc.Validate(ctx, 3, "SAVE10", decimal.NewFromInt(80))
	assert.ErrorIs(t, err, domain.ErrUsageLimitExceeded)
}

func TestService_ListAvailable(t *testing.T) {
	other := save10()
	other.ID = 2
	other.Code = "OTHER"
	inactive := save10()
	inactive.ID = 3
	inactive.Code = "INACTIVE"
	inactive.Status = domain.StatusInactive
	repo := newMemoryRepository(save10(), other, inactive)
	svc := newTestService(repo)
	ctx := context.Background()
	require.NoError(t, svc.Redeem(ctx, 1, 1, "ORD-1"))

	cs, err := svc.ListAvailable(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "OTHER", cs[0].Code)
}

func TestService_Save(t *testing.T) {
	testCases := []struct {
		name    string
		coupon  func() domain.Coupon
		wantErr error
	}{
		{
			name: "保存成功",
			coupon: func() domain.Coupon {
				c := save10()
				c.ID = 0
				c.Code = "NEW"
				return c
			},
		},
		{
			name: "优惠码重复",
			coupon: func() domain.Coupon {
				c := save10()
				c.ID = 0
				return c
			},
			wantErr: repository.ErrDuplicateCode,
		},
		{
			name: "每人限用次数为0",
			coupon: func() domain.Coupon {
				c := save10()
				c.UsageLimitPerUser = 0
				return c
			},
			wantErr: ErrInvalidCoupon,
		},
		{
			name: "未开始不能启用",
			coupon: func() domain.Coupon {
				c := save10()
				c.StartDate = now + 1
				return c
			},
			wantErr: domain.ErrCouponNotStarted,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(newMemoryRepository(save10()))
			_, err := svc.Save(context.Background(), tc.coupon())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
