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

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const now int64 = 1_700_000_000_000

func tenPercentUpToFive() Coupon {
	return Coupon{
		ID:                1,
		Code:              "SAVE10",
		Type:              TypePercentage,
		DiscountValue:     decimal.NewFromInt(10),
		MinCartValue:      decimal.NewFromInt(20),
		MaxDiscount:       decimal.NewFromInt(5),
		UsageLimitPerUser: 1,
		TotalUsageLimit:   100,
		Status:            StatusActive,
		StartDate:         now - 1000,
		EndDate:           now + 1000,
	}
}

func TestCoupon_Check(t *testing.T) {
	testCases := []struct {
		name     string
		coupon   func() Coupon
		total    decimal.Decimal
		userUsed int64
		wantErr  error
	}{
		{
			name:   "可用",
			coupon: tenPercentUpToFive,
			total:  decimal.NewFromInt(80),
		},
		{
			name: "未启用",
			coupon: func() Coupon {
				c := tenPercentUpToFive()
				c.Status = StatusInactive
				return c
			},
			total:   decimal.NewFromInt(80),
			wantErr: ErrCouponInactive,
		},
		{
			name: "已过结束时间",
			coupon: func() Coupon {
				c := tenPercentUpToFive()
				c.EndDate = now - 1
				return c
			},
			total:   decimal.NewFromInt(80),
			wantErr: ErrCouponExpired,
		},
		{
			name: "尚未开始",
			coupon: func() Coupon {
				c := tenPercentUpToFive()
				c.StartDate = now + 1
				return c
			},
			total:   decimal.NewFromInt(80),
			wantErr: ErrCouponNotStarted,
		},
		{
			name: "总量用完",
			coupon: func() Coupon {
				c := tenPercentUpToFive()
				c.UsedCount = 100
				return c
			},
			total:   decimal.NewFromInt(80),
			wantErr: ErrUsageLimitExceeded,
		},
		{
			name: "不限总量",
			coupon: func() Coupon {
				c := tenPercentUpToFive()
				c.TotalUsageLimit = 0
				c.UsedCount = 1000
				return c
			},
			total: decimal.NewFromInt(80),
		},
		{
			name:     "用户次数用完",
			coupon:   tenPercentUpToFive,
			total:    decimal.NewFromInt(80),
			userUsed: 1,
			wantErr:  ErrUserLimitExceeded,
		},
		{
			name:    "低于门槛",
			coupon:  tenPercentUpToFive,
			total:   decimal.RequireFromString("19.99"),
			wantErr: ErrBelowMinCartValue,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.coupon().Check(now, tc.total, tc.userUsed)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestMinCartValueError(t *testing.T) {
	err := tenPercentUpToFive().Check(now, decimal.NewFromInt(10), 0)
	var mErr *MinCartValueError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, "购物车金额必须不低于 20.00", mErr.Error())
}

func TestCoupon_Discount(t *testing.T) {
	fixed := func(v int64) Coupon {
		c := tenPercentUpToFive()
		c.Type = TypeFixed
		c.DiscountValue = decimal.NewFromInt(v)
		return c
	}
	testCases := []struct {
		name    string
		coupon  Coupon
		total   decimal.Decimal
		want    string
		wantErr error
	}{
		{
			name:   "百分比封顶",
			coupon: tenPercentUpToFive(),
			total:  decimal.NewFromInt(80),
			want:   "5",
		},
		{
			name:   "百分比未封顶",
			coupon: tenPercentUpToFive(),
			total:  decimal.RequireFromString("33.33"),
			want:   "3.33",
		},
		{
			name: "百分比不封顶",
			coupon: func() Coupon {
				c := tenPercentUpToFive()
				c.MaxDiscount = decimal.Zero
				return c
			}(),
			total: decimal.NewFromInt(200),
			want:  "20",
		},
		{
			name:   "固定金额",
			coupon: fixed(15),
			total:  decimal.NewFromInt(80),
			want:   "15",
		},
		{
			name:    "固定金额超过购物车金额",
			coupon:  fixed(100),
			total:   decimal.NewFromInt(80),
			wantErr: ErrCannotApply,
		},
		{
			name:    "未知类型",
			coupon:  Coupon{},
			total:   decimal.NewFromInt(80),
			wantErr: ErrCannotApply,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.coupon.Discount(tc.total)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got.String())
		})
	}
}
