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
	"errors"
	"fmt"

	"github.com/ecodeclub/mall/internal/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponInactive     = errors.New("优惠券未启用")
	ErrCouponNotStarted   = errors.New("优惠券尚未开始")
	ErrCouponExpired      = errors.New("优惠券已过期")
	ErrUsageLimitExceeded = errors.New("优惠券已被领完，请尝试其他优惠券")
	ErrUserLimitExceeded  = errors.New("您的使用次数已达上限")
	ErrBelowMinCartValue  = errors.New("购物车金额不满足优惠券门槛")
	ErrCannotApply        = errors.New("无法使用该优惠券")
)

// MinCartValueError 购物车金额低于门槛
type MinCartValueError struct {
	MinCartValue decimal.Decimal
}

func (e *MinCartValueError) Error() string {
	return fmt.Sprintf("购物车金额必须不低于 %s", e.MinCartValue.StringFixed(money.Places))
}

func (e *MinCartValueError) Is(target error) bool {
	return target == ErrBelowMinCartValue
}

type Type uint8

func (t Type) ToUint8() uint8 {
	return uint8(t)
}

const (
	TypeUnknown Type = iota
	TypePercentage
	TypeFixed
)

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusUnknown Status = iota
	StatusActive
	StatusInactive
	StatusExpired
)

type Coupon struct {
	ID            int64
	Code          string
	Type          Type
	DiscountValue decimal.Decimal
	MinCartValue  decimal.Decimal
	// MaxDiscount 只对百分比优惠券生效，非正数表示不封顶
	MaxDiscount decimal.Decimal
	// UsageLimitPerUser 每个用户最多使用次数
	UsageLimitPerUser int64
	// TotalUsageLimit 非正数表示不限量
	TotalUsageLimit int64
	UsedCount       int64
	Status          Status
	StartDate       int64
	EndDate         int64
	Ctime           int64
	Utime           int64
}

func (c Coupon) Expired(now int64) bool {
	return c.EndDate < now
}

func (c Coupon) Started(now int64) bool {
	return c.StartDate <= now
}

func (c Coupon) Exhausted() bool {
	return c.TotalUsageLimit > 0 && c.UsedCount >= c.TotalUsageLimit
}

// Check 校验优惠券对于该用户、该购物车金额是否可用，userUsed 是用户已经使用的次数
func (c Coupon) Check(now int64, cartTotal decimal.Decimal, userUsed int64) error {
	switch {
	case c.Status == StatusExpired || c.Expired(now):
		return ErrCouponExpired
	case c.Status != StatusActive:
		return ErrCouponInactive
	case !c.Started(now):
		return ErrCouponNotStarted
	case c.Exhausted():
		return ErrUsageLimitExceeded
	case userUsed >= c.UsageLimitPerUser:
		return ErrUserLimitExceeded
	case cartTotal.LessThan(c.MinCartValue):
		return &MinCartValueError{MinCartValue: c.MinCartValue}
	}
	return nil
}

// Discount 计算优惠金额，优惠金额不会超过购物车金额
func (c Coupon) Discount(cartTotal decimal.Decimal) (decimal.Decimal, error) {
	switch c.Type {
	case TypePercentage:
		discount := money.Percent(cartTotal, c.DiscountValue)
		if c.MaxDiscount.IsPositive() && discount.GreaterThan(c.MaxDiscount) {
			discount = c.MaxDiscount
		}
		if discount.GreaterThan(cartTotal) {
			return decimal.Zero, ErrCannotApply
		}
		return discount, nil
	case TypeFixed:
		if cartTotal.LessThan(c.DiscountValue) {
			return decimal.Zero, ErrCannotApply
		}
		return money.Round(c.DiscountValue), nil
	default:
		return decimal.Zero, ErrCannotApply
	}
}

// Redemption 一次优惠券核销，BizKey 通常是订单号
type Redemption struct {
	BizKey   string
	UID      int64
	CouponID int64
}
