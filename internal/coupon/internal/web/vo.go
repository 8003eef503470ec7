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

package web

import (
	"github.com/ecodeclub/mall/internal/coupon/internal/domain"
	"github.com/shopspring/decimal"
)

type Coupon struct {
	ID                int64           `json:"id"`
	Code              string          `json:"code"`
	Type              uint8           `json:"type"`
	DiscountValue     decimal.Decimal `json:"discountValue"`
	MinCartValue      decimal.Decimal `json:"minCartValue"`
	MaxDiscount       decimal.Decimal `json:"maxDiscount"`
	UsageLimitPerUser int64           `json:"usageLimitPerUser"`
	TotalUsageLimit   int64           `json:"totalUsageLimit"`
	UsedCount         int64           `json:"usedCount"`
	Status            uint8           `json:"status"`
	StartDate         int64           `json:"startDate"`
	EndDate           int64           `json:"endDate"`
}

func newCoupon(c domain.Coupon) Coupon {
	return Coupon{
		ID:                c.ID,
		Code:              c.Code,
		Type:              c.Type.ToUint8(),
		DiscountValue:     c.DiscountValue,
		MinCartValue:      c.MinCartValue,
		MaxDiscount:       c.MaxDiscount,
		UsageLimitPerUser: c.UsageLimitPerUser,
		TotalUsageLimit:   c.TotalUsageLimit,
		UsedCount:         c.UsedCount,
		Status:            c.Status.ToUint8(),
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
	}
}

func (c Coupon) toDomain() domain.Coupon {
	return domain.Coupon{
		ID:                c.ID,
		Code:              c.Code,
		Type:              domain.Type(c.Type),
		DiscountValue:     c.DiscountValue,
		MinCartValue:      c.MinCartValue,
		MaxDiscount:       c.MaxDiscount,
		UsageLimitPerUser: c.UsageLimitPerUser,
		TotalUsageLimit:   c.TotalUsageLimit,
		Status:            domain.Status(c.Status),
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
	}
}

type StatusReq struct {
	ID     int64 `json:"id"`
	Status uint8 `json:"status"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type CouponList struct {
	Coupons []Coupon `json:"coupons,omitempty"`
	Total   int64    `json:"total,omitempty"`
}
