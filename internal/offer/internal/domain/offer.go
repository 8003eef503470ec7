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
	"github.com/ecodeclub/mall/internal/pkg/money"
	"github.com/shopspring/decimal"
)

type Scope uint8

func (s Scope) ToUint8() uint8 {
	return uint8(s)
}

const (
	ScopeUnknown Scope = iota
	ScopeProduct
	ScopeCategory
)

type DiscountType uint8

func (t DiscountType) ToUint8() uint8 {
	return uint8(t)
}

const (
	DiscountTypeUnknown DiscountType = iota
	DiscountTypePercentage
	DiscountTypeFixed
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

type Offer struct {
	ID           int64
	Name         string
	Scope        Scope
	DiscountType DiscountType
	DiscountVal  decimal.Decimal
	// MaxDiscount 只对百分比折扣生效，非正数表示不封顶
	MaxDiscount decimal.Decimal
	// StartDate, EndDate 毫秒
	StartDate int64
	EndDate   int64
	Status    Status
	Ctime     int64
	Utime     int64
}

// Expired 结束时间早于 now 即过期
func (o Offer) Expired(now int64) bool {
	return o.EndDate < now
}

// Started 开始时间不晚于 now
func (o Offer) Started(now int64) bool {
	return o.StartDate <= now
}

// Price 计算优惠后的单价，可能为非正数，由调用方判断
func (o Offer) Price(basePrice decimal.Decimal) decimal.Decimal {
	switch o.DiscountType {
	case DiscountTypePercentage:
		discount := money.Percent(basePrice, o.DiscountVal)
		if o.MaxDiscount.IsPositive() && discount.GreaterThan(o.MaxDiscount) {
			discount = o.MaxDiscount
		}
		return money.Round(basePrice.Sub(discount))
	case DiscountTypeFixed:
		return money.Round(basePrice.Sub(o.DiscountVal))
	default:
		return basePrice
	}
}

// newerThan 开始时间晚的优先，开始时间相同则创建时间晚的优先
func (o Offer) newerThan(other Offer) bool {
	if o.StartDate != other.StartDate {
		return o.StartDate > other.StartDate
	}
	return o.Ctime > other.Ctime
}

type Resolution struct {
	// Offer 最终生效的优惠，Applied 为 false 时无意义
	Offer   Offer
	Price   decimal.Decimal
	Applied bool
	// Expired 本次计算中发现的需要标记为过期的优惠
	Expired []int64
}

// Resolve 在商品优惠和分类优惠中选出一个生效的优惠，两者不会叠加。
// ID 为 0 的优惠视为不存在。
func Resolve(now int64, basePrice decimal.Decimal, candidates ...Offer) Resolution {
	res := Resolution{Price: basePrice}
	var (
		winner Offer
		found  bool
	)
	for _, o := range candidates {
		if o.ID == 0 {
			continue
		}
		if o.Status != StatusExpired && o.Expired(now) {
			res.Expired = append(res.Expired, o.ID)
			o.Status = StatusExpired
		}
		if o.Status != StatusActive {
			continue
		}
		if !found || o.newerThan(winner) {
			winner = o
			found = true
		}
	}
	if !found {
		return res
	}
	price := winner.Price(basePrice)
	if !price.IsPositive() {
		return res
	}
	res.Offer = winner
	res.Price = price
	res.Applied = true
	return res
}
