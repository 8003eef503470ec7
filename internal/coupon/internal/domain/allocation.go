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

// Allocation 订单当前的优惠分摊状态
type Allocation struct {
	// Discount 订单上剩余的优惠金额，非正数表示没有优惠
	Discount     decimal.Decimal
	MinCartValue decimal.Decimal
	// Payable 应付金额，包含运费
	Payable  decimal.Decimal
	Shipping decimal.Decimal
}

type Reallocation struct {
	Discount decimal.Decimal
	Payable  decimal.Decimal
	// Refund 应付金额减少的部分，不含运费
	Refund decimal.Decimal
	// Voided 剩余金额低于门槛，优惠券作废
	Voided bool
}

// Reallocate 订单移除 quantity 件单价为 price 的商品后重新分摊优惠。
// 被移除部分承担的优惠按当前优惠金额占未优惠总额的比例计算，
// 剩余的未优惠金额低于门槛时优惠券整体作废。每一步都四舍五入到分，
// Refund 不会为负。
func Reallocate(a Allocation, price decimal.Decimal, quantity int64) Reallocation {
	goods := a.Payable.Sub(a.Shipping)
	line := price.Mul(decimal.NewFromInt(quantity))
	res := Reallocation{Discount: decimal.Zero}
	if !a.Discount.IsPositive() {
		res.Payable = money.Round(goods.Sub(line))
	} else {
		withoutCoupon := goods.Add(a.Discount)
		remaining := withoutCoupon.Sub(line)
		if remaining.GreaterThanOrEqual(a.MinCartValue) {
			removed := decimal.Zero
			if withoutCoupon.IsPositive() {
				removed = money.Round(line.Mul(a.Discount).Div(withoutCoupon))
			}
			res.Discount = money.Clamp(money.Round(a.Discount.Sub(removed)))
			res.Payable = money.Round(goods.Sub(line.Sub(removed)))
		} else {
			// 作废后按原价计算的金额可能高于当前应付，最多维持当前应付，不追缴
			res.Voided = true
			res.Payable = money.Round(decimal.Min(remaining, goods))
		}
	}
	res.Payable = money.Clamp(res.Payable)
	res.Refund = money.Round(goods.Sub(res.Payable))
	res.Payable = res.Payable.Add(a.Shipping)
	return res
}
