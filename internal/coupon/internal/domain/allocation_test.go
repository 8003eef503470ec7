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
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReallocate(t *testing.T) {
	// 两件商品 50 + 30，满 20 可用的九折券最多优惠 5，运费 5
	order := Allocation{
		Discount:     d("5"),
		MinCartValue: d("20"),
		Payable:      d("80"),
		Shipping:     d("5"),
	}
	testCases := []struct {
		name        string
		alloc       Allocation
		price       decimal.Decimal
		quantity    int64
		wantDisc    string
		wantPayable string
		wantRefund  string
		wantVoided  bool
	}{
		{
			name:        "按比例分摊",
			alloc:       order,
			price:       d("30"),
			quantity:    1,
			wantDisc:    "3.12",
			wantPayable: "51.88",
			wantRefund:  "28.12",
		},
		{
			name: "剩余金额低于门槛优惠券作废",
			alloc: Allocation{
				Discount:     d("3.12"),
				MinCartValue: d("20"),
				Payable:      d("51.88"),
				Shipping:     d("5"),
			},
			price:       d("50"),
			quantity:    1,
			wantDisc:    "0",
			wantPayable: "5",
			wantRefund:  "46.88",
			wantVoided:  true,
		},
		{
			name: "移除后低于门槛但仍有剩余商品",
			alloc: Allocation{
				Discount:     d("5"),
				MinCartValue: d("60"),
				Payable:      d("80"),
				Shipping:     d("5"),
			},
			price:       d("30"),
			quantity:    1,
			wantDisc:    "0",
			wantPayable: "55",
			wantRefund:  "25",
			wantVoided:  true,
		},
		{
			name: "作废后原价高于当前应付不追缴",
			alloc: Allocation{
				Discount:     d("20"),
				MinCartValue: d("95"),
				Payable:      d("85"),
				Shipping:     d("5"),
			},
			price:       d("6"),
			quantity:    1,
			wantDisc:    "0",
			wantPayable: "85",
			wantRefund:  "0",
			wantVoided:  true,
		},
		{
			name: "没有优惠券",
			alloc: Allocation{
				Payable:  d("85"),
				Shipping: d("5"),
			},
			price:       d("30"),
			quantity:    2,
			wantDisc:    "0",
			wantPayable: "25",
			wantRefund:  "60",
		},
		{
			name: "应付金额不会为负",
			alloc: Allocation{
				Payable:  d("15"),
				Shipping: d("5"),
			},
			price:       d("30"),
			quantity:    1,
			wantDisc:    "0",
			wantPayable: "5",
			wantRefund:  "10",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Reallocate(tc.alloc, tc.price, tc.quantity)
			assert.Equal(t, tc.wantDisc, res.Discount.String())
			assert.Equal(t, tc.wantPayable, res.Payable.String())
			assert.Equal(t, tc.wantRefund, res.Refund.String())
			assert.Equal(t, tc.wantVoided, res.Voided)
		})
	}
}

// 任意顺序逐件取消，优惠金额单调不增且不为负，
// 剩余应付加上累计退款与原应付金额相差不超过一分钱
func TestReallocate_Conservation(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 200; round++ {
		n := 2 + r.IntN(5)
		prices := make([]decimal.Decimal, n)
		total := decimal.Zero
		for i := range prices {
			prices[i] = decimal.New(int64(100+r.IntN(10000)), -2)
			total = total.Add(prices[i])
		}
		c := Coupon{
			Type:          TypePercentage,
			DiscountValue: decimal.NewFromInt(int64(5 + r.IntN(30))),
			MinCartValue:  decimal.New(int64(r.IntN(5000)), -2),
		}
		if round%2 == 1 {
			// 固定金额券更容易在取消后作废
			c.Type = TypeFixed
			c.DiscountValue = decimal.NewFromInt(int64(1 + r.IntN(20)))
			c.MinCartValue = total.Sub(decimal.New(int64(r.IntN(1000)), -2))
		}
		discount, err := c.Discount(total)
		if err != nil {
			continue
		}
		shipping := d("5")
		alloc := Allocation{
			Discount:     discount,
			MinCartValue: c.MinCartValue,
			Payable:      total.Sub(discount).Add(shipping),
			Shipping:     shipping,
		}
		original := alloc.Payable
		refunded := decimal.Zero
		for _, idx := range r.Perm(n) {
			res := Reallocate(alloc, prices[idx], 1)
			assert.False(t, res.Discount.IsNegative())
			assert.True(t, res.Discount.LessThanOrEqual(alloc.Discount))
			assert.False(t, res.Payable.Sub(shipping).IsNegative())
			assert.False(t, res.Refund.IsNegative(), "refund %s", res.Refund)
			refunded = refunded.Add(res.Refund)
			alloc.Discount = res.Discount
			alloc.Payable = res.Payable
			diff := alloc.Payable.Add(refunded).Sub(original).Abs()
			assert.True(t, diff.LessThanOrEqual(d("0.01")), "diff %s", diff)
			if res.Voided {
				alloc.MinCartValue = decimal.Zero
			}
		}
	}
}
