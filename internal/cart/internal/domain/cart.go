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
	"fmt"

	"github.com/ecodeclub/mall/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// MaxQuantity 每个商品规格在购物车里最多的件数
const MaxQuantity int64 = 10

var ErrQuantityLimit = fmt.Errorf("每件商品最多购买 %d 件", MaxQuantity)

type Item struct {
	ID        int64
	ProductID int64
	Name      string
	Color     string
	Size      string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// LineTotal 单价乘以数量，四舍五入到分
func LineTotal(unitPrice decimal.Decimal, quantity int64) decimal.Decimal {
	return money.Round(unitPrice.Mul(decimal.NewFromInt(quantity)))
}

func (i *Item) Reprice(unitPrice decimal.Decimal) {
	i.UnitPrice = money.Round(unitPrice)
	i.LineTotal = LineTotal(i.UnitPrice, i.Quantity)
}

func (i Item) SameVariant(productID int64, color, size string) bool {
	return i.ProductID == productID && i.Color == color && i.Size == size
}

func CheckQuantity(quantity int64) error {
	if quantity < 1 || quantity > MaxQuantity {
		return ErrQuantityLimit
	}
	return nil
}

type Cart struct {
	UID         int64
	Items       []Item
	Subtotal    decimal.Decimal
	TotalAmount decimal.Decimal
	CouponCode  string

	// 下面的字段是优惠券试算的结果，不持久化
	CouponID int64
	Discount decimal.Decimal
	// Payable 不含运费
	Payable decimal.Decimal
}

// Recalculate 保证 Subtotal == TotalAmount == 所有商品小计之和
func (c *Cart) Recalculate() {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal)
	}
	c.Subtotal = money.Round(total)
	c.TotalAmount = c.Subtotal
	c.Payable = money.Clamp(money.Round(c.TotalAmount.Sub(c.Discount)))
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c Cart) FindItem(id int64) (Item, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func (c Cart) FindVariant(productID int64, color, size string) (Item, bool) {
	for _, it := range c.Items {
		if it.SameVariant(productID, color, size) {
			return it, true
		}
	}
	return Item{}, false
}

func (c *Cart) ApplyCoupon(couponID int64, discount decimal.Decimal) {
	c.CouponID = couponID
	c.Discount = discount
	c.Recalculate()
}

func (c *Cart) DropCoupon() {
	c.CouponCode = ""
	c.CouponID = 0
	c.Discount = decimal.Zero
	c.Recalculate()
}

func (c Cart) ProductIDs() []int64 {
	res := make([]int64, 0, len(c.Items))
	seen := make(map[int64]struct{}, len(c.Items))
	for _, it := range c.Items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		res = append(res, it.ProductID)
	}
	return res
}
