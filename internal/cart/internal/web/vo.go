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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/shopspring/decimal"
)

type AddItemReq struct {
	ProductID int64  `json:"productId"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

type UpdateItemReq struct {
	ItemID   int64 `json:"itemId"`
	Quantity int64 `json:"quantity"`
}

type ItemReq struct {
	ItemID int64 `json:"itemId"`
}

type CouponReq struct {
	Code string `json:"code"`
}

type Item struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type Cart struct {
	Items       []Item          `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CouponCode  string          `json:"couponCode,omitempty"`
	Discount    decimal.Decimal `json:"discount"`
	Payable     decimal.Decimal `json:"payable"`
}

func newCart(c domain.Cart) Cart {
	return Cart{
		Items: slice.Map(c.Items, func(idx int, src domain.Item) Item {
			return Item{
				ID:        src.ID,
				ProductID: src.ProductID,
				Name:      src.Name,
				Color:     src.Color,
				Size:      src.Size,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice,
				LineTotal: src.LineTotal,
			}
		}),
		Subtotal:    c.Subtotal,
		TotalAmount: c.TotalAmount,
		CouponCode:  c.CouponCode,
		Discount:    c.Discount,
		Payable:     c.Payable,
	}
}
