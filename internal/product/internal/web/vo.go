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
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	CategoryID int64           `json:"categoryId"`
	SalePrice  decimal.Decimal `json:"salePrice"`
	OfferID    int64           `json:"offerId"`
	Status     uint8           `json:"status"`
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		SalePrice:  p.SalePrice,
		OfferID:    p.OfferID,
		Status:     p.Status.ToUint8(),
	}
}

func (p Product) toDomain() domain.Product {
	return domain.Product{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		SalePrice:  p.SalePrice,
		OfferID:    p.OfferID,
		Status:     domain.Status(p.Status),
	}
}

type Category struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OfferID int64  `json:"offerId"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ProductList struct {
	Products []Product `json:"products,omitempty"`
	Total    int64     `json:"total,omitempty"`
}
