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

import "github.com/shopspring/decimal"

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusUnknown Status = iota
	// StatusListed 上架
	StatusListed
	// StatusUnlisted 下架
	StatusUnlisted
)

type Product struct {
	ID         int64
	Name       string
	CategoryID int64
	SalePrice  decimal.Decimal
	// OfferID 为 0 表示没有商品级别的优惠
	OfferID int64
	Status  Status
	Ctime   int64
	Utime   int64
}

func (p Product) Listed() bool {
	return p.Status == StatusListed
}

type Category struct {
	ID      int64
	Name    string
	OfferID int64
}
