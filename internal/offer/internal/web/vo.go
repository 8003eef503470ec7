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
	"github.com/ecodeclub/mall/internal/offer/internal/domain"
	"github.com/shopspring/decimal"
)

type Offer struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Scope        uint8           `json:"scope"`
	DiscountType uint8           `json:"discountType"`
	DiscountVal  decimal.Decimal `json:"discountVal"`
	MaxDiscount  decimal.Decimal `json:"maxDiscount"`
	StartDate    int64           `json:"startDate"`
	EndDate      int64           `json:"endDate"`
	Status       uint8           `json:"status"`
	Ctime        int64           `json:"ctime,omitempty"`
	Utime        int64           `json:"utime,omitempty"`
}

func newOffer(o domain.Offer) Offer {
	return Offer{
		ID:           o.ID,
		Name:         o.Name,
		Scope:        o.Scope.ToUint8(),
		DiscountType: o.DiscountType.ToUint8(),
		DiscountVal:  o.DiscountVal,
		MaxDiscount:  o.MaxDiscount,
		StartDate:    o.StartDate,
		EndDate:      o.EndDate,
		Status:       o.Status.ToUint8(),
		Ctime:        o.Ctime,
		Utime:        o.Utime,
	}
}

func (o Offer) toDomain() domain.Offer {
	return domain.Offer{
		ID:           o.ID,
		Name:         o.Name,
		Scope:        domain.Scope(o.Scope),
		DiscountType: domain.DiscountType(o.DiscountType),
		DiscountVal:  o.DiscountVal,
		MaxDiscount:  o.MaxDiscount,
		StartDate:    o.StartDate,
		EndDate:      o.EndDate,
		Status:       domain.Status(o.Status),
	}
}

type StatusReq struct {
	ID     int64 `json:"id"`
	Status uint8 `json:"status"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type OfferList struct {
	Offers []Offer `json:"offers,omitempty"`
	Total  int64   `json:"total,omitempty"`
}
