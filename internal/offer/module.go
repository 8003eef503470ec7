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

package offer

import (
	"github.com/ecodeclub/mall/internal/offer/internal/consumer"
	"github.com/ecodeclub/mall/internal/offer/internal/domain"
	"github.com/ecodeclub/mall/internal/offer/internal/job"
	"github.com/ecodeclub/mall/internal/offer/internal/repository"
	"github.com/ecodeclub/mall/internal/offer/internal/service"
	"github.com/ecodeclub/mall/internal/offer/internal/web"
)

type Module struct {
	Svc             Service
	AdminHdl        *AdminHandler
	ExpireOffersJob *ExpireOffersJob
	c               *consumer.OfferExpiredConsumer
}

type (
	Service         = service.Service
	AdminHandler    = web.AdminHandler
	ExpireOffersJob = job.ExpireOffersJob
	Offer           = domain.Offer
	Resolution      = domain.Resolution
	Scope           = domain.Scope
	DiscountType    = domain.DiscountType
	Status          = domain.Status
)

const (
	ScopeProduct           = domain.ScopeProduct
	ScopeCategory          = domain.ScopeCategory
	DiscountTypePercentage = domain.DiscountTypePercentage
	DiscountTypeFixed      = domain.DiscountTypeFixed
	StatusActive           = domain.StatusActive
	StatusInactive         = domain.StatusInactive
	StatusExpired          = domain.StatusExpired
)

var ErrOfferNotFound = repository.ErrOfferNotFound
