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

package order

import (
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/event"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/ecodeclub/mall/internal/order/internal/web"
)

type Module struct {
	Svc           Service
	SettlementSvc SettlementService
	Hdl           *Handler
	AdminHdl      *AdminHandler
}

type (
	Service           = service.Service
	SettlementService = service.SettlementService
	Config            = service.Config
	Handler           = web.Handler
	AdminHandler      = web.AdminHandler
	Order             = domain.Order
	Item              = domain.Item
	Status            = domain.Status
	Settlement        = domain.Settlement
	StockLine         = domain.StockLine
	SettlementEvent   = event.SettlementEvent
)

const (
	SettlementEventName     = event.SettlementEventName
	SettlementStatusPending = domain.SettlementStatusPending
	SettlementStatusDone    = domain.SettlementStatusDone
)

var ErrSettlementNotFound = repository.ErrSettlementNotFound
