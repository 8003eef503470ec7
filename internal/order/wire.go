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

//go:build wireinject

package order

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mall/internal/address"
	"github.com/ecodeclub/mall/internal/cart"
	"github.com/ecodeclub/mall/internal/coupon"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/order/internal/event"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	"github.com/ecodeclub/mall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/ecodeclub/mall/internal/order/internal/web"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/mall/internal/wallet"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	cache ecache.Cache,
	cfg Config,
	cartModule *cart.Module,
	addressModule *address.Module,
	couponModule *coupon.Module,
	invModule *inventory.Module,
	walletModule *wallet.Module,
	paymentModule *payment.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewOrderRepository,
		event.NewSettlementEventProducer,
		sequencenumber.NewGenerator,
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.FieldsOf(new(*address.Module), "Svc"),
		wire.FieldsOf(new(*coupon.Module), "Svc"),
		wire.FieldsOf(new(*inventory.Module), "Svc"),
		wire.FieldsOf(new(*wallet.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "Gateway"),
		service.NewService,
		service.NewSettlementService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
