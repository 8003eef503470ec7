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

package ioc

import (
	"github.com/ecodeclub/mall/internal/address"
	"github.com/ecodeclub/mall/internal/cart"
	"github.com/ecodeclub/mall/internal/coupon"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/offer"
	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/ecodeclub/mall/internal/recon"
	"github.com/ecodeclub/mall/internal/wallet"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitOrderConfig,
		product.InitModule,
		inventory.InitModule,
		offer.InitModule,
		coupon.InitModule,
		cart.InitModule,
		address.InitModule,
		wallet.InitModule,
		payment.InitModule,
		order.InitModule,
		recon.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*inventory.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*offer.Module), "AdminHdl", "ExpireOffersJob"),
		wire.FieldsOf(new(*coupon.Module), "Hdl", "AdminHdl", "ExpireCouponsJob"),
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		wire.FieldsOf(new(*address.Module), "Hdl"),
		wire.FieldsOf(new(*wallet.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*recon.Module), "SettlementReplayJob"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
	)
	return new(App), nil
}
