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

package recon

import (
	"context"
	"time"

	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/recon/internal/consumer"
	"github.com/ecodeclub/mall/internal/recon/internal/job"
	"github.com/ecodeclub/mall/internal/recon/internal/service"
	"github.com/ecodeclub/mall/internal/wallet"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(q mq.MQ, o *order.Module, inv *inventory.Module, w *wallet.Module) (*Module, error) {
	wire.Build(
		initService,
		initSettlementReplayJob,
		initSettlementConsumer,
		wire.FieldsOf(new(*order.Module), "SettlementSvc"),
		wire.FieldsOf(new(*inventory.Module), "Svc"),
		wire.FieldsOf(new(*wallet.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

func initService(settlementSvc order.SettlementService,
	invSvc inventory.Service,
	walletSvc wallet.Service) Service {
	return service.NewService(settlementSvc, invSvc, walletSvc, service.RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxRetries:      6,
	})
}

func initSettlementReplayJob(svc Service) *SettlementReplayJob {
	grace := 5 * time.Minute
	limit := 100
	return job.NewSettlementReplayJob(svc, grace, limit)
}

func initSettlementConsumer(svc Service, q mq.MQ) *consumer.SettlementConsumer {
	c, err := consumer.NewSettlementConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
