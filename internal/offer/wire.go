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

package offer

import (
	"context"
	"sync"

	"github.com/ecodeclub/mall/internal/offer/internal/consumer"
	"github.com/ecodeclub/mall/internal/offer/internal/event"
	"github.com/ecodeclub/mall/internal/offer/internal/job"
	"github.com/ecodeclub/mall/internal/offer/internal/repository"
	"github.com/ecodeclub/mall/internal/offer/internal/repository/dao"
	"github.com/ecodeclub/mall/internal/offer/internal/service"
	"github.com/ecodeclub/mall/internal/offer/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewOfferRepository,
		event.NewOfferExpiredEventProducer,
		service.NewService,
		web.NewAdminHandler,
		job.NewExpireOffersJob,
		initOfferExpiredConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OfferDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOfferGORMDAO(db)
}

func initOfferExpiredConsumer(svc service.Service, q mq.MQ) *consumer.OfferExpiredConsumer {
	c, err := consumer.NewOfferExpiredConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
