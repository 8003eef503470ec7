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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mall/internal/offer/internal/event"
	"github.com/ecodeclub/mall/internal/offer/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type OfferExpiredConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	l        *elog.Component
}

func NewOfferExpiredConsumer(svc service.Service, q mq.MQ) (*OfferExpiredConsumer, error) {
	const groupID = "offer"
	c, err := q.Consumer(event.OfferExpiredEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OfferExpiredConsumer{
		svc:      svc,
		consumer: c,
		l:        elog.DefaultLogger,
	}, nil
}

func (c *OfferExpiredConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.l.Error("消费优惠过期事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OfferExpiredConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.OfferExpiredEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.svc.Expire(ctx, evt.ID)
	if err != nil {
		return fmt.Errorf("标记优惠过期失败 id=%d: %w", evt.ID, err)
	}
	return nil
}
