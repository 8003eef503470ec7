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

	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/recon/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// SettlementConsumer 订单取消、退货之后执行库存回补和退款
type SettlementConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	l        *elog.Component
}

func NewSettlementConsumer(svc service.Service, q mq.MQ) (*SettlementConsumer, error) {
	const groupID = "recon"
	c, err := q.Consumer(order.SettlementEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &SettlementConsumer{
		svc:      svc,
		consumer: c,
		l:        elog.DefaultLogger,
	}, nil
}

func (c *SettlementConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.l.Error("消费结算事件失败", elog.FieldErr(er))
			}
		}
	}()
}

// Consume 执行失败不会阻塞后续消息，结算单由重放任务兜底
func (c *SettlementConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt order.SettlementEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.svc.Execute(ctx, evt.SettlementID)
	if err != nil {
		return fmt.Errorf("执行结算单失败 orderId=%d: %w", evt.OrderID, err)
	}
	return nil
}
