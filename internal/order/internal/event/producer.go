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

package event

import (
	"strconv"

	"github.com/ecodeclub/mall/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const SettlementEventName = "settlement_events"

// SettlementEvent 通知对账模块执行结算单
type SettlementEvent struct {
	SettlementID int64 `json:"settlementId"`
	OrderID      int64 `json:"orderId"`
}

type SettlementEventProducer = mqx.Producer[SettlementEvent]

// NewSettlementEventProducer 同一个订单的结算单落在同一个分区，按顺序执行
func NewSettlementEventProducer(q mq.MQ) (SettlementEventProducer, error) {
	return mqx.NewKeyedProducer[SettlementEvent](q, SettlementEventName, func(evt SettlementEvent) string {
		return strconv.FormatInt(evt.OrderID, 10)
	})
}
