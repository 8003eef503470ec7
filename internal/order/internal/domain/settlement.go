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

package domain

import "github.com/shopspring/decimal"

type SettlementStatus uint8

const (
	SettlementStatusUnknown SettlementStatus = iota
	SettlementStatusPending
	SettlementStatusDone
)

func (s SettlementStatus) ToUint8() uint8 {
	return uint8(s)
}

// Settlement 订单取消、退货之后需要执行的库存回补和钱包退款。
// 与订单变更在同一个事务中写入，Key 同时作为库存流水和钱包流水的幂等键。
type Settlement struct {
	ID      int64
	Key     string
	OrderID int64
	UID     int64
	Restock []StockLine
	Refund  decimal.Decimal
	Reason  string
	Status  SettlementStatus
	Ctime   int64
	Utime   int64
}

func (s Settlement) Done() bool {
	return s.Status == SettlementStatusDone
}
