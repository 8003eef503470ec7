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

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientBalance = errors.New("钱包余额不足")
	ErrInvalidAmount       = errors.New("金额必须大于 0")
)

type Wallet struct {
	UID      int64
	Balance  decimal.Decimal
	IsActive bool
}

type TransactionType uint8

func (t TransactionType) ToUint8() uint8 {
	return uint8(t)
}

const (
	TransactionTypeRefund  TransactionType = 1
	TransactionTypePayment TransactionType = 2
)

// Transaction 流水，每次余额变化都会追加一条
type Transaction struct {
	ID     int64
	UID    int64
	Type   TransactionType
	Amount decimal.Decimal
	// BizKey 和 Type 一起保证幂等
	BizKey string
	Desc   string
	Ctime  int64
}
