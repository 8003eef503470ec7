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

package web

import (
	"github.com/shopspring/decimal"
)

type Wallet struct {
	Balance  decimal.Decimal `json:"balance"`
	IsActive bool            `json:"isActive"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type Transaction struct {
	ID     int64           `json:"id"`
	Type   uint8           `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Desc   string          `json:"desc"`
	Ctime  int64           `json:"ctime"`
}

type TransactionList struct {
	Total        int64         `json:"total"`
	Transactions []Transaction `json:"transactions"`
}
