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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/shopspring/decimal"
)

const (
	SettlementStatusPending uint8 = 1
	SettlementStatusDone    uint8 = 2
)

type StockLine struct {
	ProductId int64  `json:"productId"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

type Settlement struct {
	Id      int64                        `gorm:"primaryKey;autoIncrement"`
	BizKey  string                       `gorm:"type:varchar(64);not null;uniqueIndex:unq_biz_key;comment:库存流水和钱包流水的幂等键"`
	OrderId int64                        `gorm:"not null;index:idx_order_id"`
	Uid     int64                        `gorm:"not null"`
	Restock sqlx.JsonColumn[[]StockLine] `gorm:"type:json"`
	Refund  decimal.Decimal              `gorm:"type:decimal(12,2);not null;default:0"`
	Reason  string                       `gorm:"type:varchar(64);not null"`
	Status  uint8                        `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_ctime,priority:1;comment:1=待执行 2=已完成"`
	Ctime   int64                        `gorm:"index:idx_status_ctime,priority:2"`
	Utime   int64
}

func (Settlement) TableName() string {
	return "order_settlements"
}

func (d *OrderGORMDAO) FindSettlement(ctx context.Context, id int64) (Settlement, error) {
	var s Settlement
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (d *OrderGORMDAO) CompleteSettlement(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Settlement{}).
		Where("id = ? AND status = ?", id, SettlementStatusPending).
		Updates(map[string]any{
			"status": SettlementStatusDone,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) ListPendingSettlements(ctx context.Context, before int64, limit int) ([]Settlement, error) {
	var res []Settlement
	err := d.db.WithContext(ctx).
		Where("status = ? AND ctime < ?", SettlementStatusPending, before).
		Order("id ASC").Limit(limit).Find(&res).Error
	return res, err
}
