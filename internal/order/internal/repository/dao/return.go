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
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"gorm.io/gorm"
)

const (
	ReturnStatusPending  uint8 = 1
	ReturnStatusApproved uint8 = 2
	ReturnStatusRejected uint8 = 3
)

type ReturnItem struct {
	ItemId    int64 `json:"itemId"`
	Quantity  int64 `json:"quantity"`
	IsAllItem bool  `json:"isAllItem"`
}

type ReturnRequest struct {
	Id             int64                         `gorm:"primaryKey;autoIncrement"`
	OrderId        int64                         `gorm:"not null;index:idx_order_id"`
	Uid            int64                         `gorm:"not null"`
	// PendingOrderId 待审核时等于 OrderId，审核之后置空，用唯一索引保证一个订单最多一个待审核的申请
	PendingOrderId sql.NullInt64                 `gorm:"uniqueIndex:unq_pending_order_id"`
	Status         uint8                         `gorm:"type:tinyint unsigned;not null;default:1;comment:1=待审核 2=已通过 3=已拒绝"`
	IsAllItem      bool                          `gorm:"not null;default:false"`
	Items          sqlx.JsonColumn[[]ReturnItem] `gorm:"type:json"`
	Reasons        sqlx.JsonColumn[[]string]     `gorm:"type:json"`
	Version        int64                         `gorm:"not null;default:1"`
	Ctime          int64
	Utime          int64
}

func (ReturnRequest) TableName() string {
	return "order_return_requests"
}

func pendingOrderID(r ReturnRequest) sql.NullInt64 {
	return sql.NullInt64{Int64: r.OrderId, Valid: r.Status == ReturnStatusPending}
}

func (d *OrderGORMDAO) FindPendingReturn(ctx context.Context, orderID int64) (ReturnRequest, error) {
	var r ReturnRequest
	err := d.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID, ReturnStatusPending).
		First(&r).Error
	return r, err
}

func (d *OrderGORMDAO) FindReturn(ctx context.Context, id int64) (ReturnRequest, error) {
	var r ReturnRequest
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (d *OrderGORMDAO) SaveReturn(ctx context.Context, r ReturnRequest) (int64, error) {
	now := time.Now().UnixMilli()
	if r.Id > 0 {
		return r.Id, d.updatePendingReturn(d.db.WithContext(ctx), r, now)
	}
	r.Status = ReturnStatusPending
	r.PendingOrderId = pendingOrderID(r)
	r.Version = 1
	r.Ctime, r.Utime = now, now
	err := d.db.WithContext(ctx).Create(&r).Error
	if isMySQLUniqueIndexError(err) {
		return 0, ErrPendingReturnExists
	}
	return r.Id, err
}

// updatePendingReturn 只有待审核的申请可以修改，按 version 乐观锁更新
func (d *OrderGORMDAO) updatePendingReturn(tx *gorm.DB, r ReturnRequest, now int64) error {
	res := tx.Model(&ReturnRequest{}).
		Where("id = ? AND status = ? AND version = ?", r.Id, ReturnStatusPending, r.Version).
		Updates(map[string]any{
			"pending_order_id": pendingOrderID(r),
			"status":           r.Status,
			"is_all_item":      r.IsAllItem,
			"items":            r.Items,
			"reasons":          r.Reasons,
			"version":          gorm.Expr("`version` + 1"),
			"utime":            now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// DeleteReturn 读取之后申请被修改过也会删除失败
func (d *OrderGORMDAO) DeleteReturn(ctx context.Context, id, version int64) error {
	res := d.db.WithContext(ctx).
		Where("id = ? AND status = ? AND version = ?", id, ReturnStatusPending, version).
		Delete(&ReturnRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *OrderGORMDAO) ListReturns(ctx context.Context, offset, limit int) ([]ReturnRequest, error) {
	var res []ReturnRequest
	err := d.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountReturns(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&ReturnRequest{}).Count(&cnt).Error
	return cnt, err
}
