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

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

const statusExpired uint8 = 3

type OfferDAO interface {
	Save(ctx context.Context, o Offer) (int64, error)
	FindByID(ctx context.Context, id int64) (Offer, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Offer, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	// Expire 只会把已经过了结束时间且尚未过期的优惠标记为过期
	Expire(ctx context.Context, id int64, now int64) (bool, error)
	ExpireBefore(ctx context.Context, now int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Offer, error)
	Count(ctx context.Context) (int64, error)
}

type OfferGORMDAO struct {
	db *egorm.Component
}

func NewOfferGORMDAO(db *egorm.Component) OfferDAO {
	return &OfferGORMDAO{db: db}
}

func (d *OfferGORMDAO) Save(ctx context.Context, o Offer) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime = now
	o.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "scope", "discount_type", "discount_val", "max_discount",
			"start_date", "end_date", "status", "utime"}),
	}).Create(&o).Error
	return o.Id, err
}

func (d *OfferGORMDAO) FindByID(ctx context.Context, id int64) (Offer, error) {
	var o Offer
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (d *OfferGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Offer, error) {
	var res []Offer
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *OfferGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	res := d.db.WithContext(ctx).Model(&Offer{}).Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *OfferGORMDAO) Expire(ctx context.Context, id int64, now int64) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Offer{}).
		Where("id = ? AND status <> ? AND end_date < ?", id, statusExpired, now).
		Updates(map[string]any{
			"status": statusExpired,
			"utime":  now,
		})
	return res.RowsAffected > 0, res.Error
}

func (d *OfferGORMDAO) ExpireBefore(ctx context.Context, now int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Offer{}).
		Where("status <> ? AND end_date < ?", statusExpired, now).
		Updates(map[string]any{
			"status": statusExpired,
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}

func (d *OfferGORMDAO) List(ctx context.Context, offset, limit int) ([]Offer, error) {
	var res []Offer
	err := d.db.WithContext(ctx).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OfferGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Offer{}).Count(&res).Error
	return res, err
}

type Offer struct {
	Id           int64           `gorm:"primaryKey,autoIncrement"`
	Name         string          `gorm:"type:varchar(256)"`
	Scope        uint8           `gorm:"type:tinyint unsigned;not null"`
	DiscountType uint8           `gorm:"type:tinyint unsigned;not null"`
	DiscountVal  decimal.Decimal `gorm:"type:decimal(12,2)"`
	MaxDiscount  decimal.Decimal `gorm:"type:decimal(12,2)"`
	StartDate    int64
	EndDate      int64 `gorm:"index:idx_status_end_date,priority:2"`
	Status       uint8 `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_end_date,priority:1"`
	Ctime        int64
	Utime        int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Offer{})
}
