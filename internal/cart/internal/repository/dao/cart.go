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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrItemNotFound = errors.New("购物车商品不存在")

type CartDAO interface {
	FindCart(ctx context.Context, uid int64) (Cart, error)
	FindItems(ctx context.Context, uid int64) ([]CartItem, error)
	// UpsertItem 同一个规格只会有一行
	UpsertItem(ctx context.Context, item CartItem) error
	UpdateItem(ctx context.Context, item CartItem) error
	DeleteItems(ctx context.Context, uid int64, ids []int64) error
	SetCoupon(ctx context.Context, uid int64, code string) error
	Clear(ctx context.Context, uid int64) error
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

func (d *CartGORMDAO) FindCart(ctx context.Context, uid int64) (Cart, error) {
	var c Cart
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Cart{Uid: uid}, nil
	}
	return c, err
}

func (d *CartGORMDAO) FindItems(ctx context.Context, uid int64) ([]CartItem, error) {
	var res []CartItem
	err := d.db.WithContext(ctx).Where("uid = ?", uid).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *CartGORMDAO) UpsertItem(ctx context.Context, item CartItem) error {
	now := time.Now().UnixMilli()
	item.Ctime = now
	item.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}, {Name: "product_id"}, {Name: "color"}, {Name: "size"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "quantity", "unit_price", "line_total", "utime"}),
	}).Create(&item).Error
}

func (d *CartGORMDAO) UpdateItem(ctx context.Context, item CartItem) error {
	res := d.db.WithContext(ctx).Model(&CartItem{}).
		Where("id = ? AND uid = ?", item.Id, item.Uid).
		Updates(map[string]any{
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice,
			"line_total": item.LineTotal,
			"utime":      time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (d *CartGORMDAO) DeleteItems(ctx context.Context, uid int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	res := d.db.WithContext(ctx).Where("uid = ? AND id IN ?", uid, ids).Delete(&CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (d *CartGORMDAO) SetCoupon(ctx context.Context, uid int64, code string) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"coupon_code", "utime"}),
	}).Create(&Cart{
		Uid:        uid,
		CouponCode: code,
		Ctime:      now,
		Utime:      now,
	}).Error
}

func (d *CartGORMDAO) Clear(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("uid = ?", uid).Delete(&CartItem{}).Error
		if err != nil {
			return err
		}
		return tx.Model(&Cart{}).Where("uid = ?", uid).
			Updates(map[string]any{
				"coupon_code": "",
				"utime":       time.Now().UnixMilli(),
			}).Error
	})
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Cart{}, &CartItem{})
}

type Cart struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	Uid        int64  `gorm:"uniqueIndex"`
	CouponCode string `gorm:"type:varchar(64)"`
	Ctime      int64
	Utime      int64
}

type CartItem struct {
	Id        int64           `gorm:"primaryKey,autoIncrement"`
	Uid       int64           `gorm:"uniqueIndex:uniq_uid_variant"`
	ProductId int64           `gorm:"uniqueIndex:uniq_uid_variant"`
	Color     string          `gorm:"type:varchar(64);uniqueIndex:uniq_uid_variant"`
	Size      string          `gorm:"type:varchar(8);uniqueIndex:uniq_uid_variant"`
	Name      string          `gorm:"type:varchar(256)"`
	Quantity  int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2)"`
	LineTotal decimal.Decimal `gorm:"type:decimal(12,2)"`
	Ctime     int64
	Utime     int64
}
