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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrVariantNotFound = errors.New("商品规格不存在")
	// errReplayed 同一个 biz_key 已经处理过，用于中断事务
	errReplayed = errors.New("重复的库存变更")
)

// ShortageError 预占时某一项库存不足
type ShortageError struct {
	Index     int
	Available int64
}

func (e *ShortageError) Error() string {
	return fmt.Sprintf("第 %d 项库存不足，可用 %d", e.Index, e.Available)
}

type InventoryDAO interface {
	FindVariant(ctx context.Context, productID int64, color, size string) (Variant, error)
	FindVariantsByProduct(ctx context.Context, productID int64) ([]Variant, error)
	UpsertVariant(ctx context.Context, v Variant) error
	// Reserve 全部成功或者全部失败
	Reserve(ctx context.Context, bizKey string, items []StockLog) error
	Release(ctx context.Context, bizKey string, items []StockLog) error
}

type GORMInventoryDAO struct {
	db *egorm.Component
}

func NewInventoryDAO(db *egorm.Component) InventoryDAO {
	return &GORMInventoryDAO{db: db}
}

func (g *GORMInventoryDAO) FindVariant(ctx context.Context, productID int64, color, size string) (Variant, error) {
	var v Variant
	err := g.db.WithContext(ctx).
		Where("product_id = ? AND color = ? AND size = ?", productID, color, size).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Variant{}, fmt.Errorf("%w: product_id=%d", ErrVariantNotFound, productID)
	}
	return v, err
}

func (g *GORMInventoryDAO) FindVariantsByProduct(ctx context.Context, productID int64) ([]Variant, error) {
	var res []Variant
	err := g.db.WithContext(ctx).Where("product_id = ?", productID).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMInventoryDAO) UpsertVariant(ctx context.Context, v Variant) error {
	now := time.Now().UnixMilli()
	v.Ctime = now
	v.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}, {Name: "color"}, {Name: "size"}},
		DoUpdates: clause.AssignmentColumns([]string{"stock", "utime"}),
	}).Create(&v).Error
}

func (g *GORMInventoryDAO) Reserve(ctx context.Context, bizKey string, items []StockLog) error {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		for i, it := range items {
			err := g.appendLog(tx, bizKey, it, -it.Delta, now)
			if err != nil {
				return err
			}
			res := tx.Model(&Variant{}).
				Where("product_id = ? AND color = ? AND size = ? AND stock >= ?",
					it.ProductId, it.Color, it.Size, it.Delta).
				Updates(map[string]any{
					"stock": gorm.Expr("stock - ?", it.Delta),
					"utime": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				var v Variant
				err = tx.Where("product_id = ? AND color = ? AND size = ?",
					it.ProductId, it.Color, it.Size).First(&v).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product_id=%d", ErrVariantNotFound, it.ProductId)
				}
				if err != nil {
					return err
				}
				return &ShortageError{Index: i, Available: v.Stock}
			}
		}
		return nil
	})
	if errors.Is(err, errReplayed) {
		return nil
	}
	return err
}

func (g *GORMInventoryDAO) Release(ctx context.Context, bizKey string, items []StockLog) error {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		for _, it := range items {
			err := g.appendLog(tx, bizKey, it, it.Delta, now)
			if err != nil {
				return err
			}
			// 规格被删除的情况下无需回补
			err = tx.Model(&Variant{}).
				Where("product_id = ? AND color = ? AND size = ?", it.ProductId, it.Color, it.Size).
				Updates(map[string]any{
					"stock": gorm.Expr("stock + ?", it.Delta),
					"utime": now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errReplayed) {
		return nil
	}
	return err
}

func (g *GORMInventoryDAO) appendLog(tx *gorm.DB, bizKey string, it StockLog, delta int64, now int64) error {
	err := tx.Create(&StockLog{
		BizKey:    bizKey,
		ProductId: it.ProductId,
		Color:     it.Color,
		Size:      it.Size,
		Delta:     delta,
		Ctime:     now,
	}).Error
	if isMySQLUniqueIndexError(err) {
		return errReplayed
	}
	return err
}

func isMySQLUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

type Variant struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	ProductId int64  `gorm:"uniqueIndex:uniq_product_color_size"`
	Color     string `gorm:"type:varchar(64);uniqueIndex:uniq_product_color_size"`
	Size      string `gorm:"type:varchar(8);uniqueIndex:uniq_product_color_size"`
	Stock     int64  `gorm:"not null;default:0"`
	Ctime     int64
	Utime     int64
}

// StockLog 库存流水，同一个业务对同一个规格只会变更一次
type StockLog struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	BizKey    string `gorm:"type:varchar(128);uniqueIndex:uniq_biz_variant"`
	ProductId int64  `gorm:"uniqueIndex:uniq_biz_variant"`
	Color     string `gorm:"type:varchar(64);uniqueIndex:uniq_biz_variant"`
	Size      string `gorm:"type:varchar(8);uniqueIndex:uniq_biz_variant"`
	// Delta 正数为回补，负数为扣减
	Delta int64
	Ctime int64
}
