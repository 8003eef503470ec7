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
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicateName  = errors.New("名称已存在")
)

type ProductDAO interface {
	Save(ctx context.Context, p Product) (int64, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	SaveCategory(ctx context.Context, c Category) (int64, error)
	FindCategoryByID(ctx context.Context, id int64) (Category, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) Save(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	var err error
	if p.Id == 0 {
		p.Ctime = now
		err = d.db.WithContext(ctx).Create(&p).Error
	} else {
		err = d.db.WithContext(ctx).Model(&p).Where("id = ?", p.Id).
			Select("name", "category_id", "sale_price", "offer_id", "status", "utime").
			Updates(&p).Error
	}
	if isMySQLUniqueIndexError(err) {
		return 0, ErrDuplicateName
	}
	return p.Id, err
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *ProductGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) SaveCategory(ctx context.Context, c Category) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	var err error
	if c.Id == 0 {
		c.Ctime = now
		err = d.db.WithContext(ctx).Create(&c).Error
	} else {
		// 名称有唯一索引，不能用 ON DUPLICATE KEY 更新
		err = d.db.WithContext(ctx).Model(&c).Where("id = ?", c.Id).
			Select("name", "offer_id", "utime").Updates(&c).Error
	}
	if isMySQLUniqueIndexError(err) {
		return 0, ErrDuplicateName
	}
	return c.Id, err
}

func (d *ProductGORMDAO) FindCategoryByID(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func isMySQLUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

type Product struct {
	Id         int64           `gorm:"primaryKey,autoIncrement"`
	Name       string          `gorm:"type:varchar(256);uniqueIndex"`
	CategoryId int64           `gorm:"index"`
	SalePrice  decimal.Decimal `gorm:"type:decimal(12,2)"`
	OfferId    int64
	Status     uint8 `gorm:"type:tinyint unsigned;not null;default:1"`
	Ctime      int64
	Utime      int64
}

type Category struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Name    string `gorm:"type:varchar(128);uniqueIndex"`
	OfferId int64
	Ctime   int64
	Utime   int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Product{}, &Category{})
}
