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
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type AddressDAO interface {
	Save(ctx context.Context, a Address) (int64, error)
	FindByID(ctx context.Context, uid, id int64) (Address, error)
	FindByUID(ctx context.Context, uid int64) ([]Address, error)
	Delete(ctx context.Context, uid, id int64) error
}

type AddressGORMDAO struct {
	db *egorm.Component
}

func NewAddressGORMDAO(db *egorm.Component) AddressDAO {
	return &AddressGORMDAO{db: db}
}

func (d *AddressGORMDAO) Save(ctx context.Context, a Address) (int64, error) {
	now := time.Now().UnixMilli()
	a.Utime = now
	if a.Id == 0 {
		a.Ctime = now
		err := d.db.WithContext(ctx).Create(&a).Error
		return a.Id, err
	}
	// 只能修改自己的地址
	res := d.db.WithContext(ctx).Model(&Address{}).
		Where("id = ? AND uid = ?", a.Id, a.Uid).
		Select("name", "phone", "line", "city", "state", "pincode", "utime").
		Updates(&a)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrRecordNotFound
	}
	return a.Id, nil
}

func (d *AddressGORMDAO) FindByID(ctx context.Context, uid, id int64) (Address, error) {
	var a Address
	err := d.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&a).Error
	return a, err
}

func (d *AddressGORMDAO) FindByUID(ctx context.Context, uid int64) ([]Address, error) {
	var res []Address
	err := d.db.WithContext(ctx).Where("uid = ?", uid).Order("id DESC").Find(&res).Error
	return res, err
}

func (d *AddressGORMDAO) Delete(ctx context.Context, uid, id int64) error {
	return d.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&Address{}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Address{})
}

type Address struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	Uid     int64  `gorm:"not null;index:idx_uid"`
	Name    string `gorm:"type:varchar(64);not null"`
	Phone   string `gorm:"type:varchar(32);not null"`
	Line    string `gorm:"type:varchar(512);not null"`
	City    string `gorm:"type:varchar(64);not null"`
	State   string `gorm:"type:varchar(64);not null"`
	Pincode string `gorm:"type:varchar(16);not null"`
	Ctime   int64
	Utime   int64
}
