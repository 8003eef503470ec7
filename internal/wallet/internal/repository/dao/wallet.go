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
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound      = gorm.ErrRecordNotFound
	ErrInsufficientBalance = errors.New("余额不足")
	errReplayed            = errors.New("重复的流水")
)

const (
	TransactionTypeRefund  uint8 = 1
	TransactionTypePayment uint8 = 2
)

type WalletDAO interface {
	FindByUID(ctx context.Context, uid int64) (Wallet, error)
	// Refund 钱包不存在时创建，同一个 bizKey 只会入账一次
	Refund(ctx context.Context, t Transaction) error
	// Pay 余额不足返回 ErrInsufficientBalance，同一个 bizKey 只会扣一次
	Pay(ctx context.Context, t Transaction) error
	ListTransactions(ctx context.Context, uid int64, offset, limit int) ([]Transaction, error)
	CountTransactions(ctx context.Context, uid int64) (int64, error)
}

type WalletGORMDAO struct {
	db *egorm.Component
}

func NewWalletGORMDAO(db *egorm.Component) WalletDAO {
	return &WalletGORMDAO{db: db}
}

func (d *WalletGORMDAO) FindByUID(ctx context.Context, uid int64) (Wallet, error) {
	var w Wallet
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&w).Error
	return w, err
}

func (d *WalletGORMDAO) Refund(ctx context.Context, t Transaction) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		t.Type = TransactionTypeRefund
		if err := d.appendTransaction(tx, &t, now); err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uid"}},
			DoUpdates: clause.Assignments(map[string]any{
				"balance": gorm.Expr("`balance` + ?", t.Amount),
				"utime":   now,
			}),
		}).Create(&Wallet{
			Uid:      t.Uid,
			Balance:  t.Amount,
			IsActive: true,
			Ctime:    now,
			Utime:    now,
		}).Error
	})
	if errors.Is(err, errReplayed) {
		return nil
	}
	return err
}

func (d *WalletGORMDAO) Pay(ctx context.Context, t Transaction) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		t.Type = TransactionTypePayment
		if err := d.appendTransaction(tx, &t, now); err != nil {
			return err
		}
		res := tx.Model(&Wallet{}).
			Where("uid = ? AND is_active = ? AND balance >= ?", t.Uid, true, t.Amount).
			Updates(map[string]any{
				"balance": gorm.Expr("`balance` - ?", t.Amount),
				"utime":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientBalance
		}
		return nil
	})
	if errors.Is(err, errReplayed) {
		return nil
	}
	return err
}

func (d *WalletGORMDAO) appendTransaction(tx *gorm.DB, t *Transaction, now int64) error {
	t.Ctime = now
	t.Utime = now
	err := tx.Create(t).Error
	if isMySQLUniqueIndexError(err) {
		return errReplayed
	}
	return err
}

func (d *WalletGORMDAO) ListTransactions(ctx context.Context, uid int64, offset, limit int) ([]Transaction, error) {
	var res []Transaction
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *WalletGORMDAO) CountTransactions(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Transaction{}).Where("uid = ?", uid).Count(&cnt).Error
	return cnt, err
}

func isMySQLUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Wallet{}, &Transaction{})
}

type Wallet struct {
	Id       int64           `gorm:"primaryKey;autoIncrement"`
	Uid      int64           `gorm:"not null;uniqueIndex:unq_uid;comment:一个用户只有一个钱包"`
	Balance  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IsActive bool            `gorm:"not null;default:true"`
	Ctime    int64
	Utime    int64
}

type Transaction struct {
	Id     int64           `gorm:"primaryKey;autoIncrement"`
	Uid    int64           `gorm:"not null;index:idx_uid"`
	Type   uint8           `gorm:"type:tinyint unsigned;not null;uniqueIndex:unq_biz_key_type;comment:1=退款 2=支付"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	BizKey string          `gorm:"type:varchar(64);not null;uniqueIndex:unq_biz_key_type"`
	Desc   string          `gorm:"type:varchar(255);not null"`
	Ctime  int64
	Utime  int64
}

func (Transaction) TableName() string {
	return "wallet_transactions"
}
