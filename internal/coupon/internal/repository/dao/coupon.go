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

const (
	statusActive  uint8 = 1
	statusExpired uint8 = 3

	redemptionStatusRedeemed uint8 = 1
	redemptionStatusReverted uint8 = 2
)

var (
	ErrRecordNotFound     = gorm.ErrRecordNotFound
	ErrDuplicateCode      = errors.New("优惠码已存在")
	ErrUsageLimitExceeded = errors.New("优惠券总量已用完")
	ErrUserLimitExceeded  = errors.New("用户使用次数已达上限")
	errReplayed           = errors.New("重复的核销")
)

type CouponDAO interface {
	Save(ctx context.Context, c Coupon) (int64, error)
	FindByID(ctx context.Context, id int64) (Coupon, error)
	FindByCode(ctx context.Context, code string) (Coupon, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	Expire(ctx context.Context, id int64, now int64) (bool, error)
	ExpireBefore(ctx context.Context, now int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Coupon, error)
	Count(ctx context.Context) (int64, error)
	ListAvailable(ctx context.Context, now int64) ([]Coupon, error)

	FindUsage(ctx context.Context, uid, couponID int64) (CouponUsage, error)
	FindUsagesByUID(ctx context.Context, uid int64) ([]CouponUsage, error)
	// Redeem 在一个事务里扣减总量、增加用户使用次数并记录核销，同一个 biz_key 只生效一次
	Redeem(ctx context.Context, r Redemption, perUserLimit int64) error
	// Revert 撤销核销，没有核销记录或者已经撤销时什么都不做
	Revert(ctx context.Context, bizKey string) error
}

type CouponGORMDAO struct {
	db *egorm.Component
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &CouponGORMDAO{db: db}
}

func (d *CouponGORMDAO) Save(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	var err error
	if c.Id == 0 {
		c.Ctime = now
		err = d.db.WithContext(ctx).Create(&c).Error
	} else {
		// ON DUPLICATE KEY 会把优惠码冲突也当作更新，所以这里分开处理
		err = d.db.WithContext(ctx).Model(&c).Where("id = ?", c.Id).
			Select("code", "type", "discount_value", "min_cart_value", "max_discount",
				"usage_limit_per_user", "total_usage_limit", "status", "start_date", "end_date", "utime").
			Updates(&c).Error
	}
	if isMySQLUniqueIndexError(err) {
		return 0, ErrDuplicateCode
	}
	return c.Id, err
}

func (d *CouponGORMDAO) FindByID(ctx context.Context, id int64) (Coupon, error) {
	var c Coupon
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *CouponGORMDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var c Coupon
	err := d.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	return c, err
}

func (d *CouponGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	res := d.db.WithContext(ctx).Model(&Coupon{}).Where("id = ?", id).
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

func (d *CouponGORMDAO) Expire(ctx context.Context, id int64, now int64) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Coupon{}).
		Where("id = ? AND status <> ? AND end_date < ?", id, statusExpired, now).
		Updates(map[string]any{
			"status": statusExpired,
			"utime":  now,
		})
	return res.RowsAffected > 0, res.Error
}

func (d *CouponGORMDAO) ExpireBefore(ctx context.Context, now int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Coupon{}).
		Where("status <> ? AND end_date < ?", statusExpired, now).
		Updates(map[string]any{
			"status": statusExpired,
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}

func (d *CouponGORMDAO) List(ctx context.Context, offset, limit int) ([]Coupon, error) {
	var res []Coupon
	err := d.db.WithContext(ctx).Offset(offset).Limit(limit).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (d *CouponGORMDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Coupon{}).Count(&cnt).Error
	return cnt, err
}

func (d *CouponGORMDAO) ListAvailable(ctx context.Context, now int64) ([]Coupon, error) {
	var res []Coupon
	err := d.db.WithContext(ctx).
		Where("status = ? AND start_date <= ? AND end_date >= ?", statusActive, now, now).
		Where("total_usage_limit <= 0 OR used_count < total_usage_limit").
		Order("end_date ASC").Find(&res).Error
	return res, err
}

func (d *CouponGORMDAO) FindUsage(ctx context.Context, uid, couponID int64) (CouponUsage, error) {
	var u CouponUsage
	err := d.db.WithContext(ctx).Where("uid = ? AND coupon_id = ?", uid, couponID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CouponUsage{Uid: uid, CouponId: couponID}, nil
	}
	return u, err
}

func (d *CouponGORMDAO) FindUsagesByUID(ctx context.Context, uid int64) ([]CouponUsage, error) {
	var res []CouponUsage
	err := d.db.WithContext(ctx).Where("uid = ?", uid).Find(&res).Error
	return res, err
}

func (d *CouponGORMDAO) Redeem(ctx context.Context, r Redemption, perUserLimit int64) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		r.Status = redemptionStatusRedeemed
		r.Ctime = now
		r.Utime = now
		err := tx.Create(&r).Error
		if isMySQLUniqueIndexError(err) {
			return errReplayed
		}
		if err != nil {
			return err
		}
		res := tx.Model(&Coupon{}).
			Where("id = ? AND (total_usage_limit <= 0 OR used_count < total_usage_limit)", r.CouponId).
			Updates(map[string]any{
				"used_count": gorm.Expr("used_count + 1"),
				"utime":      now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUsageLimitExceeded
		}
		return d.incrUsage(tx, r.Uid, r.CouponId, perUserLimit, now)
	})
	if errors.Is(err, errReplayed) {
		return nil
	}
	return err
}

func (d *CouponGORMDAO) incrUsage(tx *gorm.DB, uid, couponID, limit int64, now int64) error {
	res := tx.Model(&CouponUsage{}).
		Where("uid = ? AND coupon_id = ? AND cnt < ?", uid, couponID, limit).
		Updates(map[string]any{
			"cnt":   gorm.Expr("cnt + 1"),
			"utime": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// 要么第一次使用，要么已经到达上限
	err := tx.Create(&CouponUsage{
		Uid:      uid,
		CouponId: couponID,
		Cnt:      1,
		Ctime:    now,
		Utime:    now,
	}).Error
	if isMySQLUniqueIndexError(err) {
		return ErrUserLimitExceeded
	}
	return err
}

func (d *CouponGORMDAO) Revert(ctx context.Context, bizKey string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := tx.Model(&Redemption{}).
			Where("biz_key = ? AND status = ?", bizKey, redemptionStatusRedeemed).
			Updates(map[string]any{
				"status": redemptionStatusReverted,
				"utime":  now,
			})
		if res.Error != nil || res.RowsAffected == 0 {
			return res.Error
		}
		var r Redemption
		err := tx.Where("biz_key = ?", bizKey).First(&r).Error
		if err != nil {
			return err
		}
		err = tx.Model(&Coupon{}).Where("id = ? AND used_count > 0", r.CouponId).
			Updates(map[string]any{
				"used_count": gorm.Expr("used_count - 1"),
				"utime":      now,
			}).Error
		if err != nil {
			return err
		}
		return tx.Model(&CouponUsage{}).
			Where("uid = ? AND coupon_id = ? AND cnt > 0", r.Uid, r.CouponId).
			Updates(map[string]any{
				"cnt":   gorm.Expr("cnt - 1"),
				"utime": now,
			}).Error
	})
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
	return db.AutoMigrate(&Coupon{}, &CouponUsage{}, &Redemption{})
}

type Coupon struct {
	Id                int64           `gorm:"primaryKey,autoIncrement"`
	Code              string          `gorm:"type:varchar(64);uniqueIndex"`
	Type              uint8           `gorm:"type:tinyint unsigned;not null"`
	DiscountValue     decimal.Decimal `gorm:"type:decimal(12,2)"`
	MinCartValue      decimal.Decimal `gorm:"type:decimal(12,2)"`
	MaxDiscount       decimal.Decimal `gorm:"type:decimal(12,2)"`
	UsageLimitPerUser int64           `gorm:"not null;default:1"`
	TotalUsageLimit   int64           `gorm:"not null;default:0"`
	UsedCount         int64           `gorm:"not null;default:0"`
	Status            uint8           `gorm:"type:tinyint unsigned;not null;index:idx_status_end_date,priority:1"`
	StartDate         int64
	EndDate           int64 `gorm:"index:idx_status_end_date,priority:2"`
	Ctime             int64
	Utime             int64
}

// CouponUsage 用户对某张优惠券的使用次数
type CouponUsage struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	Uid      int64 `gorm:"uniqueIndex:uniq_uid_coupon"`
	CouponId int64 `gorm:"uniqueIndex:uniq_uid_coupon"`
	Cnt      int64 `gorm:"not null;default:0"`
	Ctime    int64
	Utime    int64
}

// Redemption 核销记录
type Redemption struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	BizKey   string `gorm:"type:varchar(128);uniqueIndex"`
	Uid      int64  `gorm:"index"`
	CouponId int64
	Status   uint8 `gorm:"type:tinyint unsigned;not null"`
	Ctime    int64
	Utime    int64
}
