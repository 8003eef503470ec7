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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound         = gorm.ErrRecordNotFound
	ErrDuplicateOrderedID     = errors.New("订单号冲突")
	ErrConcurrentModification = errors.New("订单已被修改")
	ErrPendingReturnExists    = errors.New("订单已有待审核的退货申请")
)

type OrderDAO interface {
	Create(ctx context.Context, o Order) (int64, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindByUIDAndID(ctx context.Context, uid, id int64) (Order, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Order, error)
	FindByOrderedID(ctx context.Context, orderedID string) (Order, error)
	// Update 按 version 乐观锁更新订单，退货申请和结算单在同一个事务中写入
	Update(ctx context.Context, o Order, ret *ReturnRequest, stl *Settlement) error
	List(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	Count(ctx context.Context, uid int64) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]Order, error)
	CountAll(ctx context.Context) (int64, error)

	FindPendingReturn(ctx context.Context, orderID int64) (ReturnRequest, error)
	FindReturn(ctx context.Context, id int64) (ReturnRequest, error)
	// SaveReturn 只能修改待审核的申请
	SaveReturn(ctx context.Context, r ReturnRequest) (int64, error)
	DeleteReturn(ctx context.Context, id, version int64) error
	ListReturns(ctx context.Context, offset, limit int) ([]ReturnRequest, error)
	CountReturns(ctx context.Context) (int64, error)

	FindSettlement(ctx context.Context, id int64) (Settlement, error)
	// CompleteSettlement 重复调用不会报错
	CompleteSettlement(ctx context.Context, id int64) error
	ListPendingSettlements(ctx context.Context, before int64, limit int) ([]Settlement, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order) (int64, error) {
	now := time.Now().UnixMilli()
	o.Version = 1
	o.Ctime, o.Utime = now, now
	err := d.db.WithContext(ctx).Create(&o).Error
	if isMySQLUniqueIndexError(err) {
		return 0, ErrDuplicateOrderedID
	}
	return o.Id, err
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (d *OrderGORMDAO) FindByUIDAndID(ctx context.Context, uid, id int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&o).Error
	return o, err
}

func (d *OrderGORMDAO) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("gateway_order_id = ?", gatewayOrderID).First(&o).Error
	return o, err
}

func (d *OrderGORMDAO) FindByOrderedID(ctx context.Context, orderedID string) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("ordered_id = ?", orderedID).First(&o).Error
	return o, err
}

func (d *OrderGORMDAO) Update(ctx context.Context, o Order, ret *ReturnRequest, stl *Settlement) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := tx.Model(&Order{}).
			Where("id = ? AND version = ?", o.Id, o.Version).
			Updates(map[string]any{
				"items":            o.Items,
				"payment_status":   o.PaymentStatus,
				"status":           o.Status,
				"payable_amount":   o.PayableAmount,
				"discount_price":   o.DiscountPrice,
				"gateway_order_id": o.GatewayOrderId,
				"stock_committed":  o.StockCommitted,
				"version":          gorm.Expr("`version` + 1"),
				"utime":            now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentModification
		}
		if ret != nil {
			if err := d.updatePendingReturn(tx, *ret, now); err != nil {
				return err
			}
		}
		if stl != nil {
			stl.Ctime, stl.Utime = now, now
			return tx.Create(stl).Error
		}
		return nil
	})
}

func (d *OrderGORMDAO) List(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("uid = ?", uid).Count(&cnt).Error
	return cnt, err
}

func (d *OrderGORMDAO) ListAll(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Order{}).Count(&cnt).Error
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
	return db.AutoMigrate(&Order{}, &ReturnRequest{}, &Settlement{})
}

type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line    string `json:"line"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Item struct {
	Id            int64           `json:"id"`
	ProductId     int64           `json:"productId"`
	Name          string          `json:"name"`
	Color         string          `json:"color"`
	Size          string          `json:"size"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	IsCanceled    bool            `json:"isCanceled"`
	IsReturned    bool            `json:"isReturned"`
	IsRejected    bool            `json:"isRejected"`
	CanceledItems int64           `json:"canceledItems"`
	ReturnedItem  int64           `json:"returnedItem"`
}

type Order struct {
	Id             int64                    `gorm:"primaryKey;autoIncrement"`
	OrderedId      string                   `gorm:"type:varchar(32);not null;uniqueIndex:unq_ordered_id;comment:展示给用户的订单号"`
	Uid            int64                    `gorm:"not null;index:idx_uid"`
	Address        sqlx.JsonColumn[Address] `gorm:"type:json;comment:下单时的地址快照"`
	Items          sqlx.JsonColumn[[]Item]  `gorm:"type:json"`
	PaymentMethod  string                   `gorm:"type:varchar(16);not null;comment:cod, wallet, razorpay"`
	PaymentStatus  uint8                    `gorm:"type:tinyint unsigned;not null;default:1;comment:1=待支付 2=已支付 3=支付失败 4=已取消 5=已退款"`
	Status         uint8                    `gorm:"type:tinyint unsigned;not null;default:1;comment:1=待处理 2=已确认 3=已发货 4=已送达 5=已取消 6=已退货"`
	TotalAmount    decimal.Decimal          `gorm:"type:decimal(12,2);not null;comment:优惠前商品总额"`
	PayableAmount  decimal.Decimal          `gorm:"type:decimal(12,2);not null;comment:应付金额，包含运费"`
	ShippingCost   decimal.Decimal          `gorm:"type:decimal(12,2);not null"`
	CouponId       int64                    `gorm:"not null;default:0"`
	CouponCode     string                   `gorm:"type:varchar(64);not null;default:''"`
	DiscountPrice  decimal.Decimal          `gorm:"type:decimal(12,2);not null;default:0"`
	MinCartValue   decimal.Decimal          `gorm:"type:decimal(12,2);not null;default:0"`
	GatewayOrderId string                   `gorm:"type:varchar(64);not null;default:'';index:idx_gateway_order_id"`
	StockCommitted bool                     `gorm:"not null;default:false;comment:库存是否已经扣减"`
	Version        int64                    `gorm:"not null;default:1"`
	Ctime          int64
	Utime          int64
}
