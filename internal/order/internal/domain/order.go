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

package domain

import (
	"errors"

	"github.com/ecodeclub/mall/internal/coupon"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition = errors.New("订单状态不允许该操作")
	ErrItemNotFound      = errors.New("订单商品不存在")
	ErrItemCanceled      = errors.New("商品已取消")
	ErrInvalidQuantity   = errors.New("商品数量非法")
	ErrNotDelivered      = errors.New("订单未送达")
)

type PaymentMethod string

const (
	PaymentMethodCOD      PaymentMethod = "cod"
	PaymentMethodWallet   PaymentMethod = "wallet"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodWallet, PaymentMethodRazorpay:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}

// Address 下单时的地址快照，之后用户修改地址不影响订单
type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line    string `json:"line"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Item struct {
	// ID 订单内从 1 开始编号
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`

	IsCanceled    bool  `json:"isCanceled"`
	IsReturned    bool  `json:"isReturned"`
	IsRejected    bool  `json:"isRejected"`
	CanceledItems int64 `json:"canceledItems"`
	ReturnedItem  int64 `json:"returnedItem"`
}

// Remaining 还没有取消或者退货的件数
func (i Item) Remaining() int64 {
	return i.Quantity - i.CanceledItems - i.ReturnedItem
}

func (i Item) Closed() bool {
	return i.IsCanceled || i.IsReturned
}

func (i Item) StockLine(quantity int64) StockLine {
	return StockLine{
		ProductID: i.ProductID,
		Name:      i.Name,
		Color:     i.Color,
		Size:      i.Size,
		Quantity:  quantity,
	}
}

type Coupon struct {
	CouponID int64
	Code     string
	// DiscountPrice 部分取消、退货后会重新分摊
	DiscountPrice decimal.Decimal
	MinCartValue  decimal.Decimal
}

// StockLine 需要回补的库存
type StockLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

// Adjustment 订单变更带来的库存和资金变化，由对账模块异步执行
type Adjustment struct {
	Restock []StockLine
	Refund  decimal.Decimal
}

func (a Adjustment) Empty() bool {
	return len(a.Restock) == 0 && !a.Refund.IsPositive()
}

type Order struct {
	ID             int64
	OrderedID      string
	UID            int64
	Address        Address
	Items          []Item
	PaymentMethod  PaymentMethod
	PaymentStatus  PaymentStatus
	Status         Status
	TotalAmount    decimal.Decimal
	PayableAmount  decimal.Decimal
	ShippingCost   decimal.Decimal
	Coupon         Coupon
	GatewayOrderID string
	// StockCommitted 库存是否已经扣减，razorpay 订单在支付成功或者送达时才扣减
	StockCommitted bool
	Version        int64
	Ctime          int64
	Utime          int64
}

func (o Order) Paid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// StockLines 所有还没取消或者退货的商品
func (o Order) StockLines() []StockLine {
	res := make([]StockLine, 0, len(o.Items))
	for _, it := range o.Items {
		if n := it.Remaining(); n > 0 {
			res = append(res, it.StockLine(n))
		}
	}
	return res
}

func (o *Order) item(id int64) (*Item, bool) {
	for i := range o.Items {
		if o.Items[i].ID == id {
			return &o.Items[i], true
		}
	}
	return nil, false
}

func (o Order) FindItem(id int64) (Item, bool) {
	it, ok := o.item(id)
	if !ok {
		return Item{}, false
	}
	return *it, true
}

func (o Order) allClosed() bool {
	for _, it := range o.Items {
		if !it.Closed() {
			return false
		}
	}
	return true
}

// deduct 从订单中移除 quantity 件商品，返回应付金额减少的部分
func (o *Order) deduct(price decimal.Decimal, quantity int64) decimal.Decimal {
	r := coupon.Reallocate(coupon.Allocation{
		Discount:     o.Coupon.DiscountPrice,
		MinCartValue: o.Coupon.MinCartValue,
		Payable:      o.PayableAmount,
		Shipping:     o.ShippingCost,
	}, price, quantity)
	o.Coupon.DiscountPrice = r.Discount
	o.PayableAmount = r.Payable
	return r.Refund
}

// Cancel 整单取消，未扣减库存的订单不回补库存，未支付的订单不退款
func (o *Order) Cancel() (Adjustment, error) {
	if o.Status.Terminal() {
		return Adjustment{}, ErrInvalidTransition
	}
	var adj Adjustment
	if o.StockCommitted {
		adj.Restock = o.StockLines()
	}
	if o.Paid() {
		adj.Refund = o.PayableAmount
	}
	for i := range o.Items {
		it := &o.Items[i]
		it.CanceledItems += it.Remaining()
		it.IsCanceled = true
	}
	o.PayableAmount = decimal.Zero
	o.Status = StatusCanceled
	o.PaymentStatus = PaymentStatusCanceled
	return adj, nil
}

// CancelItem 取消某个商品的部分或者全部数量。
// 所有商品都取消或者退货之后订单整体取消，剩余的应付金额（含运费）全部退回。
func (o *Order) CancelItem(itemID, quantity int64) (Adjustment, error) {
	if o.Status.Terminal() {
		return Adjustment{}, ErrInvalidTransition
	}
	it, ok := o.item(itemID)
	if !ok {
		return Adjustment{}, ErrItemNotFound
	}
	if it.IsCanceled {
		return Adjustment{}, ErrItemCanceled
	}
	if quantity < 1 || quantity > it.Remaining() {
		return Adjustment{}, ErrInvalidQuantity
	}
	paid := o.Paid()
	refund := o.deduct(it.Price, quantity)
	it.CanceledItems += quantity
	if it.Remaining() == 0 {
		it.IsCanceled = true
	}
	var adj Adjustment
	if o.StockCommitted {
		adj.Restock = []StockLine{it.StockLine(quantity)}
	}
	if o.allClosed() {
		refund = refund.Add(o.PayableAmount)
		o.PayableAmount = decimal.Zero
		o.Status = StatusCanceled
		o.PaymentStatus = PaymentStatusCanceled
	}
	if paid {
		adj.Refund = refund
	} else if o.PaymentMethod == PaymentMethodRazorpay {
		// 网关订单按旧的应付金额创建，必须重新发起支付
		o.GatewayOrderID = ""
	}
	return adj, nil
}

// ApplyReturn 执行审核通过的退货申请
func (o *Order) ApplyReturn(r ReturnRequest) (Adjustment, error) {
	if o.Status != StatusDelivered {
		return Adjustment{}, ErrNotDelivered
	}
	if r.Status != ReturnStatusPending {
		return Adjustment{}, ErrReturnReviewed
	}
	paid := o.Paid()
	var adj Adjustment
	refund := decimal.Zero
	if r.IsAllItem {
		if o.StockCommitted {
			adj.Restock = o.StockLines()
		}
		for i := range o.Items {
			it := &o.Items[i]
			if it.Closed() {
				continue
			}
			it.ReturnedItem += it.Remaining()
			it.IsReturned = true
		}
	} else {
		for _, ri := range r.Items {
			it, ok := o.item(ri.ItemID)
			if !ok || it.Closed() {
				continue
			}
			qty := min(ri.Quantity, it.Remaining())
			if ri.IsAllItem {
				qty = it.Remaining()
			}
			if qty < 1 {
				continue
			}
			refund = refund.Add(o.deduct(it.Price, qty))
			it.ReturnedItem += qty
			if it.Remaining() == 0 {
				it.IsReturned = true
			}
			if o.StockCommitted {
				adj.Restock = append(adj.Restock, it.StockLine(qty))
			}
		}
	}
	if o.allClosed() {
		refund = refund.Add(o.PayableAmount)
		o.PayableAmount = decimal.Zero
		o.Status = StatusReturned
		o.PaymentStatus = PaymentStatusRefunded
	}
	if paid {
		adj.Refund = refund
	}
	return adj, nil
}

// RejectReturn 拒绝退货申请，部分退货时标记被拒绝的商品
func (o *Order) RejectReturn(r *ReturnRequest) error {
	if r.Status != ReturnStatusPending {
		return ErrReturnReviewed
	}
	if !r.IsAllItem {
		for _, ri := range r.Items {
			if it, ok := o.item(ri.ItemID); ok {
				it.IsRejected = true
			}
		}
		rejected := 0
		for _, it := range o.Items {
			if it.IsRejected {
				rejected++
			}
		}
		if rejected == len(o.Items) {
			r.IsAllItem = true
		}
	}
	r.Status = ReturnStatusRejected
	return nil
}
