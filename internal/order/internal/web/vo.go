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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// CheckoutReq 下单请求
type CheckoutReq struct {
	// RequestID 请求去重，防止订单重复提交
	RequestID     string `json:"requestId"`
	AddressID     int64  `json:"addressId"`
	PaymentMethod string `json:"paymentMethod"`
}

type CheckoutResp struct {
	Order Order `json:"order"`
	// 在线支付时前端拿着网关订单号拉起支付
	Payment *GatewayPayment `json:"payment,omitempty"`
}

type GatewayPayment struct {
	GatewayOrderID string `json:"gatewayOrderId"`
	// Amount 最小货币单位
	Amount int64 `json:"amount"`
}

type VerifyPaymentReq struct {
	OrderID        int64  `json:"orderId"`
	GatewayOrderID string `json:"gatewayOrderId"`
	PaymentID      string `json:"paymentId"`
	Signature      string `json:"signature"`
}

type OrderReq struct {
	OrderID int64 `json:"orderId"`
}

type CancelItemReq struct {
	OrderID  int64 `json:"orderId"`
	ItemID   int64 `json:"itemId"`
	Quantity int64 `json:"quantity"`
}

type ReturnReq struct {
	OrderID int64  `json:"orderId"`
	Reason  string `json:"reason"`
}

type ItemReturnReq struct {
	OrderID  int64  `json:"orderId"`
	ItemID   int64  `json:"itemId"`
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason"`
}

type ItemReq struct {
	OrderID int64 `json:"orderId"`
	ItemID  int64 `json:"itemId"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type ChangeStatusReq struct {
	OrderID int64 `json:"orderId"`
	Status  uint8 `json:"status"`
}

type ReturnIDReq struct {
	ID int64 `json:"id"`
}

type ListReturnsResp struct {
	Total   int64           `json:"total,omitempty"`
	Returns []ReturnRequest `json:"returns,omitempty"`
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
	ID            int64           `json:"id"`
	ProductID     int64           `json:"productId"`
	Name          string          `json:"name"`
	Color         string          `json:"color"`
	Size          string          `json:"size"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	CanceledItems int64           `json:"canceledItems"`
	ReturnedItem  int64           `json:"returnedItem"`
	IsCanceled    bool            `json:"isCanceled"`
	IsReturned    bool            `json:"isReturned"`
	IsRejected    bool            `json:"isRejected"`
}

type Order struct {
	ID             int64           `json:"id"`
	OrderedID      string          `json:"orderedId"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"paymentStatus"`
	PaymentMethod  string          `json:"paymentMethod"`
	Address        Address         `json:"address"`
	Items          []Item          `json:"items"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	ShippingCost   decimal.Decimal `json:"shippingCost"`
	CouponCode     string          `json:"couponCode,omitempty"`
	Discount       decimal.Decimal `json:"discount"`
	PayableAmount  decimal.Decimal `json:"payableAmount"`
	GatewayOrderID string          `json:"gatewayOrderId,omitempty"`
	Ctime          int64           `json:"ctime"`
	Utime          int64           `json:"utime"`
}

type ReturnItem struct {
	ItemID    int64 `json:"itemId"`
	Quantity  int64 `json:"quantity"`
	IsAllItem bool  `json:"isAllItem"`
}

type ReturnRequest struct {
	ID        int64        `json:"id"`
	OrderID   int64        `json:"orderId"`
	UID       int64        `json:"uid"`
	Status    string       `json:"status"`
	IsAllItem bool         `json:"isAllItem"`
	Items     []ReturnItem `json:"items,omitempty"`
	Reasons   []string     `json:"reasons,omitempty"`
	Ctime     int64        `json:"ctime"`
}

func newOrder(o domain.Order) Order {
	return Order{
		ID:            o.ID,
		OrderedID:     o.OrderedID,
		Status:        o.Status.String(),
		PaymentStatus: o.PaymentStatus.String(),
		PaymentMethod: o.PaymentMethod.String(),
		Address: Address{
			Name:    o.Address.Name,
			Phone:   o.Address.Phone,
			Line:    o.Address.Line,
			City:    o.Address.City,
			State:   o.Address.State,
			Pincode: o.Address.Pincode,
		},
		Items: slice.Map(o.Items, func(idx int, src domain.Item) Item {
			return Item{
				ID:            src.ID,
				ProductID:     src.ProductID,
				Name:          src.Name,
				Color:         src.Color,
				Size:          src.Size,
				Quantity:      src.Quantity,
				Price:         src.Price,
				CanceledItems: src.CanceledItems,
				ReturnedItem:  src.ReturnedItem,
				IsCanceled:    src.IsCanceled,
				IsReturned:    src.IsReturned,
				IsRejected:    src.IsRejected,
			}
		}),
		TotalAmount:    o.TotalAmount,
		ShippingCost:   o.ShippingCost,
		CouponCode:     o.Coupon.Code,
		Discount:       o.Coupon.DiscountPrice,
		PayableAmount:  o.PayableAmount,
		GatewayOrderID: o.GatewayOrderID,
		Ctime:          o.Ctime,
		Utime:          o.Utime,
	}
}

func newCheckoutResp(o domain.Order) CheckoutResp {
	resp := CheckoutResp{Order: newOrder(o)}
	if o.GatewayOrderID != "" {
		resp.Payment = &GatewayPayment{
			GatewayOrderID: o.GatewayOrderID,
			Amount:         money.ToMinor(o.PayableAmount),
		}
	}
	return resp
}

func newReturnRequest(r domain.ReturnRequest) ReturnRequest {
	return ReturnRequest{
		ID:        r.ID,
		OrderID:   r.OrderID,
		UID:       r.UID,
		Status:    r.Status.String(),
		IsAllItem: r.IsAllItem,
		Items: slice.Map(r.Items, func(idx int, src domain.ReturnItem) ReturnItem {
			return ReturnItem{ItemID: src.ItemID, Quantity: src.Quantity, IsAllItem: src.IsAllItem}
		}),
		Reasons: r.Reasons,
		Ctime:   r.Ctime,
	}
}
