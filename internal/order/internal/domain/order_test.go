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
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

// 两件商品 50 + 30，10% 优惠券最多优惠 5，门槛 20，运费 5
func newCouponOrder(method PaymentMethod, ps PaymentStatus) Order {
	return Order{
		ID:            1,
		OrderedID:     "ORD-1700000000000-0001",
		UID:           1,
		PaymentMethod: method,
		PaymentStatus: ps,
		Status:        StatusPending,
		Items: []Item{
			{ID: 1, ProductID: 1, Name: "衬衫", Color: "red", Size: "M", Quantity: 1, Price: dec("50")},
			{ID: 2, ProductID: 2, Name: "袜子", Color: "blue", Size: "L", Quantity: 1, Price: dec("30")},
		},
		TotalAmount:    dec("80"),
		PayableAmount:  dec("80"),
		ShippingCost:   dec("5"),
		Coupon:         Coupon{CouponID: 1, Code: "SAVE10", DiscountPrice: dec("5"), MinCartValue: dec("20")},
		StockCommitted: method != PaymentMethodRazorpay || ps == PaymentStatusPaid,
	}
}

func TestOrder_CancelItem(t *testing.T) {
	o := newCouponOrder(PaymentMethodWallet, PaymentStatusPaid)

	adj, err := o.CancelItem(2, 1)
	require.NoError(t, err)
	assertDecimal(t, "3.12", o.Coupon.DiscountPrice)
	assertDecimal(t, "51.88", o.PayableAmount)
	assertDecimal(t, "28.12", adj.Refund)
	assert.Equal(t, []StockLine{{ProductID: 2, Name: "袜子", Color: "blue", Size: "L", Quantity: 1}}, adj.Restock)
	assert.Equal(t, StatusPending, o.Status)
	assert.True(t, o.Items[1].IsCanceled)

	_, err = o.CancelItem(2, 1)
	assert.ErrorIs(t, err, ErrItemCanceled)

	// 剩余金额低于门槛，优惠券作废，最后一件取消时运费一并退回
	adj, err = o.CancelItem(1, 1)
	require.NoError(t, err)
	assertDecimal(t, "0", o.Coupon.DiscountPrice)
	assertDecimal(t, "0", o.PayableAmount)
	assertDecimal(t, "51.88", adj.Refund)
	assert.Equal(t, StatusCanceled, o.Status)
	assert.Equal(t, PaymentStatusCanceled, o.PaymentStatus)
}

func TestOrder_CancelItem_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		order   func() Order
		itemID  int64
		qty     int64
		wantErr error
	}{
		{
			name: "订单已送达",
			order: func() Order {
				o := newCouponOrder(PaymentMethodCOD, PaymentStatusPaid)
				o.Status = StatusDelivered
				return o
			},
			itemID:  1,
			qty:     1,
			wantErr: ErrInvalidTransition,
		},
		{
			name: "订单已退货",
			order: func() Order {
				o := newCouponOrder(PaymentMethodCOD, PaymentStatusRefunded)
				o.Status = StatusReturned
				return o
			},
			itemID:  1,
			qty:     1,
			wantErr: ErrInvalidTransition,
		},
		{
			name: "商品不存在",
			order: func() Order {
				return newCouponOrder(PaymentMethodCOD, PaymentStatusPending)
			},
			itemID:  3,
			qty:     1,
			wantErr: ErrItemNotFound,
		},
		{
			name: "数量超过剩余件数",
			order: func() Order {
				return newCouponOrder(PaymentMethodCOD, PaymentStatusPending)
			},
			itemID:  1,
			qty:     2,
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "数量为0",
			order: func() Order {
				return newCouponOrder(PaymentMethodCOD, PaymentStatusPending)
			},
			itemID:  1,
			qty:     0,
			wantErr: ErrInvalidQuantity,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := tc.order()
			before := o.PayableAmount
			_, err := o.CancelItem(tc.itemID, tc.qty)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, before.Equal(o.PayableAmount))
		})
	}
}

func TestOrder_CancelItem_Unpaid(t *testing.T) {
	testCases := []struct {
		name           string
		method         PaymentMethod
		wantRestock    bool
		wantGatewayOID string
	}{
		{name: "货到付款", method: PaymentMethodCOD, wantRestock: true},
		// 应付金额变了，旧的网关订单不能再用来支付
		{name: "未支付的在线支付", method: PaymentMethodRazorpay, wantRestock: false, wantGatewayOID: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newCouponOrder(tc.method, PaymentStatusPending)
			if tc.method == PaymentMethodRazorpay {
				o.GatewayOrderID = "order_1"
			}
			adj, err := o.CancelItem(2, 1)
			require.NoError(t, err)
			assert.True(t, adj.Refund.IsZero())
			assert.Equal(t, tc.wantRestock, len(adj.Restock) > 0)
			assertDecimal(t, "51.88", o.PayableAmount)
			assert.Equal(t, tc.wantGatewayOID, o.GatewayOrderID)
			assert.Equal(t, PaymentStatusPending, o.PaymentStatus)
		})
	}
}

func TestOrder_Cancel(t *testing.T) {
	testCases := []struct {
		name        string
		order       func() Order
		wantErr     error
		wantRefund  string
		wantRestock []StockLine
	}{
		{
			name: "钱包支付全额退款",
			order: func() Order {
				return newCouponOrder(PaymentMethodWallet, PaymentStatusPaid)
			},
			wantRefund: "80",
			wantRestock: []StockLine{
				{ProductID: 1, Name: "衬衫", Color: "red", Size: "M", Quantity: 1},
				{ProductID: 2, Name: "袜子", Color: "blue", Size: "L", Quantity: 1},
			},
		},
		{
			name: "部分取消后再整单取消",
			order: func() Order {
				o := newCouponOrder(PaymentMethodWallet, PaymentStatusPaid)
				_, err := o.CancelItem(2, 1)
				require.NoError(t, err)
				return o
			},
			wantRefund: "51.88",
			wantRestock: []StockLine{
				{ProductID: 1, Name: "衬衫", Color: "red", Size: "M", Quantity: 1},
			},
		},
		{
			name: "未支付的在线支付不回补也不退款",
			order: func() Order {
				return newCouponOrder(PaymentMethodRazorpay, PaymentStatusPending)
			},
			wantRefund: "0",
		},
		{
			name: "货到付款只回补库存",
			order: func() Order {
				return newCouponOrder(PaymentMethodCOD, PaymentStatusPending)
			},
			wantRefund: "0",
			wantRestock: []StockLine{
				{ProductID: 1, Name: "衬衫", Color: "red", Size: "M", Quantity: 1},
				{ProductID: 2, Name: "袜子", Color: "blue", Size: "L", Quantity: 1},
			},
		},
		{
			name: "已取消",
			order: func() Order {
				o := newCouponOrder(PaymentMethodCOD, PaymentStatusCanceled)
				o.Status = StatusCanceled
				return o
			},
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := tc.order()
			adj, err := o.Cancel()
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assertDecimal(t, tc.wantRefund, adj.Refund)
			assert.Equal(t, tc.wantRestock, adj.Restock)
			assert.Equal(t, StatusCanceled, o.Status)
			assert.Equal(t, PaymentStatusCanceled, o.PaymentStatus)
			assert.True(t, o.PayableAmount.IsZero())
			for _, it := range o.Items {
				assert.True(t, it.IsCanceled)
				assert.Equal(t, int64(0), it.Remaining())
			}
		})
	}
}

// 任意顺序的部分取消之后，已退款金额加上剩余应付金额等于原应付金额，
// 每一次退款都不为负，累计退款不超过实际支付的金额
func TestOrder_CancelItem_Conservation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		o := Order{
			PaymentMethod:  PaymentMethodWallet,
			PaymentStatus:  PaymentStatusPaid,
			Status:         StatusPending,
			ShippingCost:   dec("5"),
			StockCommitted: true,
		}
		total := decimal.Zero
		for i := int64(1); i <= 4; i++ {
			price := decimal.New(int64(r.Intn(9000)+100), -2)
			qty := int64(r.Intn(3) + 1)
			o.Items = append(o.Items, Item{ID: i, ProductID: i, Quantity: qty, Price: price})
			total = total.Add(price.Mul(decimal.NewFromInt(qty)))
		}
		discount := decimal.New(int64(r.Intn(int(total.IntPart()))+1), 0)
		o.TotalAmount = total
		o.Coupon = Coupon{CouponID: 1, DiscountPrice: discount, MinCartValue: decimal.New(int64(r.Intn(50)), 0)}
		o.PayableAmount = total.Sub(discount).Add(o.ShippingCost)
		original := o.PayableAmount

		refunded := decimal.Zero
		for o.Status != StatusCanceled {
			it := o.Items[r.Intn(len(o.Items))]
			if it.Closed() {
				continue
			}
			lastDiscount := o.Coupon.DiscountPrice
			adj, err := o.CancelItem(it.ID, int64(r.Intn(int(it.Remaining()))+1))
			require.NoError(t, err)
			assert.False(t, o.Coupon.DiscountPrice.IsNegative())
			assert.True(t, o.Coupon.DiscountPrice.LessThanOrEqual(lastDiscount))
			assert.False(t, adj.Refund.IsNegative(), "refund %s", adj.Refund.String())
			assert.True(t, o.PayableAmount.LessThanOrEqual(original))
			refunded = refunded.Add(adj.Refund)
			diff := refunded.Add(o.PayableAmount).Sub(original).Abs()
			assert.True(t, diff.LessThanOrEqual(dec("0.01")), "diff %s", diff.String())
		}
		assert.True(t, o.PayableAmount.IsZero())
		assert.True(t, refunded.LessThanOrEqual(original), "refunded %s, paid %s", refunded, original)
	}
}

// 94 + 6 两件商品，满 95 减 20，运费 5，实付 85。
// 取消 6 元商品后优惠券作废，但不会追缴，也不会在后续取消时多退
func TestOrder_CancelItem_VoidedCoupon(t *testing.T) {
	o := Order{
		PaymentMethod: PaymentMethodWallet,
		PaymentStatus: PaymentStatusPaid,
		Status:        StatusPending,
		Items: []Item{
			{ID: 1, ProductID: 1, Quantity: 1, Price: dec("94")},
			{ID: 2, ProductID: 2, Quantity: 1, Price: dec("6")},
		},
		TotalAmount:    dec("100"),
		PayableAmount:  dec("85"),
		ShippingCost:   dec("5"),
		Coupon:         Coupon{CouponID: 1, DiscountPrice: dec("20"), MinCartValue: dec("95")},
		StockCommitted: true,
	}

	adj, err := o.CancelItem(2, 1)
	require.NoError(t, err)
	assertDecimal(t, "0", adj.Refund)
	assertDecimal(t, "85", o.PayableAmount)
	assertDecimal(t, "0", o.Coupon.DiscountPrice)

	adj, err = o.CancelItem(1, 1)
	require.NoError(t, err)
	assertDecimal(t, "85", adj.Refund)
	assert.Equal(t, StatusCanceled, o.Status)
	assert.True(t, o.PayableAmount.IsZero())
}

func TestOrder_ApplyReturn(t *testing.T) {
	o := newCouponOrder(PaymentMethodWallet, PaymentStatusPaid)
	o.Status = StatusDelivered

	adj, err := o.ApplyReturn(ReturnRequest{
		Status: ReturnStatusPending,
		Items:  []ReturnItem{{ItemID: 2, Quantity: 1, IsAllItem: true}},
	})
	require.NoError(t, err)
	assertDecimal(t, "28.12", adj.Refund)
	assertDecimal(t, "51.88", o.PayableAmount)
	assert.True(t, o.Items[1].IsReturned)
	assert.Equal(t, StatusDelivered, o.Status)

	adj, err = o.ApplyReturn(ReturnRequest{Status: ReturnStatusPending, IsAllItem: true})
	require.NoError(t, err)
	assertDecimal(t, "51.88", adj.Refund)
	assert.Equal(t, []StockLine{{ProductID: 1, Name: "衬衫", Color: "red", Size: "M", Quantity: 1}}, adj.Restock)
	assert.Equal(t, StatusReturned, o.Status)
	assert.Equal(t, PaymentStatusRefunded, o.PaymentStatus)
	assert.True(t, o.PayableAmount.IsZero())

	_, err = o.ApplyReturn(ReturnRequest{Status: ReturnStatusPending, IsAllItem: true})
	assert.ErrorIs(t, err, ErrNotDelivered)
}

func TestOrder_ApplyReturn_NotDelivered(t *testing.T) {
	o := newCouponOrder(PaymentMethodWallet, PaymentStatusPaid)
	o.Status = StatusShipped
	_, err := o.ApplyReturn(ReturnRequest{Status: ReturnStatusPending, IsAllItem: true})
	assert.ErrorIs(t, err, ErrNotDelivered)

	o.Status = StatusDelivered
	_, err = o.ApplyReturn(ReturnRequest{Status: ReturnStatusRejected, IsAllItem: true})
	assert.ErrorIs(t, err, ErrReturnReviewed)
}

func TestOrder_RejectReturn(t *testing.T) {
	testCases := []struct {
		name          string
		rejected      []int64
		req           ReturnRequest
		wantIsAllItem bool
	}{
		{
			name:     "部分商品被拒绝",
			rejected: nil,
			req: ReturnRequest{
				Status: ReturnStatusPending,
				Items:  []ReturnItem{{ItemID: 1, Quantity: 1}},
			},
			wantIsAllItem: false,
		},
		{
			name:     "加上之前被拒绝的覆盖了全部商品",
			rejected: []int64{2},
			req: ReturnRequest{
				Status: ReturnStatusPending,
				Items:  []ReturnItem{{ItemID: 1, Quantity: 1}},
			},
			wantIsAllItem: true,
		},
		{
			name: "整单退货",
			req: ReturnRequest{
				Status:    ReturnStatusPending,
				IsAllItem: true,
			},
			wantIsAllItem: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newCouponOrder(PaymentMethodCOD, PaymentStatusPaid)
			o.Status = StatusDelivered
			for _, id := range tc.rejected {
				it, _ := o.item(id)
				it.IsRejected = true
			}
			req := tc.req
			require.NoError(t, o.RejectReturn(&req))
			assert.Equal(t, ReturnStatusRejected, req.Status)
			assert.Equal(t, tc.wantIsAllItem, req.IsAllItem)
			assert.ErrorIs(t, o.RejectReturn(&req), ErrReturnReviewed)
		})
	}
}
