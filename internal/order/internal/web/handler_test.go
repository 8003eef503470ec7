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
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/errs"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	ordermocks "github.com/ecodeclub/mall/internal/order/mocks"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/test"
	"github.com/ecodeclub/mall/internal/wallet"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Checkout(t *testing.T) {
	testCases := []struct {
		name     string
		before   func(svc *ordermocks.MockService)
		req      CheckoutReq
		wantCode int
		wantMsg  string
		wantResp CheckoutResp
	}{
		{
			name: "在线支付",
			before: func(svc *ordermocks.MockService) {
				svc.EXPECT().Checkout(gomock.Any(), int64(123), int64(2), domain.PaymentMethodRazorpay).
					Return(domain.Order{
						ID:             1,
						OrderedID:      "ORD-1700000000000-0001",
						PaymentMethod:  domain.PaymentMethodRazorpay,
						PaymentStatus:  domain.PaymentStatusPending,
						Status:         domain.StatusPending,
						PayableAmount:  decimal.RequireFromString("46.88"),
						GatewayOrderID: "order_1",
					}, nil)
			},
			req: CheckoutReq{RequestID: "req-1", AddressID: 2, PaymentMethod: "razorpay"},
			wantResp: CheckoutResp{
				Order: Order{
					ID:             1,
					OrderedID:      "ORD-1700000000000-0001",
					Status:         "Pending",
					PaymentStatus:  "Pending",
					PaymentMethod:  "razorpay",
					Items:          []Item{},
					GatewayOrderID: "order_1",
				},
				Payment: &GatewayPayment{GatewayOrderID: "order_1", Amount: 4688},
			},
		},
		{
			name:     "重复提交",
			before:   func(svc *ordermocks.MockService) {},
			req:      CheckoutReq{RequestID: "dup", AddressID: 2, PaymentMethod: "cod"},
			wantCode: errs.DuplicateRequest.Code,
			wantMsg:  errs.DuplicateRequest.Msg,
		},
		{
			name:     "请求ID为空",
			before:   func(svc *ordermocks.MockService) {},
			req:      CheckoutReq{AddressID: 2, PaymentMethod: "cod"},
			wantCode: errs.InvalidRequest.Code,
			wantMsg:  errs.InvalidRequest.Msg,
		},
		{
			name: "库存不足",
			before: func(svc *ordermocks.MockService) {
				svc.EXPECT().Checkout(gomock.Any(), int64(123), int64(2), domain.PaymentMethodCOD).
					Return(domain.Order{}, &inventory.InsufficientStockError{Name: "T恤", Color: "红", Size: inventory.SizeL})
			},
			req:      CheckoutReq{RequestID: "req-2", AddressID: 2, PaymentMethod: "cod"},
			wantCode: errs.OutOfStock.Code,
			wantMsg:  "T恤(红/L) 已售罄",
		},
		{
			name: "余额不足",
			before: func(svc *ordermocks.MockService) {
				svc.EXPECT().Checkout(gomock.Any(), int64(123), int64(2), domain.PaymentMethodWallet).
					Return(domain.Order{}, wallet.ErrInsufficientBalance)
			},
			req:      CheckoutReq{RequestID: "req-3", AddressID: 2, PaymentMethod: "wallet"},
			wantCode: errs.InsufficientBalance.Code,
			wantMsg:  errs.InsufficientBalance.Msg,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := ordermocks.NewMockService(ctrl)
			tc.before(svc)
			server := newServer(svc)

			req, err := http.NewRequest(http.MethodPost, "/order/checkout", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[CheckoutResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode != 0 {
				assert.Equal(t, tc.wantMsg, res.Msg)
				return
			}
			assert.True(t, decimal.RequireFromString("46.88").Equal(res.Data.Order.PayableAmount))
			res.Data.Order.PayableAmount = decimal.Decimal{}
			res.Data.Order.TotalAmount = decimal.Decimal{}
			res.Data.Order.ShippingCost = decimal.Decimal{}
			res.Data.Order.Discount = decimal.Decimal{}
			assert.Equal(t, tc.wantResp, res.Data)
		})
	}
}

func TestHandler_CancelItem(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "订单不存在", err: repository.ErrOrderNotFound, wantCode: errs.OrderNotFound.Code, wantMsg: errs.OrderNotFound.Msg},
		{name: "数量非法", err: domain.ErrInvalidQuantity, wantCode: errs.InvalidQuantity.Code, wantMsg: errs.InvalidQuantity.Msg},
		{name: "已发货", err: domain.ErrInvalidTransition, wantCode: errs.InvalidTransition.Code, wantMsg: errs.InvalidTransition.Msg},
		{name: "并发修改", err: repository.ErrConcurrentModification, wantCode: errs.ConcurrentModification.Code, wantMsg: errs.ConcurrentModification.Msg},
		{name: "系统错误", err: context.DeadlineExceeded, wantCode: errs.SystemError.Code, wantMsg: errs.SystemError.Msg},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := ordermocks.NewMockService(ctrl)
			svc.EXPECT().CancelItem(gomock.Any(), int64(123), int64(1), int64(2), int64(1)).Return(domain.Order{}, tc.err)
			server := newServer(svc)

			req, err := http.NewRequest(http.MethodPost, "/order/item/cancel",
				iox.NewJSONReader(CancelItemReq{OrderID: 1, ItemID: 2, Quantity: 1}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Order]()
			server.ServeHTTP(recorder, req)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
		})
	}
}

func TestHandler_Webhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := ordermocks.NewMockService(ctrl)
	svc.EXPECT().HandleWebhook(gomock.Any(), []byte(`{"event":"payment.failed"}`), "bad").
		Return(payment.ErrSignatureMismatch)
	server := newServer(svc)

	req, err := http.NewRequest(http.MethodPost, "/order/webhook", bytes.NewBufferString(`{"event":"payment.failed"}`))
	require.NoError(t, err)
	req.Header.Set(signatureHeader, "bad")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	res := recorder.MustScan()
	assert.Equal(t, errs.PaymentVerifyFailed.Code, res.Code)
}

func TestAdminHandler_ChangeStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := ordermocks.NewMockService(ctrl)
	svc.EXPECT().ChangeStatus(gomock.Any(), int64(1), domain.StatusConfirmed).Return(domain.ErrInvalidTransition)
	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewAdminHandler(svc).PrivateRoutes(server)

	req, err := http.NewRequest(http.MethodPost, "/order/status",
		iox.NewJSONReader(ChangeStatusReq{OrderID: 1, Status: domain.StatusConfirmed.ToUint8()}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	res := recorder.MustScan()
	assert.Equal(t, errs.InvalidTransition.Code, res.Code)
}

// requestCache 只实现了下单去重用到的 SetNX
type requestCache struct {
	ecache.Cache
	seen map[string]bool
}

func (c *requestCache) SetNX(ctx context.Context, key string, val any, expiration time.Duration) (bool, error) {
	if c.seen[key] {
		return false, nil
	}
	c.seen[key] = true
	return true, nil
}

func newServer(svc *ordermocks.MockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: 123}))
	})
	hdl := NewHandler(svc, &requestCache{seen: map[string]bool{"order:checkout:dup": true}})
	hdl.PrivateRoutes(server)
	hdl.PublicRoutes(server)
	return server
}
