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
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/errs"
	cartmocks "github.com/ecodeclub/mall/internal/cart/mocks"
	"github.com/ecodeclub/mall/internal/coupon"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_AddItem(t *testing.T) {
	testCases := []struct {
		name     string
		before   func(svc *cartmocks.MockService)
		req      AddItemReq
		wantCode int
		wantMsg  string
	}{
		{
			name: "成功",
			before: func(svc *cartmocks.MockService) {
				svc.EXPECT().AddItem(gomock.Any(), int64(123), domain.Item{
					ProductID: 1, Color: "红", Size: "L", Quantity: 2,
				}).Return(domain.Cart{
					UID: 123,
					Items: []domain.Item{
						{ID: 1, ProductID: 1, Color: "红", Size: "L", Quantity: 2,
							UnitPrice: decimal.NewFromInt(50), LineTotal: decimal.NewFromInt(100)},
					},
					Subtotal:    decimal.NewFromInt(100),
					TotalAmount: decimal.NewFromInt(100),
					Payable:     decimal.NewFromInt(100),
				}, nil)
			},
			req: AddItemReq{ProductID: 1, Color: "红", Size: "L", Quantity: 2},
		},
		{
			name: "库存不足",
			before: func(svc *cartmocks.MockService) {
				svc.EXPECT().AddItem(gomock.Any(), int64(123), gomock.Any()).
					Return(domain.Cart{}, &inventory.InsufficientStockError{
						Name: "T恤", Color: "红", Size: inventory.SizeL, Available: 1,
					})
			},
			req:      AddItemReq{ProductID: 1, Color: "红", Size: "L", Quantity: 2},
			wantCode: errs.OutOfStock.Code,
			wantMsg:  "T恤(红/L) 仅剩 1 件",
		},
		{
			name: "超过数量上限",
			before: func(svc *cartmocks.MockService) {
				svc.EXPECT().AddItem(gomock.Any(), int64(123), gomock.Any()).
					Return(domain.Cart{}, fmt.Errorf("%w", domain.ErrQuantityLimit))
			},
			req:      AddItemReq{ProductID: 1, Color: "红", Size: "L", Quantity: 11},
			wantCode: errs.QuantityLimit.Code,
			wantMsg:  errs.QuantityLimit.Msg,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := cartmocks.NewMockService(ctrl)
			tc.before(svc)
			server := newServer(svc)

			req, err := http.NewRequest(http.MethodPost, "/cart/items/add", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Cart]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode != 0 {
				assert.Equal(t, tc.wantMsg, res.Msg)
				return
			}
			require.Len(t, res.Data.Items, 1)
			assert.True(t, decimal.NewFromInt(100).Equal(res.Data.Payable))
		})
	}
}

func TestHandler_ApplyCoupon(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "不存在", err: coupon.ErrCouponNotFound, wantCode: errs.CouponNotFound.Code, wantMsg: errs.CouponNotFound.Msg},
		{
			name: "未达到最低消费",
			err: &coupon.MinCartValueError{
				MinCartValue: decimal.NewFromInt(100),
			},
			wantCode: errs.CouponRejected.Code,
		},
		{name: "系统错误", err: context.DeadlineExceeded, wantCode: errs.SystemError.Code, wantMsg: errs.SystemError.Msg},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := cartmocks.NewMockService(ctrl)
			svc.EXPECT().ApplyCoupon(gomock.Any(), int64(123), "save10").Return(domain.Cart{}, tc.err)
			server := newServer(svc)

			req, err := http.NewRequest(http.MethodPost, "/coupon/apply", iox.NewJSONReader(CouponReq{Code: "save10"}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Cart]()
			server.ServeHTTP(recorder, req)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, res.Msg)
			} else {
				assert.Equal(t, tc.err.Error(), res.Msg)
			}
		})
	}
}

func newServer(svc *cartmocks.MockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: 123}))
	})
	NewHandler(svc).PrivateRoutes(server)
	return server
}
