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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mall/internal/inventory"
	invmocks "github.com/ecodeclub/mall/internal/inventory/mocks"
	"github.com/ecodeclub/mall/internal/order"
	ordermocks "github.com/ecodeclub/mall/internal/order/mocks"
	"github.com/ecodeclub/mall/internal/wallet"
	walletmocks "github.com/ecodeclub/mall/internal/wallet/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var errMockDB = errors.New("mock db error")

func TestService_Execute(t *testing.T) {
	stl := order.Settlement{
		ID:      1,
		Key:     "STL-abc",
		OrderID: 2,
		UID:     3,
		Restock: []order.StockLine{{ProductID: 1, Name: "衬衫", Color: "red", Size: "M", Quantity: 2}},
		Refund:  decimal.RequireFromString("28.12"),
		Status:  order.SettlementStatusPending,
	}
	items := []inventory.Item{{ProductID: 1, Name: "衬衫", Color: "red", Size: inventory.SizeM, Quantity: 2}}

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) Service
		wantErr error
	}{
		{
			name: "回补库存并退款",
			mock: func(ctrl *gomock.Controller) Service {
				settlements := ordermocks.NewMockSettlementService(ctrl)
				inv := invmocks.NewMockService(ctrl)
				wallets := walletmocks.NewMockService(ctrl)
				settlements.EXPECT().FindSettlement(gomock.Any(), int64(1)).Return(stl, nil)
				release := inv.EXPECT().Release(gomock.Any(), "STL-abc", items).Return(nil)
				refund := wallets.EXPECT().Refund(gomock.Any(), int64(3), stl.Refund, "STL-abc", gomock.Any()).Return(nil)
				complete := settlements.EXPECT().CompleteSettlement(gomock.Any(), int64(1)).Return(nil)
				gomock.InOrder(release.Call, refund.Call, complete.Call)
				return newService(settlements, inv, wallets)
			},
		},
		{
			name: "只回补库存",
			mock: func(ctrl *gomock.Controller) Service {
				settlements := ordermocks.NewMockSettlementService(ctrl)
				inv := invmocks.NewMockService(ctrl)
				wallets := walletmocks.NewMockService(ctrl)
				s := stl
				s.Refund = decimal.Zero
				settlements.EXPECT().FindSettlement(gomock.Any(), int64(1)).Return(s, nil)
				inv.EXPECT().Release(gomock.Any(), "STL-abc", items).Return(nil)
				settlements.EXPECT().CompleteSettlement(gomock.Any(), int64(1)).Return(nil)
				return newService(settlements, inv, wallets)
			},
		},
		{
			name: "已经执行过",
			mock: func(ctrl *gomock.Controller) Service {
				settlements := ordermocks.NewMockSettlementService(ctrl)
				s := stl
				s.Status = order.SettlementStatusDone
				settlements.EXPECT().FindSettlement(gomock.Any(), int64(1)).Return(s, nil)
				return newService(settlements, invmocks.NewMockService(ctrl), walletmocks.NewMockService(ctrl))
			},
		},
		{
			name: "退款失败后整体重试",
			mock: func(ctrl *gomock.Controller) Service {
				settlements := ordermocks.NewMockSettlementService(ctrl)
				inv := invmocks.NewMockService(ctrl)
				wallets := walletmocks.NewMockService(ctrl)
				settlements.EXPECT().FindSettlement(gomock.Any(), int64(1)).Return(stl, nil)
				// 库存流水按 Key 幂等，重试时会再调用一次
				inv.EXPECT().Release(gomock.Any(), "STL-abc", items).Times(2).Return(nil)
				gomock.InOrder(
					wallets.EXPECT().Refund(gomock.Any(), int64(3), stl.Refund, "STL-abc", gomock.Any()).Return(errMockDB).Call,
					wallets.EXPECT().Refund(gomock.Any(), int64(3), stl.Refund, "STL-abc", gomock.Any()).Return(nil).Call,
				)
				settlements.EXPECT().CompleteSettlement(gomock.Any(), int64(1)).Return(nil)
				return newService(settlements, inv, wallets)
			},
		},
		{
			name: "超过最大重试次数",
			mock: func(ctrl *gomock.Controller) Service {
				settlements := ordermocks.NewMockSettlementService(ctrl)
				inv := invmocks.NewMockService(ctrl)
				settlements.EXPECT().FindSettlement(gomock.Any(), int64(1)).Return(stl, nil)
				inv.EXPECT().Release(gomock.Any(), "STL-abc", items).Times(3).Return(errMockDB)
				return newService(settlements, inv, walletmocks.NewMockService(ctrl))
			},
			wantErr: errMockDB,
		},
		{
			name: "结算单不存在",
			mock: func(ctrl *gomock.Controller) Service {
				settlements := ordermocks.NewMockSettlementService(ctrl)
				settlements.EXPECT().FindSettlement(gomock.Any(), int64(1)).Return(order.Settlement{}, order.ErrSettlementNotFound)
				return newService(settlements, invmocks.NewMockService(ctrl), walletmocks.NewMockService(ctrl))
			},
			wantErr: order.ErrSettlementNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := tc.mock(ctrl)
			err := svc.Execute(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Replay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	settlements := ordermocks.NewMockSettlementService(ctrl)
	wallets := walletmocks.NewMockService(ctrl)
	pending := []order.Settlement{
		{ID: 1, Key: "STL-1", UID: 3, Refund: decimal.NewFromInt(10), Status: order.SettlementStatusPending},
		{ID: 2, Key: "STL-2", UID: 3, Refund: decimal.NewFromInt(20), Status: order.SettlementStatusPending},
	}
	settlements.EXPECT().ListPendingSettlements(gomock.Any(), int64(1000), 2).Return(pending, nil)
	settlements.EXPECT().FindSettlement(gomock.Any(), int64(1)).Return(pending[0], nil)
	settlements.EXPECT().FindSettlement(gomock.Any(), int64(2)).Return(pending[1], nil)
	wallets.EXPECT().Refund(gomock.Any(), int64(3), pending[0].Refund, "STL-1", gomock.Any()).Return(nil)
	wallets.EXPECT().Refund(gomock.Any(), int64(3), pending[1].Refund, "STL-2", gomock.Any()).Times(3).Return(errMockDB)
	settlements.EXPECT().CompleteSettlement(gomock.Any(), int64(1)).Return(nil)

	// 第二个结算单失败，本轮不再继续查询
	cnt, err := newService(settlements, invmocks.NewMockService(ctrl), wallets).Replay(context.Background(), 1000, 2)
	assert.NoError(t, err)
	assert.Equal(t, 1, cnt)
}

func newService(settlements order.SettlementService, inv inventory.Service, wallets wallet.Service) Service {
	return NewService(settlements, inv, wallets, RetryConfig{
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		MaxRetries:      2,
	})
}
