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
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/mall/internal/address"
	addressmocks "github.com/ecodeclub/mall/internal/address/mocks"
	"github.com/ecodeclub/mall/internal/cart"
	cartmocks "github.com/ecodeclub/mall/internal/cart/mocks"
	"github.com/ecodeclub/mall/internal/coupon"
	couponmocks "github.com/ecodeclub/mall/internal/coupon/mocks"
	"github.com/ecodeclub/mall/internal/inventory"
	invmocks "github.com/ecodeclub/mall/internal/inventory/mocks"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/event"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	"github.com/ecodeclub/mall/internal/payment"
	paymentmocks "github.com/ecodeclub/mall/internal/payment/mocks"
	"github.com/ecodeclub/mall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/mall/internal/wallet"
	walletmocks "github.com/ecodeclub/mall/internal/wallet/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const orderedID = "ORD-1700000000000-0001"

type OrderServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *memoryRepository
	producer  *memoryProducer
	carts     *cartmocks.MockService
	addresses *addressmocks.MockService
	coupons   *couponmocks.MockService
	inventory *invmocks.MockService
	wallets   *walletmocks.MockService
	gateway   *paymentmocks.MockGateway
	svc       Service
}

func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = newMemoryRepository()
	s.producer = &memoryProducer{}
	s.carts = cartmocks.NewMockService(s.ctrl)
	s.addresses = addressmocks.NewMockService(s.ctrl)
	s.coupons = couponmocks.NewMockService(s.ctrl)
	s.inventory = invmocks.NewMockService(s.ctrl)
	s.wallets = walletmocks.NewMockService(s.ctrl)
	s.gateway = paymentmocks.NewMockGateway(s.ctrl)
	sn := sequencenumber.NewGeneratorWith(func(time.Time) int64 { return 1700000000000 }, func() int { return 1 })
	s.svc = NewService(s.repo, s.carts, s.addresses, s.coupons, s.inventory, s.wallets, s.gateway, s.producer, sn,
		Config{ShippingCost: decimal.NewFromInt(5), Currency: "INR"})
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrderServiceTestSuite) mockCart(code string) {
	s.addresses.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).Return(address.Address{
		ID: 2, UID: 1, Name: "张三", Phone: "13800000000", Line: "人民路 1 号", City: "杭州", State: "浙江", Pincode: "310000",
	}, nil)
	s.carts.EXPECT().View(gomock.Any(), int64(1)).Return(cart.Cart{
		UID: 1,
		Items: []cart.Item{
			{ID: 1, ProductID: 1, Name: "衬衫", Color: "red", Size: "M", Quantity: 1, UnitPrice: decimal.NewFromInt(50), LineTotal: decimal.NewFromInt(50)},
			{ID: 2, ProductID: 2, Name: "袜子", Color: "blue", Size: "L", Quantity: 1, UnitPrice: decimal.NewFromInt(30), LineTotal: decimal.NewFromInt(30)},
		},
		Subtotal:    decimal.NewFromInt(80),
		TotalAmount: decimal.NewFromInt(80),
		CouponCode:  code,
	}, nil)
	if code != "" {
		s.coupons.EXPECT().Validate(gomock.Any(), int64(1), code, eqDecimal("80")).
			Return(coupon.Coupon{ID: 3, Code: code, MinCartValue: decimal.NewFromInt(20)}, decimal.NewFromInt(5), nil)
	}
}

var cartItems = []inventory.Item{
	{ProductID: 1, Name: "衬衫", Color: "red", Size: inventory.SizeM, Quantity: 1},
	{ProductID: 2, Name: "袜子", Color: "blue", Size: inventory.SizeL, Quantity: 1},
}

func (s *OrderServiceTestSuite) TestCheckout() {
	testCases := []struct {
		name    string
		method  domain.PaymentMethod
		mock    func()
		wantErr error
		assert  func(t *testing.T, o domain.Order)
	}{
		{
			name:   "钱包支付并使用优惠券",
			method: domain.PaymentMethodWallet,
			mock: func() {
				s.mockCart("SAVE10")
				s.inventory.EXPECT().Check(gomock.Any(), cartItems).Return(nil)
				s.inventory.EXPECT().Reserve(gomock.Any(), orderedID, cartItems).Return(nil)
				s.wallets.EXPECT().Pay(gomock.Any(), int64(1), eqDecimal("80"), orderedID, gomock.Any()).Return(nil)
				s.coupons.EXPECT().Redeem(gomock.Any(), int64(1), int64(3), orderedID).Return(nil)
				s.carts.EXPECT().Clear(gomock.Any(), int64(1)).Return(nil)
			},
			assert: func(t *testing.T, o domain.Order) {
				assert.True(t, o.ID > 0)
				assert.Equal(t, orderedID, o.OrderedID)
				assert.Equal(t, "80", o.PayableAmount.String())
				assert.Equal(t, "5", o.Coupon.DiscountPrice.String())
				assert.Equal(t, domain.PaymentStatusPaid, o.PaymentStatus)
				assert.True(t, o.StockCommitted)
				assert.Equal(t, "杭州", o.Address.City)
				stored, err := s.repo.FindByID(context.Background(), o.ID)
				require.NoError(t, err)
				assert.Len(t, stored.Items, 2)
			},
		},
		{
			name:   "在线支付下单时不扣库存",
			method: domain.PaymentMethodRazorpay,
			mock: func() {
				s.mockCart("")
				s.inventory.EXPECT().Check(gomock.Any(), cartItems).Return(nil)
				s.gateway.EXPECT().CreateOrder(gomock.Any(), eqDecimal("85"), "INR").
					Return(payment.GatewayOrder{ID: "order_1", Amount: 8500, Currency: "INR"}, nil)
				s.carts.EXPECT().Clear(gomock.Any(), int64(1)).Return(nil)
			},
			assert: func(t *testing.T, o domain.Order) {
				assert.Equal(t, "order_1", o.GatewayOrderID)
				assert.Equal(t, "85", o.PayableAmount.String())
				assert.Equal(t, domain.PaymentStatusPending, o.PaymentStatus)
				assert.False(t, o.StockCommitted)
			},
		},
		{
			name:   "库存不足",
			method: domain.PaymentMethodCOD,
			mock: func() {
				s.mockCart("")
				s.inventory.EXPECT().Check(gomock.Any(), cartItems).
					Return(&inventory.InsufficientStockError{Name: "袜子", Color: "blue", Size: inventory.SizeL})
			},
			wantErr: inventory.ErrOutOfStock,
		},
		{
			name:   "余额不足时回补库存",
			method: domain.PaymentMethodWallet,
			mock: func() {
				s.mockCart("")
				s.inventory.EXPECT().Check(gomock.Any(), cartItems).Return(nil)
				s.inventory.EXPECT().Reserve(gomock.Any(), orderedID, cartItems).Return(nil)
				s.wallets.EXPECT().Pay(gomock.Any(), int64(1), eqDecimal("85"), orderedID, gomock.Any()).
					Return(wallet.ErrInsufficientBalance)
				s.inventory.EXPECT().Release(gomock.Any(), orderedID+":rollback", cartItems).Return(nil)
			},
			wantErr: wallet.ErrInsufficientBalance,
		},
		{
			name:   "优惠券核销失败时逆序补偿",
			method: domain.PaymentMethodWallet,
			mock: func() {
				s.mockCart("SAVE10")
				s.inventory.EXPECT().Check(gomock.Any(), cartItems).Return(nil)
				reserve := s.inventory.EXPECT().Reserve(gomock.Any(), orderedID, cartItems).Return(nil)
				pay := s.wallets.EXPECT().Pay(gomock.Any(), int64(1), eqDecimal("80"), orderedID, gomock.Any()).Return(nil)
				redeem := s.coupons.EXPECT().Redeem(gomock.Any(), int64(1), int64(3), orderedID).
					Return(coupon.ErrUserLimitExceeded)
				refund := s.wallets.EXPECT().Refund(gomock.Any(), int64(1), eqDecimal("80"), orderedID, gomock.Any()).
					Return(nil)
				release := s.inventory.EXPECT().Release(gomock.Any(), orderedID+":rollback", cartItems).Return(nil)
				gomock.InOrder(reserve.Call, pay.Call, redeem.Call, refund.Call, release.Call)
			},
			wantErr: coupon.ErrUserLimitExceeded,
		},
		{
			name:   "保存订单失败",
			method: domain.PaymentMethodCOD,
			mock: func() {
				s.mockCart("SAVE10")
				s.repo.createErr = errMockDB
				s.inventory.EXPECT().Check(gomock.Any(), cartItems).Return(nil)
				s.inventory.EXPECT().Reserve(gomock.Any(), orderedID, cartItems).Return(nil)
				s.coupons.EXPECT().Redeem(gomock.Any(), int64(1), int64(3), orderedID).Return(nil)
				s.coupons.EXPECT().Revert(gomock.Any(), orderedID).Return(nil)
				s.inventory.EXPECT().Release(gomock.Any(), orderedID+":rollback", cartItems).Return(nil)
			},
			wantErr: errMockDB,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.SetupTest()
			tc.mock()
			o, err := s.svc.Checkout(context.Background(), 1, 2, tc.method)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.assert(t, o)
		})
	}
}

func (s *OrderServiceTestSuite) TestCheckout_Invalid() {
	t := s.T()
	_, err := s.svc.Checkout(context.Background(), 1, 2, "paypal")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	s.addresses.EXPECT().FindByID(gomock.Any(), int64(1), int64(2)).Return(address.Address{ID: 2}, nil)
	s.carts.EXPECT().View(gomock.Any(), int64(1)).Return(cart.Cart{UID: 1}, nil)
	_, err = s.svc.Checkout(context.Background(), 1, 2, domain.PaymentMethodCOD)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
}

func (s *OrderServiceTestSuite) TestCancelItem() {
	t := s.T()
	ctx := context.Background()
	o := s.repo.seed(newWalletOrder())

	res, err := s.svc.CancelItem(ctx, 1, o.ID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "51.88", res.PayableAmount.String())
	assert.Equal(t, "3.12", res.Coupon.DiscountPrice.String())

	require.Len(t, s.producer.events, 1)
	stl, err := s.repo.FindSettlement(ctx, s.producer.events[0].SettlementID)
	require.NoError(t, err)
	assert.Equal(t, "28.12", stl.Refund.String())
	assert.Equal(t, []domain.StockLine{{ProductID: 2, Name: "袜子", Color: "blue", Size: "L", Quantity: 1}}, stl.Restock)
	assert.Equal(t, domain.SettlementStatusPending, stl.Status)

	// 别人的订单
	_, err = s.svc.CancelItem(ctx, 2, o.ID, 1, 1)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func (s *OrderServiceTestSuite) TestCancel() {
	testCases := []struct {
		name           string
		order          domain.Order
		wantSettlement bool
		wantErr        error
	}{
		{
			name:           "钱包支付",
			order:          newWalletOrder(),
			wantSettlement: true,
		},
		{
			name: "未支付的在线支付",
			order: func() domain.Order {
				o := newWalletOrder()
				o.PaymentMethod = domain.PaymentMethodRazorpay
				o.PaymentStatus = domain.PaymentStatusPending
				o.StockCommitted = false
				return o
			}(),
		},
		{
			name: "已送达",
			order: func() domain.Order {
				o := newWalletOrder()
				o.Status = domain.StatusDelivered
				return o
			}(),
			wantErr: domain.ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.SetupTest()
			o := s.repo.seed(tc.order)
			err := s.svc.Cancel(context.Background(), 1, o.ID)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			stored, err := s.repo.FindByID(context.Background(), o.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCanceled, stored.Status)
			assert.Equal(t, tc.wantSettlement, len(s.producer.events) == 1)
		})
	}
}

func (s *OrderServiceTestSuite) TestVerifyPayment() {
	t := s.T()
	ctx := context.Background()
	o := newWalletOrder()
	o.PaymentMethod = domain.PaymentMethodRazorpay
	o.PaymentStatus = domain.PaymentStatusPending
	o.StockCommitted = false
	o.GatewayOrderID = "order_1"
	o = s.repo.seed(o)

	err := s.svc.VerifyPayment(ctx, 1, o.ID, "order_2", "pay_1", "sig")
	assert.ErrorIs(t, err, ErrGatewayOrderMismatch)

	s.gateway.EXPECT().VerifyPayment("order_1", "pay_1", "bad").Return(payment.ErrSignatureMismatch)
	err = s.svc.VerifyPayment(ctx, 1, o.ID, "order_1", "pay_1", "bad")
	assert.ErrorIs(t, err, payment.ErrSignatureMismatch)
	stored, err := s.repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, stored.PaymentStatus)

	s.gateway.EXPECT().VerifyPayment("order_1", "pay_1", "good").Return(nil)
	s.inventory.EXPECT().Reserve(gomock.Any(), orderedID, cartItems).Return(nil)
	require.NoError(t, s.svc.VerifyPayment(ctx, 1, o.ID, "order_1", "pay_1", "good"))
	stored, err = s.repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, stored.PaymentStatus)
	assert.True(t, stored.StockCommitted)

	// 已支付，重复校验直接返回
	require.NoError(t, s.svc.VerifyPayment(ctx, 1, o.ID, "order_1", "pay_1", "good"))
}

func (s *OrderServiceTestSuite) TestHandleWebhook() {
	t := s.T()
	ctx := context.Background()
	o := newWalletOrder()
	o.PaymentMethod = domain.PaymentMethodRazorpay
	o.PaymentStatus = domain.PaymentStatusPending
	o.GatewayOrderID = "order_1"
	o = s.repo.seed(o)

	s.gateway.EXPECT().ParseWebhook([]byte("body"), "sig").
		Return(payment.WebhookEvent{Event: payment.EventPaymentFailed, GatewayOrderID: "order_1"}, nil)
	require.NoError(t, s.svc.HandleWebhook(ctx, []byte("body"), "sig"))
	stored, err := s.repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, stored.PaymentStatus)

	s.gateway.EXPECT().ParseWebhook([]byte("body"), "bad").Return(payment.WebhookEvent{}, payment.ErrSignatureMismatch)
	assert.ErrorIs(t, s.svc.HandleWebhook(ctx, []byte("body"), "bad"), payment.ErrSignatureMismatch)
}

func (s *OrderServiceTestSuite) TestContinuePayment() {
	t := s.T()
	ctx := context.Background()
	o := newWalletOrder()
	o.PaymentMethod = domain.PaymentMethodRazorpay
	o.PaymentStatus = domain.PaymentStatusFailed
	o.StockCommitted = false
	o.GatewayOrderID = "order_1"
	o = s.repo.seed(o)

	s.inventory.EXPECT().Check(gomock.Any(), cartItems).Return(nil)
	s.gateway.EXPECT().CreateOrder(gomock.Any(), eqDecimal("80"), "INR").Return(payment.GatewayOrder{ID: "order_2"}, nil)
	res, err := s.svc.ContinuePayment(ctx, 1, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "order_2", res.GatewayOrderID)
	assert.Equal(t, domain.PaymentStatusPending, res.PaymentStatus)

	wo := s.repo.seed(newWalletOrder())
	_, err = s.svc.ContinuePayment(ctx, 1, wo.ID)
	assert.ErrorIs(t, err, ErrPaymentNotRetryable)
}

func (s *OrderServiceTestSuite) TestReturnWorkflow() {
	t := s.T()
	ctx := context.Background()
	o := newWalletOrder()
	o.Items[0].Quantity = 2
	o.Status = domain.StatusDelivered
	o = s.repo.seed(o)

	r, err := s.svc.RequestItemReturn(ctx, 1, o.ID, 1, 1, "尺码不合适")
	require.NoError(t, err)
	r2, err := s.svc.RequestItemReturn(ctx, 1, o.ID, 1, 1, "")
	require.NoError(t, err)
	assert.Equal(t, r.ID, r2.ID)
	assert.Equal(t, []domain.ReturnItem{{ItemID: 1, Quantity: 2, IsAllItem: true}}, r2.Items)

	_, err = s.svc.RequestItemReturn(ctx, 1, o.ID, 1, 1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	// 取消单品退货后申请为空，直接删除
	require.NoError(t, s.svc.CancelItemReturn(ctx, 1, o.ID, 1))
	_, err = s.repo.FindPendingReturn(ctx, o.ID)
	assert.ErrorIs(t, err, repository.ErrReturnNotFound)

	_, err = s.svc.RequestItemReturn(ctx, 1, o.ID, 2, 1, "")
	require.NoError(t, err)
	// 已有的部分退货申请转为整单退货
	require.NoError(t, s.svc.RequestReturn(ctx, 1, o.ID, "不想要了"))
	pending, err := s.repo.FindPendingReturn(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, pending.IsAllItem)
	_, err = s.svc.RequestItemReturn(ctx, 1, o.ID, 1, 1, "")
	assert.ErrorIs(t, err, domain.ErrReturnExists)

	require.NoError(t, s.svc.AcceptReturn(ctx, pending.ID))
	stored, err := s.repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReturned, stored.Status)
	assert.Equal(t, domain.PaymentStatusRefunded, stored.PaymentStatus)
	require.Len(t, s.producer.events, 1)
	stl, err := s.repo.FindSettlement(ctx, s.producer.events[0].SettlementID)
	require.NoError(t, err)
	assert.Equal(t, "80", stl.Refund.String())

	assert.ErrorIs(t, s.svc.AcceptReturn(ctx, pending.ID), domain.ErrNotDelivered)
}

func (s *OrderServiceTestSuite) TestRejectReturn() {
	t := s.T()
	ctx := context.Background()
	o := newWalletOrder()
	o.Status = domain.StatusDelivered
	o = s.repo.seed(o)

	r, err := s.svc.RequestItemReturn(ctx, 1, o.ID, 1, 1, "")
	require.NoError(t, err)
	require.NoError(t, s.svc.RejectReturn(ctx, r.ID))

	stored, err := s.repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, stored.Items[0].IsRejected)
	rejected, err := s.repo.FindReturn(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReturnStatusRejected, rejected.Status)
	assert.Empty(t, s.producer.events)

	// 审核之后可以再次申请
	_, err = s.svc.RequestItemReturn(ctx, 1, o.ID, 2, 1, "")
	require.NoError(t, err)
}

func (s *OrderServiceTestSuite) TestChangeStatus() {
	t := s.T()
	ctx := context.Background()
	o := newWalletOrder()
	o.PaymentMethod = domain.PaymentMethodRazorpay
	o.PaymentStatus = domain.PaymentStatusPending
	o.StockCommitted = false
	o = s.repo.seed(o)

	require.NoError(t, s.svc.ChangeStatus(ctx, o.ID, domain.StatusShipped))
	assert.ErrorIs(t, s.svc.ChangeStatus(ctx, o.ID, domain.StatusConfirmed), domain.ErrInvalidTransition)

	s.inventory.EXPECT().Reserve(gomock.Any(), orderedID, cartItems).
		Return(&inventory.InsufficientStockError{Name: "袜子", Color: "blue", Size: inventory.SizeL, Available: 0})
	err := s.svc.ChangeStatus(ctx, o.ID, domain.StatusDelivered)
	assert.ErrorIs(t, err, inventory.ErrOutOfStock)
	stored, err := s.repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, stored.Status)

	s.inventory.EXPECT().Reserve(gomock.Any(), orderedID, cartItems).Return(nil)
	require.NoError(t, s.svc.ChangeStatus(ctx, o.ID, domain.StatusDelivered))
	stored, err = s.repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, stored.Status)
	assert.Equal(t, domain.PaymentStatusPaid, stored.PaymentStatus)
	assert.True(t, stored.StockCommitted)

	assert.ErrorIs(t, s.svc.ChangeStatus(ctx, o.ID, domain.StatusCanceled), domain.ErrInvalidTransition)
}

func (s *OrderServiceTestSuite) TestConcurrentModification() {
	t := s.T()
	ctx := context.Background()
	o := s.repo.seed(newWalletOrder())
	stale, err := s.repo.FindByID(ctx, o.ID)
	require.NoError(t, err)

	_, err = s.svc.CancelItem(ctx, 1, o.ID, 2, 1)
	require.NoError(t, err)
	err = s.repo.Save(ctx, repository.Change{Order: stale})
	assert.ErrorIs(t, err, repository.ErrConcurrentModification)
}

// 94 + 6，满 95 减 20，实付 85。先取消 6 元商品让优惠券作废，再取消剩下的商品，
// 所有结算单的退款加起来正好等于实付
func (s *OrderServiceTestSuite) TestCancelItem_VoidedCoupon() {
	t := s.T()
	ctx := context.Background()
	o := newWalletOrder()
	o.Items[0].Price = decimal.NewFromInt(94)
	o.Items[1].Price = decimal.NewFromInt(6)
	o.TotalAmount = decimal.NewFromInt(100)
	o.PayableAmount = decimal.NewFromInt(85)
	o.Coupon.DiscountPrice = decimal.NewFromInt(20)
	o.Coupon.MinCartValue = decimal.NewFromInt(95)
	o = s.repo.seed(o)

	res, err := s.svc.CancelItem(ctx, 1, o.ID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "85", res.PayableAmount.String())
	assert.True(t, res.Coupon.DiscountPrice.IsZero())
	_, err = s.svc.CancelItem(ctx, 1, o.ID, 1, 1)
	require.NoError(t, err)

	require.Len(t, s.producer.events, 2)
	total := decimal.Zero
	for _, evt := range s.producer.events {
		stl, er := s.repo.FindSettlement(ctx, evt.SettlementID)
		require.NoError(t, er)
		assert.False(t, stl.Refund.IsNegative())
		total = total.Add(stl.Refund)
	}
	assert.Equal(t, "85", total.String())

	stored, err := s.repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, stored.Status)
	assert.Equal(t, domain.PaymentStatusCanceled, stored.PaymentStatus)
}

// 未支付的在线订单部分取消后，旧的网关订单不能再校验通过，需要按新金额重新发起支付
func (s *OrderServiceTestSuite) TestCancelItem_StaleGatewayOrder() {
	t := s.T()
	ctx := context.Background()
	o := newWalletOrder()
	o.PaymentMethod = domain.PaymentMethodRazorpay
	o.PaymentStatus = domain.PaymentStatusPending
	o.StockCommitted = false
	o.GatewayOrderID = "order_1"
	o = s.repo.seed(o)

	res, err := s.svc.CancelItem(ctx, 1, o.ID, 2, 1)
	require.NoError(t, err)
	assert.Empty(t, res.GatewayOrderID)
	assert.Empty(t, s.producer.events)

	err = s.svc.VerifyPayment(ctx, 1, o.ID, "order_1", "pay_1", "good")
	assert.ErrorIs(t, err, ErrGatewayOrderMismatch)
	err = s.svc.VerifyPayment(ctx, 1, o.ID, "", "pay_1", "good")
	assert.ErrorIs(t, err, ErrGatewayOrderMismatch)

	s.inventory.EXPECT().Check(gomock.Any(), cartItems[:1]).Return(nil)
	s.gateway.EXPECT().CreateOrder(gomock.Any(), eqDecimal("51.88"), "INR").Return(payment.GatewayOrder{ID: "order_2"}, nil)
	res, err = s.svc.ContinuePayment(ctx, 1, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "order_2", res.GatewayOrderID)
}

// 两个请求同时读到同一个待审核申请，后提交的那个失败，不会覆盖前一个的修改
func (s *OrderServiceTestSuite) TestReturnConcurrentModification() {
	t := s.T()
	ctx := context.Background()
	o := newWalletOrder()
	o.Status = domain.StatusDelivered
	o = s.repo.seed(o)

	_, err := s.svc.RequestItemReturn(ctx, 1, o.ID, 1, 1, "")
	require.NoError(t, err)
	first, err := s.repo.FindPendingReturn(ctx, o.ID)
	require.NoError(t, err)
	second, err := s.repo.FindPendingReturn(ctx, o.ID)
	require.NoError(t, err)

	it, ok := o.FindItem(2)
	require.True(t, ok)
	require.NoError(t, first.AddItem(it, 1, "颜色不对"))
	_, err = s.repo.SaveReturn(ctx, first)
	require.NoError(t, err)

	require.True(t, second.RemoveItem(1))
	_, err = s.repo.SaveReturn(ctx, second)
	assert.ErrorIs(t, err, repository.ErrConcurrentModification)
	err = s.repo.DeleteReturn(ctx, second.ID, second.Version)
	assert.ErrorIs(t, err, repository.ErrReturnNotFound)

	stored, err := s.repo.FindPendingReturn(ctx, o.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, int64(2), stored.Version)
}

var errMockDB = errors.New("mock db error")

// 钱包支付的订单：50 + 30，优惠 5，运费 5
func newWalletOrder() domain.Order {
	return domain.Order{
		OrderedID:     orderedID,
		UID:           1,
		PaymentMethod: domain.PaymentMethodWallet,
		PaymentStatus: domain.PaymentStatusPaid,
		Status:        domain.StatusPending,
		Items: []domain.Item{
			{ID: 1, ProductID: 1, Name: "衬衫", Color: "red", Size: "M", Quantity: 1, Price: decimal.NewFromInt(50)},
			{ID: 2, ProductID: 2, Name: "袜子", Color: "blue", Size: "L", Quantity: 1, Price: decimal.NewFromInt(30)},
		},
		TotalAmount:    decimal.NewFromInt(80),
		PayableAmount:  decimal.NewFromInt(80),
		ShippingCost:   decimal.NewFromInt(5),
		Coupon:         domain.Coupon{CouponID: 3, Code: "SAVE10", DiscountPrice: decimal.NewFromInt(5), MinCartValue: decimal.NewFromInt(20)},
		StockCommitted: true,
	}
}

type decimalMatcher struct {
	want decimal.Decimal
}

func eqDecimal(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "equals " + m.want.String()
}

type memoryProducer struct {
	events []event.SettlementEvent
}

func (p *memoryProducer) Produce(ctx context.Context, evt event.SettlementEvent) error {
	p.events = append(p.events, evt)
	return nil
}

// memoryRepository 按 version 做乐观锁，行为和 DAO 一致
type memoryRepository struct {
	mu          sync.Mutex
	orders      map[int64]domain.Order
	returns     map[int64]domain.ReturnRequest
	settlements map[int64]domain.Settlement
	nextID      int64
	createErr   error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		orders:      make(map[int64]domain.Order),
		returns:     make(map[int64]domain.ReturnRequest),
		settlements: make(map[int64]domain.Settlement),
	}
}

func (m *memoryRepository) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memoryRepository) seed(o domain.Order) domain.Order {
	id, err := m.Create(context.Background(), o)
	if err != nil {
		panic(err)
	}
	o.ID, o.Version = id, 1
	return o
}

func (m *memoryRepository) Create(ctx context.Context, o domain.Order) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return 0, m.createErr
	}
	o.ID = m.id()
	o.Version = 1
	o.Items = append([]domain.Item(nil), o.Items...)
	m.orders[o.ID] = o
	return o.ID, nil
}

func (m *memoryRepository) find(match func(o domain.Order) bool) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if match(o) {
			o.Items = append([]domain.Item(nil), o.Items...)
			return o, nil
		}
	}
	return domain.Order{}, repository.ErrOrderNotFound
}

func (m *memoryRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	return m.find(func(o domain.Order) bool { return o.ID == id })
}

func (m *memoryRepository) FindByUIDAndID(ctx context.Context, uid, id int64) (domain.Order, error) {
	return m.find(func(o domain.Order) bool { return o.ID == id && o.UID == uid })
}

func (m *memoryRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Order, error) {
	return m.find(func(o domain.Order) bool { return o.GatewayOrderID == gatewayOrderID })
}

func (m *memoryRepository) FindByOrderedID(ctx context.Context, orderedID string) (domain.Order, error) {
	return m.find(func(o domain.Order) bool { return o.OrderedID == orderedID })
}

func (m *memoryRepository) Save(ctx context.Context, c repository.Change) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.orders[c.Order.ID]
	if !ok || stored.Version != c.Order.Version {
		return repository.ErrConcurrentModification
	}
	if c.Return != nil {
		r, ok := m.returns[c.Return.ID]
		if !ok || r.Status != domain.ReturnStatusPending || r.Version != c.Return.Version {
			return repository.ErrConcurrentModification
		}
		ret := *c.Return
		ret.Version++
		m.returns[ret.ID] = ret
	}
	o := c.Order
	o.Version++
	o.Items = append([]domain.Item(nil), o.Items...)
	m.orders[o.ID] = o
	if c.Settlement != nil {
		c.Settlement.ID = m.id()
		m.settlements[c.Settlement.ID] = *c.Settlement
	}
	return nil
}

func (m *memoryRepository) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	return nil, nil
}

func (m *memoryRepository) Count(ctx context.Context, uid int64) (int64, error) {
	return 0, nil
}

func (m *memoryRepository) ListAll(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	return nil, nil
}

func (m *memoryRepository) CountAll(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *memoryRepository) FindPendingReturn(ctx context.Context, orderID int64) (domain.ReturnRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.returns {
		if r.OrderID == orderID && r.Status == domain.ReturnStatusPending {
			r.Items = append([]domain.ReturnItem(nil), r.Items...)
			return r, nil
		}
	}
	return domain.ReturnRequest{}, repository.ErrReturnNotFound
}

func (m *memoryRepository) FindReturn(ctx context.Context, id int64) (domain.ReturnRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.returns[id]
	if !ok {
		return domain.ReturnRequest{}, repository.ErrReturnNotFound
	}
	return r, nil
}

func (m *memoryRepository) SaveReturn(ctx context.Context, r domain.ReturnRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == 0 {
		for _, existing := range m.returns {
			if existing.OrderID == r.OrderID && existing.Status == domain.ReturnStatusPending {
				return 0, repository.ErrPendingReturnExists
			}
		}
		r.ID = m.id()
		r.Status = domain.ReturnStatusPending
		r.Version = 0
	} else if existing := m.returns[r.ID]; existing.Version != r.Version {
		return 0, repository.ErrConcurrentModification
	}
	r.Version++
	r.Items = append([]domain.ReturnItem(nil), r.Items...)
	m.returns[r.ID] = r
	return r.ID, nil
}

func (m *memoryRepository) DeleteReturn(ctx context.Context, id, version int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.returns[id]
	if !ok || r.Version != version {
		return repository.ErrReturnNotFound
	}
	delete(m.returns, id)
	return nil
}

func (m *memoryRepository) ListReturns(ctx context.Context, offset, limit int) ([]domain.ReturnRequest, error) {
	return nil, nil
}

func (m *memoryRepository) CountReturns(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *memoryRepository) FindSettlement(ctx context.Context, id int64) (domain.Settlement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stl, ok := m.settlements[id]
	if !ok {
		return domain.Settlement{}, repository.ErrSettlementNotFound
	}
	return stl, nil
}

func (m *memoryRepository) CompleteSettlement(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stl := m.settlements[id]
	stl.Status = domain.SettlementStatusDone
	m.settlements[id] = stl
	return nil
}

func (m *memoryRepository) ListPendingSettlements(ctx context.Context, before int64, limit int) ([]domain.Settlement, error) {
	return nil, nil
}
