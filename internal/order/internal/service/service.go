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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/address"
	"github.com/ecodeclub/mall/internal/cart"
	"github.com/ecodeclub/mall/internal/coupon"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/event"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/pkg/money"
	"github.com/ecodeclub/mall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/mall/internal/wallet"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidPaymentMethod = errors.New("不支持的支付方式")
	ErrGatewayOrderMismatch = errors.New("支付单与订单不匹配")
	ErrPaymentNotRetryable  = errors.New("订单不能继续支付")
	ErrOrderedIDExhausted   = errors.New("生成订单号失败")
)

const (
	reasonCancel     = "cancel"
	reasonCancelItem = "cancel_item"
	reasonReturn     = "return"
	reasonAdmin      = "admin_cancel"

	maxOrderedIDAttempts = 3
)

type Config struct {
	// ShippingCost 每个订单固定的运费
	ShippingCost decimal.Decimal
	Currency     string
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// Checkout 把购物车转成订单，任何一步失败都会撤销之前的扣减
	Checkout(ctx context.Context, uid, addressID int64, method domain.PaymentMethod) (domain.Order, error)
	VerifyPayment(ctx context.Context, uid, orderID int64, gatewayOrderID, paymentID, signature string) error
	PaymentFailed(ctx context.Context, gatewayOrderID string) error
	// HandleWebhook 校验网关回调签名并分发事件
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	ContinuePayment(ctx context.Context, uid, orderID int64) (domain.Order, error)
	Cancel(ctx context.Context, uid, orderID int64) error
	CancelItem(ctx context.Context, uid, orderID, itemID, quantity int64) (domain.Order, error)
	RequestReturn(ctx context.Context, uid, orderID int64, reason string) error
	CancelReturn(ctx context.Context, uid, orderID int64) error
	RequestItemReturn(ctx context.Context, uid, orderID, itemID, quantity int64, reason string) (domain.ReturnRequest, error)
	CancelItemReturn(ctx context.Context, uid, orderID, itemID int64) error
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	Detail(ctx context.Context, uid, orderID int64) (domain.Order, error)

	// 下面是管理后台使用的方法

	ChangeStatus(ctx context.Context, orderID int64, status domain.Status) error
	AcceptReturn(ctx context.Context, returnID int64) error
	RejectReturn(ctx context.Context, returnID int64) error
	FindByID(ctx context.Context, orderID int64) (domain.Order, error)
	ListAll(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	ListReturns(ctx context.Context, offset, limit int) ([]domain.ReturnRequest, int64, error)
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	addressSvc  address.Service
	couponSvc   coupon.Service
	invSvc      inventory.Service
	walletSvc   wallet.Service
	gateway     payment.Gateway
	producer    event.SettlementEventProducer
	snGenerator *sequencenumber.Generator
	cfg         Config
	l           *elog.Component
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	addressSvc address.Service,
	couponSvc coupon.Service,
	invSvc inventory.Service,
	walletSvc wallet.Service,
	gateway payment.Gateway,
	producer event.SettlementEventProducer,
	snGenerator *sequencenumber.Generator,
	cfg Config) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		addressSvc:  addressSvc,
		couponSvc:   couponSvc,
		invSvc:      invSvc,
		walletSvc:   walletSvc,
		gateway:     gateway,
		producer:    producer,
		snGenerator: snGenerator,
		cfg:         cfg,
		l:           elog.DefaultLogger,
	}
}

func (s *service) Checkout(ctx context.Context, uid, addressID int64, method domain.PaymentMethod) (domain.Order, error) {
	if !method.Valid() {
		return domain.Order{}, ErrInvalidPaymentMethod
	}
	addr, err := s.addressSvc.FindByID(ctx, uid, addressID)
	if err != nil {
		return domain.Order{}, err
	}
	c, err := s.cartSvc.View(ctx, uid)
	if err != nil {
		return domain.Order{}, err
	}
	if len(c.Items) == 0 {
		return domain.Order{}, cart.ErrEmptyCart
	}
	o := s.newOrder(uid, addr, c, method)
	if c.CouponCode != "" {
		cp, discount, er := s.couponSvc.Validate(ctx, uid, c.CouponCode, c.TotalAmount)
		if er != nil {
			return domain.Order{}, er
		}
		o.Coupon = domain.Coupon{
			CouponID:      cp.ID,
			Code:          cp.Code,
			DiscountPrice: discount,
			MinCartValue:  cp.MinCartValue,
		}
	}
	o.PayableAmount = money.Round(o.TotalAmount.Sub(o.Coupon.DiscountPrice).Add(o.ShippingCost))

	// 先校验全部商品，避免部分扣减
	items := toInventoryItems(o.StockLines())
	if err = s.invSvc.Check(ctx, items); err != nil {
		return domain.Order{}, err
	}
	o.OrderedID, err = s.newOrderedID(ctx)
	if err != nil {
		return domain.Order{}, err
	}

	var compensations []func(ctx context.Context) error
	defer func() {
		if err == nil {
			return
		}
		// 调用方取消了请求也要执行补偿
		cctx := context.WithoutCancel(ctx)
		for i := len(compensations) - 1; i >= 0; i-- {
			if er := compensations[i](cctx); er != nil {
				s.l.Error("下单失败，执行补偿失败",
					elog.String("orderedId", o.OrderedID), elog.FieldErr(er))
			}
		}
	}()

	if method != domain.PaymentMethodRazorpay {
		if err = s.invSvc.Reserve(ctx, o.OrderedID, items); err != nil {
			return domain.Order{}, err
		}
		o.StockCommitted = true
		compensations = append(compensations, func(ctx context.Context) error {
			return s.invSvc.Release(ctx, o.OrderedID+":rollback", items)
		})
	}
	if method == domain.PaymentMethodWallet {
		if err = s.walletSvc.Pay(ctx, uid, o.PayableAmount, o.OrderedID, "订单支付"); err != nil {
			return domain.Order{}, err
		}
		o.PaymentStatus = domain.PaymentStatusPaid
		compensations = append(compensations, func(ctx context.Context) error {
			return s.walletSvc.Refund(ctx, uid, o.PayableAmount, o.OrderedID, "下单失败退款")
		})
	}
	if o.Coupon.CouponID > 0 {
		if err = s.couponSvc.Redeem(ctx, uid, o.Coupon.CouponID, o.OrderedID); err != nil {
			return domain.Order{}, err
		}
		compensations = append(compensations, func(ctx context.Context) error {
			return s.couponSvc.Revert(ctx, o.OrderedID)
		})
	}
	if method == domain.PaymentMethodRazorpay {
		var g payment.GatewayOrder
		g, err = s.gateway.CreateOrder(ctx, o.PayableAmount, s.cfg.Currency)
		if err != nil {
			return domain.Order{}, err
		}
		o.GatewayOrderID = g.ID
	}
	o.ID, err = s.repo.Create(ctx, o)
	if err != nil {
		return domain.Order{}, fmt.Errorf("保存订单失败: %w", err)
	}
	o.Version = 1
	if er := s.cartSvc.Clear(ctx, uid); er != nil {
		s.l.Warn("下单成功，清空购物车失败", elog.Int64("uid", uid), elog.FieldErr(er))
	}
	return o, nil
}

func (s *service) newOrder(uid int64, addr address.Address, c cart.Cart, method domain.PaymentMethod) domain.Order {
	return domain.Order{
		UID: uid,
		Address: domain.Address{
			Name:    addr.Name,
			Phone:   addr.Phone,
			Line:    addr.Line,
			City:    addr.City,
			State:   addr.State,
			Pincode: addr.Pincode,
		},
		Items: slice.Map(c.Items, func(idx int, src cart.Item) domain.Item {
			return domain.Item{
				ID:        int64(idx + 1),
				ProductID: src.ProductID,
				Name:      src.Name,
				Color:     src.Color,
				Size:      src.Size,
				Quantity:  src.Quantity,
				Price:     src.UnitPrice,
			}
		}),
		PaymentMethod: method,
		PaymentStatus: domain.PaymentStatusPending,
		Status:        domain.StatusPending,
		TotalAmount:   c.TotalAmount,
		ShippingCost:  s.cfg.ShippingCost,
	}
}

// newOrderedID 订单号同时是库存、钱包、优惠券流水的幂等键，必须保证没有被用过
func (s *service) newOrderedID(ctx context.Context) (string, error) {
	for i := 0; i < maxOrderedIDAttempts; i++ {
		id := s.snGenerator.Generate()
		_, err := s.repo.FindByOrderedID(ctx, id)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrOrderedIDExhausted
}

func (s *service) VerifyPayment(ctx context.Context, uid, orderID int64, gatewayOrderID, paymentID, signature string) error {
	o, err := s.repo.FindByUIDAndID(ctx, uid, orderID)
	if err != nil {
		return err
	}
	if o.PaymentMethod != domain.PaymentMethodRazorpay || o.GatewayOrderID == "" || o.GatewayOrderID != gatewayOrderID {
		return ErrGatewayOrderMismatch
	}
	if o.Paid() {
		return nil
	}
	if o.Status == domain.StatusCanceled || o.Status == domain.StatusReturned {
		return domain.ErrInvalidTransition
	}
	err = s.gateway.VerifyPayment(gatewayOrderID, paymentID, signature)
	if errors.Is(err, payment.ErrSignatureMismatch) {
		o.PaymentStatus = domain.PaymentStatusFailed
		if er := s.repo.Save(ctx, repository.Change{Order: o}); er != nil {
			s.l.Error("标记支付失败出错", elog.Int64("orderId", o.ID), elog.FieldErr(er))
		}
		return err
	}
	if err != nil {
		return err
	}
	if !o.StockCommitted {
		// 同一个订单号只会扣减一次，重试是安全的
		if err = s.invSvc.Reserve(ctx, o.OrderedID, toInventoryItems(o.StockLines())); err != nil {
			return err
		}
		o.StockCommitted = true
	}
	o.PaymentStatus = domain.PaymentStatusPaid
	return s.repo.Save(ctx, repository.Change{Order: o})
}

func (s *service) PaymentFailed(ctx context.Context, gatewayOrderID string) error {
	// 部分取消后网关订单号会被清空，空值不能用来查询
	if gatewayOrderID == "" {
		return repository.ErrOrderNotFound
	}
	o, err := s.repo.FindByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return err
	}
	if o.PaymentStatus != domain.PaymentStatusPending {
		return nil
	}
	o.PaymentStatus = domain.PaymentStatusFailed
	return s.repo.Save(ctx, repository.Change{Order: o})
}

func (s *service) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	evt, err := s.gateway.ParseWebhook(body, signature)
	if err != nil {
		return err
	}
	switch evt.Event {
	case payment.EventPaymentFailed:
		return s.PaymentFailed(ctx, evt.GatewayOrderID)
	default:
		s.l.Debug("忽略支付回调", elog.String("event", evt.Event))
		return nil
	}
}

func (s *service) ContinuePayment(ctx context.Context, uid, orderID int64) (domain.Order, error) {
	o, err := s.repo.FindByUIDAndID(ctx, uid, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if o.PaymentMethod != domain.PaymentMethodRazorpay || o.Status.Terminal() ||
		(o.PaymentStatus != domain.PaymentStatusPending && o.PaymentStatus != domain.PaymentStatusFailed) {
		return domain.Order{}, ErrPaymentNotRetryable
	}
	if !o.StockCommitted {
		if err = s.invSvc.Check(ctx, toInventoryItems(o.StockLines())); err != nil {
			return domain.Order{}, err
		}
	}
	g, err := s.gateway.CreateOrder(ctx, o.PayableAmount, s.cfg.Currency)
	if err != nil {
		return domain.Order{}, err
	}
	o.GatewayOrderID = g.ID
	o.PaymentStatus = domain.PaymentStatusPending
	if err = s.repo.Save(ctx, repository.Change{Order: o}); err != nil {
		return domain.Order{}, err
	}
	o.Version++
	return o, nil
}

func (s *service) Cancel(ctx context.Context, uid, orderID int64) error {
	o, err := s.repo.FindByUIDAndID(ctx, uid, orderID)
	if err != nil {
		return err
	}
	adj, err := o.Cancel()
	if err != nil {
		return err
	}
	return s.save(ctx, o, adj, nil, reasonCancel)
}

func (s *service) CancelItem(ctx context.Context, uid, orderID, itemID, quantity int64) (domain.Order, error) {
	o, err := s.repo.FindByUIDAndID(ctx, uid, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	adj, err := o.CancelItem(itemID, quantity)
	if err != nil {
		return domain.Order{}, err
	}
	if err = s.save(ctx, o, adj, nil, reasonCancelItem); err != nil {
		return domain.Order{}, err
	}
	o.Version++
	return o, nil
}

func (s *service) RequestReturn(ctx context.Context, uid, orderID int64, reason string) error {
	o, err := s.findDelivered(ctx, uid, orderID)
	if err != nil {
		return err
	}
	r, err := s.pendingReturn(ctx, o)
	if err != nil {
		return err
	}
	r.ReturnAll(reason)
	_, err = s.repo.SaveReturn(ctx, r)
	return err
}

func (s *service) CancelReturn(ctx context.Context, uid, orderID int64) error {
	o, err := s.findDelivered(ctx, uid, orderID)
	if err != nil {
		return err
	}
	r, err := s.repo.FindPendingReturn(ctx, o.ID)
	if err != nil {
		return err
	}
	if !r.IsAllItem {
		return repository.ErrReturnNotFound
	}
	return s.repo.DeleteReturn(ctx, r.ID, r.Version)
}

func (s *service) RequestItemReturn(ctx context.Context, uid, orderID, itemID, quantity int64, reason string) (domain.ReturnRequest, error) {
	o, err := s.findDelivered(ctx, uid, orderID)
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	it, ok := o.FindItem(itemID)
	if !ok {
		return domain.ReturnRequest{}, domain.ErrItemNotFound
	}
	r, err := s.pendingReturn(ctx, o)
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	if r.IsAllItem {
		return domain.ReturnRequest{}, domain.ErrReturnExists
	}
	if err = r.AddItem(it, quantity, reason); err != nil {
		return domain.ReturnRequest{}, err
	}
	r.ID, err = s.repo.SaveReturn(ctx, r)
	return r, err
}

func (s *service) CancelItemReturn(ctx context.Context, uid, orderID, itemID int64) error {
	o, err := s.repo.FindByUIDAndID(ctx, uid, orderID)
	if err != nil {
		return err
	}
	r, err := s.repo.FindPendingReturn(ctx, o.ID)
	if err != nil {
		return err
	}
	if !r.RemoveItem(itemID) {
		return repository.ErrReturnNotFound
	}
	if r.Empty() {
		return s.repo.DeleteReturn(ctx, r.ID, r.Version)
	}
	_, err = s.repo.SaveReturn(ctx, r)
	return err
}

func (s *service) findDelivered(ctx context.Context, uid, orderID int64) (domain.Order, error) {
	o, err := s.repo.FindByUIDAndID(ctx, uid, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if o.Status != domain.StatusDelivered {
		return domain.Order{}, domain.ErrNotDelivered
	}
	return o, nil
}

// pendingReturn 返回订单待审核的退货申请，没有的话新建一个
func (s *service) pendingReturn(ctx context.Context, o domain.Order) (domain.ReturnRequest, error) {
	r, err := s.repo.FindPendingReturn(ctx, o.ID)
	if errors.Is(err, repository.ErrReturnNotFound) {
		return domain.ReturnRequest{
			OrderID: o.ID,
			UID:     o.UID,
			Status:  domain.ReturnStatusPending,
		}, nil
	}
	return r, err
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.List(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) Detail(ctx context.Context, uid, orderID int64) (domain.Order, error) {
	return s.repo.FindByUIDAndID(ctx, uid, orderID)
}

func (s *service) ChangeStatus(ctx context.Context, orderID int64, status domain.Status) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if status == domain.StatusCanceled {
		adj, er := o.Cancel()
		if er != nil {
			return er
		}
		return s.save(ctx, o, adj, nil, reasonAdmin)
	}
	if !domain.CanTransit(o.Status, status) {
		return domain.ErrInvalidTransition
	}
	// 未支付的 razorpay 订单送达时才扣减库存
	if status == domain.StatusDelivered && !o.StockCommitted {
		if err = s.invSvc.Reserve(ctx, o.OrderedID, toInventoryItems(o.StockLines())); err != nil {
			return err
		}
		o.StockCommitted = true
	}
	if err = o.Transit(status); err != nil {
		return err
	}
	return s.repo.Save(ctx, repository.Change{Order: o})
}

func (s *service) AcceptReturn(ctx context.Context, returnID int64) error {
	r, err := s.repo.FindReturn(ctx, returnID)
	if err != nil {
		return err
	}
	o, err := s.repo.FindByID(ctx, r.OrderID)
	if err != nil {
		return err
	}
	adj, err := o.ApplyReturn(r)
	if err != nil {
		return err
	}
	r.Status = domain.ReturnStatusApproved
	return s.save(ctx, o, adj, &r, reasonReturn)
}

func (s *service) RejectReturn(ctx context.Context, returnID int64) error {
	r, err := s.repo.FindReturn(ctx, returnID)
	if err != nil {
		return err
	}
	o, err := s.repo.FindByID(ctx, r.OrderID)
	if err != nil {
		return err
	}
	if err = o.RejectReturn(&r); err != nil {
		return err
	}
	return s.repo.Save(ctx, repository.Change{Order: o, Return: &r})
}

func (s *service) FindByID(ctx context.Context, orderID int64) (domain.Order, error) {
	return s.repo.FindByID(ctx, orderID)
}

func (s *service) ListAll(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListAll(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountAll(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListReturns(ctx context.Context, offset, limit int) ([]domain.ReturnRequest, int64, error) {
	var (
		eg    errgroup.Group
		rs    []domain.ReturnRequest
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = s.repo.ListReturns(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountReturns(ctx)
		return err
	})
	return rs, total, eg.Wait()
}

// save 保存订单变更，需要回补库存或者退款时在同一个事务里写入结算单，
// 提交之后通知对账模块执行。通知失败由补偿任务重放。
func (s *service) save(ctx context.Context, o domain.Order, adj domain.Adjustment, r *domain.ReturnRequest, reason string) error {
	var stl *domain.Settlement
	// 领域层保证退款不为负，这里只兜底
	refund := money.Clamp(adj.Refund)
	if len(adj.Restock) > 0 || refund.IsPositive() {
		stl = &domain.Settlement{
			Key:     "STL-" + shortuuid.New(),
			OrderID: o.ID,
			UID:     o.UID,
			Restock: adj.Restock,
			Refund:  refund,
			Reason:  reason,
			Status:  domain.SettlementStatusPending,
		}
	}
	err := s.repo.Save(ctx, repository.Change{Order: o, Return: r, Settlement: stl})
	if err != nil || stl == nil {
		return err
	}
	er := s.producer.Produce(ctx, event.SettlementEvent{SettlementID: stl.ID, OrderID: o.ID})
	if er != nil {
		s.l.Warn("发送结算事件失败，等待补偿任务重放",
			elog.Int64("settlementId", stl.ID), elog.FieldErr(er))
	}
	return nil
}

func toInventoryItems(lines []domain.StockLine) []inventory.Item {
	return slice.Map(lines, func(idx int, src domain.StockLine) inventory.Item {
		return inventory.Item{
			ProductID: src.ProductID,
			Name:      src.Name,
			Color:     src.Color,
			Size:      inventory.Size(src.Size),
			Quantity:  src.Quantity,
		}
	})
}
