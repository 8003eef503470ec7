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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound          = errors.New("订单不存在")
	ErrReturnNotFound         = errors.New("退货申请不存在")
	ErrSettlementNotFound     = errors.New("结算单不存在")
	ErrDuplicateOrderedID     = dao.ErrDuplicateOrderedID
	ErrConcurrentModification = dao.ErrConcurrentModification
	ErrPendingReturnExists    = dao.ErrPendingReturnExists
)

// Change 一次订单变更，退货申请和结算单与订单在同一个事务中保存
type Change struct {
	Order      domain.Order
	Return     *domain.ReturnRequest
	Settlement *domain.Settlement
}

type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindByUIDAndID(ctx context.Context, uid, id int64) (domain.Order, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Order, error)
	FindByOrderedID(ctx context.Context, orderedID string) (domain.Order, error)
	// Save 版本号不一致时返回 ErrConcurrentModification，成功后回填结算单 ID
	Save(ctx context.Context, c Change) error
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error)
	Count(ctx context.Context, uid int64) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]domain.Order, error)
	CountAll(ctx context.Context) (int64, error)

	FindPendingReturn(ctx context.Context, orderID int64) (domain.ReturnRequest, error)
	FindReturn(ctx context.Context, id int64) (domain.ReturnRequest, error)
	SaveReturn(ctx context.Context, r domain.ReturnRequest) (int64, error)
	DeleteReturn(ctx context.Context, id, version int64) error
	ListReturns(ctx context.Context, offset, limit int) ([]domain.ReturnRequest, error)
	CountReturns(ctx context.Context) (int64, error)

	FindSettlement(ctx context.Context, id int64) (domain.Settlement, error)
	CompleteSettlement(ctx context.Context, id int64) error
	ListPendingSettlements(ctx context.Context, before int64, limit int) ([]domain.Settlement, error)
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) Create(ctx context.Context, o domain.Order) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(o))
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	return r.findOrder(r.dao.FindByID(ctx, id))
}

func (r *orderRepository) FindByUIDAndID(ctx context.Context, uid, id int64) (domain.Order, error) {
	return r.findOrder(r.dao.FindByUIDAndID(ctx, uid, id))
}

func (r *orderRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Order, error) {
	return r.findOrder(r.dao.FindByGatewayOrderID(ctx, gatewayOrderID))
}

func (r *orderRepository) FindByOrderedID(ctx context.Context, orderedID string) (domain.Order, error) {
	return r.findOrder(r.dao.FindByOrderedID(ctx, orderedID))
}

func (r *orderRepository) findOrder(o dao.Order, err error) (domain.Order, error) {
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o), nil
}

func (r *orderRepository) Save(ctx context.Context, c Change) error {
	var ret *dao.ReturnRequest
	if c.Return != nil {
		e := r.toReturnEntity(*c.Return)
		ret = &e
	}
	var stl *dao.Settlement
	if c.Settlement != nil {
		e := r.toSettlementEntity(*c.Settlement)
		stl = &e
	}
	err := r.dao.Update(ctx, r.toEntity(c.Order), ret, stl)
	if err == nil && stl != nil {
		c.Settlement.ID = stl.Id
	}
	return err
}

func (r *orderRepository) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.List(ctx, uid, offset, limit)
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), err
}

func (r *orderRepository) Count(ctx context.Context, uid int64) (int64, error) {
	return r.dao.Count(ctx, uid)
}

func (r *orderRepository) ListAll(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListAll(ctx, offset, limit)
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), err
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	return r.dao.CountAll(ctx)
}

func (r *orderRepository) FindPendingReturn(ctx context.Context, orderID int64) (domain.ReturnRequest, error) {
	return r.findReturn(r.dao.FindPendingReturn(ctx, orderID))
}

func (r *orderRepository) FindReturn(ctx context.Context, id int64) (domain.ReturnRequest, error) {
	return r.findReturn(r.dao.FindReturn(ctx, id))
}

func (r *orderRepository) findReturn(ret dao.ReturnRequest, err error) (domain.ReturnRequest, error) {
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.ReturnRequest{}, ErrReturnNotFound
	}
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	return r.toReturnDomain(ret), nil
}

func (r *orderRepository) SaveReturn(ctx context.Context, ret domain.ReturnRequest) (int64, error) {
	return r.dao.SaveReturn(ctx, r.toReturnEntity(ret))
}

func (r *orderRepository) DeleteReturn(ctx context.Context, id, version int64) error {
	err := r.dao.DeleteReturn(ctx, id, version)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrReturnNotFound
	}
	return err
}

func (r *orderRepository) ListReturns(ctx context.Context, offset, limit int) ([]domain.ReturnRequest, error) {
	rs, err := r.dao.ListReturns(ctx, offset, limit)
	return slice.Map(rs, func(idx int, src dao.ReturnRequest) domain.ReturnRequest {
		return r.toReturnDomain(src)
	}), err
}

func (r *orderRepository) CountReturns(ctx context.Context) (int64, error) {
	return r.dao.CountReturns(ctx)
}

func (r *orderRepository) FindSettlement(ctx context.Context, id int64) (domain.Settlement, error) {
	s, err := r.dao.FindSettlement(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Settlement{}, ErrSettlementNotFound
	}
	if err != nil {
		return domain.Settlement{}, err
	}
	return r.toSettlementDomain(s), nil
}

func (r *orderRepository) CompleteSettlement(ctx context.Context, id int64) error {
	return r.dao.CompleteSettlement(ctx, id)
}

func (r *orderRepository) ListPendingSettlements(ctx context.Context, before int64, limit int) ([]domain.Settlement, error) {
	ss, err := r.dao.ListPendingSettlements(ctx, before, limit)
	return slice.Map(ss, func(idx int, src dao.Settlement) domain.Settlement {
		return r.toSettlementDomain(src)
	}), err
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:        o.ID,
		OrderedId: o.OrderedID,
		Uid:       o.UID,
		Address: sqlx.JsonColumn[dao.Address]{
			Val:   dao.Address(o.Address),
			Valid: true,
		},
		Items: sqlx.JsonColumn[[]dao.Item]{
			Val: slice.Map(o.Items, func(idx int, src domain.Item) dao.Item {
				return dao.Item{
					Id:            src.ID,
					ProductId:     src.ProductID,
					Name:          src.Name,
					Color:         src.Color,
					Size:          src.Size,
					Quantity:      src.Quantity,
					Price:         src.Price,
					IsCanceled:    src.IsCanceled,
					IsReturned:    src.IsReturned,
					IsRejected:    src.IsRejected,
					CanceledItems: src.CanceledItems,
					ReturnedItem:  src.ReturnedItem,
				}
			}),
			Valid: true,
		},
		PaymentMethod:  o.PaymentMethod.String(),
		PaymentStatus:  o.PaymentStatus.ToUint8(),
		Status:         o.Status.ToUint8(),
		TotalAmount:    o.TotalAmount,
		PayableAmount:  o.PayableAmount,
		ShippingCost:   o.ShippingCost,
		CouponId:       o.Coupon.CouponID,
		CouponCode:     o.Coupon.Code,
		DiscountPrice:  o.Coupon.DiscountPrice,
		MinCartValue:   o.Coupon.MinCartValue,
		GatewayOrderId: o.GatewayOrderID,
		StockCommitted: o.StockCommitted,
		Version:        o.Version,
	}
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:        o.Id,
		OrderedID: o.OrderedId,
		UID:       o.Uid,
		Address:   domain.Address(o.Address.Val),
		Items: slice.Map(o.Items.Val, func(idx int, src dao.Item) domain.Item {
			return domain.Item{
				ID:            src.Id,
				ProductID:     src.ProductId,
				Name:          src.Name,
				Color:         src.Color,
				Size:          src.Size,
				Quantity:      src.Quantity,
				Price:         src.Price,
				IsCanceled:    src.IsCanceled,
				IsReturned:    src.IsReturned,
				IsRejected:    src.IsRejected,
				CanceledItems: src.CanceledItems,
				ReturnedItem:  src.ReturnedItem,
			}
		}),
		PaymentMethod: domain.PaymentMethod(o.PaymentMethod),
		PaymentStatus: domain.PaymentStatus(o.PaymentStatus),
		Status:        domain.Status(o.Status),
		TotalAmount:   o.TotalAmount,
		PayableAmount: o.PayableAmount,
		ShippingCost:  o.ShippingCost,
		Coupon: domain.Coupon{
			CouponID:      o.CouponId,
			Code:          o.CouponCode,
			DiscountPrice: o.DiscountPrice,
			MinCartValue:  o.MinCartValue,
		},
		GatewayOrderID: o.GatewayOrderId,
		StockCommitted: o.StockCommitted,
		Version:        o.Version,
		Ctime:          o.Ctime,
		Utime:          o.Utime,
	}
}

func (r *orderRepository) toReturnEntity(ret domain.ReturnRequest) dao.ReturnRequest {
	return dao.ReturnRequest{
		Id:        ret.ID,
		OrderId:   ret.OrderID,
		Uid:       ret.UID,
		Status:    ret.Status.ToUint8(),
		IsAllItem: ret.IsAllItem,
		Items: sqlx.JsonColumn[[]dao.ReturnItem]{
			Val: slice.Map(ret.Items, func(idx int, src domain.ReturnItem) dao.ReturnItem {
				return dao.ReturnItem{ItemId: src.ItemID, Quantity: src.Quantity, IsAllItem: src.IsAllItem}
			}),
			Valid: true,
		},
		Reasons: sqlx.JsonColumn[[]string]{Val: ret.Reasons, Valid: true},
		Version: ret.Version,
	}
}

func (r *orderRepository) toReturnDomain(ret dao.ReturnRequest) domain.ReturnRequest {
	return domain.ReturnRequest{
		ID:        ret.Id,
		OrderID:   ret.OrderId,
		UID:       ret.Uid,
		Status:    domain.ReturnStatus(ret.Status),
		IsAllItem: ret.IsAllItem,
		Items: slice.Map(ret.Items.Val, func(idx int, src dao.ReturnItem) domain.ReturnItem {
			return domain.ReturnItem{ItemID: src.ItemId, Quantity: src.Quantity, IsAllItem: src.IsAllItem}
		}),
		Reasons: ret.Reasons.Val,
		Version: ret.Version,
		Ctime:   ret.Ctime,
		Utime:   ret.Utime,
	}
}

func (r *orderRepository) toSettlementEntity(s domain.Settlement) dao.Settlement {
	return dao.Settlement{
		Id:      s.ID,
		BizKey:  s.Key,
		OrderId: s.OrderID,
		Uid:     s.UID,
		Restock: sqlx.JsonColumn[[]dao.StockLine]{
			Val: slice.Map(s.Restock, func(idx int, src domain.StockLine) dao.StockLine {
				return dao.StockLine{
					ProductId: src.ProductID,
					Name:      src.Name,
					Color:     src.Color,
					Size:      src.Size,
					Quantity:  src.Quantity,
				}
			}),
			Valid: true,
		},
		Refund: s.Refund,
		Reason: s.Reason,
		Status: s.Status.ToUint8(),
	}
}

func (r *orderRepository) toSettlementDomain(s dao.Settlement) domain.Settlement {
	return domain.Settlement{
		ID:      s.Id,
		Key:     s.BizKey,
		OrderID: s.OrderId,
		UID:     s.Uid,
		Restock: slice.Map(s.Restock.Val, func(idx int, src dao.StockLine) domain.StockLine {
			return domain.StockLine{
				ProductID: src.ProductId,
				Name:      src.Name,
				Color:     src.Color,
				Size:      src.Size,
				Quantity:  src.Quantity,
			}
		}),
		Refund: s.Refund,
		Reason: s.Reason,
		Status: domain.SettlementStatus(s.Status),
		Ctime:  s.Ctime,
		Utime:  s.Utime,
	}
}
