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

	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/repository"
	"github.com/ecodeclub/mall/internal/coupon"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/offer"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProductUnavailable = errors.New("商品已下架")
	ErrInvalidSize        = errors.New("非法的尺码")
	ErrEmptyCart          = errors.New("购物车为空")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/cart.mock.go -package=cartmocks -typed Service
type Service interface {
	// AddItem 同一个规格会合并数量
	AddItem(ctx context.Context, uid int64, item domain.Item) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, uid, itemID, quantity int64) (domain.Cart, error)
	RemoveItem(ctx context.Context, uid, itemID int64) (domain.Cart, error)
	// View 会重新校验库存和价格，失效的商品和优惠券会被移除
	View(ctx context.Context, uid int64) (domain.Cart, error)
	ApplyCoupon(ctx context.Context, uid int64, code string) (domain.Cart, error)
	RemoveCoupon(ctx context.Context, uid int64) (domain.Cart, error)
	Clear(ctx context.Context, uid int64) error
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
	offerSvc   offer.Service
	invSvc     inventory.Service
	couponSvc  coupon.Service
	l          *elog.Component
}

func NewService(repo repository.CartRepository,
	productSvc product.Service,
	offerSvc offer.Service,
	invSvc inventory.Service,
	couponSvc coupon.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		offerSvc:   offerSvc,
		invSvc:     invSvc,
		couponSvc:  couponSvc,
		l:          elog.DefaultLogger,
	}
}

func (s *service) AddItem(ctx context.Context, uid int64, item domain.Item) (domain.Cart, error) {
	if !inventory.Size(item.Size).Valid() {
		return domain.Cart{}, fmt.Errorf("%w: %s", ErrInvalidSize, item.Size)
	}
	if err := domain.CheckQuantity(item.Quantity); err != nil {
		return domain.Cart{}, err
	}
	c, err := s.repo.Find(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	if exist, ok := c.FindVariant(item.ProductID, item.Color, item.Size); ok {
		item.Quantity += exist.Quantity
		if err = domain.CheckQuantity(item.Quantity); err != nil {
			return domain.Cart{}, err
		}
	}
	item, err = s.prepare(ctx, item)
	if err != nil {
		return domain.Cart{}, err
	}
	err = s.repo.SaveItem(ctx, uid, item)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.View(ctx, uid)
}

func (s *service) UpdateQuantity(ctx context.Context, uid, itemID, quantity int64) (domain.Cart, error) {
	if err := domain.CheckQuantity(quantity); err != nil {
		return domain.Cart{}, err
	}
	c, err := s.repo.Find(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	item, ok := c.FindItem(itemID)
	if !ok {
		return domain.Cart{}, repository.ErrItemNotFound
	}
	item.Quantity = quantity
	item, err = s.prepare(ctx, item)
	if err != nil {
		return domain.Cart{}, err
	}
	err = s.repo.UpdateItem(ctx, uid, item)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.View(ctx, uid)
}

// prepare 校验商品状态和库存，并按当前价格定价
func (s *service) prepare(ctx context.Context, item domain.Item) (domain.Item, error) {
	p, err := s.productSvc.FindByID(ctx, item.ProductID)
	if err != nil {
		return domain.Item{}, err
	}
	if !p.Listed() {
		return domain.Item{}, ErrProductUnavailable
	}
	item.Name = p.Name
	err = s.invSvc.Check(ctx, []inventory.Item{s.toInventoryItem(item)})
	if err != nil {
		return domain.Item{}, err
	}
	price, err := s.unitPrice(ctx, p)
	if err != nil {
		return domain.Item{}, err
	}
	item.Reprice(price)
	return item, nil
}

// unitPrice 生效优惠后的单价，没有优惠时就是售价
func (s *service) unitPrice(ctx context.Context, p product.Product) (decimal.Decimal, error) {
	var categoryOfferID int64
	if p.CategoryID > 0 {
		category, err := s.productSvc.FindCategory(ctx, p.CategoryID)
		switch {
		case err == nil:
			categoryOfferID = category.OfferID
		case !errors.Is(err, product.ErrCategoryNotFound):
			return decimal.Zero, err
		}
	}
	res, err := s.offerSvc.Effective(ctx, p.SalePrice, p.OfferID, categoryOfferID)
	if err != nil {
		return decimal.Zero, err
	}
	return res.Price, nil
}

func (s *service) RemoveItem(ctx context.Context, uid, itemID int64) (domain.Cart, error) {
	err := s.repo.RemoveItems(ctx, uid, itemID)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.View(ctx, uid)
}

func (s *service) View(ctx context.Context, uid int64) (domain.Cart, error) {
	c, err := s.repo.Find(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	if c.Empty() {
		if c.CouponCode != "" {
			c.DropCoupon()
			err = s.repo.SetCoupon(ctx, uid, "")
		}
		return c, err
	}
	c, err = s.revalidate(ctx, c)
	if err != nil {
		return domain.Cart{}, err
	}
	if c.CouponCode == "" {
		return c, nil
	}
	cp, discount, err := s.couponSvc.Validate(ctx, uid, c.CouponCode, c.TotalAmount)
	switch {
	case err == nil:
		c.ApplyCoupon(cp.ID, discount)
	case IsCouponRejected(err):
		s.l.Info("购物车优惠券失效", elog.Int64("uid", uid),
			elog.String("code", c.CouponCode), elog.String("reason", err.Error()))
		c.DropCoupon()
		if err = s.repo.SetCoupon(ctx, uid, ""); err != nil {
			return domain.Cart{}, err
		}
	default:
		return domain.Cart{}, err
	}
	return c, nil
}

type lineCheck struct {
	drop  bool
	price decimal.Decimal
}

// revalidate 移除下架或者库存不足的商品，刷新单价
func (s *service) revalidate(ctx context.Context, c domain.Cart) (domain.Cart, error) {
	ps, err := s.productSvc.FindByIDs(ctx, c.ProductIDs())
	if err != nil {
		return domain.Cart{}, err
	}
	products := make(map[int64]product.Product, len(ps))
	for _, p := range ps {
		products[p.ID] = p
	}
	checks := make([]lineCheck, len(c.Items))
	var eg errgroup.Group
	for i, it := range c.Items {
		p, ok := products[it.ProductID]
		if !ok || !p.Listed() {
			checks[i].drop = true
			continue
		}
		eg.Go(func() error {
			stock, er := s.invSvc.Stock(ctx, inventory.Key{
				ProductID: it.ProductID,
				Color:     it.Color,
				Size:      inventory.Size(it.Size),
			})
			if er != nil {
				return er
			}
			if stock < it.Quantity {
				checks[i].drop = true
				return nil
			}
			checks[i].price, er = s.unitPrice(ctx, p)
			return er
		})
	}
	if err = eg.Wait(); err != nil {
		return domain.Cart{}, err
	}
	var dropped []int64
	items := make([]domain.Item, 0, len(c.Items))
	for i, it := range c.Items {
		if checks[i].drop {
			dropped = append(dropped, it.ID)
			continue
		}
		if !checks[i].price.Equal(it.UnitPrice) {
			it.Reprice(checks[i].price)
			if err = s.repo.UpdateItem(ctx, c.UID, it); err != nil {
				return domain.Cart{}, err
			}
		}
		items = append(items, it)
	}
	if len(dropped) > 0 {
		s.l.Info("购物车移除失效商品", elog.Int64("uid", c.UID), elog.Any("items", dropped))
		if err = s.repo.RemoveItems(ctx, c.UID, dropped...); err != nil {
			return domain.Cart{}, err
		}
	}
	c.Items = items
	c.Recalculate()
	return c, nil
}

func (s *service) ApplyCoupon(ctx context.Context, uid int64, code string) (domain.Cart, error) {
	c, err := s.View(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	if c.Empty() {
		return domain.Cart{}, ErrEmptyCart
	}
	cp, discount, err := s.couponSvc.Validate(ctx, uid, code, c.TotalAmount)
	if err != nil {
		return domain.Cart{}, err
	}
	err = s.repo.SetCoupon(ctx, uid, cp.Code)
	if err != nil {
		return domain.Cart{}, err
	}
	c.CouponCode = cp.Code
	c.ApplyCoupon(cp.ID, discount)
	return c, nil
}

func (s *service) RemoveCoupon(ctx context.Context, uid int64) (domain.Cart, error) {
	err := s.repo.SetCoupon(ctx, uid, "")
	if err != nil {
		return domain.Cart{}, err
	}
	return s.View(ctx, uid)
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.repo.Clear(ctx, uid)
}

func (s *service) toInventoryItem(item domain.Item) inventory.Item {
	return inventory.Item{
		ProductID: item.ProductID,
		Name:      item.Name,
		Color:     item.Color,
		Size:      inventory.Size(item.Size),
		Quantity:  item.Quantity,
	}
}

// IsCouponRejected 优惠券本身不可用，而不是系统错误
func IsCouponRejected(err error) bool {
	for _, target := range []error{
		coupon.ErrCouponNotFound,
		coupon.ErrCouponInactive,
		coupon.ErrCouponNotStarted,
		coupon.ErrCouponExpired,
		coupon.ErrUsageLimitExceeded,
		coupon.ErrUserLimitExceeded,
		coupon.ErrBelowMinCartValue,
		coupon.ErrCannotApply,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
