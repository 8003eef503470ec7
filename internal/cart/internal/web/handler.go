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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/errs"
	"github.com/ecodeclub/mall/internal/cart/internal/repository"
	"github.com/ecodeclub/mall/internal/cart/internal/service"
	"github.com/ecodeclub/mall/internal/coupon"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/items/add", ginx.BS[AddItemReq](h.AddItem))
	g.POST("/items/update", ginx.BS[UpdateItemReq](h.UpdateItem))
	g.POST("/items/remove", ginx.BS[ItemReq](h.RemoveItem))
	g.POST("/view", ginx.S(h.View))
	server.POST("/coupon/apply", ginx.BS[CouponReq](h.ApplyCoupon))
	server.POST("/coupon/remove", ginx.S(h.RemoveCoupon))
}

func (h *Handler) AddItem(ctx *ginx.Context, req AddItemReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.AddItem(ctx.Request.Context(), sess.Claims().Uid, domain.Item{
		ProductID: req.ProductID,
		Color:     req.Color,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	return h.cartResult(c, err)
}

func (h *Handler) UpdateItem(ctx *ginx.Context, req UpdateItemReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.UpdateQuantity(ctx.Request.Context(), sess.Claims().Uid, req.ItemID, req.Quantity)
	return h.cartResult(c, err)
}

func (h *Handler) RemoveItem(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.RemoveItem(ctx.Request.Context(), sess.Claims().Uid, req.ItemID)
	return h.cartResult(c, err)
}

func (h *Handler) View(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.View(ctx.Request.Context(), sess.Claims().Uid)
	return h.cartResult(c, err)
}

func (h *Handler) ApplyCoupon(ctx *ginx.Context, req CouponReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.ApplyCoupon(ctx.Request.Context(), sess.Claims().Uid, req.Code)
	return h.cartResult(c, err)
}

func (h *Handler) RemoveCoupon(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.RemoveCoupon(ctx.Request.Context(), sess.Claims().Uid)
	return h.cartResult(c, err)
}

func (h *Handler) cartResult(c domain.Cart, err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{Data: newCart(c)}, nil
	case errors.Is(err, service.ErrInvalidSize):
		return ginx.Result{Code: errs.InvalidItem.Code, Msg: errs.InvalidItem.Msg}, nil
	case errors.Is(err, domain.ErrQuantityLimit):
		return ginx.Result{Code: errs.QuantityLimit.Code, Msg: errs.QuantityLimit.Msg}, nil
	case errors.Is(err, service.ErrProductUnavailable), errors.Is(err, product.ErrProductNotFound):
		return ginx.Result{Code: errs.ProductUnavailable.Code, Msg: errs.ProductUnavailable.Msg}, nil
	case errors.Is(err, inventory.ErrOutOfStock):
		// 区分售罄和仅剩 N 件
		return ginx.Result{Code: errs.OutOfStock.Code, Msg: err.Error()}, nil
	case errors.Is(err, repository.ErrItemNotFound):
		return ginx.Result{Code: errs.ItemNotFound.Code, Msg: errs.ItemNotFound.Msg}, nil
	case errors.Is(err, service.ErrEmptyCart):
		return ginx.Result{Code: errs.EmptyCart.Code, Msg: errs.EmptyCart.Msg}, nil
	case errors.Is(err, coupon.ErrCouponNotFound), errors.Is(err, coupon.ErrCouponInactive):
		return ginx.Result{Code: errs.CouponNotFound.Code, Msg: errs.CouponNotFound.Msg}, nil
	case service.IsCouponRejected(err):
		return ginx.Result{Code: errs.CouponRejected.Code, Msg: err.Error()}, nil
	default:
		return systemErrorResult, err
	}
}
