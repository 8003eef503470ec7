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
	"io"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/errs"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	signatureHeader   = "X-Razorpay-Signature"
	requestExpiration = 10 * time.Minute
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/checkout", ginx.BS[CheckoutReq](h.Checkout))
	g.POST("/verify", ginx.BS[VerifyPaymentReq](h.VerifyPayment))
	g.POST("/continue", ginx.BS[OrderReq](h.ContinuePayment))
	g.POST("/cancel", ginx.BS[OrderReq](h.Cancel))
	g.POST("/item/cancel", ginx.BS[CancelItemReq](h.CancelItem))
	g.POST("/return", ginx.BS[ReturnReq](h.RequestReturn))
	g.POST("/return/cancel", ginx.BS[OrderReq](h.CancelReturn))
	g.POST("/item/return", ginx.BS[ItemReturnReq](h.RequestItemReturn))
	g.POST("/item/return/cancel", ginx.BS[ItemReq](h.CancelItemReturn))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[OrderReq](h.Detail))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 支付网关回调，没有登录态，靠签名鉴权
	server.POST("/order/webhook", ginx.W(h.Webhook))
}

// Checkout 把购物车转成订单
func (h *Handler) Checkout(ctx *ginx.Context, req CheckoutReq, sess session.Session) (ginx.Result, error) {
	if req.RequestID == "" {
		return codeResult(errs.InvalidRequest), nil
	}
	ok, err := h.checkRequestID(ctx.Request.Context(), req.RequestID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}
	if !ok {
		return codeResult(errs.DuplicateRequest), nil
	}
	o, err := h.svc.Checkout(ctx.Request.Context(), sess.Claims().Uid, req.AddressID, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newCheckoutResp(o)}, nil
}

// checkRequestID 同一个请求 ID 只允许下单一次
func (h *Handler) checkRequestID(ctx context.Context, requestID string) (bool, error) {
	return h.cache.SetNX(ctx, h.checkoutRequestKey(requestID), requestID, requestExpiration)
}

func (h *Handler) checkoutRequestKey(requestID string) string {
	return fmt.Sprintf("order:checkout:%s", requestID)
}

func (h *Handler) VerifyPayment(ctx *ginx.Context, req VerifyPaymentReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.VerifyPayment(ctx.Request.Context(), sess.Claims().Uid, req.OrderID, req.GatewayOrderID, req.PaymentID, req.Signature)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// ContinuePayment 支付失败或者放弃支付之后重新发起
func (h *Handler) ContinuePayment(ctx *ginx.Context, req OrderReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.ContinuePayment(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newCheckoutResp(o)}, nil
}

func (h *Handler) Webhook(ctx *ginx.Context) (ginx.Result, error) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return systemErrorResult, fmt.Errorf("读取回调内容失败: %w", err)
	}
	err = h.svc.HandleWebhook(ctx.Request.Context(), body, ctx.GetHeader(signatureHeader))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req OrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Cancel(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) CancelItem(ctx *ginx.Context, req CancelItemReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.CancelItem(ctx.Request.Context(), sess.Claims().Uid, req.OrderID, req.ItemID, req.Quantity)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *Handler) RequestReturn(ctx *ginx.Context, req ReturnReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RequestReturn(ctx.Request.Context(), sess.Claims().Uid, req.OrderID, req.Reason)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) CancelReturn(ctx *ginx.Context, req OrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelReturn(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RequestItemReturn(ctx *ginx.Context, req ItemReturnReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.RequestItemReturn(ctx.Request.Context(), sess.Claims().Uid, req.OrderID, req.ItemID, req.Quantity, req.Reason)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newReturnRequest(r)}, nil
}

func (h *Handler) CancelItemReturn(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelItemReturn(ctx.Request.Context(), sess.Claims().Uid, req.OrderID, req.ItemID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// List 分页查询用户订单
func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	os, total, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(os, func(idx int, src domain.Order) Order {
				return newOrder(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req OrderReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}
