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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/status", ginx.B[ChangeStatusReq](h.ChangeStatus))
	g.POST("/detail", ginx.B[OrderReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/return/accept", ginx.B[ReturnIDReq](h.AcceptReturn))
	g.POST("/return/reject", ginx.B[ReturnIDReq](h.RejectReturn))
	g.POST("/returns", ginx.B[ListReq](h.ListReturns))
}

// ChangeStatus 推进订单状态，取消时会回补库存并退款
func (h *AdminHandler) ChangeStatus(ctx *ginx.Context, req ChangeStatusReq) (ginx.Result, error) {
	err := h.svc.ChangeStatus(ctx.Request.Context(), req.OrderID, domain.Status(req.Status))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req OrderReq) (ginx.Result, error) {
	o, err := h.svc.FindByID(ctx.Request.Context(), req.OrderID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	os, total, err := h.svc.ListAll(ctx.Request.Context(), req.Offset, req.Limit)
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

func (h *AdminHandler) AcceptReturn(ctx *ginx.Context, req ReturnIDReq) (ginx.Result, error) {
	err := h.svc.AcceptReturn(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) RejectReturn(ctx *ginx.Context, req ReturnIDReq) (ginx.Result, error) {
	err := h.svc.RejectReturn(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) ListReturns(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	rs, total, err := h.svc.ListReturns(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListReturnsResp{
			Total: total,
			Returns: slice.Map(rs, func(idx int, src domain.ReturnRequest) ReturnRequest {
				return newReturnRequest(src)
			}),
		},
	}, nil
}
