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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mall/internal/inventory/internal/domain"
	"github.com/ecodeclub/mall/internal/inventory/internal/errs"
	"github.com/ecodeclub/mall/internal/inventory/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/inventory/list", ginx.B[ListReq](h.List))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	vs, err := h.svc.List(ctx.Request.Context(), req.ProductID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(vs, func(idx int, src domain.Variant) Variant {
			return Variant{
				ProductID: src.ProductID,
				Color:     src.Color,
				Size:      src.Size.String(),
				Stock:     src.Stock,
			}
		}),
	}, nil
}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/inventory/save", ginx.B[Variant](h.Save))
}

// Save 直接覆盖库存数量
func (h *AdminHandler) Save(ctx *ginx.Context, req Variant) (ginx.Result, error) {
	err := h.svc.Save(ctx.Request.Context(), domain.Variant{
		ProductID: req.ProductID,
		Color:     req.Color,
		Size:      domain.Size(req.Size),
		Stock:     req.Stock,
	})
	switch {
	case errors.Is(err, service.ErrInvalidVariant):
		return ginx.Result{Code: errs.InvalidVariant.Code, Msg: errs.InvalidVariant.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Msg: "OK"}, nil
	}
}
