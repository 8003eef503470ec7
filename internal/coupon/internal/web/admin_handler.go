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
	"github.com/ecodeclub/mall/internal/coupon/internal/domain"
	"github.com/ecodeclub/mall/internal/coupon/internal/errs"
	"github.com/ecodeclub/mall/internal/coupon/internal/repository"
	"github.com/ecodeclub/mall/internal/coupon/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/save", ginx.B[Coupon](h.Save))
	g.POST("/status", ginx.B[StatusReq](h.ChangeStatus))
	g.POST("/list", ginx.B[Page](h.List))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req Coupon) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) ChangeStatus(ctx *ginx.Context, req StatusReq) (ginx.Result, error) {
	err := h.svc.ChangeStatus(ctx.Request.Context(), req.ID, domain.Status(req.Status))
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	cs, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CouponList{
			Coupons: slice.Map(cs, func(idx int, src domain.Coupon) Coupon {
				return newCoupon(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *AdminHandler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidCoupon):
		return ginx.Result{Code: errs.InvalidCoupon.Code, Msg: err.Error()}, nil
	case errors.Is(err, repository.ErrDuplicateCode):
		return ginx.Result{Code: errs.DuplicateCode.Code, Msg: errs.DuplicateCode.Msg}, nil
	case errors.Is(err, repository.ErrCouponNotFound):
		return ginx.Result{Code: errs.CouponNotFound.Code, Msg: errs.CouponNotFound.Msg}, nil
	case errors.Is(err, domain.ErrCouponNotStarted):
		return ginx.Result{Code: errs.CouponNotStarted.Code, Msg: errs.CouponNotStarted.Msg}, nil
	case errors.Is(err, domain.ErrCouponExpired):
		return ginx.Result{Code: errs.CouponExpired.Code, Msg: errs.CouponExpired.Msg}, nil
	default:
		return systemErrorResult, err
	}
}
