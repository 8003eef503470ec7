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
	"github.com/ecodeclub/mall/internal/offer/internal/domain"
	"github.com/ecodeclub/mall/internal/offer/internal/errs"
	"github.com/ecodeclub/mall/internal/offer/internal/repository"
	"github.com/ecodeclub/mall/internal/offer/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/offer")
	g.POST("/save", ginx.B[Offer](h.Save))
	g.POST("/status", ginx.B[StatusReq](h.ChangeStatus))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[Page](h.List))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req Offer) (ginx.Result, error) {
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newOffer(o)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	os, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: OfferList{
			Offers: slice.Map(os, func(idx int, src domain.Offer) Offer {
				return newOffer(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *AdminHandler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidOffer):
		return ginx.Result{Code: errs.InvalidOffer.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrOfferNotStarted):
		return ginx.Result{Code: errs.OfferNotStart.Code, Msg: errs.OfferNotStart.Msg}, nil
	case errors.Is(err, service.ErrOfferExpired):
		return ginx.Result{Code: errs.OfferExpired.Code, Msg: errs.OfferExpired.Msg}, nil
	case errors.Is(err, repository.ErrOfferNotFound):
		return ginx.Result{Code: errs.OfferNotFound.Code, Msg: errs.OfferNotFound.Msg}, nil
	default:
		return systemErrorResult, err
	}
}
