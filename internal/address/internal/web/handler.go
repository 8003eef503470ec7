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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/address/internal/domain"
	"github.com/ecodeclub/mall/internal/address/internal/errs"
	"github.com/ecodeclub/mall/internal/address/internal/repository"
	"github.com/ecodeclub/mall/internal/address/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/address")
	g.POST("/save", ginx.BS[Address](h.Save))
	g.POST("/list", ginx.S(h.List))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
}

func (h *Handler) Save(ctx *ginx.Context, req Address, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), domain.Address{
		ID:      req.ID,
		UID:     sess.Claims().Uid,
		Name:    req.Name,
		Phone:   req.Phone,
		Line:    req.Line,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: id}, nil
	case errors.Is(err, service.ErrInvalidAddress):
		return ginx.Result{Code: errs.InvalidAddress.Code, Msg: errs.InvalidAddress.Msg}, nil
	case errors.Is(err, repository.ErrAddressNotFound):
		return ginx.Result{Code: errs.AddressNotFound.Code, Msg: errs.AddressNotFound.Msg}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	as, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(as, func(idx int, src domain.Address) Address {
		return newAddress(src)
	})}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
