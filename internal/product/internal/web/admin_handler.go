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
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/errs"
	"github.com/ecodeclub/mall/internal/product/internal/repository"
	"github.com/ecodeclub/mall/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[Product](h.Save))
	g.POST("/category/save", ginx.B[Category](h.SaveCategory))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req Product) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), req.toDomain())
	switch {
	case errors.Is(err, service.ErrInvalidPrice):
		return ginx.Result{Code: errs.InvalidPrice.Code, Msg: errs.InvalidPrice.Msg}, nil
	case errors.Is(err, repository.ErrDuplicateName):
		return ginx.Result{Code: errs.DuplicateName.Code, Msg: errs.DuplicateName.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) SaveCategory(ctx *ginx.Context, req Category) (ginx.Result, error) {
	id, err := h.svc.SaveCategory(ctx.Request.Context(), domain.Category{
		ID:      req.ID,
		Name:    req.Name,
		OfferID: req.OfferID,
	})
	if errors.Is(err, repository.ErrDuplicateName) {
		return ginx.Result{Code: errs.DuplicateName.Code, Msg: errs.DuplicateName.Msg}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}
