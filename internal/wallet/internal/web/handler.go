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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/wallet/internal/domain"
	"github.com/ecodeclub/mall/internal/wallet/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/wallet")
	g.POST("/detail", ginx.S(h.Detail))
	g.POST("/transactions", ginx.BS[Page](h.Transactions))
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	w, err := h.svc.Find(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Wallet{Balance: w.Balance, IsActive: w.IsActive},
	}, nil
}

func (h *Handler) Transactions(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	ts, total, err := h.svc.ListTransactions(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TransactionList{
			Total: total,
			Transactions: slice.Map(ts, func(idx int, src domain.Transaction) Transaction {
				return Transaction{
					ID:     src.ID,
					Type:   src.Type.ToUint8(),
					Amount: src.Amount,
					Desc:   src.Desc,
					Ctime:  src.Ctime,
				}
			}),
		},
	}, nil
}
