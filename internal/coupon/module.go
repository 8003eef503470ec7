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

package coupon

import (
	"github.com/ecodeclub/mall/internal/coupon/internal/domain"
	"github.com/ecodeclub/mall/internal/coupon/internal/job"
	"github.com/ecodeclub/mall/internal/coupon/internal/repository"
	"github.com/ecodeclub/mall/internal/coupon/internal/service"
	"github.com/ecodeclub/mall/internal/coupon/internal/web"
	"github.com/shopspring/decimal"
)

type Module struct {
	Svc              Service
	Hdl              *Handler
	AdminHdl         *AdminHandler
	ExpireCouponsJob *ExpireCouponsJob
}

type (
	Service           = service.Service
	Handler           = web.Handler
	AdminHandler      = web.AdminHandler
	ExpireCouponsJob  = job.ExpireCouponsJob
	Coupon            = domain.Coupon
	Allocation        = domain.Allocation
	Reallocation      = domain.Reallocation
	MinCartValueError = domain.MinCartValueError
)

var (
	ErrCouponNotFound     = repository.ErrCouponNotFound
	ErrCouponInactive     = domain.ErrCouponInactive
	ErrCouponNotStarted   = domain.ErrCouponNotStarted
	ErrCouponExpired      = domain.ErrCouponExpired
	ErrUsageLimitExceeded = domain.ErrUsageLimitExceeded
	ErrUserLimitExceeded  = domain.ErrUserLimitExceeded
	ErrBelowMinCartValue  = domain.ErrBelowMinCartValue
	ErrCannotApply        = domain.ErrCannotApply
)

// Reallocate 订单移除部分商品后重新分摊优惠
func Reallocate(a Allocation, price decimal.Decimal, quantity int64) Reallocation {
	return domain.Reallocate(a, price, quantity)
}
