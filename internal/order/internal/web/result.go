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
	"github.com/ecodeclub/mall/internal/address"
	"github.com/ecodeclub/mall/internal/cart"
	"github.com/ecodeclub/mall/internal/coupon"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/errs"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/wallet"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var couponErrs = []error{
	coupon.ErrCouponNotFound,
	coupon.ErrCouponInactive,
	coupon.ErrCouponNotStarted,
	coupon.ErrCouponExpired,
	coupon.ErrUsageLimitExceeded,
	coupon.ErrUserLimitExceeded,
	coupon.ErrBelowMinCartValue,
	coupon.ErrCannotApply,
}

func codeResult(code errs.ErrorCode) ginx.Result {
	return ginx.Result{Code: code.Code, Msg: code.Msg}
}

// errorResult 业务错误转换成错误码，其余的当作系统错误
func errorResult(err error) (ginx.Result, error) {
	for _, target := range couponErrs {
		if errors.Is(err, target) {
			return ginx.Result{Code: errs.CouponRejected.Code, Msg: err.Error()}, nil
		}
	}
	switch {
	case errors.Is(err, service.ErrInvalidPaymentMethod):
		return codeResult(errs.InvalidPaymentMethod), nil
	case errors.Is(err, address.ErrAddressNotFound):
		return codeResult(errs.AddressNotFound), nil
	case errors.Is(err, cart.ErrEmptyCart):
		return codeResult(errs.EmptyCart), nil
	case errors.Is(err, inventory.ErrOutOfStock):
		// 区分售罄和仅剩 N 件
		return ginx.Result{Code: errs.OutOfStock.Code, Msg: err.Error()}, nil
	case errors.Is(err, wallet.ErrInsufficientBalance):
		return codeResult(errs.InsufficientBalance), nil
	case errors.Is(err, repository.ErrOrderNotFound):
		return codeResult(errs.OrderNotFound), nil
	case errors.Is(err, domain.ErrInvalidTransition):
		return codeResult(errs.InvalidTransition), nil
	case errors.Is(err, domain.ErrItemNotFound):
		return codeResult(errs.ItemNotFound), nil
	case errors.Is(err, domain.ErrInvalidQuantity):
		return codeResult(errs.InvalidQuantity), nil
	case errors.Is(err, domain.ErrItemCanceled), errors.Is(err, domain.ErrReturnItem):
		return codeResult(errs.ItemClosed), nil
	case errors.Is(err, domain.ErrNotDelivered):
		return codeResult(errs.NotDelivered), nil
	case errors.Is(err, domain.ErrReturnExists), errors.Is(err, repository.ErrPendingReturnExists):
		return codeResult(errs.ReturnExists), nil
	case errors.Is(err, repository.ErrReturnNotFound):
		return codeResult(errs.ReturnNotFound), nil
	case errors.Is(err, domain.ErrReturnReviewed):
		return codeResult(errs.ReturnReviewed), nil
	case errors.Is(err, payment.ErrSignatureMismatch), errors.Is(err, service.ErrGatewayOrderMismatch):
		return codeResult(errs.PaymentVerifyFailed), nil
	case errors.Is(err, service.ErrPaymentNotRetryable):
		return codeResult(errs.PaymentNotRetryable), nil
	case errors.Is(err, repository.ErrConcurrentModification):
		return codeResult(errs.ConcurrentModification), nil
	default:
		return systemErrorResult, err
	}
}
