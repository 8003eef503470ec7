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

package errs

var (
	SystemError        = ErrorCode{Code: 508001, Msg: "系统错误"}
	InvalidCoupon      = ErrorCode{Code: 508002, Msg: "非法的优惠券"}
	CouponNotFound     = ErrorCode{Code: 508003, Msg: "优惠券不存在"}
	DuplicateCode      = ErrorCode{Code: 508004, Msg: "优惠码已存在"}
	CouponNotStarted   = ErrorCode{Code: 508005, Msg: "优惠券尚未开始"}
	CouponExpired      = ErrorCode{Code: 508006, Msg: "优惠券已过期"}
	UsageLimitExceeded = ErrorCode{Code: 508007, Msg: "优惠券已被领完，请尝试其他优惠券"}
	UserLimitExceeded  = ErrorCode{Code: 508008, Msg: "您的使用次数已达上限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
