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
	SystemError        = ErrorCode{Code: 509001, Msg: "系统错误"}
	InvalidItem        = ErrorCode{Code: 509002, Msg: "非法的商品规格"}
	QuantityLimit      = ErrorCode{Code: 509003, Msg: "每件商品最多购买 10 件"}
	ProductUnavailable = ErrorCode{Code: 509004, Msg: "商品不存在或已下架"}
	OutOfStock         = ErrorCode{Code: 509005, Msg: "库存不足"}
	ItemNotFound       = ErrorCode{Code: 509006, Msg: "购物车商品不存在"}
	EmptyCart          = ErrorCode{Code: 509007, Msg: "购物车为空"}
	CouponNotFound     = ErrorCode{Code: 509008, Msg: "优惠券不存在"}
	CouponRejected     = ErrorCode{Code: 509009, Msg: "无法使用该优惠券"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
