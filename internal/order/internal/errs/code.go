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
	SystemError            = ErrorCode{Code: 510001, Msg: "系统错误"}
	InvalidPaymentMethod   = ErrorCode{Code: 510002, Msg: "不支持的支付方式"}
	DuplicateRequest       = ErrorCode{Code: 510003, Msg: "请勿重复提交订单"}
	AddressNotFound        = ErrorCode{Code: 510004, Msg: "收货地址不存在"}
	EmptyCart              = ErrorCode{Code: 510005, Msg: "购物车为空"}
	OutOfStock             = ErrorCode{Code: 510006, Msg: "库存不足"}
	CouponRejected         = ErrorCode{Code: 510007, Msg: "无法使用该优惠券"}
	InsufficientBalance    = ErrorCode{Code: 510008, Msg: "钱包余额不足"}
	OrderNotFound          = ErrorCode{Code: 510009, Msg: "订单不存在"}
	InvalidTransition      = ErrorCode{Code: 510010, Msg: "当前订单状态不允许该操作"}
	ItemNotFound           = ErrorCode{Code: 510011, Msg: "订单商品不存在"}
	InvalidQuantity        = ErrorCode{Code: 510012, Msg: "商品数量非法"}
	ItemClosed             = ErrorCode{Code: 510013, Msg: "商品已取消或已退货"}
	NotDelivered           = ErrorCode{Code: 510014, Msg: "订单尚未送达"}
	ReturnExists           = ErrorCode{Code: 510015, Msg: "已申请整单退货"}
	ReturnNotFound         = ErrorCode{Code: 510016, Msg: "退货申请不存在"}
	ReturnReviewed         = ErrorCode{Code: 510017, Msg: "退货申请已审核"}
	PaymentVerifyFailed    = ErrorCode{Code: 510018, Msg: "支付校验失败"}
	PaymentNotRetryable    = ErrorCode{Code: 510019, Msg: "订单不能继续支付"}
	ConcurrentModification = ErrorCode{Code: 510020, Msg: "订单已被修改，请刷新后重试"}
	InvalidRequest         = ErrorCode{Code: 510021, Msg: "请求ID不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
