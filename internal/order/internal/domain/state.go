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

package domain

type Status uint8

const (
	StatusUnknown Status = iota
	StatusPending
	StatusConfirmed
	StatusShipped
	StatusDelivered
	StatusCanceled
	StatusReturned
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

// Terminal 终态之后不允许任何状态流转
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCanceled || s == StatusReturned
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCanceled:
		return "Canceled"
	case StatusReturned:
		return "Returned"
	}
	return "Unknown"
}

type PaymentStatus uint8

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusPending
	PaymentStatusPaid
	PaymentStatusFailed
	PaymentStatusCanceled
	PaymentStatusRefunded
)

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusPaid:
		return "Paid"
	case PaymentStatusFailed:
		return "Failed"
	case PaymentStatusCanceled:
		return "Canceled"
	case PaymentStatusRefunded:
		return "Refunded"
	}
	return "Unknown"
}

// transitions 管理员可以触发的状态流转，Returned 只能通过退货流程进入
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusShipped, StatusDelivered, StatusCanceled},
	StatusConfirmed: {StatusShipped, StatusDelivered, StatusCanceled},
	StatusShipped:   {StatusDelivered, StatusCanceled},
}

func CanTransit(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// PaymentStatusOf 订单状态对应的支付状态，已支付的订单在送达之前保持已支付
func PaymentStatusOf(s Status, current PaymentStatus) PaymentStatus {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped:
		if current == PaymentStatusPaid {
			return PaymentStatusPaid
		}
		return PaymentStatusPending
	case StatusDelivered:
		return PaymentStatusPaid
	case StatusCanceled:
		return PaymentStatusCanceled
	case StatusReturned:
		return PaymentStatusRefunded
	}
	return current
}

// Transit 除取消以外的状态流转，取消要走 Cancel 计算回补
func (o *Order) Transit(to Status) error {
	if to == StatusCanceled || !CanTransit(o.Status, to) {
		return ErrInvalidTransition
	}
	o.Status = to
	o.PaymentStatus = PaymentStatusOf(to, o.PaymentStatus)
	return nil
}
