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

// GatewayOrder 网关侧的支付订单，金额单位为分
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

const (
	EventPaymentFailed   = "payment.failed"
	EventPaymentCaptured = "payment.captured"
)

// WebhookEvent 网关回调，只保留订单流转需要的字段
type WebhookEvent struct {
	Event          string
	GatewayOrderID string
	PaymentID      string
}
