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

package payment

import (
	"github.com/ecodeclub/mall/internal/payment/internal/domain"
	"github.com/ecodeclub/mall/internal/payment/internal/service"
)

type Module struct {
	Gateway Gateway
}

type (
	Gateway      = service.Gateway
	GatewayOrder = domain.GatewayOrder
	WebhookEvent = domain.WebhookEvent
)

const (
	EventPaymentFailed   = domain.EventPaymentFailed
	EventPaymentCaptured = domain.EventPaymentCaptured
)

var ErrSignatureMismatch = service.ErrSignatureMismatch

// Sign 与网关一致的 HMAC-SHA256 签名
func Sign(data []byte, secret string) string {
	return service.Sign(data, secret)
}
