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

package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mall/internal/payment/internal/domain"
	"github.com/ecodeclub/mall/internal/pkg/money"
	"github.com/ecodeclub/mall/internal/pkg/snowflake"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
)

var (
	ErrSignatureMismatch = errors.New("支付签名校验失败")
	ErrGatewayFailed     = errors.New("支付网关调用失败")
	ErrInvalidAmount     = errors.New("支付金额必须大于 0")
)

//go:generate mockgen -source=./gateway.go -destination=../../mocks/gateway.mock.go -package=paymentmocks -typed Gateway
type Gateway interface {
	// CreateOrder amount 单位为元，传给网关时转换为分
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (domain.GatewayOrder, error)
	// VerifyPayment 校验客户端回传的支付签名
	VerifyPayment(gatewayOrderID, paymentID, signature string) error
	// ParseWebhook 校验签名并解析回调
	ParseWebhook(body []byte, signature string) (domain.WebhookEvent, error)
}

type RazorpayGateway struct {
	client        *resty.Client
	keySecret     string
	webhookSecret string
	idGen         snowflake.Generator
	l             *elog.Component
}

// NewRazorpayGateway client 需要已经配置好 BaseURL 和 BasicAuth
func NewRazorpayGateway(client *resty.Client, keySecret, webhookSecret string, idGen snowflake.Generator) *RazorpayGateway {
	return &RazorpayGateway{
		client:        client,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		idGen:         idGen,
		l:             elog.DefaultLogger,
	}
}

type createOrderReq struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResp struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (domain.GatewayOrder, error) {
	minor := money.ToMinor(amount)
	if minor <= 0 {
		return domain.GatewayOrder{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	id, err := g.idGen.Generate(snowflake.BizPaymentReceipt)
	if err != nil {
		return domain.GatewayOrder{}, err
	}
	receipt := "rcpt_" + id.String()
	var res createOrderResp
	resp, err := g.client.R().SetContext(ctx).
		SetBody(createOrderReq{Amount: minor, Currency: currency, Receipt: receipt}).
		SetResult(&res).
		Post("/v1/orders")
	if err != nil {
		return domain.GatewayOrder{}, fmt.Errorf("%w: %w", ErrGatewayFailed, err)
	}
	if resp.IsError() {
		g.l.Error("创建网关订单失败",
			elog.Int("status", resp.StatusCode()),
			elog.String("body", resp.String()),
			elog.String("receipt", receipt))
		return domain.GatewayOrder{}, fmt.Errorf("%w: status %d", ErrGatewayFailed, resp.StatusCode())
	}
	return domain.GatewayOrder{
		ID:       res.ID,
		Amount:   res.Amount,
		Currency: res.Currency,
		Receipt:  res.Receipt,
	}, nil
}

func (g *RazorpayGateway) VerifyPayment(gatewayOrderID, paymentID, signature string) error {
	return verify([]byte(gatewayOrderID+"|"+paymentID), g.keySecret, signature)
}

type webhookBody struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func (g *RazorpayGateway) ParseWebhook(body []byte, signature string) (domain.WebhookEvent, error) {
	if err := verify(body, g.webhookSecret, signature); err != nil {
		return domain.WebhookEvent{}, err
	}
	var wb webhookBody
	if err := json.Unmarshal(body, &wb); err != nil {
		return domain.WebhookEvent{}, fmt.Errorf("解析支付回调失败: %w", err)
	}
	return domain.WebhookEvent{
		Event:          wb.Event,
		GatewayOrderID: wb.Payload.Payment.Entity.OrderID,
		PaymentID:      wb.Payload.Payment.Entity.ID,
	}, nil
}

func Sign(data []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

func verify(data []byte, secret, signature string) error {
	expected := Sign(data, secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}
