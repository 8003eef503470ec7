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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/mall/internal/payment/internal/domain"
	"github.com/ecodeclub/mall/internal/pkg/snowflake"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	testCases := []struct {
		name    string
		amount  decimal.Decimal
		handler http.HandlerFunc
		wantErr error
		want    domain.GatewayOrder
	}{
		{
			name:   "金额转换为分",
			amount: decimal.RequireFromString("46.88"),
			handler: func(w http.ResponseWriter, r *http.Request) {
				user, pass, ok := r.BasicAuth()
				if !ok || user != "key" || pass != "secret" || r.URL.Path != "/v1/orders" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				var req createOrderReq
				_ = json.NewDecoder(r.Body).Decode(&req)
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(createOrderResp{
					ID:       "order_1",
					Amount:   req.Amount,
					Currency: req.Currency,
					Receipt:  req.Receipt,
					Status:   "created",
				})
			},
			want: domain.GatewayOrder{ID: "order_1", Amount: 4688, Currency: "INR"},
		},
		{
			name:   "网关返回错误",
			amount: decimal.NewFromInt(80),
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR"}}`))
			},
			wantErr: ErrGatewayFailed,
		},
		{
			name:    "金额为 0",
			amount:  decimal.Zero,
			handler: func(w http.ResponseWriter, r *http.Request) {},
			wantErr: ErrInvalidAmount,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()
			g := newGateway(t, server.URL)
			order, err := g.CreateOrder(context.Background(), tc.amount, "INR")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want.ID, order.ID)
			assert.Equal(t, tc.want.Amount, order.Amount)
			assert.Equal(t, tc.want.Currency, order.Currency)
			assert.Contains(t, order.Receipt, "rcpt_")
		})
	}
}

func TestRazorpayGateway_VerifyPayment(t *testing.T) {
	g := newGateway(t, "http://localhost")
	sig := Sign([]byte("order_1|pay_1"), "secret")
	assert.NoError(t, g.VerifyPayment("order_1", "pay_1", sig))
	assert.ErrorIs(t, g.VerifyPayment("order_1", "pay_2", sig), ErrSignatureMismatch)
	assert.ErrorIs(t, g.VerifyPayment("order_1", "pay_1", "bad"), ErrSignatureMismatch)
}

func TestRazorpayGateway_ParseWebhook(t *testing.T) {
	g := newGateway(t, "http://localhost")
	body := []byte(`{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)

	evt, err := g.ParseWebhook(body, Sign(body, "whsecret"))
	require.NoError(t, err)
	assert.Equal(t, domain.WebhookEvent{
		Event:          domain.EventPaymentFailed,
		GatewayOrderID: "order_1",
		PaymentID:      "pay_1",
	}, evt)

	_, err = g.ParseWebhook(body, Sign(body, "secret"))
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func newGateway(t *testing.T, baseURL string) *RazorpayGateway {
	idGen, err := snowflake.NewBizGenerator(1, snowflake.BizCount)
	require.NoError(t, err)
	client := resty.New().SetBaseURL(baseURL).SetBasicAuth("key", "secret")
	return NewRazorpayGateway(client, "secret", "whsecret", idGen)
}
