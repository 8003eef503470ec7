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

package ioc

import (
	"time"

	"github.com/ecodeclub/mall/internal/payment/internal/service"
	"github.com/ecodeclub/mall/internal/pkg/snowflake"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/econf"
)

type RazorpayConfig struct {
	KeyID         string        `yaml:"keyID"`
	KeySecret     string        `yaml:"keySecret"`
	WebhookSecret string        `yaml:"webhookSecret"`
	BaseURL       string        `yaml:"baseURL"`
	Timeout       time.Duration `yaml:"timeout"`
}

func InitRazorpayConfig() RazorpayConfig {
	var cfg RazorpayConfig
	err := econf.UnmarshalKey("payment.razorpay", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.razorpay.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return cfg
}

func InitRestyClient(cfg RazorpayConfig) *resty.Client {
	return resty.New().
		SetBaseURL(cfg.BaseURL).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
}

func InitIDGenerator() snowflake.Generator {
	g, err := snowflake.NewBizGenerator(uint(econf.GetInt("snowflake.node")), snowflake.BizCount)
	if err != nil {
		panic(err)
	}
	return g
}

func InitRazorpayGateway(client *resty.Client, cfg RazorpayConfig, idGen snowflake.Generator) *service.RazorpayGateway {
	return service.NewRazorpayGateway(client, cfg.KeySecret, cfg.WebhookSecret, idGen)
}
