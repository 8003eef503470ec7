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
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type TopicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type KafkaConfig struct {
	Network   string        `yaml:"network"`
	Addresses []string      `yaml:"addresses"`
	Topics    []TopicConfig `yaml:"topics"`
}

// InitMQ 启动时确保 offer_expired_events 和 settlement_events 已经存在。
// 结算事件按订单 ID 分区，分区数决定对账的并发度
func InitMQ() mq.MQ {
	var cfg KafkaConfig
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, t := range cfg.Topics {
		partitions := max(t.Partitions, 1)
		if err = q.CreateTopic(ctx, t.Name, partitions); err != nil {
			panic(fmt.Errorf("创建 topic %s 失败: %w", t.Name, err))
		}
		elog.DefaultLogger.Info("topic 就绪", elog.String("topic", t.Name), elog.Int("partitions", partitions))
	}
	return q
}
