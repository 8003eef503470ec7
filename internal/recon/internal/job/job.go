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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/mall/internal/recon/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SettlementReplayJob)(nil)

// SettlementReplayJob 重放消息丢失或者执行失败的结算单。
// 只处理创建超过 grace 的结算单，避免和正常消费的消息抢着执行
type SettlementReplayJob struct {
	svc   service.Service
	grace time.Duration
	limit int
	l     *elog.Component
}

func NewSettlementReplayJob(svc service.Service, grace time.Duration, limit int) *SettlementReplayJob {
	return &SettlementReplayJob{
		svc:   svc,
		grace: grace,
		limit: limit,
		l:     elog.DefaultLogger}
}

func (j *SettlementReplayJob) Name() string {
	return "settlement_replay_job"
}

func (j *SettlementReplayJob) Run(ctx context.Context) error {
	before := time.Now().Add(-j.grace).UnixMilli()
	cnt, err := j.svc.Replay(ctx, before, j.limit)
	if err != nil {
		return err
	}
	j.l.Info("重放结算单", elog.Int("count", cnt))
	return nil
}
