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

	"github.com/ecodeclub/mall/internal/offer/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ExpireOffersJob)(nil)

// ExpireOffersJob 兜底把所有已经过了结束时间的优惠标记为过期
type ExpireOffersJob struct {
	svc service.Service
	l   *elog.Component
}

func NewExpireOffersJob(svc service.Service) *ExpireOffersJob {
	return &ExpireOffersJob{svc: svc, l: elog.DefaultLogger}
}

func (j *ExpireOffersJob) Name() string {
	return "expire_offers_job"
}

func (j *ExpireOffersJob) Run(ctx context.Context) error {
	cnt, err := j.svc.ExpireAll(ctx)
	if err != nil {
		return err
	}
	j.l.Info("标记过期优惠", elog.Int64("count", cnt))
	return nil
}
