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

	"github.com/ecodeclub/mall/internal/coupon/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ExpireCouponsJob)(nil)

type ExpireCouponsJob struct {
	svc service.Service
	l   *elog.Component
}

func NewExpireCouponsJob(svc service.Service) *ExpireCouponsJob {
	return &ExpireCouponsJob{svc: svc, l: elog.DefaultLogger}
}

func (j *ExpireCouponsJob) Name() string {
	return "expire_coupons_job"
}

func (j *ExpireCouponsJob) Run(ctx context.Context) error {
	cnt, err := j.svc.ExpireAll(ctx)
	if err != nil {
		return err
	}
	if cnt > 0 {
		j.l.Info("标记过期优惠券", elog.Int64("count", cnt))
	}
	return nil
}
