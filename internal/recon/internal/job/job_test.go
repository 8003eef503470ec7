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
	"testing"
	"time"

	reconmocks "github.com/ecodeclub/mall/internal/recon/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSettlementReplayJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := reconmocks.NewMockService(ctrl)
	start := time.Now()
	svc.EXPECT().Replay(gomock.Any(), gomock.Any(), 100).DoAndReturn(func(ctx context.Context, before int64, limit int) (int, error) {
		// 只重放五分钟之前的结算单
		assert.LessOrEqual(t, before, start.Add(-5*time.Minute).UnixMilli()+1000)
		assert.GreaterOrEqual(t, before, start.Add(-6*time.Minute).UnixMilli())
		return 3, nil
	})
	j := NewSettlementReplayJob(svc, 5*time.Minute, 100)
	assert.Equal(t, "settlement_replay_job", j.Name())
	assert.NoError(t, j.Run(context.Background()))
}
