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

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBizGenerator(t *testing.T) {
	testCases := []struct {
		name    string
		nodeID  uint
		bizs    uint
		wantErr error
	}{
		{name: "node 超出限制", nodeID: 32, bizs: BizCount, wantErr: ErrExceedNode},
		{name: "biz 超出限制", nodeID: 3, bizs: 33, wantErr: ErrExceedBiz},
		{name: "正常", nodeID: 0, bizs: BizCount},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBizGenerator(tc.nodeID, tc.bizs)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBizGenerator_Generate(t *testing.T) {
	g, err := NewBizGenerator(1, 4)
	require.NoError(t, err)
	seen := make(map[int64]struct{}, 40000)
	for biz := uint(0); biz < 4; biz++ {
		for i := 0; i < 10000; i++ {
			id, err := g.Generate(biz)
			require.NoError(t, err)
			assert.Equal(t, biz, id.Biz())
			_, ok := seen[id.Int64()]
			require.False(t, ok)
			seen[id.Int64()] = struct{}{}
		}
	}

	_, err = g.Generate(4)
	assert.ErrorIs(t, err, ErrUnknownBiz)
}
