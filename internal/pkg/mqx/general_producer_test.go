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

package mqx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	OrderID int64 `json:"orderID"`
}

func TestKeyedProducer(t *testing.T) {
	q := memory.NewMQ()
	const topic = "test_keyed_events"
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	consumer, err := q.Consumer(topic, "test")
	require.NoError(t, err)

	p, err := NewKeyedProducer[testEvent](q, topic, func(evt testEvent) string {
		return "order:1"
	})
	require.NoError(t, err)
	require.NoError(t, p.Produce(context.Background(), testEvent{OrderID: 1}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "order:1", string(msg.Key))
	var evt testEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, int64(1), evt.OrderID)
}
