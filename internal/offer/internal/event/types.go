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

package event

import (
	"github.com/ecodeclub/mall/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const OfferExpiredEventName = "offer_expired_events"

// OfferExpiredEvent 读路径上发现优惠已经过期
type OfferExpiredEvent struct {
	ID int64 `json:"id"`
}

type OfferExpiredEventProducer = mqx.Producer[OfferExpiredEvent]

func NewOfferExpiredEventProducer(q mq.MQ) (OfferExpiredEventProducer, error) {
	return mqx.NewGeneralProducer[OfferExpiredEvent](q, OfferExpiredEventName)
}
