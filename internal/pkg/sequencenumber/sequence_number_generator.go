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

package sequencenumber

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const orderPrefix = "ORD"

type TimestampGenerateFunc func(time.Time) int64

// DigitsGenerateFunc 返回 [0, 10000) 之间的随机数
type DigitsGenerateFunc func() int

type Generator struct {
	timestampGenFunc TimestampGenerateFunc
	digitsGenFunc    DigitsGenerateFunc
}

func NewGeneratorWith(timestampGen TimestampGenerateFunc, digitsGen DigitsGenerateFunc) *Generator {
	return &Generator{
		timestampGenFunc: timestampGen,
		digitsGenFunc:    digitsGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(func(t time.Time) int64 { return t.UnixMilli() },
		func() int { return rand.IntN(10000) })
}

// Generate 生成形如 ORD-1700000000000-0042 的订单号
// 同一毫秒内可能重复，调用方依赖唯一索引重试
func (s *Generator) Generate() string {
	timestamp := s.timestampGenFunc(time.Now())
	digits := s.digitsGenFunc() % 10000
	if digits < 0 {
		digits = -digits
	}
	return fmt.Sprintf("%s-%d-%04d", orderPrefix, timestamp, digits)
}
