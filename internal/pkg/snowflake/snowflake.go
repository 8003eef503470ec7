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

// Package snowflake 按业务划分节点的雪花 ID
package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Biz | 5 Bit NodeID  |   12 Bit Sequence ID   |
// +---------------------------------------------------------------------------------------+

const (
	maxNode uint = 31
	maxBiz  uint = 31
)

// 已经分配的业务，只能追加
const (
	BizPaymentReceipt uint = iota
	BizCount
)

var (
	ErrExceedNode = errors.New("node 超出限制")
	ErrExceedBiz  = errors.New("biz 超出限制")
	ErrUnknownBiz = errors.New("未知的 biz")
)

type Generator interface {
	Generate(biz uint) (ID, error)
}

type BizGenerator struct {
	nodes syncx.Map[uint, *snowflake.Node]
}

func NewBizGenerator(nodeID uint, bizs uint) (*BizGenerator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	if bizs > maxBiz+1 {
		return nil, fmt.Errorf("%w: %d", ErrExceedBiz, bizs)
	}
	g := &BizGenerator{}
	for i := uint(0); i < bizs; i++ {
		n, err := snowflake.NewNode(int64(i<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(i, n)
	}
	return g, nil
}

func (g *BizGenerator) Generate(biz uint) (ID, error) {
	n, ok := g.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBiz, biz)
	}
	return ID(n.Generate()), nil
}

type ID int64

func (f ID) Biz() uint {
	return uint(snowflake.ID(f).Node() >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}

func (f ID) String() string {
	return snowflake.ID(f).Base36()
}
