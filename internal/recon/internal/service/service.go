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

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/wallet"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var settlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mall_settlements_total",
	Help: "Number of executed settlements",
}, []string{"result"})

const (
	resultDone    = "done"
	resultSkipped = "skipped"
	resultFailed  = "failed"
)

//go:generate mockgen -source=./service.go -package=reconmocks -destination=../../mocks/recon.mock.go -typed Service
type Service interface {
	// Execute 执行结算单：回补库存、退款，全部成功之后标记完成。重复执行是安全的
	Execute(ctx context.Context, settlementID int64) error
	// Replay 重放 before 之前创建、仍未完成的结算单，返回成功执行的数量
	Replay(ctx context.Context, before int64, limit int) (int, error)
}

type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxRetries      int32
}

type service struct {
	settlementSvc order.SettlementService
	invSvc        inventory.Service
	walletSvc     wallet.Service
	cfg           RetryConfig
	l             *elog.Component
}

func NewService(settlementSvc order.SettlementService,
	invSvc inventory.Service,
	walletSvc wallet.Service,
	cfg RetryConfig) Service {
	return &service{
		settlementSvc: settlementSvc,
		invSvc:        invSvc,
		walletSvc:     walletSvc,
		cfg:           cfg,
		l:             elog.DefaultLogger,
	}
}

func (s *service) Execute(ctx context.Context, settlementID int64) error {
	stl, err := s.settlementSvc.FindSettlement(ctx, settlementID)
	if err != nil {
		return fmt.Errorf("查找结算单失败 id=%d: %w", settlementID, err)
	}
	if stl.Done() {
		settlementsTotal.WithLabelValues(resultSkipped).Inc()
		return nil
	}
	err = s.execute(ctx, stl)
	if err != nil {
		settlementsTotal.WithLabelValues(resultFailed).Inc()
		return err
	}
	settlementsTotal.WithLabelValues(resultDone).Inc()
	return nil
}

// execute 每一步都以结算单的 Key 做幂等键，失败之后整体重试
func (s *service) execute(ctx context.Context, stl order.Settlement) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.cfg.InitialInterval, s.cfg.MaxInterval, s.cfg.MaxRetries)
	if err != nil {
		return err
	}
	for {
		err = s.apply(ctx, stl)
		if err == nil {
			return nil
		}
		d, ok := strategy.Next()
		if !ok {
			s.l.Error("执行结算单超过最大重试次数",
				elog.Int64("settlementId", stl.ID),
				elog.Int64("orderId", stl.OrderID),
				elog.FieldErr(err))
			return fmt.Errorf("执行结算单失败 id=%d: %w", stl.ID, err)
		}
		s.l.Warn("执行结算单失败，准备重试",
			elog.Int64("settlementId", stl.ID), elog.FieldErr(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
}

func (s *service) apply(ctx context.Context, stl order.Settlement) error {
	if len(stl.Restock) > 0 {
		err := s.invSvc.Release(ctx, stl.Key, toInventoryItems(stl.Restock))
		if err != nil {
			return err
		}
	}
	if stl.Refund.IsPositive() {
		err := s.walletSvc.Refund(ctx, stl.UID, stl.Refund, stl.Key, fmt.Sprintf("订单 %d 退款", stl.OrderID))
		if err != nil {
			return err
		}
	}
	return s.settlementSvc.CompleteSettlement(ctx, stl.ID)
}

func (s *service) Replay(ctx context.Context, before int64, limit int) (int, error) {
	cnt := 0
	for {
		stls, err := s.settlementSvc.ListPendingSettlements(ctx, before, limit)
		if err != nil {
			return cnt, fmt.Errorf("查找待执行的结算单失败: %w", err)
		}
		failed := false
		for _, stl := range stls {
			if er := s.Execute(ctx, stl.ID); er != nil {
				// 留给下一次任务
				failed = true
				s.l.Warn("重放结算单失败", elog.Int64("settlementId", stl.ID), elog.FieldErr(er))
				continue
			}
			cnt++
		}
		// 失败的结算单仍然是待执行状态，继续查询只会查到它们
		if failed || len(stls) < limit {
			return cnt, nil
		}
	}
}

func toInventoryItems(lines []order.StockLine) []inventory.Item {
	return slice.Map(lines, func(idx int, src order.StockLine) inventory.Item {
		return inventory.Item{
			ProductID: src.ProductID,
			Name:      src.Name,
			Color:     src.Color,
			Size:      inventory.Size(src.Size),
			Quantity:  src.Quantity,
		}
	})
}
