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

	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
)

// SettlementService 给对账模块使用
//
//go:generate mockgen -source=./settlement.go -package=ordermocks -destination=../../mocks/settlement.mock.go -typed SettlementService
type SettlementService interface {
	FindSettlement(ctx context.Context, id int64) (domain.Settlement, error)
	// CompleteSettlement 标记结算单已执行，重复调用不报错
	CompleteSettlement(ctx context.Context, id int64) error
	// ListPendingSettlements 创建时间早于 before 且还没执行的结算单
	ListPendingSettlements(ctx context.Context, before int64, limit int) ([]domain.Settlement, error)
}

type settlementService struct {
	repo repository.OrderRepository
}

func NewSettlementService(repo repository.OrderRepository) SettlementService {
	return &settlementService{repo: repo}
}

func (s *settlementService) FindSettlement(ctx context.Context, id int64) (domain.Settlement, error) {
	return s.repo.FindSettlement(ctx, id)
}

func (s *settlementService) CompleteSettlement(ctx context.Context, id int64) error {
	return s.repo.CompleteSettlement(ctx, id)
}

func (s *settlementService) ListPendingSettlements(ctx context.Context, before int64, limit int) ([]domain.Settlement, error) {
	return s.repo.ListPendingSettlements(ctx, before, limit)
}
