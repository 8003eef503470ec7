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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/mall/internal/offer/internal/domain"
	"github.com/ecodeclub/mall/internal/offer/internal/event"
	"github.com/ecodeclub/mall/internal/offer/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidOffer    = errors.New("非法的优惠")
	ErrOfferNotStarted = errors.New("优惠尚未开始")
	ErrOfferExpired    = errors.New("优惠已过期")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/offer.mock.go -package=offermocks -typed Service
type Service interface {
	Save(ctx context.Context, o domain.Offer) (int64, error)
	ChangeStatus(ctx context.Context, id int64, status domain.Status) error
	FindByID(ctx context.Context, id int64) (domain.Offer, error)
	List(ctx context.Context, offset, limit int) ([]domain.Offer, int64, error)
	// Effective 计算商品当前生效的优惠价，offerIDs 为商品优惠和分类优惠，0 表示没有
	Effective(ctx context.Context, basePrice decimal.Decimal, offerIDs ...int64) (domain.Resolution, error)
	// Expire 幂等地把优惠标记为过期
	Expire(ctx context.Context, id int64) error
	ExpireAll(ctx context.Context) (int64, error)
}

type service struct {
	repo     repository.OfferRepository
	producer event.OfferExpiredEventProducer
	nowFunc  func() int64
	l        *elog.Component
}

func NewService(repo repository.OfferRepository, producer event.OfferExpiredEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		nowFunc:  func() int64 { return time.Now().UnixMilli() },
		l:        elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, o domain.Offer) (int64, error) {
	if err := s.validate(o); err != nil {
		return 0, err
	}
	if o.Status == domain.StatusUnknown {
		o.Status = domain.StatusInactive
	}
	if o.Status == domain.StatusActive && !o.Started(s.nowFunc()) {
		return 0, ErrOfferNotStarted
	}
	return s.repo.Save(ctx, o)
}

func (s *service) validate(o domain.Offer) error {
	if o.Scope != domain.ScopeProduct && o.Scope != domain.ScopeCategory {
		return fmt.Errorf("%w: 未知的范围 %d", ErrInvalidOffer, o.Scope)
	}
	if o.EndDate <= o.StartDate {
		return fmt.Errorf("%w: 结束时间必须晚于开始时间", ErrInvalidOffer)
	}
	switch o.DiscountType {
	case domain.DiscountTypePercentage:
		if !o.DiscountVal.IsPositive() || o.DiscountVal.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%w: 折扣比例 %s", ErrInvalidOffer, o.DiscountVal)
		}
	case domain.DiscountTypeFixed:
		if !o.DiscountVal.IsPositive() {
			return fmt.Errorf("%w: 优惠金额 %s", ErrInvalidOffer, o.DiscountVal)
		}
	default:
		return fmt.Errorf("%w: 未知的折扣类型 %d", ErrInvalidOffer, o.DiscountType)
	}
	return nil
}

func (s *service) ChangeStatus(ctx context.Context, id int64, status domain.Status) error {
	if status != domain.StatusActive && status != domain.StatusInactive {
		return fmt.Errorf("%w: 非法的状态 %d", ErrInvalidOffer, status)
	}
	if status == domain.StatusActive {
		o, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		now := s.nowFunc()
		if o.Expired(now) {
			return ErrOfferExpired
		}
		if !o.Started(now) {
			return ErrOfferNotStarted
		}
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Offer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Offer, int64, error) {
	var (
		eg     errgroup.Group
		offers []domain.Offer
		total  int64
	)
	eg.Go(func() error {
		var err error
		offers, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return offers, total, eg.Wait()
}

func (s *service) Effective(ctx context.Context, basePrice decimal.Decimal, offerIDs ...int64) (domain.Resolution, error) {
	ids := make([]int64, 0, len(offerIDs))
	for _, id := range offerIDs {
		if id > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return domain.Resolution{Price: basePrice}, nil
	}
	offers, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return domain.Resolution{}, err
	}
	res := domain.Resolve(s.nowFunc(), basePrice, offers...)
	for _, id := range res.Expired {
		// 过期状态交给消费者持久化，失败了还有定时任务兜底
		er := s.producer.Produce(ctx, event.OfferExpiredEvent{ID: id})
		if er != nil {
			s.l.Warn("发送优惠过期事件失败", elog.FieldErr(er), elog.Int64("offerId", id))
		}
	}
	return res, nil
}

func (s *service) Expire(ctx context.Context, id int64) error {
	_, err := s.repo.Expire(ctx, id, s.nowFunc())
	return err
}

func (s *service) ExpireAll(ctx context.Context) (int64, error) {
	return s.repo.ExpireBefore(ctx, s.nowFunc())
}
