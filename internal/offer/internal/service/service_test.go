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
	"sync"
	"testing"

	"github.com/ecodeclub/mall/internal/offer/internal/domain"
	"github.com/ecodeclub/mall/internal/offer/internal/event"
	"github.com/ecodeclub/mall/internal/offer/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const now int64 = 1_700_000_000_000

type memoryRepository struct {
	mu     sync.Mutex
	offers map[int64]domain.Offer
	nextID int64
}

func newMemoryRepository(os ...domain.Offer) *memoryRepository {
	r := &memoryRepository{offers: make(map[int64]domain.Offer), nextID: 100}
	for _, o := range os {
		r.offers[o.ID] = o
	}
	return r
}

func (r *memoryRepository) Save(ctx context.Context, o domain.Offer) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == 0 {
		r.nextID++
		o.ID = r.nextID
	}
	r.offers[o.ID] = o
	return o.ID, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (domain.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offers[id]
	if !ok {
		return domain.Offer{}, repository.ErrOfferNotFound
	}
	return o, nil
}

func (r *memoryRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]domain.Offer, 0, len(ids))
	for _, id := range ids {
		if o, ok := r.offers[id]; ok {
			res = append(res, o)
		}
	}
	return res, nil
}

func (r *memoryRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offers[id]
	if !ok {
		return repository.ErrOfferNotFound
	}
	o.Status = status
	r.offers[id] = o
	return nil
}

func (r *memoryRepository) Expire(ctx context.Context, id int64, now int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offers[id]
	if !ok || o.Status == domain.StatusExpired || o.EndDate >= now {
		return false, nil
	}
	o.Status = domain.StatusExpired
	r.offers[id] = o
	return true, nil
}

func (r *memoryRepository) ExpireBefore(ctx context.Context, now int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var cnt int64
	for id, o := range r.offers {
		if o.Status != domain.StatusExpired && o.EndDate < now {
			o.Status = domain.StatusExpired
			r.offers[id] = o
			cnt++
		}
	}
	return cnt, nil
}

func (r *memoryRepository) List(ctx context.Context, offset, limit int) ([]domain.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]domain.Offer, 0, len(r.offers))
	for _, o := range r.offers {
		res = append(res, o)
	}
	return res, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.offers)), nil
}

type recordingProducer struct {
	mu     sync.Mutex
	events []event.OfferExpiredEvent
	err    error
}

func (p *recordingProducer) Produce(ctx context.Context, evt event.OfferExpiredEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

func newTestService(repo repository.OfferRepository, p event.OfferExpiredEventProducer) *service {
	svc := NewService(repo, p).(*service)
	svc.nowFunc = func() int64 { return now }
	return svc
}

func percentageOffer(id int64, pct int64) domain.Offer {
	return domain.Offer{
		ID:           id,
		Name:         "限时折扣",
		Scope:        domain.ScopeProduct,
		DiscountType: domain.DiscountTypePercentage,
		DiscountVal:  decimal.NewFromInt(pct),
		StartDate:    now - 1000,
		EndDate:      now + 1000,
		Status:       domain.StatusActive,
	}
}

func TestService_Save(t *testing.T) {
	testCases := []struct {
		name    string
		offer   func() domain.Offer
		wantErr error
	}{
		{
			name:  "保存成功",
			offer: func() domain.Offer { return percentageOffer(0, 10) },
		},
		{
			name: "百分比超过100",
			offer: func() domain.Offer {
				return percentageOffer(0, 120)
			},
			wantErr: ErrInvalidOffer,
		},
		{
			name: "固定金额为0",
			offer: func() domain.Offer {
				o := percentageOffer(0, 10)
				o.DiscountType = domain.DiscountTypeFixed
				o.DiscountVal = decimal.Zero
				return o
			},
			wantErr: ErrInvalidOffer,
		},
		{
			name: "结束时间早于开始时间",
			offer: func() domain.Offer {
				o := percentageOffer(0, 10)
				o.EndDate = o.StartDate - 1
				return o
			},
			wantErr: ErrInvalidOffer,
		},
		{
			name: "未开始的优惠不能直接启用",
			offer: func() domain.Offer {
				o := percentageOffer(0, 10)
				o.StartDate = now + 100
				return o
			},
			wantErr: ErrOfferNotStarted,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(newMemoryRepository(), &recordingProducer{})
			id, err := svc.Save(context.Background(), tc.offer())
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.NotZero(t, id)
			}
		})
	}
}

func TestService_ChangeStatus(t *testing.T) {
	future := percentageOffer(1, 10)
	future.StartDate = now + 100
	future.Status = domain.StatusInactive
	expired := percentageOffer(2, 10)
	expired.EndDate = now - 1
	expired.Status = domain.StatusInactive
	repo := newMemoryRepository(future, expired, percentageOffer(3, 10))
	svc := newTestService(repo, &recordingProducer{})
	ctx := context.Background()

	assert.ErrorIs(t, svc.ChangeStatus(ctx, 1, domain.StatusActive), ErrOfferNotStarted)
	assert.ErrorIs(t, svc.ChangeStatus(ctx, 2, domain.StatusActive), ErrOfferExpired)
	assert.ErrorIs(t, svc.ChangeStatus(ctx, 3, domain.StatusExpired), ErrInvalidOffer)
	assert.ErrorIs(t, svc.ChangeStatus(ctx, 4, domain.StatusActive), repository.ErrOfferNotFound)

	require.NoError(t, svc.ChangeStatus(ctx, 3, domain.StatusInactive))
	o, err := svc.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, o.Status)
}

func TestService_Effective(t *testing.T) {
	productOffer := percentageOffer(1, 10)
	categoryOffer := percentageOffer(2, 20)
	categoryOffer.StartDate = now - 10
	expired := percentageOffer(3, 50)
	expired.EndDate = now - 1

	testCases := []struct {
		name        string
		ids         []int64
		producerErr error
		wantPrice   string
		wantApplied bool
		wantOffer   int64
		wantEvents  []event.OfferExpiredEvent
	}{
		{
			name:      "没有优惠",
			ids:       []int64{0, 0},
			wantPrice: "80",
		},
		{
			name:        "开始时间更晚的分类优惠生效",
			ids:         []int64{1, 2},
			wantPrice:   "64",
			wantApplied: true,
			wantOffer:   2,
		},
		{
			name:        "过期的优惠发送事件并回退到另一个",
			ids:         []int64{3, 1},
			wantPrice:   "72",
			wantApplied: true,
			wantOffer:   1,
			wantEvents:  []event.OfferExpiredEvent{{ID: 3}},
		},
		{
			name:        "发送事件失败不影响计算",
			ids:         []int64{3},
			producerErr: errors.New("mq error"),
			wantPrice:   "80",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &recordingProducer{err: tc.producerErr}
			svc := newTestService(newMemoryRepository(productOffer, categoryOffer, expired), p)
			res, err := svc.Effective(context.Background(), decimal.NewFromInt(80), tc.ids...)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPrice, res.Price.String())
			assert.Equal(t, tc.wantApplied, res.Applied)
			if tc.wantApplied {
				assert.Equal(t, tc.wantOffer, res.Offer.ID)
			}
			assert.Equal(t, tc.wantEvents, p.events)
		})
	}
}

func TestService_ExpireAll(t *testing.T) {
	expired := percentageOffer(1, 10)
	expired.EndDate = now - 1
	repo := newMemoryRepository(expired, percentageOffer(2, 10))
	svc := newTestService(repo, &recordingProducer{})
	cnt, err := svc.ExpireAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
	// 重复执行是幂等的
	cnt, err = svc.ExpireAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, cnt)
	require.NoError(t, svc.Expire(context.Background(), 1))
}
