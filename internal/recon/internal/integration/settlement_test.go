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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mall/internal/address"
	"github.com/ecodeclub/mall/internal/cart"
	"github.com/ecodeclub/mall/internal/coupon"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/offer"
	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/ecodeclub/mall/internal/recon"
	testioc "github.com/ecodeclub/mall/internal/test/ioc"
	"github.com/ecodeclub/mall/internal/wallet"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestSettlement(t *testing.T) {
	suite.Run(t, new(SettlementTestSuite))
}

type SettlementTestSuite struct {
	suite.Suite
	db       *egorm.Component
	mq       mq.MQ
	inv      *inventory.Module
	wallet   *wallet.Module
	order    *order.Module
	recon    *recon.Module
	producer mq.Producer
}

func (s *SettlementTestSuite) SetupSuite() {
	t := s.T()
	s.db = testioc.InitDB()
	s.mq = testioc.InitMQ()
	cache := testioc.InitCache()

	productModule := product.InitModule(s.db, cache)
	s.inv = inventory.InitModule(s.db)
	offerModule, err := offer.InitModule(s.db, s.mq)
	require.NoError(t, err)
	couponModule := coupon.InitModule(s.db)
	cartModule := cart.InitModule(s.db, productModule, offerModule, s.inv, couponModule)
	s.wallet = wallet.InitModule(s.db)
	s.order, err = order.InitModule(s.db, s.mq, cache, order.Config{
		ShippingCost: decimal.NewFromInt(5),
		Currency:     "INR",
	}, cartModule, address.InitModule(s.db), couponModule, s.inv, s.wallet, payment.InitModule())
	require.NoError(t, err)
	s.recon, err = recon.InitModule(s.mq, s.order, s.inv, s.wallet)
	require.NoError(t, err)

	s.producer, err = s.mq.Producer(order.SettlementEventName)
	require.NoError(t, err)
}

func (s *SettlementTestSuite) SetupTest() {
	err := s.inv.Svc.Save(context.Background(), inventory.Variant{
		ProductID: 1, Color: "Black", Size: inventory.SizeM, Stock: 10,
	})
	require.NoError(s.T(), err)
}

func (s *SettlementTestSuite) TearDownTest() {
	for _, table := range []string{"order_settlements", "variants", "stock_logs", "wallets", "wallet_transactions"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *SettlementTestSuite) TestExecute() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := s.insertSettlement(t, "STL-e2e-1", 101, time.Now().UnixMilli())
	require.NoError(t, s.recon.Svc.Execute(ctx, id))
	// 重复执行不能重复回补库存或者重复退款
	require.NoError(t, s.recon.Svc.Execute(ctx, id))

	s.assertSettled(t, ctx, id, 12, "30.5")
}

func (s *SettlementTestSuite) TestReplay() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	old := time.Now().Add(-time.Hour).UnixMilli()
	id := s.insertSettlement(t, "STL-e2e-2", 102, old)
	// 刚创建的不参与重放
	s.insertSettlement(t, "STL-e2e-3", 103, time.Now().Add(time.Hour).UnixMilli())

	n, err := s.recon.Svc.Replay(ctx, time.Now().UnixMilli(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	s.assertSettled(t, ctx, id, 12, "30.5")
}

func (s *SettlementTestSuite) TestConsumeSettlementEvent() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := s.insertSettlement(t, "STL-e2e-4", 104, time.Now().UnixMilli())
	val, err := json.Marshal(order.SettlementEvent{SettlementID: id})
	require.NoError(t, err)
	_, err = s.producer.Produce(ctx, &mq.Message{Key: []byte("104"), Value: val})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		stl, er := s.order.SettlementSvc.FindSettlement(ctx, id)
		return er == nil && stl.Done()
	}, 3*time.Second, 50*time.Millisecond)
	s.assertSettled(t, ctx, id, 12, "30.5")
}

func (s *SettlementTestSuite) insertSettlement(t *testing.T, key string, orderID int64, ctime int64) int64 {
	const restock = `[{"productId":1,"name":"T-Shirt","color":"Black","size":"M","quantity":2}]`
	err := s.db.Exec("INSERT INTO `order_settlements` (`biz_key`, `order_id`, `uid`, `restock`, `refund`, `reason`, `status`, `ctime`, `utime`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		key, orderID, 123, restock, "30.50", "cancel", order.SettlementStatusPending.ToUint8(), ctime, ctime).Error
	require.NoError(t, err)
	var id int64
	err = s.db.Raw("SELECT `id` FROM `order_settlements` WHERE `biz_key` = ?", key).Scan(&id).Error
	require.NoError(t, err)
	return id
}

func (s *SettlementTestSuite) assertSettled(t *testing.T, ctx context.Context, id int64, stock int64, balance string) {
	t.Helper()
	stl, err := s.order.SettlementSvc.FindSettlement(ctx, id)
	require.NoError(t, err)
	assert.True(t, stl.Done())

	got, err := s.inv.Svc.Stock(ctx, inventory.Key{ProductID: 1, Color: "Black", Size: inventory.SizeM})
	require.NoError(t, err)
	assert.Equal(t, stock, got)

	w, err := s.wallet.Svc.Find(ctx, 123)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString(balance).Equal(w.Balance), w.Balance.String())
}
