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

package dao

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestCouponGORMDAO_Redeem(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "首次使用",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `redemptions` .*").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("UPDATE `coupons` SET .*").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `coupon_usages` SET .*").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO `coupon_usages` .*").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "再次使用未达上限",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `redemptions` .*").WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectExec("UPDATE `coupons` SET .*").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `coupon_usages` SET .*").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "总量用完",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `redemptions` .*").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("UPDATE `coupons` SET .*").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrUsageLimitExceeded,
		},
		{
			name: "用户次数用完",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `redemptions` .*").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("UPDATE `coupons` SET .*").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `coupon_usages` SET .*").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO `coupon_usages` .*").WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrUserLimitExceeded,
		},
		{
			name: "重复核销",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `redemptions` .*").WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
				return mockDB
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockGORM(t, tc.mock(t))
			err := NewCouponGORMDAO(db).Redeem(context.Background(), Redemption{
				BizKey:   "ORD-1",
				Uid:      1,
				CouponId: 2,
			}, 2)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCouponGORMDAO_Revert(t *testing.T) {
	testCases := []struct {
		name string
		mock func(t *testing.T) *sql.DB
	}{
		{
			name: "撤销核销",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `redemptions` SET .*").WillReturnResult(sqlmock.NewResult(0, 1))
				rows := sqlmock.NewRows([]string{"id", "biz_key", "uid", "coupon_id", "status"}).
					AddRow(1, "ORD-1", 1, 2, 2)
				mock.ExpectQuery("SELECT \\* FROM `redemptions` WHERE .*").WillReturnRows(rows)
				mock.ExpectExec("UPDATE `coupons` SET .*").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `coupon_usages` SET .*").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "没有核销记录",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `redemptions` SET .*").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
				return mockDB
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockGORM(t, tc.mock(t))
			err := NewCouponGORMDAO(db).Revert(context.Background(), "ORD-1")
			assert.NoError(t, err)
		})
	}
}

func newMockGORM(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
