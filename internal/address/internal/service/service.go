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
	"strings"

	"github.com/ecodeclub/mall/internal/address/internal/domain"
	"github.com/ecodeclub/mall/internal/address/internal/repository"
)

var ErrInvalidAddress = errors.New("地址信息不完整")

//go:generate mockgen -source=./service.go -destination=../../mocks/address.mock.go -package=addressmocks -typed Service
type Service interface {
	Save(ctx context.Context, a domain.Address) (int64, error)
	List(ctx context.Context, uid int64) ([]domain.Address, error)
	// FindByID 只能查到自己的地址
	FindByID(ctx context.Context, uid, id int64) (domain.Address, error)
	Delete(ctx context.Context, uid, id int64) error
}

type service struct {
	repo repository.AddressRepository
}

func NewService(repo repository.AddressRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, a domain.Address) (int64, error) {
	for _, f := range []string{a.Name, a.Phone, a.Line, a.City, a.Pincode} {
		if strings.TrimSpace(f) == "" {
			return 0, ErrInvalidAddress
		}
	}
	return s.repo.Save(ctx, a)
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	return s.repo.List(ctx, uid)
}

func (s *service) FindByID(ctx context.Context, uid, id int64) (domain.Address, error) {
	return s.repo.FindByID(ctx, uid, id)
}

func (s *service) Delete(ctx context.Context, uid, id int64) error {
	return s.repo.Delete(ctx, uid, id)
}
