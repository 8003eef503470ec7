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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/address/internal/domain"
	"github.com/ecodeclub/mall/internal/address/internal/repository/dao"
)

var ErrAddressNotFound = errors.New("地址不存在")

type AddressRepository interface {
	Save(ctx context.Context, a domain.Address) (int64, error)
	FindByID(ctx context.Context, uid, id int64) (domain.Address, error)
	List(ctx context.Context, uid int64) ([]domain.Address, error)
	Delete(ctx context.Context, uid, id int64) error
}

type addressRepository struct {
	dao dao.AddressDAO
}

func NewAddressRepository(d dao.AddressDAO) AddressRepository {
	return &addressRepository{dao: d}
}

func (r *addressRepository) Save(ctx context.Context, a domain.Address) (int64, error) {
	id, err := r.dao.Save(ctx, dao.Address{
		Id:      a.ID,
		Uid:     a.UID,
		Name:    a.Name,
		Phone:   a.Phone,
		Line:    a.Line,
		City:    a.City,
		State:   a.State,
		Pincode: a.Pincode,
	})
	if errors.Is(err, dao.ErrRecordNotFound) {
		return 0, ErrAddressNotFound
	}
	return id, err
}

func (r *addressRepository) FindByID(ctx context.Context, uid, id int64) (domain.Address, error) {
	a, err := r.dao.FindByID(ctx, uid, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Address{}, ErrAddressNotFound
	}
	return r.toDomain(a), err
}

func (r *addressRepository) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	as, err := r.dao.FindByUID(ctx, uid)
	return slice.Map(as, func(idx int, src dao.Address) domain.Address {
		return r.toDomain(src)
	}), err
}

func (r *addressRepository) Delete(ctx context.Context, uid, id int64) error {
	return r.dao.Delete(ctx, uid, id)
}

func (r *addressRepository) toDomain(a dao.Address) domain.Address {
	return domain.Address{
		ID:      a.Id,
		UID:     a.Uid,
		Name:    a.Name,
		Phone:   a.Phone,
		Line:    a.Line,
		City:    a.City,
		State:   a.State,
		Pincode: a.Pincode,
	}
}
