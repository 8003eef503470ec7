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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
)

type ProductCache interface {
	Get(ctx context.Context, id int64) (domain.Product, error)
	Set(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
}

type ProductECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewProductECache(ec ecache.Cache) ProductCache {
	return &ProductECache{
		ec: &ecache.NamespaceCache{
			Namespace: "product:",
			C:         ec,
		},
		expiration: 10 * time.Minute,
	}
}

func (c *ProductECache) Get(ctx context.Context, id int64) (domain.Product, error) {
	val, err := c.ec.Get(ctx, c.key(id)).AsString()
	if err != nil {
		return domain.Product{}, err
	}
	var p domain.Product
	err = json.Unmarshal([]byte(val), &p)
	return p, err
}

func (c *ProductECache) Set(ctx context.Context, p domain.Product) error {
	val, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.key(p.ID), string(val), c.expiration)
}

func (c *ProductECache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *ProductECache) key(id int64) string {
	return fmt.Sprintf("id:%d", id)
}
