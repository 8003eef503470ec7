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

package domain

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
)

type Size string

const (
	SizeXS   Size = "XS"
	SizeS    Size = "S"
	SizeM    Size = "M"
	SizeL    Size = "L"
	SizeXL   Size = "XL"
	SizeXXL  Size = "XXL"
	SizeXXXL Size = "XXXL"
)

var sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL, SizeXXXL}

func (s Size) Valid() bool {
	return slice.Contains(sizes, s)
}

func (s Size) String() string {
	return string(s)
}

// Key 唯一确定一个库存桶
type Key struct {
	ProductID int64
	Color     string
	Size      Size
}

// Variant 商品某个颜色某个尺码的库存
type Variant struct {
	ProductID int64
	Color     string
	Size      Size
	Stock     int64
}

func (v Variant) Key() Key {
	return Key{ProductID: v.ProductID, Color: v.Color, Size: v.Size}
}

// Item 一次库存变更涉及的商品
type Item struct {
	ProductID int64
	// Name 只用于提示信息
	Name     string
	Color    string
	Size     Size
	Quantity int64
}

func (i Item) Key() Key {
	return Key{ProductID: i.ProductID, Color: i.Color, Size: i.Size}
}

// Merge 合并同一个库存桶的数量，保持首次出现的顺序
func Merge(items []Item) []Item {
	res := make([]Item, 0, len(items))
	index := make(map[Key]int, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if i, ok := index[it.Key()]; ok {
			res[i].Quantity += it.Quantity
			continue
		}
		index[it.Key()] = len(res)
		res = append(res, it)
	}
	return res
}

var (
	ErrOutOfStock      = errors.New("库存不足")
	ErrVariantNotFound = errors.New("商品规格不存在")
)

// InsufficientStockError 区分“售罄”与“仅剩 N 件”
type InsufficientStockError struct {
	Name      string
	Color     string
	Size      Size
	Available int64
}

func (e *InsufficientStockError) Error() string {
	if e.Available <= 0 {
		return fmt.Sprintf("%s(%s/%s) 已售罄", e.Name, e.Color, e.Size)
	}
	return fmt.Sprintf("%s(%s/%s) 仅剩 %d 件", e.Name, e.Color, e.Size, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrOutOfStock
}
