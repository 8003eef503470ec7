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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	items := Merge([]Item{
		{ProductID: 1, Color: "red", Size: SizeM, Quantity: 1},
		{ProductID: 2, Color: "red", Size: SizeM, Quantity: 2},
		{ProductID: 1, Color: "red", Size: SizeM, Quantity: 3},
		{ProductID: 1, Color: "blue", Size: SizeM, Quantity: 0},
	})
	assert.Equal(t, []Item{
		{ProductID: 1, Color: "red", Size: SizeM, Quantity: 4},
		{ProductID: 2, Color: "red", Size: SizeM, Quantity: 2},
	}, items)
}

func TestInsufficientStockError(t *testing.T) {
	var err error = &InsufficientStockError{Name: "T恤", Color: "red", Size: SizeM}
	assert.Equal(t, "T恤(red/M) 已售罄", err.Error())
	assert.True(t, errors.Is(err, ErrOutOfStock))

	err = &InsufficientStockError{Name: "T恤", Color: "red", Size: SizeM, Available: 2}
	assert.Equal(t, "T恤(red/M) 仅剩 2 件", err.Error())
	var ise *InsufficientStockError
	assert.True(t, errors.As(err, &ise))
	assert.Equal(t, int64(2), ise.Available)
}

func TestSize_Valid(t *testing.T) {
	assert.True(t, SizeXXXL.Valid())
	assert.False(t, Size("XXXXL").Valid())
}
