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

// Package money 金额统一使用 decimal，保留两位小数
package money

import "github.com/shopspring/decimal"

const Places = 2

var hundred = decimal.NewFromInt(100)

// Round 四舍五入到分
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Percent 计算 base 的 pct%，结果保留两位小数
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return Round(base.Mul(pct).Div(hundred))
}

// ToMinor 转换为最小货币单位，例如 12.34 元 => 1234 分
func ToMinor(d decimal.Decimal) int64 {
	return Round(d).Mul(hundred).IntPart()
}

func FromMinor(v int64) decimal.Decimal {
	return decimal.New(v, -Places)
}

// Clamp 负数按 0 处理
func Clamp(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
