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

package web

import "github.com/ecodeclub/mall/internal/address/internal/domain"

type Address struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line    string `json:"line"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

func newAddress(a domain.Address) Address {
	return Address{
		ID:      a.ID,
		Name:    a.Name,
		Phone:   a.Phone,
		Line:    a.Line,
		City:    a.City,
		State:   a.State,
		Pincode: a.Pincode,
	}
}

type IDReq struct {
	ID int64 `json:"id"`
}
