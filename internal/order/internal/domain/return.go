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

import "errors"

var (
	ErrReturnExists   = errors.New("已经申请了整单退货")
	ErrReturnReviewed = errors.New("退货申请已经处理")
	ErrReturnItem     = errors.New("退货商品非法")
)

type ReturnStatus uint8

const (
	ReturnStatusUnknown ReturnStatus = iota
	ReturnStatusPending
	ReturnStatusApproved
	ReturnStatusRejected
)

func (s ReturnStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s ReturnStatus) String() string {
	switch s {
	case ReturnStatusPending:
		return "Pending"
	case ReturnStatusApproved:
		return "Approved"
	case ReturnStatusRejected:
		return "Rejected"
	}
	return "Unknown"
}

type ReturnItem struct {
	ItemID   int64 `json:"itemId"`
	Quantity int64 `json:"quantity"`
	// IsAllItem 申请退回该商品的全部数量
	IsAllItem bool `json:"isAllItem"`
}

// ReturnRequest 一个订单同时最多只有一个待审核的退货申请，
// 后续的单品退货申请都合并到这个申请里
type ReturnRequest struct {
	ID        int64
	OrderID   int64
	UID       int64
	Status    ReturnStatus
	IsAllItem bool
	Items     []ReturnItem
	Reasons   []string
	// Version 待审核期间每次修改都加一
	Version int64
	Ctime   int64
	Utime   int64
}

func (r *ReturnRequest) addReason(reason string) {
	if reason != "" {
		r.Reasons = append(r.Reasons, reason)
	}
}

// AddItem 同一个商品的多次申请合并数量，最多申请到商品剩余的件数
func (r *ReturnRequest) AddItem(it Item, quantity int64, reason string) error {
	if it.Closed() || quantity < 1 {
		return ErrReturnItem
	}
	total := quantity
	idx := -1
	for i, ri := range r.Items {
		if ri.ItemID == it.ID {
			idx = i
			total += ri.Quantity
			break
		}
	}
	if total > it.Remaining() {
		return ErrInvalidQuantity
	}
	ri := ReturnItem{ItemID: it.ID, Quantity: total, IsAllItem: total == it.Remaining()}
	if idx >= 0 {
		r.Items[idx] = ri
	} else {
		r.Items = append(r.Items, ri)
	}
	r.addReason(reason)
	return nil
}

// RemoveItem 返回是否找到了该商品
func (r *ReturnRequest) RemoveItem(itemID int64) bool {
	for i, ri := range r.Items {
		if ri.ItemID == itemID {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ReturnAll 转为整单退货
func (r *ReturnRequest) ReturnAll(reason string) {
	r.IsAllItem = true
	r.addReason(reason)
}

func (r ReturnRequest) Empty() bool {
	return !r.IsAllItem && len(r.Items) == 0
}
