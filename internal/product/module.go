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

package product

import (
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository"
	"github.com/ecodeclub/mall/internal/product/internal/service"
	"github.com/ecodeclub/mall/internal/product/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Product      = domain.Product
	Category     = domain.Category
	Status       = domain.Status
)

const (
	StatusListed   = domain.StatusListed
	StatusUnlisted = domain.StatusUnlisted
)

var (
	ErrProductNotFound  = repository.ErrProductNotFound
	ErrCategoryNotFound = repository.ErrCategoryNotFound
)
