// Package usecase contiene los casos de uso de maestros de inventario.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tanerp/internal/application/dto"
	"github.com/tu-usuario/tanerp/internal/domain"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/domain/repository"
)

// Valores por defecto de un item nuevo.
const (
	defaultUOM     = "PCS"
	defaultTaxRate = 15
)

// CodeLookup búsqueda de item por código, para validar unicidad en el alta.
type CodeLookup interface {
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
}

// ItemUseCase casos de uso de items: CRUD y desactivación suave.
type ItemUseCase struct {
	repo  repository.ItemRepository
	codes CodeLookup
}

// NewItemUseCase construye el caso de uso. codes suele ser el mismo repo.
func NewItemUseCase(repo repository.ItemRepository, codes CodeLookup) *ItemUseCase {
	return &ItemUseCase{repo: repo, codes: codes}
}

// List retorna todos los items, los más recientes primero.
func (uc *ItemUseCase) List(ctx context.Context) ([]*entity.Item, error) {
	return uc.repo.List(ctx)
}

// GetByID busca un item.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create valida código y nombre, aplica defaults y persiste. Código duplicado
// retorna ErrDuplicate.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*entity.Item, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.codes.GetByCode(ctx, in.Code)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	uom := in.UOM
	if uom == "" {
		uom = defaultUOM
	}
	taxRate := entity.NFromInt(defaultTaxRate)
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}

	now := time.Now()
	item := &entity.Item{
		ID:        entity.ID(uuid.New().String()),
		Code:      in.Code,
		Name:      in.Name,
		UOM:       uom,
		Price:     in.Price,
		TaxRate:   taxRate,
		Status:    entity.StatusActive,
		StockQty:  entity.NFromInt(0),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update aplica el parche sobre el item; los campos nulos no se tocan y el
// stock queda fuera a propósito (solo lo modifica el libro de inventario).
// ErrNotFound si el id no existe.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*entity.Item, error) {
	if in.Status != nil && *in.Status != entity.StatusActive && *in.Status != entity.StatusInactive {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.Update(ctx, id, func(it *entity.Item) {
		if in.Code != nil {
			it.Code = *in.Code
		}
		if in.Name != nil {
			it.Name = *in.Name
		}
		if in.UOM != nil {
			it.UOM = *in.UOM
		}
		if in.Price != nil {
			it.Price = *in.Price
		}
		if in.TaxRate != nil {
			it.TaxRate = *in.TaxRate
		}
		if in.Status != nil {
			it.Status = *in.Status
		}
	})
}

// Deactivate marca el item INACTIVE. Es idempotente: desactivar dos veces
// deja INACTIVE sin error.
func (uc *ItemUseCase) Deactivate(ctx context.Context, id string) (*entity.Item, error) {
	return uc.repo.Update(ctx, id, func(it *entity.Item) {
		it.Status = entity.StatusInactive
	})
}

// Remove elimina el item; idempotente.
func (uc *ItemUseCase) Remove(ctx context.Context, id string) error {
	return uc.repo.Remove(ctx, id)
}
