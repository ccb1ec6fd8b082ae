// Package billing contiene los casos de uso de facturación: contrapartes y
// ciclo de vida de facturas de venta y compra.
package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tanerp/internal/application/dto"
	"github.com/tu-usuario/tanerp/internal/domain"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/domain/repository"
)

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List retorna todos los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) ([]*entity.Supplier, error) {
	return uc.repo.List(ctx)
}

// GetByID busca un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return uc.repo.GetByID(ctx, id)
}

// NextCode siguiente consecutivo SUP-####.
func (uc *SupplierUseCase) NextCode(ctx context.Context) (string, error) {
	return uc.repo.NextCode(ctx)
}

// Create valida el nombre, asigna código consecutivo si no viene y persiste.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	code := in.Code
	if code == "" {
		next, err := uc.repo.NextCode(ctx)
		if err != nil {
			return nil, err
		}
		code = next
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        entity.ID(uuid.New().String()),
		Code:      code,
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		VATNo:     in.VATNo,
		Address:   in.Address,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Update aplica el parche parcial. El código no es parchable: una vez
// asignado, el consecutivo es inmutable.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	if in.Status != nil && *in.Status != entity.StatusActive && *in.Status != entity.StatusInactive {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.Update(ctx, id, func(s *entity.Supplier) {
		if in.Name != nil {
			s.Name = *in.Name
		}
		if in.Phone != nil {
			s.Phone = *in.Phone
		}
		if in.Email != nil {
			s.Email = *in.Email
		}
		if in.VATNo != nil {
			s.VATNo = *in.VATNo
		}
		if in.Address != nil {
			s.Address = *in.Address
		}
		if in.Status != nil {
			s.Status = *in.Status
		}
	})
}

// Deactivate marca el proveedor INACTIVE; idempotente.
func (uc *SupplierUseCase) Deactivate(ctx context.Context, id string) (*entity.Supplier, error) {
	return uc.repo.Update(ctx, id, func(s *entity.Supplier) {
		s.Status = entity.StatusInactive
	})
}

// Remove elimina el proveedor; idempotente.
func (uc *SupplierUseCase) Remove(ctx context.Context, id string) error {
	return uc.repo.Remove(ctx, id)
}
