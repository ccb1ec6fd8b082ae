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

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List retorna todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*entity.Customer, error) {
	return uc.repo.List(ctx)
}

// GetByID busca un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create valida el nombre y persiste el cliente como ACTIVE.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        entity.ID(uuid.New().String()),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		City:      in.City,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update aplica el parche parcial. ErrNotFound si el id no existe.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	if in.Status != nil && *in.Status != entity.StatusActive && *in.Status != entity.StatusInactive {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.Update(ctx, id, func(c *entity.Customer) {
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}
		if in.Email != nil {
			c.Email = *in.Email
		}
		if in.City != nil {
			c.City = *in.City
		}
		if in.Status != nil {
			c.Status = *in.Status
		}
	})
}

// Deactivate marca el cliente INACTIVE; idempotente.
func (uc *CustomerUseCase) Deactivate(ctx context.Context, id string) (*entity.Customer, error) {
	return uc.repo.Update(ctx, id, func(c *entity.Customer) {
		c.Status = entity.StatusInactive
	})
}
