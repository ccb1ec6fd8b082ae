// seed puebla el almacén con los datos de demostración: dos clientes, dos
// proveedores, un catálogo corto de artículos y el usuario administrador.
//
// Uso: go run ./cmd/seed
// Respeta STORE_DRIVER y STORE_DATA_DIR; no duplica si ya hay datos.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/domain/storage"
	"github.com/tu-usuario/tanerp/internal/infrastructure/filestore"
	"github.com/tu-usuario/tanerp/internal/infrastructure/kvrepo"
	"github.com/tu-usuario/tanerp/internal/infrastructure/postgres"
	"github.com/tu-usuario/tanerp/pkg/config"
)

const adminPassword = "123456"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	store, err := newStore(ctx, cfg)
	if err != nil {
		fail("inicializar almacenamiento: %v", err)
	}
	defer store.Close()

	now := time.Now()

	customers := kvrepo.NewCustomerRepository(store)
	if empty, _ := isEmpty(ctx, customers.List); empty {
		for _, c := range []*entity.Customer{
			{ID: "1", Name: "ABC Trading Co.", Phone: "555-0101", Email: "ventas@abctrading.test", City: "Quito", Status: entity.StatusActive, CreatedAt: now, UpdatedAt: now},
			{ID: "2", Name: "Matrix Meras", Phone: "555-0102", Email: "compras@matrixmeras.test", City: "Guayaquil", Status: entity.StatusActive, CreatedAt: now, UpdatedAt: now},
		} {
			if err := customers.Create(ctx, c); err != nil {
				fail("sembrar cliente %s: %v", c.Name, err)
			}
		}
		fmt.Println("clientes: 2 sembrados")
	} else {
		fmt.Println("clientes: ya hay datos, se omite")
	}

	suppliers := kvrepo.NewSupplierRepository(store)
	if empty, _ := isEmpty(ctx, suppliers.List); empty {
		for _, s := range []*entity.Supplier{
			{ID: "1", Code: "SUP-0001", Name: "Distribuidora Andina", Phone: "555-0201", Email: "pedidos@andina.test", VATNo: "1790012345001", Address: "Av. Amazonas N34-120", Status: entity.StatusActive, CreatedAt: now, UpdatedAt: now},
			{ID: "2", Code: "SUP-0002", Name: "Importadora del Pacífico", Phone: "555-0202", Email: "ventas@pacifico.test", VATNo: "0991234567001", Address: "Malecón 2000, of. 301", Status: entity.StatusActive, CreatedAt: now, UpdatedAt: now},
		} {
			if err := suppliers.Create(ctx, s); err != nil {
				fail("sembrar proveedor %s: %v", s.Name, err)
			}
		}
		fmt.Println("proveedores: 2 sembrados")
	} else {
		fmt.Println("proveedores: ya hay datos, se omite")
	}

	items := kvrepo.NewItemRepository(store)
	if empty, _ := isEmpty(ctx, items.List); empty {
		for _, it := range []*entity.Item{
			{ID: "1", Code: "ITM-001", Name: "Resma papel A4 75g", UOM: "PCS", Price: number("4.50"), TaxRate: number("15"), Status: entity.StatusActive, StockQty: number("120"), CreatedAt: now, UpdatedAt: now},
			{ID: "2", Code: "ITM-002", Name: "Tóner negro universal", UOM: "PCS", Price: number("38.00"), TaxRate: number("15"), Status: entity.StatusActive, StockQty: number("15"), CreatedAt: now, UpdatedAt: now},
			{ID: "3", Code: "SRV-001", Name: "Soporte técnico (hora)", UOM: "HR", Price: number("25.00"), TaxRate: number("15"), Status: entity.StatusActive, StockQty: number("0"), CreatedAt: now, UpdatedAt: now},
		} {
			if err := items.Create(ctx, it); err != nil {
				fail("sembrar item %s: %v", it.Code, err)
			}
		}
		fmt.Println("items: 3 sembrados")
	} else {
		fmt.Println("items: ya hay datos, se omite")
	}

	users := kvrepo.NewUserRepository(store)
	if empty, _ := isEmpty(ctx, users.List); empty {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			fail("hashear password: %v", err)
		}
		admin := &entity.User{
			ID:           "1",
			Name:         "Administrador",
			Email:        "admin@tanerp.com",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Status:       entity.StatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(ctx, admin); err != nil {
			fail("sembrar usuario admin: %v", err)
		}
		fmt.Println("usuarios: admin@tanerp.com sembrado (password: " + adminPassword + ")")
	} else {
		fmt.Println("usuarios: ya hay datos, se omite")
	}
}

func newStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.Store.Driver == config.StoreDriverPostgres {
		return postgres.New(ctx, cfg.DB)
	}
	return filestore.New(cfg.Store.DataDir)
}

func isEmpty[T any](ctx context.Context, list func(context.Context) ([]T, error)) (bool, error) {
	records, err := list(ctx)
	if err != nil {
		return false, err
	}
	return len(records) == 0, nil
}

func number(s string) entity.Number {
	d, _ := decimal.NewFromString(s)
	return entity.N(d)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
