package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/tu-usuario/tanerp/internal/application/analytics"
	"github.com/tu-usuario/tanerp/internal/application/auth"
	"github.com/tu-usuario/tanerp/internal/application/billing"
	"github.com/tu-usuario/tanerp/internal/application/inventory"
	"github.com/tu-usuario/tanerp/internal/application/usecase"
	"github.com/tu-usuario/tanerp/internal/domain/storage"
	"github.com/tu-usuario/tanerp/internal/infrastructure/filestore"
	"github.com/tu-usuario/tanerp/internal/infrastructure/kvrepo"
	"github.com/tu-usuario/tanerp/internal/infrastructure/memstore"
	infrapdf "github.com/tu-usuario/tanerp/internal/infrastructure/pdf"
	"github.com/tu-usuario/tanerp/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/tanerp/internal/interfaces/http"
	"github.com/tu-usuario/tanerp/pkg/config"
	"github.com/tu-usuario/tanerp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.Close()

	itemRepo := kvrepo.NewItemRepository(store)
	supplierRepo := kvrepo.NewSupplierRepository(store)
	customerRepo := kvrepo.NewCustomerRepository(store)
	salesRepo := kvrepo.NewSalesInvoiceRepository(store)
	purchaseRepo := kvrepo.NewPurchaseInvoiceRepository(store)
	userRepo := kvrepo.NewUserRepository(store)
	sessionRepo := kvrepo.NewSessionRepository(store)

	ledger := inventory.NewStockLedger(itemRepo, log)
	itemUC := usecase.NewItemUseCase(itemRepo, itemRepo)
	supplierUC := billing.NewSupplierUseCase(supplierRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	salesUC := billing.NewSalesInvoiceUseCase(salesRepo, log)
	purchaseUC := billing.NewPurchaseInvoiceUseCase(purchaseRepo, ledger, log)
	dashboardUC := appanalytics.NewDashboardUseCase(itemRepo, supplierRepo, customerRepo, salesRepo, purchaseRepo)

	pdfGenerator := infrapdf.NewInvoicePDFGenerator(cfg.App.Name)
	invoicePDFUC := billing.NewPDFUseCase(salesRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		StockLedger: ledger,
		SupplierUC:  supplierUC,
		CustomerUC:  customerUC,
		SalesUC:     salesUC,
		PurchaseUC:  purchaseUC,
		InvoicePDF:  invoicePDFUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newStore selecciona el backend de colecciones según STORE_DRIVER.
func newStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		return postgres.New(ctx, cfg.DB)
	case config.StoreDriverMemory:
		return memstore.New(), nil
	default:
		return filestore.New(cfg.Store.DataDir)
	}
}
