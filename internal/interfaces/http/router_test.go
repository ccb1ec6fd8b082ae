package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tanerp/internal/application/analytics"
	"github.com/tu-usuario/tanerp/internal/application/auth"
	"github.com/tu-usuario/tanerp/internal/application/billing"
	"github.com/tu-usuario/tanerp/internal/application/inventory"
	"github.com/tu-usuario/tanerp/internal/application/usecase"
	"github.com/tu-usuario/tanerp/internal/infrastructure/kvrepo"
	"github.com/tu-usuario/tanerp/internal/infrastructure/memstore"
	infrapdf "github.com/tu-usuario/tanerp/internal/infrastructure/pdf"
	apphttp "github.com/tu-usuario/tanerp/internal/interfaces/http"
	"github.com/tu-usuario/tanerp/pkg/logger"
)

// newTestAPI arma la aplicación completa sobre un almacén en memoria, igual
// que el cableado de cmd/api pero sin red ni disco.
func newTestAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memstore.New()
	log := logger.Nop()

	itemRepo := kvrepo.NewItemRepository(store)
	supplierRepo := kvrepo.NewSupplierRepository(store)
	customerRepo := kvrepo.NewCustomerRepository(store)
	salesRepo := kvrepo.NewSalesInvoiceRepository(store)
	purchaseRepo := kvrepo.NewPurchaseInvoiceRepository(store)

	ledger := inventory.NewStockLedger(itemRepo, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ItemUC:      usecase.NewItemUseCase(itemRepo, itemRepo),
		StockLedger: ledger,
		SupplierUC:  billing.NewSupplierUseCase(supplierRepo),
		CustomerUC:  billing.NewCustomerUseCase(customerRepo),
		SalesUC:     billing.NewSalesInvoiceUseCase(salesRepo, log),
		PurchaseUC:  billing.NewPurchaseInvoiceUseCase(purchaseRepo, ledger, log),
		InvoicePDF:  billing.NewPDFUseCase(salesRepo, infrapdf.NewInvoicePDFGenerator("tan-erp-test")),
		DashboardUC: analytics.NewDashboardUseCase(itemRepo, supplierRepo, customerRepo, salesRepo, purchaseRepo),
		AuthUC: auth.NewAuthUseCase(
			kvrepo.NewUserRepository(store),
			kvrepo.NewSessionRepository(store),
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer},
		),
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin da de alta un usuario y retorna su token.
func registerAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "admin@tanerp.com", "password": "123456", "role": "admin",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@tanerp.com", "password": "123456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// TestAPI_RutasProtegidasSinToken cualquier ruta bajo /api (salvo auth)
// exige Bearer token.
func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	app := newTestAPI(t)

	for _, path := range []string{"/api/items", "/api/customers", "/api/sales-invoices", "/api/dashboard/summary"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "ruta %s", path)
		resp.Body.Close()
	}
}

// TestAPI_CicloFacturaVenta flujo completo por HTTP: alta de cliente,
// borrador, contabilización y rechazo de la recontabilización con 409.
func TestAPI_CicloFacturaVenta(t *testing.T) {
	app := newTestAPI(t)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/customers", token, map[string]string{"name": "ABC Trading Co."})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	customer := decode(t, resp)

	draftReq := map[string]any{
		"customerId":   customer["id"],
		"customerName": "ABC Trading Co.",
		"lines": []map[string]any{
			{"description": "Resma papel", "qty": 10, "price": 100, "discountPct": 10, "taxPct": 15},
		},
	}
	resp = doJSON(t, app, http.MethodPost, "/api/sales-invoices", token, draftReq)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	draft := decode(t, resp)
	assert.Equal(t, "DRAFT", draft["status"])
	assert.Equal(t, "SI-000001", draft["invoiceNo"])
	assert.EqualValues(t, 1035, draft["grandTotal"])

	invoiceID, _ := draft["id"].(string)
	require.NotEmpty(t, invoiceID)

	postPath := fmt.Sprintf("/api/sales-invoices/%s/post", invoiceID)
	resp = doJSON(t, app, http.MethodPost, postPath, token, draftReq)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	posted := decode(t, resp)
	assert.Equal(t, "POSTED", posted["status"])

	resp = doJSON(t, app, http.MethodPost, postPath, token, draftReq)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decode(t, resp)
	assert.Equal(t, "ALREADY_POSTED", errBody["code"])
}

// TestAPI_CompraAjustaStock contabilizar una compra por HTTP suma la
// cantidad al stock del item.
func TestAPI_CompraAjustaStock(t *testing.T) {
	app := newTestAPI(t)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/items", token, map[string]any{
		"code": "ITM-001", "name": "Resma papel",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decode(t, resp)
	itemID, _ := item["id"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/purchase-invoices/new/post", token, map[string]any{
		"supplierName": "Distribuidora Andina",
		"lines": []map[string]any{
			{"itemId": itemID, "description": "Resma papel", "qty": 5, "cost": 4},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/items/"+itemID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode(t, resp)
	assert.EqualValues(t, 5, got["stockQty"])
}

// TestAPI_AjusteManualDeStock el endpoint de ajustes admite deltas
// negativos.
func TestAPI_AjusteManualDeStock(t *testing.T) {
	app := newTestAPI(t)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/items", token, map[string]any{
		"code": "ITM-001", "name": "Tóner",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decode(t, resp)
	itemID, _ := item["id"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", token, map[string]any{
		"item_id": itemID, "delta": -2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	adjusted := decode(t, resp)
	assert.EqualValues(t, -2, adjusted["stockQty"])
}

// TestAPI_PDFFacturaVenta la representación imprimible responde con
// contenido PDF.
func TestAPI_PDFFacturaVenta(t *testing.T) {
	app := newTestAPI(t)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/sales-invoices", token, map[string]any{
		"customerName": "ABC Trading Co.",
		"lines": []map[string]any{
			{"description": "Soporte técnico", "qty": 2, "price": 25, "taxPct": 15},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	draft := decode(t, resp)
	invoiceID, _ := draft["id"].(string)

	resp = doJSON(t, app, http.MethodGet, "/api/sales-invoices/"+invoiceID+"/pdf", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

// TestAPI_NextNumber el consecutivo se consulta sin crear documento.
func TestAPI_NextNumber(t *testing.T) {
	app := newTestAPI(t)
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/sales-invoices/next-number", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "SI-000001", body["invoiceNo"])

	resp = doJSON(t, app, http.MethodGet, "/api/suppliers/next-code", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	assert.Equal(t, "SUP-0001", body["code"])
}
