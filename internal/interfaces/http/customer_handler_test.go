package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appcustomer "github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/customer"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/dto"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/infrastructure/memory"
	apphttp "github.com/yasniel1408/taxdown-shop-motorbikes/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la aplicación completa contra el repositorio en memoria,
// con el mismo Router que usa cmd/api.
func buildTestApp() *fiber.App {
	repo := memory.NewCustomerRepository()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CreateCustomer: appcustomer.NewCreateCustomerUseCase(repo),
		GetCustomer:    appcustomer.NewGetCustomerUseCase(repo),
		ListCustomers:  appcustomer.NewListCustomersUseCase(repo),
		UpdateCustomer: appcustomer.NewUpdateCustomerUseCase(repo),
		DeleteCustomer: appcustomer.NewDeleteCustomerUseCase(repo),
		AddCredit:      appcustomer.NewAddCreditUseCase(repo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", "test-key")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeCustomer(t *testing.T, resp *http.Response) dto.CustomerResponse {
	t.Helper()
	var out dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createViaHTTP(t *testing.T, app *fiber.App, name, email string, credit float64) dto.CustomerResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/customers", fiber.Map{
		"name":            name,
		"email":           email,
		"phone":           "1234567890",
		"availableCredit": credit,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeCustomer(t, resp)
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_EsPublico(t *testing.T) {
	app := buildTestApp()

	// Sin x-api-key: el liveness probe no está detrás del middleware.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/customers
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCustomer_Retorna201(t *testing.T) {
	app := buildTestApp()

	created := createViaHTTP(t, app, "John Doe", "john@example.com", 1000)

	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, "John Doe", created.Name)
	assert.Equal(t, "1000", created.AvailableCredit.String())
}

func TestCreateCustomer_SinAPIKey_Retorna401(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateCustomer_EmailInvalido_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/customers", fiber.Map{
		"name":  "John",
		"email": "no-es-un-email",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_CUSTOMER_DATA", decodeError(t, resp).Code)
}

func TestCreateCustomer_CreditoNegativo_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/customers", fiber.Map{
		"name":            "J",
		"email":           "j@x.com",
		"phone":           "1234567890",
		"availableCredit": -100,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_AMOUNT", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/customers/:userId
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCustomer_RoundTripHTTP(t *testing.T) {
	app := buildTestApp()
	created := createViaHTTP(t, app, "John Doe", "john@example.com", 1000)

	resp := doJSON(t, app, http.MethodGet, "/api/customers/"+created.UserID, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeCustomer(t, resp)
	assert.Equal(t, created.UserID, got.UserID)
	assert.Equal(t, "john@example.com", got.Email)
	assert.Equal(t, "1234567890", got.Phone)
	assert.Equal(t, "1000", got.AvailableCredit.String())
}

func TestGetCustomer_NoExiste_Retorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/customers/missing-id", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/customers
// ──────────────────────────────────────────────────────────────────────────────

func TestListCustomers_SortByCredit(t *testing.T) {
	app := buildTestApp()
	createViaHTTP(t, app, "Pobre", "pobre@example.com", 1000)
	createViaHTTP(t, app, "Rico", "rico@example.com", 2000)

	resp := doJSON(t, app, http.MethodGet, "/api/customers?sortByCredit=true", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "2000", list[0].AvailableCredit.String())
	assert.Equal(t, "1000", list[1].AvailableCredit.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /api/customers/:userId
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateCustomer_MergeParcialHTTP(t *testing.T) {
	app := buildTestApp()
	created := createViaHTTP(t, app, "John Doe", "john@example.com", 1000)

	resp := doJSON(t, app, http.MethodPut, "/api/customers/"+created.UserID, fiber.Map{
		"name": "Jane Doe",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeCustomer(t, resp)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
}

func TestUpdateCustomer_NoExiste_Retorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPut, "/api/customers/missing-id", fiber.Map{"name": "X"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// DELETE /api/customers/:userId
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteCustomer_Retorna204YLuego404(t *testing.T) {
	app := buildTestApp()
	created := createViaHTTP(t, app, "John Doe", "john@example.com", 0)

	resp := doJSON(t, app, http.MethodDelete, "/api/customers/"+created.UserID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/customers/"+created.UserID, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCustomer_NoExiste_Retorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodDelete, "/api/customers/missing-id", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/customers/:userId/credit
// ──────────────────────────────────────────────────────────────────────────────

func TestAddCredit_IncrementaElSaldo(t *testing.T) {
	app := buildTestApp()
	created := createViaHTTP(t, app, "John Doe", "john@example.com", 1000)

	resp := doJSON(t, app, http.MethodPost, "/api/customers/"+created.UserID+"/credit", fiber.Map{
		"amount": 500,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeCustomer(t, resp)
	assert.Equal(t, "1500", got.AvailableCredit.String())
}

func TestAddCredit_MontoNegativo_Retorna400YSaldoIntacto(t *testing.T) {
	app := buildTestApp()
	created := createViaHTTP(t, app, "John Doe", "john@example.com", 1000)

	resp := doJSON(t, app, http.MethodPost, "/api/customers/"+created.UserID+"/credit", fiber.Map{
		"amount": -50,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CREDIT_NOT_NEGATIVE", decodeError(t, resp).Code)

	check := doJSON(t, app, http.MethodGet, "/api/customers/"+created.UserID, nil)
	defer check.Body.Close()
	got := decodeCustomer(t, check)
	assert.Equal(t, "1000", got.AvailableCredit.String(),
		"el saldo no debe cambiar cuando el monto se rechaza")
}

func TestAddCredit_NoExiste_Retorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/customers/missing-id/credit", fiber.Map{"amount": 50})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
