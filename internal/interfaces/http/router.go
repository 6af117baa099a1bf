package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/customer"
)

// RouterDeps dependencias para el router. El composition root (cmd/api) arma
// los casos de uso con inyección explícita por constructor; aquí solo se cablean
// a sus rutas.
type RouterDeps struct {
	CreateCustomer *customer.CreateCustomerUseCase
	GetCustomer    *customer.GetCustomerUseCase
	ListCustomers  *customer.ListCustomersUseCase
	UpdateCustomer *customer.UpdateCustomerUseCase
	DeleteCustomer *customer.DeleteCustomerUseCase
	AddCredit      *customer.AddCreditUseCase
	APIKeyHeader   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	handler := NewCustomerHandler(
		deps.CreateCustomer,
		deps.GetCustomer,
		deps.ListCustomers,
		deps.UpdateCustomer,
		deps.DeleteCustomer,
		deps.AddCredit,
	)

	// Liveness probe (público)
	app.Get("/health", handler.Health)

	// Rutas protegidas (requieren header de API key)
	api := app.Group("/api", APIKeyMiddleware(deps.APIKeyHeader))

	customers := api.Group("/customers")
	customers.Post("/", handler.Create)
	customers.Get("/", handler.List)
	customers.Get("/:userId", handler.GetByID)
	customers.Put("/:userId", handler.Update)
	customers.Delete("/:userId", handler.Delete)
	customers.Post("/:userId/credit", handler.AddCredit)
}
