package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/customer"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/dto"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	create    *customer.CreateCustomerUseCase
	get       *customer.GetCustomerUseCase
	list      *customer.ListCustomersUseCase
	update    *customer.UpdateCustomerUseCase
	deleteUC  *customer.DeleteCustomerUseCase
	addCredit *customer.AddCreditUseCase
}

// NewCustomerHandler construye el handler con sus seis casos de uso.
func NewCustomerHandler(
	create *customer.CreateCustomerUseCase,
	get *customer.GetCustomerUseCase,
	list *customer.ListCustomersUseCase,
	update *customer.UpdateCustomerUseCase,
	deleteUC *customer.DeleteCustomerUseCase,
	addCredit *customer.AddCreditUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		create:    create,
		get:       get,
		list:      list,
		update:    update,
		deleteUC:  deleteUC,
		addCredit: addCredit,
	}
}

// Health GET /health
func (h *CustomerHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.create.Execute(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/customers/:userId
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.get.Execute(c.Params("userId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/customers?sortByCredit=true
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	sortByCredit := c.Query("sortByCredit") == "true"
	out, err := h.list.Execute(sortByCredit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/customers/:userId
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.update.Execute(c.Params("userId"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/customers/:userId
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.deleteUC.Execute(c.Params("userId")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddCredit POST /api/customers/:userId/credit
func (h *CustomerHandler) AddCredit(c *fiber.Ctx) error {
	var in dto.AddCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.addCredit.Execute(c.Params("userId"), in.Amount)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// respondDomainError único punto de mapeo error de dominio -> estado HTTP.
// Se decide con errors.Is sobre el tipo del error, nunca sobre el texto.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CUSTOMER_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCustomerData):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CUSTOMER_DATA", Message: err.Error()})
	case errors.Is(err, domain.ErrCreditNotNegative):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CREDIT_NOT_NEGATIVE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
