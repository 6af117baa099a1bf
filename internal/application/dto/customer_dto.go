package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body para POST /api/customers.
// AvailableCredit es opcional; si no viene, el cliente inicia con crédito 0.
type CreateCustomerRequest struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	AvailableCredit decimal.Decimal `json:"availableCredit"`
}

// UpdateCustomerRequest body para PUT /api/customers/:userId. Campos en puntero
// para distinguir "no enviado" de "enviado vacío"; el merge se revalida completo
// antes de persistir.
type UpdateCustomerRequest struct {
	Name            *string          `json:"name,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	AvailableCredit *decimal.Decimal `json:"availableCredit,omitempty"`
}

// AddCreditRequest body para POST /api/customers/:userId/credit.
type AddCreditRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	UserID          string          `json:"userId"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	AvailableCredit decimal.Decimal `json:"availableCredit"`
	CreatedAt       time.Time       `json:"createdAt"`
}
