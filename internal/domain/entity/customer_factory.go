package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/valueobject"
)

// CustomerFactory único punto de construcción de Customer. Asigna la identidad
// (uuid v4) y la fecha de creación; cualquier id provisto por el llamador se
// ignora en Create.
type CustomerFactory struct{}

// NewCustomerFactory construye la fábrica.
func NewCustomerFactory() CustomerFactory {
	return CustomerFactory{}
}

// Create construye un cliente nuevo y válido. Propaga ErrInvalidAmount si el
// crédito inicial es negativo y ErrInvalidCustomerData si los atributos de
// contacto están mal formados. Nunca retorna un cliente a medio construir.
func (CustomerFactory) Create(name, email, phone string, initialCredit decimal.Decimal) (*Customer, error) {
	credit, err := valueobject.NewCredit(initialCredit)
	if err != nil {
		return nil, err
	}
	return newCustomer(uuid.New().String(), name, email, phone, credit, time.Now().UTC())
}

// Restore rehidrata un cliente desde un registro persistido, preservando su
// identidad y fecha de creación. Pasa por la misma validación que Create, de
// modo que un registro corrupto en el store nunca produce una entidad inválida.
func (CustomerFactory) Restore(rec CustomerRecord) (*Customer, error) {
	credit, err := valueobject.NewCredit(rec.AvailableCredit)
	if err != nil {
		return nil, err
	}
	return newCustomer(rec.UserID, rec.Name, rec.Email, rec.Phone, credit, rec.CreatedAt)
}
