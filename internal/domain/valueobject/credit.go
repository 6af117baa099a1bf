package valueobject

import (
	"github.com/shopspring/decimal"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain"
)

// Credit saldo disponible de un cliente. Valor monetario que nunca puede ser
// negativo. Es inmutable: Add retorna una nueva instancia validada en lugar de
// mutar la actual.
type Credit struct {
	amount decimal.Decimal
}

// NewCredit construye un Credit. Retorna ErrInvalidAmount si el monto es negativo.
func NewCredit(amount decimal.Decimal) (Credit, error) {
	if amount.IsNegative() {
		return Credit{}, domain.ErrInvalidAmount
	}
	return Credit{amount: amount}, nil
}

// Add suma un monto y retorna un nuevo Credit. Un monto negativo se rechaza con
// ErrInvalidAmount: agregar crédito nunca es un débito encubierto.
func (c Credit) Add(amount decimal.Decimal) (Credit, error) {
	if amount.IsNegative() {
		return Credit{}, domain.ErrInvalidAmount
	}
	return Credit{amount: c.amount.Add(amount)}, nil
}

// Value retorna el monto del crédito.
func (c Credit) Value() decimal.Decimal {
	return c.amount
}
