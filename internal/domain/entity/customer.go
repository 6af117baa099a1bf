package entity

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/valueobject"
)

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Teléfono permisivo: dígitos y puntuación habitual, mínimo 10 caracteres.
	phoneRegexp = regexp.MustCompile(`^[0-9+\-(). ]{10,}$`)
)

// Customer cliente de la tienda. Los campos son privados: toda construcción pasa
// por CustomerFactory, que garantiza que ninguna instancia viva viole sus
// invariantes. ID y CreatedAt se asignan una sola vez y nunca cambian.
type Customer struct {
	id        string
	name      string
	email     string
	phone     string
	credit    valueobject.Credit
	createdAt time.Time
}

// newCustomer valida los atributos de contacto. Retorna ErrInvalidCustomerData
// (envuelto con el detalle) si alguno no cumple su formato.
func newCustomer(id, name, email, phone string, credit valueobject.Credit, createdAt time.Time) (*Customer, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidCustomerData)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: el email es requerido", domain.ErrInvalidCustomerData)
	}
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: el email no tiene un formato válido", domain.ErrInvalidCustomerData)
	}
	if phone != "" && !phoneRegexp.MatchString(phone) {
		return nil, fmt.Errorf("%w: el teléfono no tiene un formato válido", domain.ErrInvalidCustomerData)
	}
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		credit:    credit,
		createdAt: createdAt,
	}, nil
}

// AddCredit agrega un monto al crédito disponible. Un monto negativo se rechaza
// con ErrCreditNotNegative. Única mutación de estado del dominio: el Credit
// resultante reemplaza al anterior solo si la suma fue válida.
func (c *Customer) AddCredit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrCreditNotNegative
	}
	credit, err := c.credit.Add(amount)
	if err != nil {
		return err
	}
	c.credit = credit
	return nil
}

func (c *Customer) ID() string           { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// Credit retorna el saldo disponible.
func (c *Customer) Credit() decimal.Decimal {
	return c.credit.Value()
}

// ToRecord proyección plana del cliente para transporte y persistencia.
// Sin lógica; llamarlo dos veces sobre el mismo cliente produce el mismo resultado.
func (c *Customer) ToRecord() CustomerRecord {
	return CustomerRecord{
		UserID:          c.id,
		Name:            c.name,
		Email:           c.email,
		Phone:           c.phone,
		AvailableCredit: c.credit.Value(),
		CreatedAt:       c.createdAt,
	}
}

// CustomerRecord representación plana del cliente tal como viaja hacia el
// puerto de persistencia y de regreso.
type CustomerRecord struct {
	UserID          string
	Name            string
	Email           string
	Phone           string
	AvailableCredit decimal.Decimal
	CreatedAt       time.Time
}
