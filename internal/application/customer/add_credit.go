package customer

import (
	"github.com/shopspring/decimal"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/dto"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/entity"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/repository"
)

// AddCreditUseCase agrega crédito al saldo de un cliente existente.
type AddCreditUseCase struct {
	repo    repository.CustomerRepository
	factory entity.CustomerFactory
}

// NewAddCreditUseCase construye el caso de uso.
func NewAddCreditUseCase(repo repository.CustomerRepository) *AddCreditUseCase {
	return &AddCreditUseCase{repo: repo, factory: entity.NewCustomerFactory()}
}

// Execute rehidrata la entidad, delega la suma al dominio y persiste el nuevo
// saldo. Un monto negativo falla con ErrCreditNotNegative y el saldo almacenado
// queda intacto.
func (uc *AddCreditUseCase) Execute(userID string, amount decimal.Decimal) (*dto.CustomerResponse, error) {
	current, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrCustomerNotFound
	}

	c, err := uc.factory.Restore(*current)
	if err != nil {
		return nil, err
	}
	if err := c.AddCredit(amount); err != nil {
		return nil, err
	}

	rec := c.ToRecord()
	if err := uc.repo.Update(rec); err != nil {
		return nil, err
	}
	return toCustomerResponse(rec), nil
}
