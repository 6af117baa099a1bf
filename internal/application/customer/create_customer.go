package customer

import (
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/dto"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/entity"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/repository"
)

// CreateCustomerUseCase crea un cliente nuevo.
type CreateCustomerUseCase struct {
	repo    repository.CustomerRepository
	factory entity.CustomerFactory
}

// NewCreateCustomerUseCase construye el caso de uso.
func NewCreateCustomerUseCase(repo repository.CustomerRepository) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{repo: repo, factory: entity.NewCustomerFactory()}
}

// Execute valida vía la fábrica y persiste. Si la validación falla no se
// escribe nada: un crédito inicial negativo aborta la creación completa.
func (uc *CreateCustomerUseCase) Execute(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.factory.Create(in.Name, in.Email, in.Phone, in.AvailableCredit)
	if err != nil {
		return nil, err
	}
	rec := c.ToRecord()
	if err := uc.repo.Save(rec); err != nil {
		return nil, err
	}
	return toCustomerResponse(rec), nil
}
