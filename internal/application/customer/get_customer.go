package customer

import (
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/dto"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/repository"
)

// GetCustomerUseCase obtiene un cliente por id. Lectura pura: no escribe nada.
type GetCustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewGetCustomerUseCase construye el caso de uso.
func NewGetCustomerUseCase(repo repository.CustomerRepository) *GetCustomerUseCase {
	return &GetCustomerUseCase{repo: repo}
}

// Execute retorna el cliente o ErrCustomerNotFound.
func (uc *GetCustomerUseCase) Execute(userID string) (*dto.CustomerResponse, error) {
	rec, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return toCustomerResponse(*rec), nil
}
