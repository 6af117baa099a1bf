package customer

import (
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/dto"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/entity"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/repository"
)

// ListCustomersUseCase lista todos los clientes, opcionalmente ordenados por
// crédito disponible descendente.
type ListCustomersUseCase struct {
	repo repository.CustomerRepository
}

// NewListCustomersUseCase construye el caso de uso.
func NewListCustomersUseCase(repo repository.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{repo: repo}
}

// Execute retorna la lista; una lista vacía es un éxito válido, nunca nil.
func (uc *ListCustomersUseCase) Execute(sortByCredit bool) ([]*dto.CustomerResponse, error) {
	var (
		recs []entity.CustomerRecord
		err  error
	)
	if sortByCredit {
		recs, err = uc.repo.GetAllSortedByCredit()
	} else {
		recs, err = uc.repo.GetAll()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toCustomerResponse(rec))
	}
	return out, nil
}
