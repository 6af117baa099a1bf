package customer

import (
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/repository"
)

// DeleteCustomerUseCase elimina un cliente. Variante estricta: borrar un id
// inexistente retorna ErrCustomerNotFound en lugar de un no-op silencioso.
type DeleteCustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewDeleteCustomerUseCase construye el caso de uso.
func NewDeleteCustomerUseCase(repo repository.CustomerRepository) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{repo: repo}
}

// Execute elimina el cliente por id.
func (uc *DeleteCustomerUseCase) Execute(userID string) error {
	rec, err := uc.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrCustomerNotFound
	}
	return uc.repo.Delete(userID)
}
