package customer

import (
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/dto"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/entity"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/repository"
)

// UpdateCustomerUseCase actualiza los atributos mutables de un cliente.
// Semántica merge-then-validate: los campos enviados se mezclan sobre el
// registro actual y el resultado completo pasa por la validación de la fábrica
// antes de escribirse. ID y CreatedAt nunca cambian.
type UpdateCustomerUseCase struct {
	repo    repository.CustomerRepository
	factory entity.CustomerFactory
}

// NewUpdateCustomerUseCase construye el caso de uso.
func NewUpdateCustomerUseCase(repo repository.CustomerRepository) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{repo: repo, factory: entity.NewCustomerFactory()}
}

// Execute retorna el cliente actualizado o ErrCustomerNotFound. Una validación
// fallida del merge no escribe nada.
func (uc *UpdateCustomerUseCase) Execute(userID string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	current, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrCustomerNotFound
	}

	merged := *current
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Email != nil {
		merged.Email = *in.Email
	}
	if in.Phone != nil {
		merged.Phone = *in.Phone
	}
	if in.AvailableCredit != nil {
		merged.AvailableCredit = *in.AvailableCredit
	}

	validated, err := uc.factory.Restore(merged)
	if err != nil {
		return nil, err
	}
	rec := validated.ToRecord()
	if err := uc.repo.Update(rec); err != nil {
		return nil, err
	}
	return toCustomerResponse(rec), nil
}
