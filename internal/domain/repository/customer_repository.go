package repository

import "github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/entity"

// CustomerRepository puerto de persistencia para Customer. Los casos de uso
// dependen de esta interfaz; los adaptadores concretos viven en infrastructure.
// GetByID retorna (nil, nil) cuando el cliente no existe.
type CustomerRepository interface {
	Save(rec entity.CustomerRecord) error
	GetByID(userID string) (*entity.CustomerRecord, error)
	GetAll() ([]entity.CustomerRecord, error)
	GetAllSortedByCredit() ([]entity.CustomerRecord, error)
	Update(rec entity.CustomerRecord) error
	Delete(userID string) error
}
