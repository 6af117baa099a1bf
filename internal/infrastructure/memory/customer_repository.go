package memory

import (
	"sort"
	"sync"

	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/entity"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository implementación en memoria del puerto de persistencia.
// Se usa en los tests y para correr el servicio sin base de datos
// (DB_DRIVER=memory). Guarda copias: los registros retornados no comparten
// memoria con el mapa interno.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]entity.CustomerRecord
}

// NewCustomerRepository construye el repositorio en memoria.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]entity.CustomerRecord),
	}
}

// Save inserta o reemplaza el registro.
func (r *CustomerRepository) Save(rec entity.CustomerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[rec.UserID] = rec
	return nil
}

// GetByID retorna una copia del registro o (nil, nil) si no existe.
func (r *CustomerRepository) GetByID(userID string) (*entity.CustomerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.customers[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// GetAll retorna todos los clientes ordenados por fecha de creación.
func (r *CustomerRepository) GetAll() ([]entity.CustomerRecord, error) {
	list := r.snapshot()
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

// GetAllSortedByCredit retorna todos los clientes por crédito descendente.
func (r *CustomerRepository) GetAllSortedByCredit() ([]entity.CustomerRecord, error) {
	list := r.snapshot()
	sort.Slice(list, func(i, j int) bool {
		return list[i].AvailableCredit.GreaterThan(list[j].AvailableCredit)
	})
	return list, nil
}

// Update reemplaza el registro existente. Mismo comportamiento que Save en este
// adaptador: el puerto garantiza que el caso de uso ya verificó la existencia.
func (r *CustomerRepository) Update(rec entity.CustomerRecord) error {
	return r.Save(rec)
}

// Delete elimina el registro por id.
func (r *CustomerRepository) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.customers, userID)
	return nil
}

func (r *CustomerRepository) snapshot() []entity.CustomerRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]entity.CustomerRecord, 0, len(r.customers))
	for _, rec := range r.customers {
		list = append(list, rec)
	}
	return list
}
