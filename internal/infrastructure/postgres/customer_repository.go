package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/entity"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación PostgreSQL de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, email, phone, available_credit, created_at`

// Save persiste un cliente nuevo.
func (r *CustomerRepo) Save(rec entity.CustomerRecord) error {
	query := `
		INSERT INTO customers (id, name, email, phone, available_credit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		rec.UserID, rec.Name, rec.Email, rec.Phone, rec.AvailableCredit, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por id. Retorna (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(userID string) (*entity.CustomerRecord, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var rec entity.CustomerRecord
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&rec.UserID, &rec.Name, &rec.Email, &rec.Phone, &rec.AvailableCredit, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &rec, nil
}

// GetAll lista todos los clientes.
func (r *CustomerRepo) GetAll() ([]entity.CustomerRecord, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at`
	return r.queryList(query)
}

// GetAllSortedByCredit lista todos los clientes por crédito disponible descendente.
func (r *CustomerRepo) GetAllSortedByCredit() ([]entity.CustomerRecord, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY available_credit DESC`
	return r.queryList(query)
}

func (r *CustomerRepo) queryList(query string) ([]entity.CustomerRecord, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []entity.CustomerRecord
	for rows.Next() {
		var rec entity.CustomerRecord
		if err := rows.Scan(&rec.UserID, &rec.Name, &rec.Email, &rec.Phone, &rec.AvailableCredit, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Update actualiza los atributos mutables. ID y created_at no se tocan.
func (r *CustomerRepo) Update(rec entity.CustomerRecord) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, available_credit = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rec.UserID, rec.Name, rec.Email, rec.Phone, rec.AvailableCredit,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por id.
func (r *CustomerRepo) Delete(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
