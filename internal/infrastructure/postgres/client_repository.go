package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	db Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(db Querier) *ClientRepo {
	return &ClientRepo{db: db}
}

const clientColumns = `id, tenant_id, first_name, last_name, identification, email, phone, address, created_at, updated_at`

func scanClient(row interface{ Scan(dest ...any) error }) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.TenantID, &c.FirstName, &c.LastName, &c.Identification,
		&c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, tenant_id, first_name, last_name, identification, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		client.ID, client.TenantID, client.FirstName, client.LastName,
		client.Identification, client.Email, client.Phone, client.Address,
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET first_name = $2, last_name = $3, identification = $4, email = $5, phone = $6, address = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query,
		client.ID, client.FirstName, client.LastName, client.Identification,
		client.Email, client.Phone, client.Address, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepo) Delete(id string) error {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepo) List(tenantFilter string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		WHERE ($1 = '' OR tenant_id = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryClients(query, tenantFilter, limit, offset)
}

func (r *ClientRepo) SearchByName(tenantFilter, name string) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		WHERE ($1 = '' OR tenant_id = $1)
		  AND (first_name || ' ' || last_name) ILIKE '%' || $2 || '%'
		ORDER BY first_name, last_name`
	return r.queryClients(query, tenantFilter, name)
}

func (r *ClientRepo) queryClients(query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
