package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/dashvendas/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/dashvendas/sales-dashboard-api/internal/domain"
)

const (
	connectionsTable = "connections c"
)

type ConnectionRepository interface {
	GetByID(connectionID string) (*domain.Connection, error)
	ListByStatus(availableStatus []domain.ConnectionStatus) ([]*domain.Connection, error)
	Create(connection *domain.Connection) error
	UpdateStatus(connectionID string, status domain.ConnectionStatus) error
}

type connectionRepository struct {
	conn *postgres.Connection
}

func NewConnectionRepository(conn *postgres.Connection) ConnectionRepository {
	return &connectionRepository{
		conn: conn,
	}
}

func (r *connectionRepository) GetByID(connectionID string) (*domain.Connection, error) {
	query, args, err := squirrel.
		Select("c.id, c.owner_id, c.name, c.api_token, c.store_id, c.status, c.created_at, c.updated_at").
		From(connectionsTable).
		Where(squirrel.Eq{"c.id": connectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	connection, err := r.scanConnection(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
	}

	return connection, nil
}

func (r *connectionRepository) ListByStatus(availableStatus []domain.ConnectionStatus) ([]*domain.Connection, error) {
	queryBuilder := squirrel.
		Select("c.id, c.owner_id, c.name, c.api_token, c.store_id, c.status, c.created_at, c.updated_at").
		From(connectionsTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.status": availableStatus})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	connections := make([]*domain.Connection, 0)
	for rows.Next() {
		connection := &domain.Connection{}
		if err := rows.Scan(
			&connection.ID,
			&connection.OwnerID,
			&connection.Name,
			&connection.APIToken,
			&connection.StoreID,
			&connection.Status,
			&connection.CreatedAt,
			&connection.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear conexões: %w", err)
		}
		connections = append(connections, connection)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return connections, nil
}

func (r *connectionRepository) Create(connection *domain.Connection) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("connections").
		Columns("id", "owner_id", "name", "api_token", "store_id", "status").
		Values(
			connection.ID,
			connection.OwnerID,
			connection.Name,
			connection.APIToken,
			connection.StoreID,
			connection.Status,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *connectionRepository) UpdateStatus(connectionID string, status domain.ConnectionStatus) error {
	query, args, err := squirrel.StatementBuilder.
		Update("connections").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": connectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *connectionRepository) scanConnection(row *sql.Row) (*domain.Connection, error) {
	connection := &domain.Connection{}

	err := row.Scan(
		&connection.ID,
		&connection.OwnerID,
		&connection.Name,
		&connection.APIToken,
		&connection.StoreID,
		&connection.Status,
		&connection.CreatedAt,
		&connection.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return connection, nil
}
