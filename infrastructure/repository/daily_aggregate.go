package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/dashvendas/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/dashvendas/sales-dashboard-api/internal/domain"
)

const (
	dailyAggregatesTable = "daily_aggregates da"
)

type DailyAggregateRepository interface {
	// CommitWindow grava os agregados de uma sincronização em uma única
	// transação: primeiro apaga as linhas da conexão anteriores ao início da
	// janela (retention trim), depois faz upsert dia a dia com substituição
	// integral dos campos. Retorna a quantidade de dias gravados.
	CommitWindow(ctx context.Context, window domain.SyncWindow, aggregates map[time.Time]*domain.DailyAggregate) (int, error)
	GetByDateRange(connectionID string, startDate, endDate time.Time) ([]*domain.DailyAggregate, error)
}

type dailyAggregateRepository struct {
	conn *postgres.Connection
}

func NewDailyAggregateRepository(conn *postgres.Connection) DailyAggregateRepository {
	return &dailyAggregateRepository{
		conn: conn,
	}
}

func (r *dailyAggregateRepository) CommitWindow(ctx context.Context, window domain.SyncWindow, aggregates map[time.Time]*domain.DailyAggregate) (int, error) {
	days := window.EachDay()
	if len(days) == 0 {
		return 0, nil
	}

	// O connection id vem dos próprios agregados; todos pertencem à mesma
	// conexão por construção.
	var connectionID, storeID string
	for _, aggregate := range aggregates {
		connectionID = aggregate.ConnectionID
		storeID = aggregate.StoreID
		break
	}
	if connectionID == "" {
		return 0, fmt.Errorf("agregados sem connection id")
	}

	daysWritten := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// Retention trim: linhas anteriores ao início da janela saem na
		// mesma transação do upsert.
		trimQuery, trimArgs, err := squirrel.
			Delete("daily_aggregates").
			Where(squirrel.Eq{"connection_id": connectionID}).
			Where(squirrel.Lt{"date": window.Start.Format(time.DateOnly)}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de trim: %w", err)
		}

		if _, err := tx.ExecContext(ctx, trimQuery, trimArgs...); err != nil {
			return fmt.Errorf("erro ao apagar agregados antigos: %w", err)
		}

		// Um upsert por dia da janela, inclusive dias sem venda: a linha
		// zerada substitui qualquer valor antigo (replace, nunca merge).
		for _, day := range days {
			aggregate, ok := aggregates[day]
			if !ok {
				aggregate = domain.NewZeroAggregate(connectionID, storeID, day)
			}

			channelsJSON, err := json.Marshal(aggregate.Channels)
			if err != nil {
				return fmt.Errorf("erro ao serializar canais para JSON: %w", err)
			}

			query, args, err := squirrel.StatementBuilder.
				Insert("daily_aggregates").
				Columns("connection_id", "store_id", "date", "total_orders", "total_sales", "unique_customers", "channels").
				Values(
					aggregate.ConnectionID,
					aggregate.StoreID,
					day.Format(time.DateOnly),
					aggregate.TotalOrders,
					aggregate.TotalSales,
					aggregate.UniqueCustomers,
					channelsJSON,
				).
				Suffix(`
					ON CONFLICT (connection_id, date) DO UPDATE SET
						store_id = EXCLUDED.store_id,
						total_orders = EXCLUDED.total_orders,
						total_sales = EXCLUDED.total_sales,
						unique_customers = EXCLUDED.unique_customers,
						channels = EXCLUDED.channels,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar o upsert: %w", err)
			}

			daysWritten++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return daysWritten, nil
}

func (r *dailyAggregateRepository) GetByDateRange(connectionID string, startDate, endDate time.Time) ([]*domain.DailyAggregate, error) {
	query, args, err := squirrel.
		Select("da.id, da.connection_id, da.store_id, da.date, da.total_orders, da.total_sales, da.unique_customers, da.channels, da.created_at, da.updated_at").
		From(dailyAggregatesTable).
		Where(squirrel.Eq{"da.connection_id": connectionID}).
		Where(squirrel.GtOrEq{"da.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"da.date": endDate.Format(time.DateOnly)}).
		OrderBy("da.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	aggregates := make([]*domain.DailyAggregate, 0)
	for rows.Next() {
		aggregate, err := r.scanAggregate(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregados: %w", err)
		}
		aggregates = append(aggregates, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}

func (r *dailyAggregateRepository) scanAggregate(rows *sql.Rows) (*domain.DailyAggregate, error) {
	aggregate := &domain.DailyAggregate{}
	var channelsJSON []byte

	err := rows.Scan(
		&aggregate.ID,
		&aggregate.ConnectionID,
		&aggregate.StoreID,
		&aggregate.Date,
		&aggregate.TotalOrders,
		&aggregate.TotalSales,
		&aggregate.UniqueCustomers,
		&channelsJSON,
		&aggregate.CreatedAt,
		&aggregate.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	aggregate.Channels = make(map[string]int)
	if channelsJSON != nil {
		if err := json.Unmarshal(channelsJSON, &aggregate.Channels); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de canais: %w", err)
		}
	}

	return aggregate, nil
}
