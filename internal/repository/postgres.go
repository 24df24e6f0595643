package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rtu-canteen/canteen-api/internal/models"
)

const orderCollection = "order"

// PostgresOrderRepository implements OrderRepository on top of a
// Postgres-backed document store: orders are stored as JSONB documents
// in a generic documents table, keyed by collection name.
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository connects to the database and ensures the
// documents table exists.
func NewPostgresOrderRepository(ctx context.Context, databaseURL string) (*PostgresOrderRepository, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := &PostgresOrderRepository{pool: pool}
	if err := repo.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return repo, nil
}

func (r *PostgresOrderRepository) ensureSchema(ctx context.Context) error {
	// One statement per Exec: pgx's extended protocol rejects
	// multi-statement strings.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id UUID PRIMARY KEY,
			collection TEXT NOT NULL,
			doc JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS documents_collection_created_at_idx
			ON documents (collection, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// Create stores the order as a JSONB document.
func (r *PostgresOrderRepository) Create(ctx context.Context, order *models.Order) error {
	doc, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal order: %v", ErrStorage, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO documents (id, collection, doc, created_at) VALUES ($1, $2, $3, $4)`,
		order.ID, orderCollection, doc, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to insert order: %v", ErrStorage, err)
	}
	return nil
}

// ListRecent returns up to limit orders, most recent first.
func (r *PostgresOrderRepository) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT doc FROM documents WHERE collection = $1 ORDER BY created_at DESC LIMIT $2`,
		orderCollection, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query orders: %v", ErrStorage, err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: failed to scan order: %v", ErrStorage, err)
		}
		var order models.Order
		if err := json.Unmarshal(doc, &order); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal order: %v", ErrStorage, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read orders: %v", ErrStorage, err)
	}

	return orders, nil
}

// Ping checks database reachability, used by the health endpoint.
func (r *PostgresOrderRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close releases the connection pool.
func (r *PostgresOrderRepository) Close() {
	r.pool.Close()
}
