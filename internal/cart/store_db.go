package cart

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore keeps cart rows in insertion order via the serial key.
//
//	CREATE TABLE cart_items (
//	    id         BIGSERIAL PRIMARY KEY,
//	    user_id    TEXT NOT NULL,
//	    product_id INT  NOT NULL
//	);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Add(ctx context.Context, userID string, productID int) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO cart_items (user_id, product_id)
			VALUES ($1, $2)
		`, userID, productID)
		return err
	})
}

func (s *PostgresStore) RemoveAll(ctx context.Context, userID string, productID int) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			DELETE FROM cart_items
			WHERE user_id = $1 AND product_id = $2
		`, userID, productID)
		return err
	})
}

func (s *PostgresStore) List(ctx context.Context, userID string) ([]int, error) {
	var out []int

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT product_id
			FROM cart_items
			WHERE user_id = $1
			ORDER BY id ASC
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]int, 0, 8)
		for rows.Next() {
			var id int
			if err := rows.Scan(&id); err != nil {
				return err
			}
			out = append(out, id)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
