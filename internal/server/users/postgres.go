package users

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps the user map in a users table while preserving the
// Store contract: Load reads all rows, Save replaces them in one
// transaction. The snapshot swap is atomic at the database level, but the
// service's load-check-save sequence around it still races like the file
// store does.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context) (map[string]*User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, password_hash FROM users`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := map[string]*User{}
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users[u.Email] = u
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}

func (s *PostgresStore) Save(ctx context.Context, users map[string]*User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}

	for _, u := range users {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, name, email, password_hash)
			 VALUES ($1, $2, $3, $4)`,
			u.ID, u.Name, u.Email, u.PasswordHash)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.Email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
