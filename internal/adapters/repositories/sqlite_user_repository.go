package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ev-trip-service/internal/domain"
)

// SQLite-backed implementation of the UserRepository port.
type SqliteUserRepository struct{ DB *sql.DB }

func NewSqliteUserRepository(db *sql.DB) *SqliteUserRepository {
	return &SqliteUserRepository{DB: db}
}

// Store a new user and return its assigned id.
func (s *SqliteUserRepository) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite user repository: DB is nil")
	}

	query := `
	INSERT INTO users (
		name,
		email,
		role
	)
	VALUES (?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query, user.Name, user.Email, user.Role)
	if err != nil {
		return 0, fmt.Errorf("create user: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create user: last insert id: %w", err)
	}

	return id, nil
}
