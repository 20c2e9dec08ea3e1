package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/domain/entity"
)

const userColumns = "id, username, email, password, full_name, roles, active, created_at, updated_at"

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) outbound.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	return r.scanOne(queryerFrom(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE username = $1", userColumns)
	return r.scanOne(queryerFrom(ctx, r.db).QueryRowContext(ctx, query, username))
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at", userColumns)
	rows, err := queryerFrom(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := queryerFrom(ctx, r.db).QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := queryerFrom(ctx, r.db).QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, full_name, roles, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := queryerFrom(ctx, r.db).ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.Password,
		user.FullName,
		pq.Array(user.Roles),
		user.Active,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, password = $4, full_name = $5, roles = $6, active = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := queryerFrom(ctx, r.db).ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.Password,
		user.FullName,
		pq.Array(user.Roles),
		user.Active,
		user.UpdatedAt,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return outbound.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result, err := queryerFrom(ctx, r.db).ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return outbound.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := queryerFrom(ctx, r.db).QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *userRepository) scanOne(row *sql.Row) (*entity.User, error) {
	var user entity.User
	var roles pq.StringArray
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.FullName,
		&roles,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	user.Roles = roles
	return &user, nil
}

func scanUser(rows *sql.Rows) (*entity.User, error) {
	var user entity.User
	var roles pq.StringArray
	err := rows.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.FullName,
		&roles,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	user.Roles = roles
	return &user, nil
}

// mapUniqueViolation turns a postgres unique-index violation into the
// matching conflict error. The indexes are what make the uniqueness
// guarantee hold under concurrent inserts; the use-case pre-checks only
// produce friendlier ordering.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	switch {
	case strings.Contains(pqErr.Constraint, "username"):
		return outbound.ErrUsernameTaken
	case strings.Contains(pqErr.Constraint, "email"):
		return outbound.ErrEmailTaken
	default:
		return nil
	}
}
