package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/telswitch/isdnc/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser deliberately does not say which unique column
	// collided; the registration error must not enable account enumeration.
	ErrDuplicateUser = errors.New("username or email already exists")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID on the user struct.
// Uniqueness of username and email is enforced by the table's constraints.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateUser
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByUsername retrieves a user by exact, case-sensitive username match.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, is_active, created_at
		FROM users WHERE BINARY username = ?`

	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, is_active, created_at
		FROM users WHERE id = ?`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by their lower-cased email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, is_active, created_at
		FROM users WHERE email = ?`

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// isDuplicateKeyError reports whether a MySQL error is a duplicate key
// violation (error 1062) on any unique column.
func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
