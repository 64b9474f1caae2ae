package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"eventsite/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (name, username, password_hash, admin) VALUES (?, ?, ?, ?)`
	selectUserByIDSQL       = `SELECT id, name, username, password_hash, admin FROM users WHERE id = ?`
	selectUserByUsernameSQL = `SELECT id, name, username, password_hash, admin FROM users WHERE username = ?`
	selectAllUsersSQL       = `SELECT id, name, username, password_hash, admin FROM users ORDER BY id ASC`
)

// Create inserts a new user and returns its ID. The UNIQUE constraint on
// username surfaces here as a wrapped driver error.
func (r *UserRepository) Create(name, username, passwordHash string, admin bool) (int, error) {
	res, err := r.db.Exec(insertUserSQL, name, username, passwordHash, admin)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByIDSQL, id).Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Admin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return &u, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByUsernameSQL, username).Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Admin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// List returns all users ordered by id.
func (r *UserRepository) List() ([]models.User, error) {
	rows, err := r.db.Query(selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select all users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Admin); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return out, nil
}
