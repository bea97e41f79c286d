package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type CreateUserParams struct {
	Email        string
	Name         string
	PasswordHash string
	Role         string
}

type UpdateUserParams struct {
	Name         *string
	Role         *string
	Active       *bool
	PasswordHash *string
}

const userColumns = `id, email, name, password_hash, role, active, created_at, updated_at, last_login`

const sqlCreateUser = `
INSERT INTO users (id, email, name, password_hash, role, active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// CreateUser inserts a user; the email is stored lowercase.
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	return s.createUser(ctx, s.db, params)
}

func (s *Store) createUser(ctx context.Context, q queryExecer, params CreateUserParams) (User, error) {
	id := uuid.New()
	ts := now()
	_, err := s.exec(ctx, q, sqlCreateUser,
		id, strings.ToLower(strings.TrimSpace(params.Email)), params.Name,
		params.PasswordHash, params.Role, true, ts, ts)
	if err != nil {
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	var user User
	if err := s.get(ctx, q, &user, sqlGetUserByID, id); err != nil {
		return User{}, s.notFound(ctx, err, "load created user")
	}
	return user, nil
}

const sqlGetUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	var user User
	if err := s.get(ctx, s.db, &user, sqlGetUserByID, id); err != nil {
		return User{}, s.notFound(ctx, err, "get user by id")
	}
	return user, nil
}

const sqlGetUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = ?`

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	if err := s.get(ctx, s.db, &user, sqlGetUserByEmail, strings.ToLower(strings.TrimSpace(email))); err != nil {
		return User{}, s.notFound(ctx, err, "get user by email")
	}
	return user, nil
}

const sqlListUsers = `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := s.sel(ctx, s.db, &users, sqlListUsers); err != nil {
		s.logger.Error(ctx, "failed to list users", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

const sqlUpdateUser = `
UPDATE users SET
    name = COALESCE(?, name),
    role = COALESCE(?, role),
    active = COALESCE(?, active),
    password_hash = COALESCE(?, password_hash),
    updated_at = ?
WHERE id = ?`

func (s *Store) UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) (User, error) {
	res, err := s.exec(ctx, s.db, sqlUpdateUser,
		params.Name, params.Role, params.Active, params.PasswordHash, now(), id)
	if err != nil {
		s.logger.Error(ctx, "failed to update user", err)
		return User{}, fmt.Errorf("failed to update user: %w", err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return User{}, err
	}
	return s.GetUserByID(ctx, id)
}

const sqlTouchUserLogin = `UPDATE users SET last_login = ? WHERE id = ?`

func (s *Store) TouchUserLogin(ctx context.Context, id uuid.UUID) error {
	if _, err := s.exec(ctx, s.db, sqlTouchUserLogin, now(), id); err != nil {
		s.logger.Error(ctx, "failed to update last login", err)
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// DeactivateUser is the soft delete for users.
func (s *Store) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	active := false
	_, err := s.UpdateUser(ctx, id, UpdateUserParams{Active: &active})
	return err
}

const sqlDeleteUser = `DELETE FROM users WHERE id = ?`

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := s.exec(ctx, s.db, sqlDeleteUser, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete user", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return affectedOrNotFound(res)
}

const sqlCountUsers = `SELECT COUNT(*) FROM users`

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountUsers); err != nil {
		s.logger.Error(ctx, "failed to count users", err)
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
