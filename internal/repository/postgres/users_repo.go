package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sayalimunde/mini-lms/internal/models"
)

type usersRepo struct{ pool *pgxpool.Pool }

func (r *usersRepo) Create(ctx context.Context, email, displayName, passwordHash string, role models.Role) (models.User, error) {
	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UnixMilli(),
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users(id, email, display_name, password_hash, role, created_at) VALUES($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Email, u.DisplayName, u.PasswordHash, u.Role, u.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, display_name, password_hash, role, created_at FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, display_name, password_hash, role, created_at FROM users WHERE email=$1`, email,
	).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	return u, nil
}
