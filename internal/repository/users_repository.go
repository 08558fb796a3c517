package repository

import (
	"context"
	"errors"
	"fmt"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := querierFrom(ctx, ur.conn).QueryRow(ctx, `SELECT id, name, total_points FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Name, &user.TotalPoints); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("searching user by id error: %w", err)
	}
	return &user, nil
}

func (ur *UsersRepository) ListIDs(ctx context.Context, limit, offset int) ([]uuid.UUID, error) {
	rows, err := querierFrom(ctx, ur.conn).Query(ctx, `SELECT id FROM users ORDER BY id LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing user ids error: %w", err)
	}
	defer rows.Close()
	ids := make([]uuid.UUID, 0, limit)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("user id row parsing error: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user rows error: %w", err)
	}
	return ids, nil
}
