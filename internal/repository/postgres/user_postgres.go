package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"studentapi/internal/model"
	"studentapi/internal/repository"
)

const userColumns = `user_id, user_name, password_hash`

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	rw *sqlx.DB
	ro *sqlx.DB
}

func NewUserPostgres(rw, ro *sqlx.DB) *UserPostgres {
	return &UserPostgres{rw: rw, ro: ro}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// Add inserts a user; sp_ins_user returns false when the name is taken.
func (r *UserPostgres) Add(ctx context.Context, u model.User) (bool, error) {
	const q = `SELECT sp_ins_user($1, $2)`

	var inserted bool
	if err := r.rw.GetContext(ctx, &inserted, q, u.UserName, u.PasswordHash); err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}
	return inserted, nil
}

func (r *UserPostgres) GetByUserName(ctx context.Context, userName string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM sp_sel_user(p_user_name => $1)`
	return r.getOne(ctx, q, userName)
}

func (r *UserPostgres) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM sp_sel_user(p_user_id => $1)`
	return r.getOne(ctx, q, id)
}

func (r *UserPostgres) getOne(ctx context.Context, q string, arg any) (*model.User, error) {
	var row userRow
	if err := r.ro.GetContext(ctx, &row, q, arg); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	u := row.toModel()
	return &u, nil
}

// ChangePassword stores a new hash and returns the affected row count.
func (r *UserPostgres) ChangePassword(ctx context.Context, userID int64, passwordHash string) (int64, error) {
	const q = `SELECT sp_upd_user_change_password($1, $2)`

	var affected int64
	if err := r.rw.GetContext(ctx, &affected, q, userID, passwordHash); err != nil {
		return 0, fmt.Errorf("change password for user %d: %w", userID, err)
	}
	return affected, nil
}
