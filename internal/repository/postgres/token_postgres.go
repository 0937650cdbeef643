package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"studentapi/internal/model"
	"studentapi/internal/repository"
)

// TokenPostgres is a PostgreSQL implementation of repository.TokenRepository.
// Tokens are read back from the write pool so a code is usable as soon as login returns it.
type TokenPostgres struct {
	rw *sqlx.DB
}

func NewTokenPostgres(rw *sqlx.DB) *TokenPostgres {
	return &TokenPostgres{rw: rw}
}

var _ repository.TokenRepository = (*TokenPostgres)(nil)

func (r *TokenPostgres) Add(ctx context.Context, t model.Token) (int64, error) {
	const q = `SELECT sp_ins_token($1, $2, $3)`

	var id int64
	if err := r.rw.GetContext(ctx, &id, q, t.UserID, t.Code, t.ExpiresAt); err != nil {
		return 0, fmt.Errorf("insert token: %w", err)
	}
	return id, nil
}

func (r *TokenPostgres) GetByCode(ctx context.Context, code uuid.UUID) (*model.Token, error) {
	const q = `SELECT token_id, user_id, token_code, expires_in FROM sp_sel_token($1)`

	var row tokenRow
	if err := r.rw.GetContext(ctx, &row, q, code); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select token: %w", err)
	}
	t := row.toModel()
	return &t, nil
}
