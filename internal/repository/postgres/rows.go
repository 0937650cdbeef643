package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"studentapi/internal/model"
)

// Row types mirror the stored function result sets so the domain models stay free of db tags.

type studentRow struct {
	ID             int64      `db:"student_id"`
	DocumentTypeID int        `db:"document_type_id"`
	DocumentNumber string     `db:"document_number"`
	Names          string     `db:"names"`
	LastNames      string     `db:"last_names"`
	BirthDate      model.Date `db:"birth_date"`
	Enabled        bool       `db:"enabled"`
}

func (r studentRow) toModel() model.Student {
	return model.Student{
		ID:             r.ID,
		DocumentTypeID: model.DocumentType(r.DocumentTypeID),
		DocumentNumber: r.DocumentNumber,
		Names:          r.Names,
		LastNames:      r.LastNames,
		BirthDate:      r.BirthDate,
		Enabled:        r.Enabled,
	}
}

type userRow struct {
	ID           int64  `db:"user_id"`
	UserName     string `db:"user_name"`
	PasswordHash string `db:"password_hash"`
}

func (r userRow) toModel() model.User {
	return model.User{ID: r.ID, UserName: r.UserName, PasswordHash: r.PasswordHash}
}

type tokenRow struct {
	ID        int64     `db:"token_id"`
	UserID    int64     `db:"user_id"`
	Code      uuid.UUID `db:"token_code"`
	ExpiresAt time.Time `db:"expires_in"`
}

func (r tokenRow) toModel() model.Token {
	return model.Token{ID: r.ID, UserID: r.UserID, Code: r.Code, ExpiresAt: r.ExpiresAt}
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
