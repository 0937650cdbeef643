package repository

import (
	"context"

	"studentapi/internal/model"
)

// StudentRepository defines data access for students.
// No business logic here, strictly persistence operations.
type StudentRepository interface {
	// GetAll returns one page of students ordered by id.
	GetAll(ctx context.Context, page PageQuery) ([]model.Student, error)

	// GetByID returns the student or nil when it does not exist.
	GetByID(ctx context.Context, id int64) (*model.Student, error)

	// Add inserts a student and returns the stored record with its assigned id.
	Add(ctx context.Context, s model.Student) (*model.Student, error)

	// Update overwrites the student identified by s.ID. A zero document type keeps the stored one.
	// It reports whether a row was updated.
	Update(ctx context.Context, s model.Student) (bool, error)

	// Delete removes a student and returns the number of affected rows.
	Delete(ctx context.Context, id int64) (int64, error)
}
