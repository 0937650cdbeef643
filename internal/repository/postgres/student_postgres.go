package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"studentapi/internal/model"
	"studentapi/internal/repository"
)

const studentColumns = `student_id, document_type_id, document_number, names, last_names, birth_date, enabled`

// StudentPostgres is a PostgreSQL implementation of repository.StudentRepository.
// Every operation calls a stored function; reads go to the read-only pool, writes to the read-write pool.
type StudentPostgres struct {
	rw *sqlx.DB
	ro *sqlx.DB
}

// NewStudentPostgres creates a new StudentPostgres repository.
func NewStudentPostgres(rw, ro *sqlx.DB) *StudentPostgres {
	return &StudentPostgres{rw: rw, ro: ro}
}

var _ repository.StudentRepository = (*StudentPostgres)(nil)

// GetAll returns one page of students.
func (r *StudentPostgres) GetAll(ctx context.Context, page repository.PageQuery) ([]model.Student, error) {
	const q = `SELECT ` + studentColumns + ` FROM sp_sel_student(p_page_number => $1, p_page_size => $2)`

	var rows []studentRow
	if err := r.ro.SelectContext(ctx, &rows, q, page.Number, page.Size); err != nil {
		return nil, fmt.Errorf("select students: %w", err)
	}

	items := make([]model.Student, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}

// GetByID fetches a single student. It returns nil, nil when no row matches.
func (r *StudentPostgres) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	const q = `SELECT ` + studentColumns + ` FROM sp_sel_student(p_student_id => $1)`

	var row studentRow
	if err := r.ro.GetContext(ctx, &row, q, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select student %d: %w", id, err)
	}
	s := row.toModel()
	return &s, nil
}

// Add inserts a student and returns the stored record.
func (r *StudentPostgres) Add(ctx context.Context, s model.Student) (*model.Student, error) {
	const q = `SELECT ` + studentColumns + ` FROM sp_ins_student($1, $2, $3, $4, $5, $6)`

	var row studentRow
	err := r.rw.GetContext(ctx, &row, q,
		int(s.DocumentTypeID),
		s.DocumentNumber,
		s.Names,
		s.LastNames,
		s.BirthDate,
		s.Enabled,
	)
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}
	out := row.toModel()
	return &out, nil
}

// Update overwrites a student and reports whether it existed.
func (r *StudentPostgres) Update(ctx context.Context, s model.Student) (bool, error) {
	const q = `SELECT sp_upd_student($1, $2, $3, $4, $5, $6, $7)`

	var updated bool
	err := r.rw.GetContext(ctx, &updated, q,
		s.ID,
		int(s.DocumentTypeID),
		s.DocumentNumber,
		s.Names,
		s.LastNames,
		s.BirthDate,
		s.Enabled,
	)
	if err != nil {
		return false, fmt.Errorf("update student %d: %w", s.ID, err)
	}
	return updated, nil
}

// Delete removes a student and returns the affected row count.
func (r *StudentPostgres) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `SELECT sp_del_student($1)`

	var affected int64
	if err := r.rw.GetContext(ctx, &affected, q, id); err != nil {
		return 0, fmt.Errorf("delete student %d: %w", id, err)
	}
	return affected, nil
}
