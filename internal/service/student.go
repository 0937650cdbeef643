package service

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"studentapi/internal/model"
	"studentapi/internal/repository"
	"studentapi/internal/validation"
)

// StudentService defines the student use cases.
type StudentService interface {
	// GetAll passes the paging parameters through unvalidated.
	GetAll(ctx context.Context, pageNumber, pageSize int) *validation.Result[model.Student]
	// GetByID returns 404 without an error message when the student does not exist.
	GetByID(ctx context.Context, id int64) *validation.Result[model.Student]
	// Create stores a new, enabled student and returns it with its id.
	Create(ctx context.Context, in model.StudentCreate) *validation.Result[model.Student]
	// Update returns whether a row was updated.
	Update(ctx context.Context, id int64, in model.StudentUpdate) *validation.Result[bool]
	// Delete removes a disabled student and returns the affected row count.
	Delete(ctx context.Context, id int64) *validation.Result[int64]
}

var _ StudentService = (*studentService)(nil)

type studentService struct {
	repo repository.StudentRepository
	log  *zap.Logger
}

func NewStudentService(repo repository.StudentRepository, log *zap.Logger) StudentService {
	return &studentService{repo: repo, log: log.Named("students")}
}

func (s *studentService) GetAll(ctx context.Context, pageNumber, pageSize int) *validation.Result[model.Student] {
	res := validation.NewResult[model.Student]()

	items, err := s.repo.GetAll(ctx, repository.PageQuery{Number: pageNumber, Size: pageSize})
	if err != nil {
		return failUnexpected(res, s.log, "list students", err)
	}
	res.List = items
	return res
}

func (s *studentService) GetByID(ctx context.Context, id int64) *validation.Result[model.Student] {
	res := validation.NewResult[model.Student]()
	if res.Merge(validation.StudentID(id)) {
		return res
	}

	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return failUnexpected(res, s.log, "get student", err)
	}
	if st == nil {
		res.Code = http.StatusNotFound
		return res
	}
	res.Single = st
	return res
}

func (s *studentService) Create(ctx context.Context, in model.StudentCreate) *validation.Result[model.Student] {
	res := validation.NewResult[model.Student]()
	if res.Merge(validation.StudentCreate(in)) {
		return res
	}

	created, err := s.repo.Add(ctx, in.ToStudent())
	if err != nil {
		return failUnexpected(res, s.log, "create student", err)
	}
	s.log.Info("student created", zap.Int64("student_id", created.ID))
	res.Single = created
	return res
}

func (s *studentService) Update(ctx context.Context, id int64, in model.StudentUpdate) *validation.Result[bool] {
	res := validation.NewResult[bool]()
	if res.Merge(validation.StudentUpdate(in)) {
		return res
	}

	updated, err := s.repo.Update(ctx, in.ToStudent(id))
	if err != nil {
		return failUnexpected(res, s.log, "update student", err)
	}
	if !updated {
		s.log.Warn("update matched no student", zap.Int64("student_id", id))
	}
	return res.SetSingle(updated)
}

func (s *studentService) Delete(ctx context.Context, id int64) *validation.Result[int64] {
	res := validation.NewResult[int64]()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return failUnexpected(res, s.log, "get student", err)
	}
	if current == nil {
		return res.Fail(http.StatusBadRequest, MsgStudentNotExist)
	}
	if res.Merge(validation.StudentDelete(*current)) {
		return res
	}

	affected, err := s.repo.Delete(ctx, current.ID)
	if err != nil {
		return failUnexpected(res, s.log, "delete student", err)
	}
	s.log.Info("student deleted", zap.Int64("student_id", id), zap.Int64("affected", affected))
	return res.SetSingle(affected)
}
