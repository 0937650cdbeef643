package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studentapi/internal/model"
	"studentapi/internal/repository"
)

type MockStudentRepository struct {
	mock.Mock
}

var _ repository.StudentRepository = (*MockStudentRepository)(nil)

func (m *MockStudentRepository) GetAll(ctx context.Context, page repository.PageQuery) ([]model.Student, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) Add(ctx context.Context, s model.Student) (*model.Student, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) Update(ctx context.Context, s model.Student) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
