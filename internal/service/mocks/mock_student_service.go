package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studentapi/internal/model"
	"studentapi/internal/service"
	"studentapi/internal/validation"
)

type MockStudentService struct {
	mock.Mock
}

var _ service.StudentService = (*MockStudentService)(nil)

func (m *MockStudentService) GetAll(ctx context.Context, pageNumber, pageSize int) *validation.Result[model.Student] {
	args := m.Called(ctx, pageNumber, pageSize)
	return args.Get(0).(*validation.Result[model.Student])
}

func (m *MockStudentService) GetByID(ctx context.Context, id int64) *validation.Result[model.Student] {
	args := m.Called(ctx, id)
	return args.Get(0).(*validation.Result[model.Student])
}

func (m *MockStudentService) Create(ctx context.Context, in model.StudentCreate) *validation.Result[model.Student] {
	args := m.Called(ctx, in)
	return args.Get(0).(*validation.Result[model.Student])
}

func (m *MockStudentService) Update(ctx context.Context, id int64, in model.StudentUpdate) *validation.Result[bool] {
	args := m.Called(ctx, id, in)
	return args.Get(0).(*validation.Result[bool])
}

func (m *MockStudentService) Delete(ctx context.Context, id int64) *validation.Result[int64] {
	args := m.Called(ctx, id)
	return args.Get(0).(*validation.Result[int64])
}
