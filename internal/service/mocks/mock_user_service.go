package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studentapi/internal/model"
	"studentapi/internal/service"
	"studentapi/internal/validation"
)

type MockUserService struct {
	mock.Mock
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Create(ctx context.Context, in model.UserCreate) *validation.Result[bool] {
	args := m.Called(ctx, in)
	return args.Get(0).(*validation.Result[bool])
}

func (m *MockUserService) GetByUserName(ctx context.Context, userName string) *validation.Result[model.User] {
	args := m.Called(ctx, userName)
	return args.Get(0).(*validation.Result[model.User])
}

func (m *MockUserService) GetByID(ctx context.Context, id int64) *validation.Result[model.UserProfile] {
	args := m.Called(ctx, id)
	return args.Get(0).(*validation.Result[model.UserProfile])
}

func (m *MockUserService) Login(ctx context.Context, in model.UserLogin) *validation.Result[string] {
	args := m.Called(ctx, in)
	return args.Get(0).(*validation.Result[string])
}

func (m *MockUserService) ChangePassword(ctx context.Context, in model.UserChangePassword) *validation.Result[bool] {
	args := m.Called(ctx, in)
	return args.Get(0).(*validation.Result[bool])
}

func (m *MockUserService) ValidateToken(ctx context.Context, code string) bool {
	args := m.Called(ctx, code)
	return args.Bool(0)
}
