package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"studentapi/internal/model"
	"studentapi/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Add(ctx context.Context, u model.User) (bool, error) {
	args := m.Called(ctx, u)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetByUserName(ctx context.Context, userName string) (*model.User, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ChangePassword(ctx context.Context, userID int64, passwordHash string) (int64, error) {
	args := m.Called(ctx, userID, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenRepository struct {
	mock.Mock
}

var _ repository.TokenRepository = (*MockTokenRepository)(nil)

func (m *MockTokenRepository) Add(ctx context.Context, t model.Token) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepository) GetByCode(ctx context.Context, code uuid.UUID) (*model.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}
