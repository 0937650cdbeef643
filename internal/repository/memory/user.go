package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"studentapi/internal/model"
	"studentapi/internal/repository"
)

type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]model.User
	byName map[string]int64
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:   make(map[int64]model.User),
		byName: make(map[string]int64),
	}
}

var _ repository.UserRepository = (*UserStore)(nil)

func (s *UserStore) Add(_ context.Context, u model.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byName[u.UserName]; taken {
		return false, nil
	}
	s.nextID++
	u.ID = s.nextID
	s.byID[u.ID] = u
	s.byName[u.UserName] = u.ID
	return true, nil
}

func (s *UserStore) GetByUserName(_ context.Context, userName string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[userName]
	if !ok {
		return nil, nil
	}
	u := s.byID[id]
	return &u, nil
}

func (s *UserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *UserStore) ChangePassword(_ context.Context, userID int64, passwordHash string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[userID]
	if !ok {
		return 0, nil
	}
	u.PasswordHash = passwordHash
	s.byID[userID] = u
	return 1, nil
}

type TokenStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[uuid.UUID]model.Token
}

func NewTokenStore() *TokenStore {
	return &TokenStore{rows: make(map[uuid.UUID]model.Token)}
}

var _ repository.TokenRepository = (*TokenStore)(nil)

func (s *TokenStore) Add(_ context.Context, t model.Token) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t.ID = s.nextID
	s.rows[t.Code] = t
	return t.ID, nil
}

func (s *TokenStore) GetByCode(_ context.Context, code uuid.UUID) (*model.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.rows[code]
	if !ok {
		return nil, nil
	}
	return &t, nil
}
