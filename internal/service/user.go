package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studentapi/internal/model"
	"studentapi/internal/repository"
	"studentapi/internal/security"
	"studentapi/internal/validation"
)

// UserService defines the account and token use cases.
type UserService interface {
	Create(ctx context.Context, in model.UserCreate) *validation.Result[bool]
	GetByUserName(ctx context.Context, userName string) *validation.Result[model.User]
	GetByID(ctx context.Context, id int64) *validation.Result[model.UserProfile]
	// Login issues a new token and returns its code. The code is only set on success.
	Login(ctx context.Context, in model.UserLogin) *validation.Result[string]
	ChangePassword(ctx context.Context, in model.UserChangePassword) *validation.Result[bool]
	// ValidateToken reports whether code names a stored token that has not expired yet.
	ValidateToken(ctx context.Context, code string) bool
}

var _ UserService = (*userService)(nil)

type userService struct {
	users    repository.UserRepository
	tokens   repository.TokenRepository
	hasher   security.Hasher
	tokenTTL time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func NewUserService(
	users repository.UserRepository,
	tokens repository.TokenRepository,
	hasher security.Hasher,
	tokenTTL time.Duration,
	log *zap.Logger,
) UserService {
	return &userService{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		tokenTTL: tokenTTL,
		now:      time.Now,
		log:      log.Named("users"),
	}
}

func (s *userService) Create(ctx context.Context, in model.UserCreate) *validation.Result[bool] {
	res := validation.NewResult[bool]()

	hash := s.hasher.HashPassword(in.Password)
	if res.Merge(validation.UserCreate(in)) {
		return res
	}

	added, err := s.users.Add(ctx, in.ToUser(hash))
	if err != nil {
		return failUnexpected(res, s.log, "create user", err)
	}
	if !added {
		return res.Fail(http.StatusBadRequest, MsgUserNameTaken)
	}
	s.log.Info("user created", zap.String("user_name", in.UserName))
	return res.SetSingle(true)
}

func (s *userService) GetByUserName(ctx context.Context, userName string) *validation.Result[model.User] {
	res := validation.NewResult[model.User]()
	if res.Merge(validation.UserName(userName)) {
		return res
	}

	u, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		return failUnexpected(res, s.log, "get user by name", err)
	}
	if u == nil {
		res.Code = http.StatusNotFound
		return res
	}
	res.Single = u
	return res
}

func (s *userService) GetByID(ctx context.Context, id int64) *validation.Result[model.UserProfile] {
	res := validation.NewResult[model.UserProfile]()
	if res.Merge(validation.UserID(id)) {
		return res
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return failUnexpected(res, s.log, "get user", err)
	}
	if u == nil {
		res.Code = http.StatusNotFound
		return res
	}
	return res.SetSingle(model.UserProfile{ID: u.ID, UserName: u.UserName})
}

func (s *userService) Login(ctx context.Context, in model.UserLogin) *validation.Result[string] {
	res := validation.NewResult[string]()

	found := s.GetByUserName(ctx, in.UserName)
	if found.HasErrors() || found.Single == nil {
		return res.Fail(found.Code, MsgUserNotFound)
	}
	user := found.Single

	if !s.hasher.Verify(user.PasswordHash, in.Password) {
		s.log.Info("login rejected", zap.String("user_name", in.UserName))
		return res.Fail(http.StatusUnauthorized, MsgInvalidCredentials)
	}

	token := model.Token{
		UserID:    user.ID,
		Code:      uuid.New(),
		ExpiresAt: s.now().Add(s.tokenTTL),
	}
	if _, err := s.tokens.Add(ctx, token); err != nil {
		return failUnexpected(res, s.log, "issue token", err)
	}
	return res.SetSingle(token.Code.String())
}

func (s *userService) ChangePassword(ctx context.Context, in model.UserChangePassword) *validation.Result[bool] {
	res := validation.NewResult[bool]()

	hash := s.hasher.HashPassword(in.NewPassword)
	if res.Merge(validation.UserChangePassword(in)) {
		return res
	}

	affected, err := s.users.ChangePassword(ctx, in.UserID, hash)
	if err != nil {
		return failUnexpected(res, s.log, "change password", err)
	}
	if affected == 0 {
		s.log.Warn("password change matched no user", zap.Int64("user_id", in.UserID))
	}
	return res.SetSingle(affected > 0)
}

func (s *userService) ValidateToken(ctx context.Context, code string) bool {
	parsed, err := uuid.Parse(code)
	if err != nil {
		return false
	}

	token, err := s.tokens.GetByCode(ctx, parsed)
	if err != nil {
		s.log.Error("token lookup failed", zap.Error(err))
		return false
	}
	if token == nil {
		return false
	}
	return token.ValidAt(s.now())
}
