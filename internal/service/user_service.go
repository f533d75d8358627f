package service

import (
	"Snapfeed/internal/api/dto"
	"Snapfeed/internal/model"
	"Snapfeed/internal/pkg/security"
	"Snapfeed/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// TokenRevoker 注销 Token 的黑名单写入端
type TokenRevoker interface {
	Revoke(ctx context.Context, signature string, expiration time.Duration) error
}

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id string) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
	revoker  TokenRevoker
}

func NewUserService(userRepo repository.UserRepo, revoker TokenRevoker) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		revoker:  revoker,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error) {
	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", UnExpectedError, err)
	}
	if findUser != nil {
		return nil, ErrUserEmailExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", UnExpectedError, err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        regDTO.Email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", UnExpectedError, err)
	}

	return s.toUserDTO(user), nil
}

func (s *userServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, credDTO.Email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", UnExpectedError, err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if err = security.CheckPasswordHash(credDTO.Password, user.PasswordHash); err != nil {
		return "", ErrPasswordIncorrect
	}
	if !user.IsActive {
		return "", ErrUserInactive
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", UnExpectedError, err)
	}
	return token, nil
}

// Logout 将 Token 签名拉黑，有效期与 Token 剩余寿命对齐
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	if err = s.revoker.Revoke(ctx, signature, security.TokenTTL()); err != nil {
		return fmt.Errorf("%w: %v", UnExpectedError, err)
	}
	return nil
}

func (s *userServiceImpl) GetUserInfo(ctx context.Context, id string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", UnExpectedError, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.toUserDTO(user), nil
}

func (s *userServiceImpl) toUserDTO(user *model.User) *dto.UserDTO {
	out := &dto.UserDTO{}
	_ = copier.Copy(out, user)
	out.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	return out
}
