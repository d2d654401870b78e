package user

import (
	"context"
	"errors"
	"strings"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/logger"
	"foodgram/internal/utils/mailing"
	"foodgram/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service.go -package=mock

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Logout(ctx context.Context, token string) error
		GetUsers(ctx context.Context, viewer domain.Viewer, pagination domain.Pagination) ([]domain.UserResponse, int64, error)
		GetUserByID(ctx context.Context, id int64, viewer domain.Viewer) (domain.UserResponse, error)
		Me(ctx context.Context, viewer domain.Viewer) (domain.UserResponse, error)
		SetPassword(ctx context.Context, viewer domain.Viewer, req domain.SetPasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		appURL         string
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer, appURL string) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
		appURL:         appURL,
	}
}

func ToUserResponse(u *entities.User) domain.UserResponse {
	if u == nil {
		return domain.UserResponse{}
	}
	return domain.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: u.IsSubscribed,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepository.CheckEmailExists(ctx, email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyUsed
	}

	exists, err = s.userRepository.CheckUsernameExists(ctx, req.Username)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrUsernameAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, domain.ErrHashPassword
	}

	user := &entities.User{
		Email:     email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hash),
		Role:      domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, domain.ErrEmailAlreadyUsed
		}
		return domain.RegisterResponse{}, err
	}

	if err := s.mailer.SendMail(user.Email, "Welcome to Foodgram", mailing.WelcomeMailBody(s.appURL, user.FirstName)); err != nil {
		logger.Warn().Err(err).Int64("user_id", user.ID).Msg("welcome mail not sent")
	}

	return domain.RegisterResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID, user.Role)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{AuthToken: token}, nil
}

func (s *userService) Logout(ctx context.Context, token string) error {
	return s.jwtService.RevokeToken(ctx, token)
}

func (s *userService) GetUsers(ctx context.Context, viewer domain.Viewer, pagination domain.Pagination) ([]domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, viewer.ID, pagination)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, ToUserResponse(u))
	}
	return res, count, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64, viewer domain.Viewer) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id, viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return ToUserResponse(user), nil
}

func (s *userService) Me(ctx context.Context, viewer domain.Viewer) (domain.UserResponse, error) {
	if !viewer.Authenticated() {
		return domain.UserResponse{}, domain.ErrTokenNotFound
	}
	return s.GetUserByID(ctx, viewer.ID, viewer)
}

func (s *userService) SetPassword(ctx context.Context, viewer domain.Viewer, req domain.SetPasswordRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, viewer.ID, 0)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrHashPassword
	}

	return s.userRepository.UpdatePassword(ctx, user.ID, string(hash))
}
