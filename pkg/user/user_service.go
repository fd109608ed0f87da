package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"Aethera-Backend/domain"
	"Aethera-Backend/entities"
	"Aethera-Backend/internal/utils"
	"Aethera-Backend/internal/utils/mailing"
	"Aethera-Backend/pkg/jwt"
)

const verifyEmailTokenDuration = time.Hour * 24

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		SendVerifyEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error
		VerifyEmail(ctx context.Context, token string) error
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.MeResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:          uuid.New(),
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    string(hashed),
		Role:        domain.RoleUser,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	if err := s.sendVerificationMail(user.Email); err != nil {
		// Registration stands; the user can request another mail.
		fmt.Printf("failed to send verification email: %v\n", err)
	}

	return domain.RegisterResponse{
		ID:       user.ID.String(),
		FullName: user.FullName,
		Email:    user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return domain.LoginResponse{}, domain.ErrAccountNotVerified
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) SendVerifyEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.IsVerified {
		return domain.ErrAccountAlreadyVerify
	}

	return s.sendVerificationMail(user.Email)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenVerifyEmail(token)
	if err != nil {
		return err
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.IsVerified {
		return domain.ErrAccountAlreadyVerify
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return toMeResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.CompanyName != "" {
		user.CompanyName = req.CompanyName
	}
	if req.Industry != "" {
		user.Industry = req.Industry
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.MeResponse{}, err
	}

	return toMeResponse(user), nil
}

func (s *userService) sendVerificationMail(email string) error {
	token, err := s.jwtService.GenerateTokenVerifyEmail(map[string]any{"email": email}, verifyEmailTokenDuration)
	if err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Welcome to Aethera!</p><p>Please verify your email address by clicking <a href=%q>this link</a>. The link expires in 24 hours.</p>",
		verifyLink,
	)

	return mailing.SendMail(email, "Verify your Aethera account", body)
}

func toMeResponse(user *entities.User) domain.MeResponse {
	return domain.MeResponse{
		ID:          user.ID.String(),
		FullName:    user.FullName,
		Email:       user.Email,
		CompanyName: user.CompanyName,
		Industry:    user.Industry,
		IsVerified:  user.IsVerified,
	}
}
