package auth

import (
	"context"
	"fmt"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/features/audit"
	"oakcraft/internal/features/user"
	"oakcraft/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string              `json:"token"`
	User  *common_models.User `json:"user"`
}

type AuthService interface {
	// Register creates a self-service storefront account. It always gets
	// the customer role; staff roles are assigned through user management.
	Register(ctx context.Context, input *RegisterInput) (*LoginResult, error)
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)
}

type AuthServiceImpl struct {
	UserService  user.UserService
	UserRepo     user.UserRepository
	AuditService audit.AuditService
	Logger       *zap.Logger
}

func NewAuthService(userService user.UserService, userRepo user.UserRepository, auditService audit.AuditService, logger *zap.Logger) AuthService {
	return &AuthServiceImpl{
		UserService:  userService,
		UserRepo:     userRepo,
		AuditService: auditService,
		Logger:       logger,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, input *RegisterInput) (*LoginResult, error) {
	created, err := s.UserService.CreateUser(ctx, &user.CreateUserInput{
		Username:  input.Username,
		Password:  input.Password,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      common_models.RoleCustomer,
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(created.ID, string(created.Permissions.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: created}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	found, err := s.UserRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		// Same error for unknown user and bad password
		return nil, fmt.Errorf("invalid credentials")
	}
	if found.Status != "active" {
		return nil, fmt.Errorf("account is %s", found.Status)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(input.Password)); err != nil {
		s.Logger.Warn("failed login attempt", zap.String("username", input.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(found.ID, string(found.Permissions.Role))
	if err != nil {
		return nil, err
	}

	if err := s.UserRepo.UpdateLastLogin(ctx, found.ID.Hex()); err != nil {
		s.Logger.Warn("could not record last login", zap.Error(err))
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionLogin, "auth", found.ID.Hex(), nil)

	return &LoginResult{Token: token, User: found}, nil
}
