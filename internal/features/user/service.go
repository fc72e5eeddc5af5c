package user

import (
	"context"
	"fmt"
	"time"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/features/audit"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserInput struct {
	Username  string             `json:"username"`
	Password  string             `json:"password"`
	Email     string             `json:"email"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	Phone     string             `json:"phone"`
	Role      common_models.Role `json:"role"`
}

type UpdateUserInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
}

type UserService interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*common_models.User, error)
	GetUser(ctx context.Context, id string) (*common_models.User, error)
	ListUsers(ctx context.Context, limit, offset int64) ([]common_models.User, error)
	UpdateUser(ctx context.Context, id string, input *UpdateUserInput) error
	DeleteUser(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	UserRepo     UserRepository
	AuditService audit.AuditService
	Logger       *zap.Logger
}

func NewUserService(userRepo UserRepository, auditService audit.AuditService, logger *zap.Logger) UserService {
	return &UserServiceImpl{
		UserRepo:     userRepo,
		AuditService: auditService,
		Logger:       logger,
	}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, input *CreateUserInput) (*common_models.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	// super_admin accounts are provisioned by the seeder, never over the API
	if input.Role == common_models.RoleSuperAdmin {
		return nil, fmt.Errorf("cannot create a super_admin user")
	}

	if existing, _ := s.UserRepo.FindByUsername(ctx, input.Username); existing != nil {
		return nil, fmt.Errorf("username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = common_models.RoleCustomer
	}

	now := time.Now()
	user := &common_models.User{
		Username:  input.Username,
		Password:  string(hashed),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Status:    "active",
		Permissions: common_models.PermissionAssignment{
			Role: role,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "users", user.Username, map[string]common_models.Change{
		"role": {New: role},
	})

	s.Logger.Info("user created", zap.String("username", user.Username), zap.String("role", string(role)))
	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*common_models.User, error) {
	return s.UserRepo.FindByID(ctx, id)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, limit, offset int64) ([]common_models.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.UserRepo.List(ctx, limit, offset)
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, input *UpdateUserInput) error {
	existing, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user not found")
	}

	changes := map[string]common_models.Change{}
	if input.Email != "" && input.Email != existing.Email {
		changes["email"] = common_models.Change{Old: existing.Email, New: input.Email}
		existing.Email = input.Email
	}
	if input.FirstName != "" {
		existing.FirstName = input.FirstName
	}
	if input.LastName != "" {
		existing.LastName = input.LastName
	}
	if input.Phone != "" {
		existing.Phone = input.Phone
	}
	if input.Status != "" {
		switch input.Status {
		case "active", "inactive", "suspended":
		default:
			return fmt.Errorf("invalid status: %s", input.Status)
		}
		if input.Status != existing.Status {
			changes["status"] = common_models.Change{Old: existing.Status, New: input.Status}
		}
		existing.Status = input.Status
	}

	if err := s.UserRepo.Update(ctx, id, existing); err != nil {
		return err
	}

	if len(changes) > 0 {
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "users", id, changes)
	}
	return nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	existing, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user not found")
	}
	if existing.Permissions.Role == common_models.RoleSuperAdmin {
		return fmt.Errorf("cannot delete a super_admin user")
	}

	if err := s.UserRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "users", id, nil)
	return nil
}
