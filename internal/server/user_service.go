// Package server provides the HTTP REST API for the placement suite.
package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/suhan648/placementpro/internal/config"
	"github.com/suhan648/placementpro/internal/db"
	"github.com/suhan648/placementpro/internal/types"
)

// UserStore is the slice of the database the user service needs. Narrowing it
// to an interface keeps the service testable with an in-memory fake.
type UserStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, name, email, passwordHash, role string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CreateStudentShell(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	CreateAlumniShell(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

// UserService provides business logic for account registration and login
type UserService struct {
	db             UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new account with password authentication. Student and
// alumni accounts also get an empty profile row, so profile endpoints work
// immediately after registration.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.UserView, error) {
	// Check if email already exists
	exists, err := s.db.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	// Hash password
	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.db.CreateUser(ctx, req.Name, req.Email, passwordHash, req.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Create the role-specific profile shell
	switch req.Role {
	case "student":
		if _, err := s.db.CreateStudentShell(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to create student profile: %w", err)
		}
	case "alumni":
		if _, err := s.db.CreateAlumniShell(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to create alumni profile: %w", err)
		}
	}

	// Retrieve created user
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	// Convert and return (password hash excluded)
	return types.NewUserView(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.UserView, error) {
	// Get user by email
	dbUser, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: Always return generic error if user not found or password wrong
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}

	// Verify password
	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	// Convert and return (password hash excluded)
	return types.NewUserView(dbUser), nil
}
