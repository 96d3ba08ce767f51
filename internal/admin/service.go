package admin

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"someswar-temple/internal/auth"
	"someswar-temple/internal/models"
)

// ErrInvalidCredentials covers unknown username and wrong password alike so
// the login response never reveals which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	users   UserRepository
	manager *auth.Manager
}

func NewService(users UserRepository, manager *auth.Manager) *Service {
	return &Service{users: users, manager: manager}
}

type LoginResult struct {
	Token    string
	Username string
	Role     string
}

func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if user.Role != models.UserRoleAdmin {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.manager.NewAccessToken(user.Username, user.Role)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Username: user.Username, Role: user.Role}, nil
}
