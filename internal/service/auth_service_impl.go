package service

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain"
)

type authService struct {
	users []domain.User
}

// NewAuthService creates the credential gate over a fixed user list.
func NewAuthService(users []domain.User) AuthService {
	return &authService{users: users}
}

// Login checks email and password by exact string match.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	for i := range s.users {
		if s.users[i].Email == email && s.users[i].Password == password {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid email or password", domain.ErrValidation)
}
