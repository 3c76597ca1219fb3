package customer

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "villagemart/internal/pkg/jwt"
)

const roleName = "customer"

type Service struct {
	repo *Repository
	jwt  *jwtsvc.Service
}

func NewService(repo *Repository, jwt *jwtsvc.Service) *Service {
	return &Service{repo: repo, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c := &Customer{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return s.authResponse(c)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	c, err := s.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(c)
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*UserPayload, error) {
	if err := s.repo.UpdateProfile(ctx, id, req.Name, req.Phone, req.Address); err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payload := toUserPayload(c)
	return &payload, nil
}

func (s *Service) authResponse(c *Customer) (*AuthResponse, error) {
	token, err := s.jwt.GenerateToken(c.ID, roleName)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: toUserPayload(c)}, nil
}
