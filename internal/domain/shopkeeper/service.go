package shopkeeper

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "villagemart/internal/pkg/jwt"
)

const roleName = "shopkeeper"

type Service struct {
	repo *Repository
	jwt  *jwtsvc.Service
}

func NewService(repo *Repository, jwt *jwtsvc.Service) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Register creates a shopkeeper account in pending verification state.
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

	sk := &Shopkeeper{
		Name:               req.Name,
		Email:              req.Email,
		Password:           string(hashed),
		Phone:              req.Phone,
		ShopName:           req.ShopName,
		Address:            req.Address,
		GSTIN:              req.GSTIN,
		PAN:                req.PAN,
		LicenseNumber:      req.LicenseNumber,
		Category:           req.Category,
		VerificationStatus: StatusPending,
	}
	if err := s.repo.Create(ctx, sk); err != nil {
		return nil, err
	}

	return s.authResponse(sk)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	sk, err := s.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(sk.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(sk)
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*UserPayload, error) {
	err := s.repo.UpdateProfile(ctx, id, map[string]any{
		"name":           req.Name,
		"phone":          req.Phone,
		"shop_name":      req.ShopName,
		"address":        req.Address,
		"gstin":          req.GSTIN,
		"pan":            req.PAN,
		"license_number": req.LicenseNumber,
		"category":       req.Category,
	})
	if err != nil {
		return nil, err
	}

	sk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payload := toUserPayload(sk)
	return &payload, nil
}

// GetShopDetail returns the public view of a shop.
func (s *Service) GetShopDetail(ctx context.Context, id int64) (*ShopDetail, error) {
	sk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ShopDetail{
		ID:       sk.ID,
		ShopName: sk.ShopName,
		Name:     sk.Name,
		Category: sk.Category,
		Address:  sk.Address,
		Phone:    sk.Phone,
		Email:    sk.Email,
	}, nil
}

func (s *Service) authResponse(sk *Shopkeeper) (*AuthResponse, error) {
	token, err := s.jwt.GenerateToken(sk.ID, roleName)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: toUserPayload(sk)}, nil
}
