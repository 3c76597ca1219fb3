package admin

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"villagemart/internal/domain/shopkeeper"
	jwtsvc "villagemart/internal/pkg/jwt"
	"villagemart/internal/pkg/logger"
)

const roleName = "admin"

type Service struct {
	repo     *Repository
	jwt      *jwtsvc.Service
	notifier VerificationNotifier
}

func NewService(repo *Repository, jwt *jwtsvc.Service, notifier VerificationNotifier) *Service {
	return &Service{repo: repo, jwt: jwt, notifier: notifier}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, *Admin, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(a.ID, roleName)
	if err != nil {
		return "", nil, err
	}
	return token, a, nil
}

func (s *Service) ListPending(ctx context.Context) ([]shopkeeper.Shopkeeper, error) {
	return s.repo.ListShopkeepers(ctx, string(shopkeeper.StatusPending))
}

func (s *Service) ListAll(ctx context.Context, status string) ([]shopkeeper.Shopkeeper, error) {
	return s.repo.ListShopkeepers(ctx, status)
}

// Approve marks the shopkeeper verified and notifies them. The
// notification is a side effect of a successful approval: a failure
// there is logged, not surfaced.
func (s *Service) Approve(ctx context.Context, shopkeeperID, adminID int64) (*shopkeeper.Shopkeeper, error) {
	sk, err := s.repo.ApproveShopkeeper(ctx, shopkeeperID, adminID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyVerificationApproved(ctx, sk.ID, sk.ShopName); err != nil {
			logger.Log.Error().Err(err).Int64("shopkeeper_id", sk.ID).Msg("failed to notify shopkeeper of approval")
		}
	}
	return sk, nil
}

func (s *Service) Reject(ctx context.Context, shopkeeperID, adminID int64, reason string) (*shopkeeper.Shopkeeper, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	sk, err := s.repo.RejectShopkeeper(ctx, shopkeeperID, adminID, reason)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyVerificationRejected(ctx, sk.ID, sk.ShopName, reason); err != nil {
			logger.Log.Error().Err(err).Int64("shopkeeper_id", sk.ID).Msg("failed to notify shopkeeper of rejection")
		}
	}
	return sk, nil
}
