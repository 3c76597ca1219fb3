package product

import (
	"context"

	"github.com/rs/zerolog"

	"villagemart/internal/domain/shopkeeper"
)

type Service struct {
	repo    *Repository
	gate    ShopkeeperGate
	restock RestockNotifier
	views   ViewRecorder
	log     zerolog.Logger
}

func NewService(repo *Repository, gate ShopkeeperGate, restock RestockNotifier, views ViewRecorder, log zerolog.Logger) *Service {
	return &Service{repo: repo, gate: gate, restock: restock, views: views, log: log}
}

// Create lists a new product. Only approved shopkeepers may sell.
func (s *Service) Create(ctx context.Context, shopkeeperID int64, in CreateInput) (*Product, error) {
	status, err := s.gate.VerificationStatus(ctx, shopkeeperID)
	if err != nil {
		return nil, err
	}
	if status != string(shopkeeper.StatusApproved) {
		return nil, &NotVerifiedError{Status: status}
	}

	p := &Product{
		ShopkeeperID: shopkeeperID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Stock:        in.Stock,
		Category:     in.Category,
		Image:        in.ImagePath,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update persists the new product fields, then — if the stock moved
// from zero to positive — runs the restock fan-out inline. The fan-out
// is a side effect of a successful write: its failure is logged and
// never rolls back or fails the update.
func (s *Service) Update(ctx context.Context, id, shopkeeperID int64, in UpdateInput) (*Product, error) {
	old, updated, err := s.repo.Update(ctx, id, shopkeeperID, in)
	if err != nil {
		return nil, err
	}

	if old.Stock == 0 && updated.Stock > 0 {
		if _, err := s.restock.OnStockReplenished(ctx, updated.ID, updated.Name, updated.Price, updated.Stock); err != nil {
			s.log.Error().Err(err).Int64("product_id", updated.ID).Msg("restock fan-out failed")
		}
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id, shopkeeperID int64) error {
	return s.repo.Delete(ctx, id, shopkeeperID)
}

func (s *Service) ListPublic(ctx context.Context) ([]ProductWithShop, error) {
	return s.repo.ListPublic(ctx)
}

func (s *Service) ListByShopkeeper(ctx context.Context, shopkeeperID int64) ([]Product, error) {
	return s.repo.ListByShopkeeper(ctx, shopkeeperID)
}

func (s *Service) Compare(ctx context.Context) ([]CompareRow, error) {
	return s.repo.Compare(ctx)
}

// GetDetail loads the product page view and records the view for the
// shop's analytics, best-effort.
func (s *Service) GetDetail(ctx context.Context, id int64) (*ProductDetail, error) {
	d, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.views != nil {
		if err := s.views.RecordView(ctx, d.ID, d.ShopkeeperID); err != nil {
			s.log.Warn().Err(err).Int64("product_id", d.ID).Msg("failed to record product view")
		}
	}
	return d, nil
}
