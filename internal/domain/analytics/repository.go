package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"

	"villagemart/internal/domain/product"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// RecordView stores one product detail view. Satisfies
// product.ViewRecorder.
func (r *Repository) RecordView(ctx context.Context, productID, shopkeeperID int64) error {
	return r.db.WithContext(ctx).Create(&ProductView{
		ProductID:    productID,
		ShopkeeperID: shopkeeperID,
	}).Error
}

func (r *Repository) CreateOrder(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// ordersWindow scopes non-cancelled orders of one shopkeeper to an
// optional [since, until) window. Zero times mean unbounded.
func (r *Repository) ordersWindow(ctx context.Context, shopkeeperID int64, since, until time.Time) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&Order{}).
		Where("shopkeeper_id = ? AND status <> ?", shopkeeperID, "cancelled")
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	if !until.IsZero() {
		q = q.Where("created_at < ?", until)
	}
	return q
}

func (r *Repository) Revenue(ctx context.Context, shopkeeperID int64, since, until time.Time) (float64, error) {
	var revenue float64
	err := r.ordersWindow(ctx, shopkeeperID, since, until).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *Repository) OrderCount(ctx context.Context, shopkeeperID int64, since, until time.Time) (int64, error) {
	var count int64
	err := r.ordersWindow(ctx, shopkeeperID, since, until).Count(&count).Error
	return count, err
}

func (r *Repository) ProductCount(ctx context.Context, shopkeeperID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&product.Product{}).
		Where("shopkeeper_id = ?", shopkeeperID).
		Count(&count).Error
	return count, err
}

func (r *Repository) ViewCount(ctx context.Context, shopkeeperID int64, since time.Time) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&ProductView{}).
		Where("shopkeeper_id = ?", shopkeeperID)
	if !since.IsZero() {
		q = q.Where("viewed_at >= ?", since)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

// RevenueTrends buckets revenue per day. DATE() is understood by both
// SQLite and PostgreSQL.
func (r *Repository) RevenueTrends(ctx context.Context, shopkeeperID int64, since time.Time) ([]TrendPoint, error) {
	var points []TrendPoint
	err := r.ordersWindow(ctx, shopkeeperID, since, time.Time{}).
		Select("DATE(created_at) AS date, COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS orders").
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&points).Error
	return points, err
}

func (r *Repository) TopProducts(ctx context.Context, shopkeeperID int64, since time.Time, limit int) ([]TopProduct, error) {
	q := r.db.WithContext(ctx).
		Table("orders").
		Select(`orders.product_id, products.name,
			COALESCE(SUM(orders.quantity), 0) AS units_sold,
			COALESCE(SUM(orders.total_amount), 0) AS revenue`).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.shopkeeper_id = ? AND orders.status <> ?", shopkeeperID, "cancelled").
		Group("orders.product_id, products.name").
		Order("revenue DESC").
		Limit(limit)
	if !since.IsZero() {
		q = q.Where("orders.created_at >= ?", since)
	}

	var rows []TopProduct
	err := q.Scan(&rows).Error
	return rows, err
}
