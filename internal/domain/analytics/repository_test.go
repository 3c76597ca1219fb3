package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"villagemart/internal/domain/product"
)

func setupRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:analytics_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Order{}, &ProductView{}, &product.Product{}))
	return NewRepository(db), db
}

func seedOrder(t *testing.T, db *gorm.DB, shopkeeperID, productID int64, amount float64, daysAgo int, status string) {
	t.Helper()
	require.NoError(t, db.Create(&Order{
		CustomerID:   1,
		ShopkeeperID: shopkeeperID,
		ProductID:    productID,
		Quantity:     1,
		TotalAmount:  amount,
		Status:       status,
		CreatedAt:    time.Now().AddDate(0, 0, -daysAgo),
	}).Error)
}

func TestRevenueAndOrderWindow(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	seedOrder(t, db, 1, 10, 100, 2, "completed")
	seedOrder(t, db, 1, 10, 200, 5, "completed")
	seedOrder(t, db, 1, 10, 999, 40, "completed") // outside window
	seedOrder(t, db, 1, 10, 50, 1, "cancelled")   // never counted
	seedOrder(t, db, 2, 11, 500, 1, "completed")  // another shop

	since := time.Now().AddDate(0, 0, -30)

	revenue, err := repo.Revenue(ctx, 1, since, time.Time{})
	require.NoError(t, err)
	assert.InDelta(t, 300, revenue, 0.001)

	orders, err := repo.OrderCount(ctx, 1, since, time.Time{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, orders)

	all, err := repo.Revenue(ctx, 1, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.InDelta(t, 1299, all, 0.001)
}

func TestRecordViewAndCount(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordView(ctx, 10, 1))
	require.NoError(t, repo.RecordView(ctx, 10, 1))
	require.NoError(t, repo.RecordView(ctx, 20, 2))

	count, err := repo.ViewCount(ctx, 1, time.Time{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestTopProductsRanking(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&product.Product{ID: 10, ShopkeeperID: 1, Name: "Rice", Price: 450}).Error)
	require.NoError(t, db.Create(&product.Product{ID: 11, ShopkeeperID: 1, Name: "Dal", Price: 140}).Error)

	seedOrder(t, db, 1, 10, 450, 1, "completed")
	seedOrder(t, db, 1, 11, 140, 1, "completed")
	seedOrder(t, db, 1, 11, 280, 2, "completed")

	top, err := repo.TopProducts(ctx, 1, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Rice", top[0].Name)
	assert.InDelta(t, 450, top[0].Revenue, 0.001)
	assert.Equal(t, "Dal", top[1].Name)
	assert.EqualValues(t, 2, top[1].UnitsSold)
}

func TestOverviewGrowth(t *testing.T) {
	repo, db := setupRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	// Current 30 days: 300. Previous 30 days: 150.
	seedOrder(t, db, 1, 10, 300, 5, "completed")
	seedOrder(t, db, 1, 10, 150, 45, "completed")

	out, err := svc.Overview(ctx, 1, "30")
	require.NoError(t, err)
	assert.InDelta(t, 300, out.TotalRevenue, 0.001)
	assert.EqualValues(t, 1, out.TotalOrders)
	assert.InDelta(t, 300, out.AvgOrderValue, 0.001)
	assert.InDelta(t, 100, out.RevenueGrowth, 0.001)
	assert.InDelta(t, 0, out.OrdersGrowth, 0.001)
}

func TestOverviewAllTime(t *testing.T) {
	repo, db := setupRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	seedOrder(t, db, 1, 10, 100, 5, "completed")
	seedOrder(t, db, 1, 10, 200, 400, "completed")

	out, err := svc.Overview(ctx, 1, "all")
	require.NoError(t, err)
	assert.InDelta(t, 300, out.TotalRevenue, 0.001)
	assert.EqualValues(t, 2, out.TotalOrders)
	assert.Zero(t, out.RevenueGrowth)
}

func TestRevenueTrendsBuckets(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	seedOrder(t, db, 1, 10, 100, 1, "completed")
	seedOrder(t, db, 1, 10, 50, 1, "completed")
	seedOrder(t, db, 1, 10, 200, 3, "completed")

	points, err := repo.RevenueTrends(ctx, 1, time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, points, 2)
	// Oldest bucket first.
	assert.InDelta(t, 200, points[0].Revenue, 0.001)
	assert.InDelta(t, 150, points[1].Revenue, 0.001)
	assert.EqualValues(t, 2, points[1].Orders)
}
