package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"villagemart/internal/domain/shopkeeper"
	jwtsvc "villagemart/internal/pkg/jwt"
)

type MockVerificationNotifier struct {
	mock.Mock
}

func (m *MockVerificationNotifier) NotifyVerificationApproved(ctx context.Context, shopkeeperID int64, shopName string) error {
	args := m.Called(ctx, shopkeeperID, shopName)
	return args.Error(0)
}

func (m *MockVerificationNotifier) NotifyVerificationRejected(ctx context.Context, shopkeeperID int64, shopName, reason string) error {
	args := m.Called(ctx, shopkeeperID, shopName, reason)
	return args.Error(0)
}

func setupService(t *testing.T) (*Service, *gorm.DB, *MockVerificationNotifier) {
	t.Helper()
	dsn := fmt.Sprintf("file:admin_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Admin{}, &shopkeeper.Shopkeeper{}))

	notifier := &MockVerificationNotifier{}
	svc := NewService(NewRepository(db), jwtsvc.New("test-secret", time.Hour), notifier)
	return svc, db, notifier
}

func seedShopkeeper(t *testing.T, db *gorm.DB, status shopkeeper.VerificationStatus) *shopkeeper.Shopkeeper {
	t.Helper()
	sk := &shopkeeper.Shopkeeper{
		Name:               "Ramesh Kumar",
		Email:              fmt.Sprintf("ramesh-%s@example.com", t.Name()),
		Password:           "x",
		ShopName:           "Kumar General Store",
		VerificationStatus: status,
	}
	require.NoError(t, db.Create(sk).Error)
	return sk
}

func TestLogin(t *testing.T) {
	svc, db, _ := setupService(t)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, db.Create(&Admin{Name: "Admin", Email: "admin@example.com", Password: string(hash)}).Error)

	token, a, err := svc.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin@example.com", a.Email)

	_, _, err = svc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestApproveNotifiesShopkeeper(t *testing.T) {
	svc, db, notifier := setupService(t)
	ctx := context.Background()

	sk := seedShopkeeper(t, db, shopkeeper.StatusPending)
	notifier.On("NotifyVerificationApproved", mock.Anything, sk.ID, "Kumar General Store").Return(nil).Once()

	out, err := svc.Approve(ctx, sk.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, shopkeeper.StatusApproved, out.VerificationStatus)
	assert.True(t, out.VerifiedAt.Valid)
	assert.EqualValues(t, 1, out.VerifiedBy.Int64)
	notifier.AssertExpectations(t)
}

func TestApproveSurvivesNotifierFailure(t *testing.T) {
	svc, db, notifier := setupService(t)
	ctx := context.Background()

	sk := seedShopkeeper(t, db, shopkeeper.StatusPending)
	notifier.On("NotifyVerificationApproved", mock.Anything, sk.ID, mock.Anything).
		Return(errors.New("hub down")).Once()

	out, err := svc.Approve(ctx, sk.ID, 1)
	require.NoError(t, err, "notification failure does not fail the approval")
	assert.Equal(t, shopkeeper.StatusApproved, out.VerificationStatus)
}

func TestRejectRequiresReason(t *testing.T) {
	svc, db, notifier := setupService(t)
	ctx := context.Background()

	sk := seedShopkeeper(t, db, shopkeeper.StatusPending)

	_, err := svc.Reject(ctx, sk.ID, 1, "")
	assert.ErrorIs(t, err, ErrReasonRequired)

	notifier.On("NotifyVerificationRejected", mock.Anything, sk.ID, "Kumar General Store", "Incomplete GSTIN details").
		Return(nil).Once()

	out, err := svc.Reject(ctx, sk.ID, 1, "Incomplete GSTIN details")
	require.NoError(t, err)
	assert.Equal(t, shopkeeper.StatusRejected, out.VerificationStatus)
	assert.Equal(t, "Incomplete GSTIN details", out.RejectionReason.String)
	notifier.AssertExpectations(t)
}

// Re-approval after a rejection clears the stored reason.
func TestApproveClearsRejectionReason(t *testing.T) {
	svc, db, notifier := setupService(t)
	ctx := context.Background()

	sk := seedShopkeeper(t, db, shopkeeper.StatusPending)
	notifier.On("NotifyVerificationRejected", mock.Anything, sk.ID, mock.Anything, mock.Anything).Return(nil).Once()
	notifier.On("NotifyVerificationApproved", mock.Anything, sk.ID, mock.Anything).Return(nil).Once()

	_, err := svc.Reject(ctx, sk.ID, 1, "Missing license")
	require.NoError(t, err)

	out, err := svc.Approve(ctx, sk.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, shopkeeper.StatusApproved, out.VerificationStatus)
	assert.False(t, out.RejectionReason.Valid)
}

func TestListPendingFilters(t *testing.T) {
	svc, db, _ := setupService(t)
	ctx := context.Background()

	pending := seedShopkeeper(t, db, shopkeeper.StatusPending)
	approved := &shopkeeper.Shopkeeper{
		Name: "Sita Devi", Email: "sita@example.com", Password: "x",
		ShopName: "Devi Dairy", VerificationStatus: shopkeeper.StatusApproved,
	}
	require.NoError(t, db.Create(approved).Error)

	out, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, pending.ID, out[0].ID)

	all, err := svc.ListAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestApproveUnknownShopkeeper(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Approve(context.Background(), 9999, 1)
	assert.ErrorIs(t, err, ErrShopkeeperNotFound)
}
