package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"villagemart/internal/database"
	"villagemart/internal/domain/admin"
	"villagemart/internal/domain/analytics"
	"villagemart/internal/domain/customer"
	"villagemart/internal/domain/notification"
	"villagemart/internal/domain/product"
	"villagemart/internal/domain/shopkeeper"
	"villagemart/internal/middleware"
	jwtsvc "villagemart/internal/pkg/jwt"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
	mailer *recordingMailer
}

type recordingMailer struct {
	sent []notification.RestockEmail
}

func (m *recordingMailer) SendRestockEmail(_ context.Context, e notification.RestockEmail) bool {
	m.sent = append(m.sent, e)
	return true
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// setupSuite wires the full API the same way cmd/api does, with an
// in-memory database and a recording mail transport.
func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	customerRepo := customer.NewRepository(db)
	shopkeeperRepo := shopkeeper.NewRepository(db)
	adminRepo := admin.NewRepository(db)
	productRepo := product.NewRepository(db)
	notificationRepo := notification.NewNotificationRepository(db)
	subscriptionRepo := notification.NewSubscriptionRepository(db)
	analyticsRepo := analytics.NewRepository(db)

	j := jwtsvc.New("e2e-secret", time.Hour)
	mailer := &recordingMailer{}
	hub := notification.NewHub()

	fanout := notification.NewFanout(subscriptionRepo, notificationRepo, customerRepo, mailer, hub, "http://localhost:5173", zerolog.Nop())

	notificationService := notification.NewService(notificationRepo, subscriptionRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	customerHandler := customer.NewHandler(customer.NewService(customerRepo, j))
	shopkeeperHandler := shopkeeper.NewHandler(shopkeeper.NewService(shopkeeperRepo, j))
	adminHandler := admin.NewHandler(admin.NewService(adminRepo, j, notificationService))
	analyticsHandler := analytics.NewHandler(analytics.NewService(analyticsRepo))

	productService := product.NewService(productRepo, shopkeeperRepo, fanout, analyticsRepo, zerolog.Nop())
	productHandler := product.NewHandler(productService, t.TempDir())

	r := gin.New()
	auth := middleware.Auth(j)
	v1 := r.Group("/api/v1")
	{
		customerHandler.RegisterRoutes(v1, auth)
		shopkeeperHandler.RegisterRoutes(v1, auth)
		adminHandler.RegisterRoutes(v1, auth)
		productHandler.RegisterRoutes(v1, auth)
		notificationHandler.RegisterRoutes(v1, auth)
		analyticsHandler.RegisterRoutes(v1, auth)
	}

	// Seed the back-office account.
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, db.Create(&admin.Admin{Name: "Admin", Email: "admin@test.local", Password: string(hash)}).Error)

	return &testSuite{router: r, db: db, mailer: mailer}
}

func (s *testSuite) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, *apiResponse) {
	t.Helper()
	var buf io.Reader
	contentType := "application/json"
	switch b := body.(type) {
	case nil:
	case *formBody:
		buf = b.buf
		contentType = b.contentType
	default:
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, &resp
}

type formBody struct {
	buf         *bytes.Buffer
	contentType string
}

func productForm(t *testing.T, fields map[string]string) *formBody {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &formBody{buf: buf, contentType: mw.FormDataContentType()}
}

func (s *testSuite) registerShopkeeper(t *testing.T, email string) (token string, id int64) {
	t.Helper()
	w, resp := s.do(t, http.MethodPost, "/api/v1/shopkeepers/register", "", map[string]any{
		"name": "Ramesh Kumar", "email": email, "password": "secret123",
		"shop_name": "Kumar General Store", "address": "Main Road, Rampur", "category": "Grocery",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
		User  struct {
			ID                 int64  `json:"id"`
			VerificationStatus string `json:"verification_status"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "pending", data.User.VerificationStatus)
	return data.Token, data.User.ID
}

func (s *testSuite) registerCustomer(t *testing.T, email string) (token string, id int64) {
	t.Helper()
	w, resp := s.do(t, http.MethodPost, "/api/v1/customers/register", "", map[string]any{
		"name": "Anita Sharma", "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
		User  struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.Token, data.User.ID
}

func (s *testSuite) loginAdmin(t *testing.T) string {
	t.Helper()
	w, resp := s.do(t, http.MethodPost, "/api/v1/admin/login", "", map[string]any{
		"email": "admin@test.local", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.Token
}

func (s *testSuite) addProduct(t *testing.T, token, name string, price float64, stock int) int64 {
	t.Helper()
	form := productForm(t, map[string]string{
		"name": name, "description": "test product",
		"price": fmt.Sprintf("%g", price), "stock": fmt.Sprintf("%d", stock),
		"category": "Grocery",
	})
	w, resp := s.do(t, http.MethodPost, "/api/v1/products/add", token, form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Product struct {
			ID int64 `json:"id"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.Product.ID
}

func TestRestockNotificationFlow(t *testing.T) {
	s := setupSuite(t)

	shopToken, shopID := s.registerShopkeeper(t, "ramesh@test.local")

	// Unverified shopkeepers cannot list products.
	form := productForm(t, map[string]string{
		"name": "Sunflower Oil 1L", "price": "135", "stock": "0", "category": "Grocery",
	})
	w, resp := s.do(t, http.MethodPost, "/api/v1/products/add", shopToken, form)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_VERIFIED", resp.Error.Code)

	adminToken := s.loginAdmin(t)
	w, _ = s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/shopkeepers/%d/approve", shopID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	productID := s.addProduct(t, shopToken, "Sunflower Oil 1L", 135, 0)

	custToken, _ := s.registerCustomer(t, "anita@test.local")

	w, _ = s.do(t, http.MethodPost, "/api/v1/notifications/subscribe", custToken, map[string]any{"product_id": productID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, resp = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/notifications/subscription/%d", productID), custToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status struct {
		Subscribed bool `json:"subscribed"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &status))
	assert.True(t, status.Subscribed)

	// Restock the product: 0 -> 6 triggers the fan-out.
	form = productForm(t, map[string]string{
		"name": "Sunflower Oil 1L", "description": "test product",
		"price": "135", "stock": "6", "category": "Grocery",
	})
	w, _ = s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", productID), shopToken, form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The customer sees exactly one unread notification.
	w, resp = s.do(t, http.MethodGet, "/api/v1/notifications", custToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Notifications []struct {
			ID      int64  `json:"id"`
			Type    string `json:"type"`
			Message string `json:"message"`
			Link    string `json:"link"`
			IsRead  bool   `json:"is_read"`
		} `json:"notifications"`
		UnreadCount int64 `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list.Notifications, 1)
	n := list.Notifications[0]
	assert.Equal(t, "product_available", n.Type)
	assert.Equal(t, "Sunflower Oil 1L is now available with 6 units in stock", n.Message)
	assert.Equal(t, fmt.Sprintf("/product/%d", productID), n.Link)
	assert.False(t, n.IsRead)
	assert.EqualValues(t, 1, list.UnreadCount)

	// And exactly one email.
	require.Len(t, s.mailer.sent, 1)
	assert.Equal(t, "anita@test.local", s.mailer.sent[0].To)
	assert.Equal(t, "Sunflower Oil 1L", s.mailer.sent[0].ProductName)

	// The consumed subscription drops out of the status check and a
	// further stock update adds nothing.
	w, resp = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/notifications/subscription/%d", productID), custToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &status))
	assert.False(t, status.Subscribed)

	form = productForm(t, map[string]string{
		"name": "Sunflower Oil 1L", "description": "test product",
		"price": "135", "stock": "10", "category": "Grocery",
	})
	w, _ = s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", productID), shopToken, form)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = s.do(t, http.MethodGet, "/api/v1/notifications/unread-count", custToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var unread struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &unread))
	assert.EqualValues(t, 1, unread.Count, "no new notification without a zero-to-positive transition")
	assert.Len(t, s.mailer.sent, 1)

	// Mark read.
	w, _ = s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/notifications/%d/read", n.ID), custToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = s.do(t, http.MethodGet, "/api/v1/notifications/unread-count", custToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &unread))
	assert.EqualValues(t, 0, unread.Count)
}

func TestResubscribeAfterRestock(t *testing.T) {
	s := setupSuite(t)

	shopToken, shopID := s.registerShopkeeper(t, "ramesh@test.local")
	adminToken := s.loginAdmin(t)
	w, _ := s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/shopkeepers/%d/approve", shopID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	productID := s.addProduct(t, shopToken, "Paneer 500g", 180, 0)
	custToken, _ := s.registerCustomer(t, "anita@test.local")

	subscribe := func() *httptest.ResponseRecorder {
		w, _ := s.do(t, http.MethodPost, "/api/v1/notifications/subscribe", custToken, map[string]any{"product_id": productID})
		return w
	}
	restock := func(stock int) {
		form := productForm(t, map[string]string{
			"name": "Paneer 500g", "description": "test product",
			"price": "180", "stock": fmt.Sprintf("%d", stock), "category": "Grocery",
		})
		w, _ := s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", productID), shopToken, form)
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.Equal(t, http.StatusOK, subscribe().Code)

	// Duplicate pending subscription is rejected.
	w2, resp := s.do(t, http.MethodPost, "/api/v1/notifications/subscribe", custToken, map[string]any{"product_id": productID})
	require.Equal(t, http.StatusBadRequest, w2.Code)
	assert.Equal(t, "ALREADY_SUBSCRIBED", resp.Error.Code)

	restock(5)
	require.Len(t, s.mailer.sent, 1)

	// After the fan-out the customer can subscribe again and gets
	// notified by the next restock cycle.
	restock(0)
	require.Equal(t, http.StatusOK, subscribe().Code)
	restock(7)

	require.Len(t, s.mailer.sent, 2)
	w3, resp := s.do(t, http.MethodGet, "/api/v1/notifications", custToken, nil)
	require.Equal(t, http.StatusOK, w3.Code)
	var list struct {
		Notifications []struct {
			Message string `json:"message"`
		} `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list.Notifications, 2)
	assert.Equal(t, "Paneer 500g is now available with 7 units in stock", list.Notifications[0].Message)
}

func TestRoleBoundaries(t *testing.T) {
	s := setupSuite(t)

	custToken, custID := s.registerCustomer(t, "anita@test.local")
	shopToken, shopID := s.registerShopkeeper(t, "ramesh@test.local")

	// Customers cannot add products.
	form := productForm(t, map[string]string{
		"name": "X", "price": "1", "stock": "1", "category": "Grocery",
	})
	w, _ := s.do(t, http.MethodPost, "/api/v1/products/add", custToken, form)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Shopkeepers cannot subscribe to restock alerts.
	w, _ = s.do(t, http.MethodPost, "/api/v1/notifications/subscribe", shopToken, map[string]any{"product_id": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Analytics are owner-only.
	w, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/analytics/shopkeeper/%d/overview", shopID+100), shopToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/analytics/shopkeeper/%d/overview", custID), custToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// No token at all.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
