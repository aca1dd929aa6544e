package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"galeri/internal/handlers"
	"galeri/internal/middleware"
	"galeri/internal/models"
	"galeri/internal/repositories"
	"galeri/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp boots the whole Fiber app over a private in-memory SQLite
// database, wired exactly like main but without a message broker.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
		&models.LikePost{},
		&models.SavePost{},
		&models.Comment{},
		&models.Follow{},
		&models.UserActivity{},
		&models.Notification{},
	))

	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	checkoutRepo := repositories.NewGORMCheckoutRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	addressRepo := repositories.NewGORMAddressRepository(db)
	socialRepo := repositories.NewGORMSocialRepository(db)
	activityRepo := repositories.NewGORMActivityRepository(db)
	notificationRepo := repositories.NewGORMNotificationRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	postService := services.NewPostService(postRepo, activityRepo)
	cartService := services.NewCartService(cartRepo)
	checkoutService := services.NewCheckoutService(checkoutRepo, nil) // no broker in tests
	orderService := services.NewOrderService(orderRepo)
	addressService := services.NewAddressService(addressRepo)
	socialService := services.NewSocialService(socialRepo, postRepo, userRepo, activityRepo, notificationRepo)
	activityService := services.NewActivityService(activityRepo)
	notificationService := services.NewNotificationService(notificationRepo, postRepo, activityRepo)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(authService)
	authHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)
	handlers.NewPostHandler(postService, authService).RegisterRoutes(protected)
	handlers.NewCartHandler(cartService, checkoutService).RegisterRoutes(protected)
	handlers.NewOrderHandler(orderService).RegisterRoutes(protected)
	handlers.NewAddressHandler(addressService).RegisterRoutes(protected)
	handlers.NewSocialHandler(socialService, authService).RegisterRoutes(protected)
	handlers.NewFeedHandler(activityService, notificationService, authService).RegisterRoutes(protected)

	return app
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	decoded := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// registerAndLogin creates a user and returns their ID and a bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, username string) (string, string) {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := body["user"].(map[string]interface{})
	userID := user["id"].(string)

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)
	require.NotEmpty(t, token)
	return userID, token
}

func createPost(t *testing.T, app *fiber.App, token, title, price string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/posts", token, map[string]interface{}{
		"title":    title,
		"category": "painting",
		"price":    price,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func TestPurchaseFlowTwoBuyers(t *testing.T) {
	app := setupApp(t)

	_, sellerToken := registerAndLogin(t, app, "seller")
	_, buyer1Token := registerAndLogin(t, app, "buyer1")
	_, buyer2Token := registerAndLogin(t, app, "buyer2")

	postID := createPost(t, app, sellerToken, "Sunset No. 7", "100.00")

	// Both buyers stage the same artwork.
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/cart/items", buyer1Token, map[string]interface{}{
		"post_id": postID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	cart := body["cart"].([]interface{})
	require.Len(t, cart, 1)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/cart/items", buyer2Token, map[string]interface{}{
		"post_id": postID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Buyer 1 wins the checkout.
	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/checkout", buyer1Token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := body["order"].(map[string]interface{})
	assert.Equal(t, "completed", order["status"])
	assert.Equal(t, "100", order["total_amount"])
	items := order["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, postID, items[0].(map[string]interface{})["post_id"])

	// The artwork now reads sold.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/posts/"+postID, buyer2Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["is_sold"])

	// Buyer 2's checkout is refused, naming the artwork.
	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/checkout", buyer2Token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	postIDs := body["post_ids"].([]interface{})
	require.Len(t, postIDs, 1)
	assert.Equal(t, postID, postIDs[0])

	// Buyer 2's cart still holds the artwork; it is not auto-cleared.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/cart", buyer2Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cart = body["cart"].([]interface{})
	require.Len(t, cart, 1)

	// Adding a sold artwork is rejected up front.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/cart/items", buyer2Token, map[string]interface{}{
		"post_id": postID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Buyer 1 sees exactly one order; a fresh checkout finds an empty cart.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/orders", buyer1Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	orders := body["orders"].([]interface{})
	require.Len(t, orders, 1)
	orderID := orders[0].(map[string]interface{})["id"].(string)

	// The order is readable by its buyer and invisible to anyone else.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+orderID, buyer1Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+orderID, buyer2Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/checkout", buyer1Token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutWithoutCart(t *testing.T) {
	app := setupApp(t)
	_, token := registerAndLogin(t, app, "newbuyer")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/checkout", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddUnknownArtworkToCart(t *testing.T) {
	app := setupApp(t)
	_, token := registerAndLogin(t, app, "browser")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/cart/items", token, map[string]interface{}{
		"post_id": uuid.New().String(),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddressCreateAndValidation(t *testing.T) {
	app := setupApp(t)
	_, token := registerAndLogin(t, app, "shipper")

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/addresses", token, map[string]string{
		"full_name":   "Ann Painter",
		"street":      "12 Canal St",
		"city":        "Amsterdam",
		"postal_code": "1011AB",
		"country":     "Netherlands",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["id"])

	// Missing required fields.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/addresses", token, map[string]string{
		"city": "Amsterdam",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSocialFlowAndNotifications(t *testing.T) {
	app := setupApp(t)

	_, sellerToken := registerAndLogin(t, app, "artist")
	_, fanToken := registerAndLogin(t, app, "fan")

	postID := createPost(t, app, sellerToken, "Blue Study", "250.00")

	// Like, save, comment.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/posts/"+postID+"/like", fanToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/posts/"+postID+"/save", fanToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/posts/"+postID+"/comments", fanToken, map[string]string{
		"content": "Love the palette.",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Follow the artist.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/users/artist/follow", fanToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/users/artist/follow", fanToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["following"])

	// Artist sees follower and notifications (like, comment, follow).
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/artist/followers", nil)
	req.Header.Set("Authorization", "Bearer "+sellerToken)
	followersResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, followersResp.StatusCode)
	var followers []models.User
	require.NoError(t, json.NewDecoder(followersResp.Body).Decode(&followers))
	followersResp.Body.Close()
	require.Len(t, followers, 1)
	assert.Equal(t, "fan", followers[0].Username)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+sellerToken)
	notifResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, notifResp.StatusCode)
	var notifications []models.Notification
	require.NoError(t, json.NewDecoder(notifResp.Body).Decode(&notifications))
	notifResp.Body.Close()
	require.Len(t, notifications, 3)

	// Mark the newest one read.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/notifications/"+notifications[0].ID+"/read", sellerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The fan's activity feed recorded all four actions.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/activity", nil)
	req.Header.Set("Authorization", "Bearer "+fanToken)
	actResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, actResp.StatusCode)
	var activities []models.UserActivity
	require.NoError(t, json.NewDecoder(actResp.Body).Decode(&activities))
	actResp.Body.Close()
	assert.Len(t, activities, 4)
}

func TestEndpointsRequireAuth(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
