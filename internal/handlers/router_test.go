package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Vladimir-Maksimov/education/internal/auth"
	"github.com/Vladimir-Maksimov/education/internal/db"
	"github.com/Vladimir-Maksimov/education/internal/handlers"
	"github.com/Vladimir-Maksimov/education/internal/models"
)

// setupShopTestRouter wires the full route table against an in-memory
// SQLite database, mirroring main.go.
func setupShopTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect test database: " + err.Error())
	}

	err = testDB.AutoMigrate(&models.Product{}, &models.User{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		panic("failed to auto-migrate models: " + err.Error())
	}

	testDB.Exec("DELETE FROM order_items;")
	testDB.Exec("DELETE FROM orders;")
	testDB.Exec("DELETE FROM products;")
	testDB.Exec("DELETE FROM users;")
	testDB.Exec("DELETE FROM sqlite_sequence;")

	originalDB := db.DB
	db.SetTestDB(testDB)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte("test-secret-key"))
	r.Use(sessions.Sessions("shopsess", store))

	r.GET("/", handlers.ListProducts)
	r.GET("/product_list", handlers.ListProducts)
	r.GET("/product/:id/", handlers.ProductDetail)
	r.GET("/register/", handlers.ShowRegisterForm)
	r.POST("/register/", handlers.Register)
	r.GET("/login/", handlers.ShowLoginForm)
	r.POST("/login/", handlers.Login)
	r.GET("/logout/", handlers.Logout)

	private := r.Group("/")
	private.Use(auth.RequireAuth())
	{
		private.GET("/account", handlers.Account)
		private.POST("/add_to_cart/:product_id/", handlers.AddToCart)
		private.POST("/remove_from_cart/:product_id", handlers.RemoveFromCart)
		private.GET("/cart", handlers.ViewCart)
		private.POST("/cart", handlers.UpdateCart)
		private.GET("/create_order", handlers.ShowOrderForm)
		private.POST("/create_order", handlers.CreateOrder)
		private.GET("/order_success/:order_id", handlers.OrderSuccess)
	}

	t.Cleanup(func() {
		db.SetTestDB(originalDB)
	})

	return r, testDB
}

// doJSON performs a request with a JSON body and an optional session cookie.
func doJSON(router *gin.Engine, method, path string, body interface{}, sessionCookie string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// doForm performs a request with a urlencoded form body.
func doForm(router *gin.Engine, method, path, form, sessionCookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// sessionCookie extracts the session cookie from a response; falls back to
// the previous cookie when the handler did not touch the session.
func sessionCookie(recorder *httptest.ResponseRecorder, previous string) string {
	if raw := recorder.Header().Get("Set-Cookie"); raw != "" {
		return strings.SplitN(raw, ";", 2)[0]
	}
	return previous
}

// loginAs registers a user and logs in through the router, returning the
// authenticated session cookie.
func loginAs(t *testing.T, router *gin.Engine, testDB *gorm.DB, email string) string {
	_, err := auth.Register(testDB, "Ivan", "Petrov", email, "sup3r-secret")
	assert.NoError(t, err)

	recorder := doJSON(router, http.MethodPost, "/login/", map[string]string{
		"email":    email,
		"password": "sup3r-secret",
	}, "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	cookieHeader := sessionCookie(recorder, "")
	assert.NotEmpty(t, cookieHeader)
	return cookieHeader
}
