package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
	"github.com/ece-vision/Backend-Vision-Hub/src/routes"
)

var testDBCounter int64

// setupTestApp builds a fiber app with all routes over a fresh in-memory
// database. Each call gets its own named memory DB so tests stay isolated.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	lib.DB = db
	lib.AutoMigrate()

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.IdeaRoutes(app)
	routes.ConnectionRoutes(app)
	routes.NotificationRoutes(app)
	routes.QueryRoutes(app)
	routes.AdminRoutes(app)
	return app
}

// createTestUser inserts a user directly and returns it with a signed token
func createTestUser(t *testing.T, name string, role models.UserRole) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		FullName: name,
		Email:    fmt.Sprintf("%s-%d@test.edu", name, atomic.AddInt64(&testDBCounter, 1)),
		Password: string(hashed),
		Role:     role,
	}
	if err := lib.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	token, err := lib.GenerateJWT(user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

// doRequest performs a JSON request against the app and returns the response
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	return resp
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// decodeBody parses a JSON response body into dest
func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
