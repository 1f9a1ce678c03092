package userController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmsync/config"
	"farmsync/database"
	"farmsync/middleware"
	"farmsync/models"
	userRoutes "farmsync/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Kind string `json:"kind"`
	} `json:"error"`
}

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()
	db := database.ConnectTestDb()

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name string, role models.Role) (*models.User, string) {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "not-a-real-hash",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, string(user.Role), user.Email)
	require.NoError(t, err)
	return &user, token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestMeAndUpdateMe(t *testing.T) {
	app, db := setupTest(t)
	farmer, farmerToken := createUser(t, db, "farmer", models.RoleFarmer)

	resp, parsed := doRequest(t, app, "GET", "/users/me", farmerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me models.User
	require.NoError(t, json.Unmarshal(parsed.Data, &me))
	require.Equal(t, farmer.ID, me.ID)

	// Partial update keeps everything not supplied
	resp, parsed = doRequest(t, app, "PUT", "/users/me", farmerToken, fiber.Map{"phoneNumber": "5551234567"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, parsed.Message)

	var fresh models.User
	require.NoError(t, db.First(&fresh, farmer.ID).Error)
	require.Equal(t, "5551234567", fresh.PhoneNumber)
	require.Equal(t, "farmer", fresh.Name)
	require.Equal(t, models.RoleFarmer, fresh.Role)
}

func TestGetUserSelfException(t *testing.T) {
	app, db := setupTest(t)
	farmer, farmerToken := createUser(t, db, "farmer", models.RoleFarmer)
	buyer, _ := createUser(t, db, "buyer", models.RoleBuyer)
	_, adminToken := createUser(t, db, "admin", models.RoleAdmin)

	// Any caller can fetch their own record by id
	resp, _ := doRequest(t, app, "GET", fmt.Sprintf("/users/%d", farmer.ID), farmerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Someone else's record is admin-only: 403 when it exists
	resp, parsed := doRequest(t, app, "GET", fmt.Sprintf("/users/%d", buyer.ID), farmerToken, nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.Equal(t, middleware.KindForbidden, parsed.Error.Kind)

	resp, _ = doRequest(t, app, "GET", fmt.Sprintf("/users/%d", buyer.ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, parsed = doRequest(t, app, "GET", "/users/9999", adminToken, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, middleware.KindNotFound, parsed.Error.Kind)
}

func TestAdminUserManagement(t *testing.T) {
	app, db := setupTest(t)
	_, farmerToken := createUser(t, db, "farmer", models.RoleFarmer)
	_, adminToken := createUser(t, db, "admin", models.RoleAdmin)

	// Listing is admin-only
	resp, _ := doRequest(t, app, "GET", "/users/", farmerToken, nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, parsed := doRequest(t, app, "GET", "/users/", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var data struct {
		Users []models.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &data))
	require.Len(t, data.Users, 2)

	// Admins may create admin accounts
	resp, parsed = doRequest(t, app, "POST", "/users/", adminToken, fiber.Map{
		"name":     "Second Admin",
		"email":    "admin2@example.com",
		"password": "supersecret",
		"role":     "admin",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, parsed.Message)

	var created models.User
	require.NoError(t, json.Unmarshal(parsed.Data, &created))
	require.Equal(t, models.RoleAdmin, created.Role)
}
