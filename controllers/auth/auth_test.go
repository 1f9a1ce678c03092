package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"farmsync/config"
	"farmsync/database"
	"farmsync/middleware"
	"farmsync/models"
	authRoutes "farmsync/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Kind string `json:"kind"`
	} `json:"error"`
}

func setupTest(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestSignupAndLogin(t *testing.T) {
	app := setupTest(t)

	signup := fiber.Map{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "supersecret",
		"role":     "farmer",
	}

	resp, parsed := doRequest(t, app, "/auth/signup", signup)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, parsed.Message)

	// Password hash never leaks
	require.NotContains(t, string(parsed.Data), "supersecret")
	require.NotContains(t, string(parsed.Data), "password")

	// Duplicate email
	resp, parsed = doRequest(t, app, "/auth/signup", signup)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	require.Equal(t, middleware.KindConflict, parsed.Error.Kind)

	// Login with the right password
	resp, parsed = doRequest(t, app, "/auth/login", fiber.Map{
		"email":    "ravi@example.com",
		"password": "supersecret",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, parsed.Message)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &data))
	require.NotEmpty(t, data.Token)

	// Wrong password
	resp, parsed = doRequest(t, app, "/auth/login", fiber.Map{
		"email":    "ravi@example.com",
		"password": "wrongpassword",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, middleware.KindUnauthenticated, parsed.Error.Kind)
}

func TestConcurrentSignupSameEmail(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	signup := fiber.Map{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "supersecret",
		"role":     "farmer",
	}

	// Two registrations racing on one email: the unique constraint decides,
	// and the loser gets the same conflict as the sequential path.
	type outcome struct {
		status int
		parsed apiResponse
		err    error
	}
	results := make(chan outcome, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			if err := json.NewEncoder(&buf).Encode(signup); err != nil {
				results <- outcome{err: err}
				return
			}
			req := httptest.NewRequest("POST", "/auth/signup", &buf)
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			if err != nil {
				results <- outcome{err: err}
				return
			}
			var parsed apiResponse
			if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
				results <- outcome{err: err}
				return
			}
			results <- outcome{status: resp.StatusCode, parsed: parsed}
		}()
	}
	wg.Wait()
	close(results)

	created, conflicts := 0, 0
	for res := range results {
		require.NoError(t, res.err)
		switch res.status {
		case fiber.StatusCreated:
			created++
		case fiber.StatusConflict:
			conflicts++
			require.Equal(t, middleware.KindConflict, res.parsed.Error.Kind)
		default:
			t.Fatalf("unexpected status %d: %s", res.status, res.parsed.Message)
		}
	}
	require.Equal(t, 1, created)
	require.Equal(t, 1, conflicts)

	var count int64
	db.Model(&models.User{}).Where("email = ?", "ravi@example.com").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestSignupValidation(t *testing.T) {
	app := setupTest(t)

	// Admin accounts cannot be self-registered
	resp, _ := doRequest(t, app, "/auth/signup", fiber.Map{
		"name":     "Sneaky Admin",
		"email":    "admin@example.com",
		"password": "supersecret",
		"role":     "admin",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Short password
	resp, _ = doRequest(t, app, "/auth/signup", fiber.Map{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "short",
		"role":     "buyer",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Bad email
	resp, _ = doRequest(t, app, "/auth/signup", fiber.Map{
		"name":     "Ravi Kumar",
		"email":    "not-an-email",
		"password": "supersecret",
		"role":     "buyer",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
