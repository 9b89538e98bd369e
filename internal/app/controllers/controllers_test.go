package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idriveapp/admin-gateway/internal/app/controllers"
	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/app/routes"
	"github.com/idriveapp/admin-gateway/internal/app/services"
	"github.com/idriveapp/admin-gateway/internal/idrive"
	"github.com/idriveapp/admin-gateway/internal/middleware"
	"github.com/idriveapp/admin-gateway/internal/pkg/auth"
)

// testEnv wires a real router against a stub iDrive backend server
type testEnv struct {
	router   *gin.Engine
	sessions *auth.SessionService
	backend  *httptest.Server
}

func newTestEnv(t *testing.T, backendHandler http.Handler) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterValidators())

	backend := httptest.NewServer(backendHandler)
	t.Cleanup(backend.Close)

	logger := zerolog.Nop()
	client := idrive.NewClient(idrive.Config{BaseURL: backend.URL, Timeout: 2 * time.Second}, logger)
	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey:   "controller-test-secret",
		Expiration:  time.Hour,
		TokenIssuer: "idrive-admin-gateway",
	})

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(services.NewAuthService(client, sessions, logger), logger),
		controllers.NewScheduleController(services.NewScheduleService(client, logger), logger),
		controllers.NewClassController(services.NewClassService(client, logger), logger),
		controllers.NewUserController(services.NewUserService(client, logger), logger),
		controllers.NewMyClassesController(services.NewStudentService(client, logger), logger),
		controllers.NewDashboardController(services.NewDashboardService(client, logger), logger),
		middleware.NewAuthMiddleware(sessions),
	)

	return &testEnv{router: router, sessions: sessions, backend: backend}
}

func (e *testEnv) token(t *testing.T, permissions ...string) string {
	t.Helper()
	token, _, err := e.sessions.Generate(7, "Laura Gómez", 1, permissions, "backend-token")
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint_MintsSession(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/usuarios/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":             "backend-jwt",
			"token_type":               "bearer",
			"requiere_cambio_password": false,
			"id_usuario":               7,
			"nombre":                   "Laura Gómez",
			"id_rol":                   1,
			"permisos":                 []string{"agendamientos:ver:calendario"},
		})
	}))

	w := env.request(http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"laura@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["accessToken"])
	assert.Equal(t, "Bearer", resp["tokenType"])

	claims, err := env.sessions.Validate(resp["accessToken"].(string))
	require.NoError(t, err)
	assert.Equal(t, "backend-jwt", claims.BackendToken)
}

func TestLoginEndpoint_RejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called for invalid payloads")
	}))

	w := env.request(http.MethodPost, "/api/v1/auth/login", "", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarEndpoint_RequiresSession(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())

	w := env.request(http.MethodGet, "/api/v1/schedule/events", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCalendarEndpoint_RequiresPermission(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())
	token := env.token(t, string(models.PermMyClassesView))

	w := env.request(http.MethodGet, "/api/v1/schedule/events", token, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCalendarEndpoint_ForwardsCredentialAndProjects(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer backend-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/clases/":
			w.Write([]byte(`[{"id_clase":1,"nombre_clase":"Primeros Auxilios","fecha_hora":"2025-09-05T10:00:00","cupos_disponibles":2}]`))
		case "/agendamientos/":
			w.Write([]byte(`[{"id_agendamiento":10,"id_clase":1,"estado":"Confirmado"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	token := env.token(t, string(models.PermCalendarView))

	w := env.request(http.MethodGet, "/api/v1/schedule/events", token, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Events []struct {
			Title string `json:"title"`
			Date  string `json:"date"`
		} `json:"events"`
		Notices []string `json:"notices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Primeros Auxilios (1/2)", resp.Events[0].Title)
	assert.Equal(t, "2025-09-05", resp.Events[0].Date)
	assert.Empty(t, resp.Notices)
}

func TestCalendarEndpoint_DegradesWhenBackendFails(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
	}))
	token := env.token(t, string(models.PermCalendarView))

	w := env.request(http.MethodGet, "/api/v1/schedule/events", token, "")

	require.Equal(t, http.StatusOK, w.Code, "a degraded calendar still renders")

	var resp struct {
		Notices []string `json:"notices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Notices, 2)
}

func TestBookingEndpoint_SurfacesBackendRefusal(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"La clase ya no tiene cupos disponibles"}`))
	}))
	token := env.token(t, string(models.PermBookingsViewAll))

	w := env.request(http.MethodPost, "/api/v1/schedule/bookings", token,
		`{"cedula":"1234567890","id_clase":1}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "La clase ya no tiene cupos disponibles")
}

func TestUsersEndpoint_PermissionGate(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id_usuario":1,"nombre":"Admin","nombre_rol":"Administrador"}]`))
	}))

	denied := env.request(http.MethodGet, "/api/v1/users", env.token(t, string(models.PermMyClassesView)), "")
	assert.Equal(t, http.StatusForbidden, denied.Code)

	granted := env.request(http.MethodGet, "/api/v1/users", env.token(t, string(models.PermUsersRead)), "")
	assert.Equal(t, http.StatusOK, granted.Code)
	assert.Contains(t, granted.Body.String(), "Admin")
}
