package idrive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, zerolog.Nop())
}

func TestClientSendsBearerCredential(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := client.Classes(context.Background(), Credential{Token: "abc123"})
	assert.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClientAnonymousOmitsHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"access_token":"t","token_type":"bearer","id_usuario":1,"nombre":"Ana","id_rol":2,"permisos":["usuarios:leer"]}`))
	})

	result, err := client.Login(context.Background(), LoginPayload{Email: "a@b.co", Password: "pw"})
	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "t", result.AccessToken)
	assert.Equal(t, []string{"usuarios:leer"}, result.Permissions)
}

func TestClientSurfacesBackendDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Estudiante no encontrado."}`))
	})

	_, err := client.CreateBooking(context.Background(), Credential{Token: "t"}, BookingPayload{Cedula: "123", ClassID: 9})
	assert.Error(t, err)

	apiErr, ok := AsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Estudiante no encontrado.", apiErr.UserDetail())
}

func TestClientEmptyBookingsNotFoundIsEmptyList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"No se encontraron agendamientos."}`))
	})

	bookings, err := client.Bookings(context.Background(), Credential{Token: "t"})
	assert.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestClientDecodesClassList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/clases/", r.URL.Path)
		w.Write([]byte(`[{"id_clase":1,"nombre_clase":"Primeros Auxilios","fecha_hora":"2025-09-10T10:00:00","cupos_disponibles":2,"duracion_minutos":60}]`))
	})

	classes, err := client.Classes(context.Background(), Credential{Token: "t"})
	assert.NoError(t, err)
	assert.Len(t, classes, 1)
	assert.Equal(t, "Primeros Auxilios", classes[0].Name)
	assert.Equal(t, 2, classes[0].Capacity)
}

func TestClientTransportFailure(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}, zerolog.Nop())

	_, err := client.Classes(context.Background(), Credential{Token: "t"})
	assert.Error(t, err)

	apiErr, ok := AsAPIError(err)
	assert.True(t, ok)
	assert.Zero(t, apiErr.StatusCode)
}

func TestClientDeleteSendsNoBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/agendamientos/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.CancelBooking(context.Background(), Credential{Token: "t"}, 7)
	assert.NoError(t, err)
}
