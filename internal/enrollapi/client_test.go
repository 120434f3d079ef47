package enrollapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sistema-matriculas/app-enrollment/internal/config"
	"github.com/sistema-matriculas/app-enrollment/internal/logging"
	"github.com/sistema-matriculas/app-enrollment/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		EnrollmentAPIBaseURL: server.URL,
		EnrollmentAPIToken:   "test-token",
		EnrollmentAPITimeout: 5 * time.Second,
	}
	return NewClient(cfg, logging.Logger)
}

func TestListClasses(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/class/", r.URL.Path)
		// Public endpoint: no bearer token expected
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.ClassListResponse{AllClass: []models.Class{
			{ID: 1, FullName: "Turma A", Mode: models.ClassModeOnline, PaymentAmount: 150},
		}})
	}))

	classes, err := client.ListClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Turma A", classes[0].FullName)
}

func TestGetClass(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/class/12", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"class": models.Class{ID: 12, FullName: "Turma B", PaymentAmount: 200.5},
		})
	}))

	class, err := client.GetClass(context.Background(), "12")
	require.NoError(t, err)
	assert.Equal(t, 12, class.ID)
	assert.Equal(t, 200.5, class.PaymentAmount)
}

func TestGetClass_NullClass(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"class": null}`))
	}))

	_, err := client.GetClass(context.Background(), "999")
	assert.ErrorIs(t, err, models.ErrClassNotFound)
}

func TestGetClass_RemoteMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Turma não existe"}`))
	}))

	_, err := client.GetClass(context.Background(), "999")
	apiErr, ok := models.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Turma não existe", apiErr.Message)
}

func TestListRegistrations_BearerToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.RegistrationListResponse{Registrations: []models.Registration{
			{ID: "r1", StudentID: "s1", TransactionID: "t1", ClassID: "12", Status: "RESERVED"},
		}})
	}))

	registrations, err := client.ListRegistrations(context.Background())
	require.NoError(t, err)
	require.Len(t, registrations, 1)
	assert.Equal(t, "s1", registrations[0].StudentID)
}

func TestListRegistrations_MissingList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := client.ListRegistrations(context.Background())
	assert.ErrorIs(t, err, models.ErrMissingRegistration)
}

func TestCreateEnrollment(t *testing.T) {
	var received models.EnrollmentPayload
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/forms", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(models.EnrollmentCreated{InitPoint: "https://checkout.example.com/abc"})
	}))

	payload := &models.EnrollmentPayload{
		FullStudentName: "Maria da Silva",
		StudentCPF:      "11144477735",
		ID:              "12",
		Status:          models.EnrollmentStatusReserved,
		PaymentMethod:   models.PaymentMethodPix,
	}

	initPoint, err := client.CreateEnrollment(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/abc", initPoint)
	assert.Equal(t, "Maria da Silva", received.FullStudentName)
	assert.Equal(t, models.EnrollmentStatusReserved, received.Status)
}

func TestCreateEnrollment_RemoteRejection(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Turma sem vagas disponíveis"}`))
	}))

	_, err := client.CreateEnrollment(context.Background(), &models.EnrollmentPayload{})
	apiErr, ok := models.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Turma sem vagas disponíveis", apiErr.Message)
}

func TestCreateEnrollment_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	cfg := &config.Config{
		EnrollmentAPIBaseURL: server.URL,
		EnrollmentAPITimeout: time.Second,
	}
	client := NewClient(cfg, logging.Logger)
	server.Close()

	_, err := client.CreateEnrollment(context.Background(), &models.EnrollmentPayload{})
	require.Error(t, err)
	_, ok := models.AsAPIError(err)
	assert.False(t, ok, "transport failures are not remote rejections")
}

func TestCreateEnrollment_MissingInitPoint(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := client.CreateEnrollment(context.Background(), &models.EnrollmentPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init_point")
}
