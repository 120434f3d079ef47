package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sistema-matriculas/app-enrollment/internal/config"
	"github.com/sistema-matriculas/app-enrollment/internal/enrollapi"
	"github.com/sistema-matriculas/app-enrollment/internal/logging"
	"github.com/sistema-matriculas/app-enrollment/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.Handler) *EnrollmentService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		EnrollmentAPIBaseURL: server.URL,
		EnrollmentAPITimeout: 5 * time.Second,
	}
	service := NewEnrollmentService(enrollapi.NewClient(cfg, logging.Logger), logging.Logger)
	service.now = func() time.Time { return testToday }
	return service
}

// countingHandler fails the test if the remote API is ever reached
func countingHandler(t *testing.T, hits *atomic.Int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		t.Errorf("unexpected remote call: %s %s", r.Method, r.URL.Path)
	})
}

func TestSubmitWithoutPaymentMethod(t *testing.T) {
	var hits atomic.Int64
	service := newTestService(t, countingHandler(t, &hits))

	result := service.Submit(context.Background(), validGuardianForm(), "12", models.ClassModeOnline, "")

	assert.Equal(t, StateEditing, result.State)
	assert.Equal(t, msgSelectPayment, result.FieldErrors["paymentMethod"])
	assert.Equal(t, int64(0), hits.Load())
}

func TestSubmitSchemaRejectionSkipsNetwork(t *testing.T) {
	var hits atomic.Int64
	service := newTestService(t, countingHandler(t, &hits))

	form := validGuardianForm()
	form.StudentCPF = "111.444.777-34"
	form.MotherPhone = ""

	result := service.Submit(context.Background(), form, "12", models.ClassModeOnline, models.PaymentMethodPix)

	assert.Equal(t, StateRejectedLocal, result.State)
	assert.Equal(t, msgInvalidCPF, result.FieldErrors["studentCpf"])
	assert.Equal(t, msgRequired, result.FieldErrors["motherPhone"])
	assert.Equal(t, int64(0), hits.Load())
}

func TestSubmitDuplicateEmails(t *testing.T) {
	var hits atomic.Int64
	service := newTestService(t, countingHandler(t, &hits))

	form := validGuardianForm()
	form.MotherEmail = form.StudentEmail

	result := service.Submit(context.Background(), form, "12", models.ClassModeOnline, models.PaymentMethodPix)

	assert.Equal(t, StateRejectedLocal, result.State)
	assert.Equal(t, msgEmailsMustDiffer, result.Message)
	assert.Empty(t, result.FieldErrors)
	assert.Equal(t, int64(0), hits.Load())
}

func TestSubmitDuplicateCPFsIgnoreFormatting(t *testing.T) {
	var hits atomic.Int64
	service := newTestService(t, countingHandler(t, &hits))

	// Same tax ID as the student, differently punctuated
	form := validGuardianForm()
	form.MotherCPF = "11144477735"

	result := service.Submit(context.Background(), form, "12", models.ClassModeOnline, models.PaymentMethodPix)

	assert.Equal(t, StateRejectedLocal, result.State)
	assert.Equal(t, msgCPFsMustDiffer, result.Message)
	assert.Equal(t, int64(0), hits.Load())
}

func TestSubmitDuplicateRGs(t *testing.T) {
	var hits atomic.Int64
	service := newTestService(t, countingHandler(t, &hits))

	form := validGuardianForm()
	form.FatherRG = "123456789"

	result := service.Submit(context.Background(), form, "12", models.ClassModeOnline, models.PaymentMethodPix)

	assert.Equal(t, StateRejectedLocal, result.State)
	assert.Equal(t, msgRGsMustDiffer, result.Message)
	assert.Equal(t, int64(0), hits.Load())
}

func TestSubmitConflictPriorityOrder(t *testing.T) {
	var hits atomic.Int64
	service := newTestService(t, countingHandler(t, &hits))

	// Emails, tax IDs and national IDs all collide; the email message wins
	form := validGuardianForm()
	form.MotherEmail = form.StudentEmail
	form.MotherCPF = form.StudentCPF
	form.MotherRG = form.StudentRG

	result := service.Submit(context.Background(), form, "12", models.ClassModeOnline, models.PaymentMethodPix)

	assert.Equal(t, StateRejectedLocal, result.State)
	assert.Equal(t, msgEmailsMustDiffer, result.Message)
	assert.Equal(t, int64(0), hits.Load())
}

func TestSubmitSuccess(t *testing.T) {
	var received map[string]interface{}
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/forms", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"init_point": "https://checkout.example.com/pay/abc"})
	}))

	result := service.Submit(context.Background(), validGuardianForm(), "12", models.ClassModeOnline, models.PaymentMethodPix)

	require.Equal(t, StateRedirecting, result.State)
	assert.Equal(t, "https://checkout.example.com/pay/abc", result.RedirectURL)
	assert.Empty(t, result.Message)

	// Identifiers arrive digits-only, addresses as single strings
	assert.Equal(t, "11144477735", received["studentCpf"])
	assert.Equal(t, "123456789", received["studentRg"])
	assert.Equal(t, "21988887777", received["studentPhone"])
	assert.Equal(t, "52998224725", received["motherCpf"])
	assert.Equal(t, "12345678909", received["fatherCpf"])
	assert.Equal(t,
		"Avenida Rio Branco, 156, Centro, Rio de Janeiro - RJ, CEP 20031-170",
		received["studentAddress"])
	assert.Equal(t,
		"Rua Bolívar, 21, Copacabana, Rio de Janeiro - RJ, CEP 22041-011",
		received["fatherAddress"])

	// Born 2000-05-10, submitted on the pinned 2026 date
	assert.Equal(t, "ADULT", received["isAdult"])
	assert.Equal(t, "RESERVED", received["status"])
	assert.Equal(t, "ONLINE", received["mode"])
	assert.Equal(t, "12", received["id"])
	assert.Equal(t, "PIX", received["paymentMethod"])
}

func TestSubmitMinorClassification(t *testing.T) {
	var received map[string]interface{}
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]string{"init_point": "https://checkout.example.com/pay/def"})
	}))

	// Turns 18 the day after the pinned date
	form := validGuardianForm()
	form.BirthDate = "2008-03-16"

	result := service.Submit(context.Background(), form, "7", models.ClassModeInPerson, models.PaymentMethodCreditCard)

	require.Equal(t, StateRedirecting, result.State)
	assert.Equal(t, "MINOR", received["isAdult"])
	assert.Equal(t, "IN_PERSON", received["mode"])
	assert.Equal(t, "CREDIT_CARD", received["paymentMethod"])
}

func TestSubmitRemoteRejection(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "CPF já cadastrado nesta turma"})
	}))

	result := service.Submit(context.Background(), validGuardianForm(), "12", models.ClassModeOnline, models.PaymentMethodPix)

	assert.Equal(t, StateRejectedRemote, result.State)
	assert.Equal(t, "CPF já cadastrado nesta turma", result.Message)
	assert.Empty(t, result.RedirectURL)
}

func TestSubmitNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	cfg := &config.Config{
		EnrollmentAPIBaseURL: server.URL,
		EnrollmentAPITimeout: time.Second,
	}
	service := NewEnrollmentService(enrollapi.NewClient(cfg, logging.Logger), logging.Logger)
	service.now = func() time.Time { return testToday }

	result := service.Submit(context.Background(), validGuardianForm(), "12", models.ClassModeOnline, models.PaymentMethodPix)

	assert.Equal(t, StateFailed, result.State)
	assert.NotEmpty(t, result.Message)
}

func TestSubmitResponseMissingCheckoutURL(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))

	result := service.Submit(context.Background(), validGuardianForm(), "12", models.ClassModeOnline, models.PaymentMethodPix)

	assert.Equal(t, StateFailed, result.State)
	assert.NotEmpty(t, result.Message)
}
