// Package enrollapi is the typed client for the remote enrollment API,
// which owns every resource this service displays or submits: class
// offerings, registrations, students, responsibles, payment transactions
// and the enrollment form endpoint.
package enrollapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sistema-matriculas/app-enrollment/internal/config"
	"github.com/sistema-matriculas/app-enrollment/internal/logging"
	"github.com/sistema-matriculas/app-enrollment/internal/models"
	"github.com/sistema-matriculas/app-enrollment/internal/observability"
	"github.com/sistema-matriculas/app-enrollment/internal/utils/httpclient"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Client handles communication with the remote enrollment API
type Client struct {
	baseURL string
	token   string
	pool    *httpclient.Pool
	logger  *logging.SafeLogger
}

// messageEnvelope is the remote rejection body: { "message": "..." }
type messageEnvelope struct {
	Message string `json:"message"`
}

// NewClient creates a new enrollment API client instance
func NewClient(cfg *config.Config, logger *logging.SafeLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.EnrollmentAPIBaseURL, "/"),
		token:   cfg.EnrollmentAPIToken,
		pool:    httpclient.NewPool(10, cfg.EnrollmentAPITimeout),
		logger:  logger,
	}
}

// ListClasses fetches every class offering (public endpoint)
func (c *Client) ListClasses(ctx context.Context) ([]models.Class, error) {
	var out models.ClassListResponse
	if err := c.getJSON(ctx, "/class/", false, "list_classes", &out); err != nil {
		return nil, err
	}
	return out.AllClass, nil
}

// GetClass fetches a single class offering. A 200 response carrying a
// null class means the id does not resolve to an offering and is
// surfaced as models.ErrClassNotFound.
func (c *Client) GetClass(ctx context.Context, classID string) (*models.Class, error) {
	var out models.ClassResponse
	if err := c.getJSON(ctx, "/class/"+classID, false, "get_class", &out); err != nil {
		return nil, err
	}
	if out.Class == nil {
		return nil, models.ErrClassNotFound
	}
	return out.Class, nil
}

// ListRegistrations fetches every registration (authenticated)
func (c *Client) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	var out models.RegistrationListResponse
	if err := c.getJSON(ctx, "/registration/", true, "list_registrations", &out); err != nil {
		return nil, err
	}
	if out.Registrations == nil {
		return nil, models.ErrMissingRegistration
	}
	return out.Registrations, nil
}

// ListStudents fetches every student (authenticated)
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var out models.StudentListResponse
	if err := c.getJSON(ctx, "/students/", true, "list_students", &out); err != nil {
		return nil, err
	}
	return out.AllStudents, nil
}

// ListResponsibles fetches every responsible (authenticated)
func (c *Client) ListResponsibles(ctx context.Context) ([]models.Responsible, error) {
	var out models.ResponsibleListResponse
	if err := c.getJSON(ctx, "/responsible/", true, "list_responsibles", &out); err != nil {
		return nil, err
	}
	return out.AllResponsible, nil
}

// ListTransactions fetches every payment transaction (authenticated)
func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var out models.TransactionListResponse
	if err := c.getJSON(ctx, "/transactions/", true, "list_transactions", &out); err != nil {
		return nil, err
	}
	return out.AllTransactions, nil
}

// CreateEnrollment posts a submission payload to the forms endpoint and
// returns the payment checkout URL. A non-success response carrying a
// message comes back as *models.APIError; transport and decoding
// failures come back as plain errors.
func (c *Client) CreateEnrollment(ctx context.Context, payload *models.EnrollmentPayload) (string, error) {
	ctx, span := otel.Tracer("app-enrollment").Start(ctx, "CreateEnrollment")
	defer span.End()
	span.SetAttributes(
		attribute.String("class_id", payload.ID),
		attribute.String("payment_method", string(payload.PaymentMethod)),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode submission payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/forms", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, status, err := c.do(req, "create_enrollment")
	if err != nil {
		return "", err
	}

	if status >= 400 {
		var envelope messageEnvelope
		if jsonErr := json.Unmarshal(respBody, &envelope); jsonErr == nil && envelope.Message != "" {
			return "", &models.APIError{StatusCode: status, Message: envelope.Message}
		}
		return "", fmt.Errorf("enrollment creation failed with status %d", status)
	}

	var created models.EnrollmentCreated
	if err := json.Unmarshal(respBody, &created); err != nil {
		return "", fmt.Errorf("failed to decode enrollment response: %w", err)
	}
	if created.InitPoint == "" {
		return "", fmt.Errorf("enrollment response missing init_point")
	}

	c.logger.Info("enrollment created",
		zap.String("class_id", payload.ID),
		zap.String("payment_method", string(payload.PaymentMethod)))

	return created.InitPoint, nil
}

// getJSON performs a GET against path and decodes the response into out.
// Non-success responses carrying a message envelope come back as
// *models.APIError.
func (c *Client) getJSON(ctx context.Context, path string, authenticated bool, operation string, out interface{}) error {
	ctx, span := otel.Tracer("app-enrollment").Start(ctx, operation)
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authenticated && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	body, status, err := c.do(req, operation)
	if err != nil {
		return err
	}

	if status >= 400 {
		var envelope messageEnvelope
		if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil && envelope.Message != "" {
			return &models.APIError{StatusCode: status, Message: envelope.Message}
		}
		return fmt.Errorf("%s failed with status %d", operation, status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}
	return nil
}

// do executes the request with a pooled client and returns the raw body
// and status. No retries: a failed call surfaces immediately and the
// caller decides what the user sees.
func (c *Client) do(req *http.Request, operation string) ([]byte, int, error) {
	client := c.pool.Get()
	defer c.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		observability.RemoteAPIRequests.WithLabelValues(operation, "error").Inc()
		c.logger.Error("enrollment API request failed",
			zap.String("operation", operation),
			zap.Error(err))
		return nil, 0, fmt.Errorf("enrollment API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.RemoteAPIRequests.WithLabelValues(operation, "error").Inc()
		return nil, 0, fmt.Errorf("failed to read enrollment API response: %w", err)
	}

	if resp.StatusCode >= 400 {
		observability.RemoteAPIRequests.WithLabelValues(operation, "rejected").Inc()
	} else {
		observability.RemoteAPIRequests.WithLabelValues(operation, "success").Inc()
	}

	return body, resp.StatusCode, nil
}
