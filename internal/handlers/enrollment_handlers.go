package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sistema-matriculas/app-enrollment/internal/logging"
	"github.com/sistema-matriculas/app-enrollment/internal/models"
	"github.com/sistema-matriculas/app-enrollment/internal/observability"
	"github.com/sistema-matriculas/app-enrollment/internal/services"
	"go.uber.org/zap"
)

// EnrollmentHandlers contains the public enrollment submission handlers
type EnrollmentHandlers struct {
	enrollment *services.EnrollmentService
	logger     *logging.SafeLogger
}

// NewEnrollmentHandlers creates a new EnrollmentHandlers instance
func NewEnrollmentHandlers(enrollment *services.EnrollmentService) *EnrollmentHandlers {
	return &EnrollmentHandlers{
		enrollment: enrollment,
		logger:     observability.Logger(),
	}
}

// CreateEnrollmentRequest is the submission body: the class context
// chosen earlier in the flow plus the guardian form fields
type CreateEnrollmentRequest struct {
	ClassID       string               `json:"classId" binding:"required"`
	Mode          models.ClassMode     `json:"mode"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Form          models.GuardianForm  `json:"form"`
}

// CreateEnrollment godoc
// @Summary Criar matrícula
// @Description Valida o formulário do responsável, monta o documento de matrícula e o envia para reserva; em caso de sucesso retorna a URL de checkout do pagamento
// @Tags enrollments
// @Accept json
// @Produce json
// @Param data body CreateEnrollmentRequest true "Dados da matrícula"
// @Success 201 {object} services.SubmitResult "Matrícula reservada, redirecionar para o checkout"
// @Failure 400 {object} ErrorResponse "Corpo da requisição inválido"
// @Failure 422 {object} services.SubmitResult "Formulário rejeitado pela validação"
// @Failure 502 {object} services.SubmitResult "Falha ao comunicar com a API de matrículas"
// @Router /enrollments [post]
func (h *EnrollmentHandlers) CreateEnrollment(c *gin.Context) {
	var req CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	logger := h.logger.With(
		zap.String("class_id", req.ClassID),
		zap.String("payment_method", string(req.PaymentMethod)),
	)
	logger.Info("CreateEnrollment called")

	result := h.enrollment.Submit(c.Request.Context(), &req.Form, req.ClassID, req.Mode, req.PaymentMethod)

	switch result.State {
	case services.StateRedirecting:
		c.JSON(http.StatusCreated, result)
	case services.StateEditing, services.StateRejectedLocal, services.StateRejectedRemote:
		c.JSON(http.StatusUnprocessableEntity, result)
	default:
		c.JSON(http.StatusBadGateway, result)
	}
}
