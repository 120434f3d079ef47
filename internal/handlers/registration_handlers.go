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

// RegistrationHandlers contains the admin dashboard endpoint handlers
type RegistrationHandlers struct {
	dashboard *services.DashboardService
	logger    *logging.SafeLogger
}

// NewRegistrationHandlers creates a new RegistrationHandlers instance
func NewRegistrationHandlers(dashboard *services.DashboardService) *RegistrationHandlers {
	return &RegistrationHandlers{
		dashboard: dashboard,
		logger:    observability.Logger(),
	}
}

// GetRegistrations godoc
// @Summary Listar matrículas
// @Description Lista as matrículas com aluno, responsável e pagamento já resolvidos, filtráveis por turma e status de pagamento
// @Tags registrations
// @Produce json
// @Param classId query string false "Filtrar por turma"
// @Param paymentStatus query string false "Filtrar por status de pagamento" Enums(PENDING, PAID, FAILED)
// @Success 200 {array} models.RegistrationRow
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /registrations [get]
func (h *RegistrationHandlers) GetRegistrations(c *gin.Context) {
	rows, err := h.dashboard.Rows(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to assemble registrations", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: msgFetchError})
		return
	}

	classID := c.Query("classId")
	status := models.PaymentStatus(c.Query("paymentStatus"))
	c.JSON(http.StatusOK, services.FilterRows(rows, classID, status))
}
