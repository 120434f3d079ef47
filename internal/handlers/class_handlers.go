package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sistema-matriculas/app-enrollment/internal/logging"
	"github.com/sistema-matriculas/app-enrollment/internal/models"
	"github.com/sistema-matriculas/app-enrollment/internal/observability"
	"github.com/sistema-matriculas/app-enrollment/internal/services"
	"go.uber.org/zap"
)

// ClassHandlers contains the class listing and detail endpoint handlers
type ClassHandlers struct {
	dashboard  *services.DashboardService
	enrollment *services.EnrollmentService
	logger     *logging.SafeLogger
}

// NewClassHandlers creates a new ClassHandlers instance
func NewClassHandlers(dashboard *services.DashboardService, enrollment *services.EnrollmentService) *ClassHandlers {
	return &ClassHandlers{
		dashboard:  dashboard,
		enrollment: enrollment,
		logger:     observability.Logger(),
	}
}

// GetClasses godoc
// @Summary Listar turmas
// @Description Lista todas as turmas disponíveis com horários, modalidade e vagas
// @Tags classes
// @Produce json
// @Success 200 {array} models.Class
// @Failure 502 {object} ErrorResponse
// @Router /classes [get]
func (h *ClassHandlers) GetClasses(c *gin.Context) {
	classes, err := h.dashboard.ListClasses(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list classes", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: msgFetchError})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// GetClass godoc
// @Summary Obter turma
// @Description Busca uma turma pelo identificador, com valor e vagas para a tela de matrícula
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} models.Class
// @Failure 404 {object} ErrorResponse "Turma inexistente"
// @Failure 502 {object} ErrorResponse
// @Router /classes/{id} [get]
func (h *ClassHandlers) GetClass(c *gin.Context) {
	classID := c.Param("id")
	logger := h.logger.With(zap.String("class_id", classID))

	class, err := h.enrollment.ClassInfo(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, models.ErrClassNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: msgClassInvalid})
			return
		}
		logger.Error("failed to load class", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: msgClassLoadError})
		return
	}

	c.JSON(http.StatusOK, class)
}
