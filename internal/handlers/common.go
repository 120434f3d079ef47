package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sistema-matriculas/app-enrollment/internal/observability"
	"github.com/sistema-matriculas/app-enrollment/internal/services"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrorResponse is the error envelope returned by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports the health of the service and its dependencies
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// User-facing messages, verbatim in pt-BR
const (
	msgClassInvalid   = "Turma inválida, volte ao início e tente novamente."
	msgClassLoadError = "Erro ao carregar informações da turma, volte ao início e tente novamente."
	msgFetchError     = "Erro ao buscar dados"
)

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a saúde da API e da API de matrículas remota. Retorna status detalhado para cada serviço.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Todos os serviços estão saudáveis"
// @Failure 503 {object} HealthResponse "Um ou mais serviços estão indisponíveis"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "health_check"))

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  map[string]string{"api": "healthy"},
	}

	if services.DashboardServiceInstance != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if _, err := services.DashboardServiceInstance.ListClasses(pingCtx); err != nil {
			observability.Logger().Warn("enrollment API unreachable", zap.Error(err))
			health.Services["enrollment_api"] = "unhealthy"
			health.Status = "unhealthy"
		} else {
			health.Services["enrollment_api"] = "healthy"
		}
	}

	if health.Status == "healthy" {
		c.JSON(http.StatusOK, health)
		return
	}
	c.JSON(http.StatusServiceUnavailable, health)
}
