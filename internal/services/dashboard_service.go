package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/sistema-matriculas/app-enrollment/internal/enrollapi"
	"github.com/sistema-matriculas/app-enrollment/internal/logging"
	"github.com/sistema-matriculas/app-enrollment/internal/models"
	"github.com/sistema-matriculas/app-enrollment/internal/observability"
	"github.com/sistema-matriculas/app-enrollment/internal/utils"
	"go.uber.org/zap"
)

// DashboardService assembles the admin registrations table
type DashboardService struct {
	api    *enrollapi.Client
	logger *logging.SafeLogger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(api *enrollapi.Client, logger *logging.SafeLogger) *DashboardService {
	return &DashboardService{api: api, logger: logger}
}

// Global dashboard service instance
var DashboardServiceInstance *DashboardService

// InitDashboardService initializes the global dashboard service instance
func InitDashboardService(api *enrollapi.Client) {
	DashboardServiceInstance = NewDashboardService(api, logging.Logger)
	logging.Logger.Info("dashboard service initialized")
}

// ListClasses fetches every class for the admin class listing
func (s *DashboardService) ListClasses(ctx context.Context) ([]models.Class, error) {
	return s.api.ListClasses(ctx)
}

// Rows fetches registrations, students, responsibles and transactions in
// sequence and joins them into display rows. The four fetches are
// deliberately sequential: registrations gate the rest, and the remote
// API serves each collection from the same store. Any stage failing
// aborts the whole load.
func (s *DashboardService) Rows(ctx context.Context) ([]models.RegistrationRow, error) {
	registrations, err := s.api.ListRegistrations(ctx)
	if err != nil {
		s.logger.Error("failed to load registrations", zap.Error(err))
		return nil, err
	}

	students, err := s.api.ListStudents(ctx)
	if err != nil {
		s.logger.Error("failed to load students", zap.Error(err))
		return nil, err
	}

	responsibles, err := s.api.ListResponsibles(ctx)
	if err != nil {
		s.logger.Error("failed to load responsibles", zap.Error(err))
		return nil, err
	}

	transactions, err := s.api.ListTransactions(ctx)
	if err != nil {
		s.logger.Error("failed to load transactions", zap.Error(err))
		return nil, err
	}

	rows := joinRows(registrations, students, responsibles, transactions)
	s.logger.Info("dashboard rows assembled",
		zap.Int("registrations", len(registrations)),
		zap.Int("rows", len(rows)))
	return rows, nil
}

// joinRows resolves each registration's student, responsible and
// transaction by ID. Lookups are first-match-wins; every field whose
// source record is missing gets the not-found sentinel instead of
// failing the row.
func joinRows(registrations []models.Registration, students []models.Student, responsibles []models.Responsible, transactions []models.Transaction) []models.RegistrationRow {
	studentsByID := make(map[string]models.Student, len(students))
	for _, st := range students {
		if _, ok := studentsByID[st.ID]; !ok {
			studentsByID[st.ID] = st
		}
	}

	responsiblesByStudent := make(map[string]models.Responsible, len(responsibles))
	for _, r := range responsibles {
		if _, ok := responsiblesByStudent[r.StudentID]; !ok {
			responsiblesByStudent[r.StudentID] = r
		}
	}

	transactionsByID := make(map[string]models.Transaction, len(transactions))
	for _, tx := range transactions {
		if _, ok := transactionsByID[tx.ID]; !ok {
			transactionsByID[tx.ID] = tx
		}
	}

	rows := make([]models.RegistrationRow, 0, len(registrations))
	for _, reg := range registrations {
		row := models.RegistrationRow{
			Registration:              reg,
			StudentName:               models.NotFound,
			ResponsibleName:           models.NotFound,
			ResponsibleContact:        models.NotFound,
			ResponsibleContactDisplay: models.NotFound,
			PaymentStatus:             models.NotFound,
			PaymentMethod:             models.NotFound,
			PaymentValue:              models.NotFound,
		}

		if st, ok := studentsByID[reg.StudentID]; ok {
			row.StudentName = st.FullName
		} else {
			observability.DashboardJoinMisses.WithLabelValues("student").Inc()
		}

		if r, ok := responsiblesByStudent[reg.StudentID]; ok {
			row.ResponsibleName = r.FullName
			row.ResponsibleContact = r.Phone
			row.ResponsibleContactDisplay = utils.FormatContactPhone(r.Phone)
		} else {
			observability.DashboardJoinMisses.WithLabelValues("responsible").Inc()
		}

		if tx, ok := transactionsByID[reg.TransactionID]; ok {
			row.PaymentStatus = string(tx.PaymentStatus)
			row.PaymentMethod = string(tx.PaymentMethod)
			row.PaymentValue = strconv.FormatFloat(tx.PaymentValue, 'f', -1, 64)
		} else {
			observability.DashboardJoinMisses.WithLabelValues("transaction").Inc()
		}

		rows = append(rows, row)
	}

	return rows
}

// FilterRows narrows the full row set by class and payment status. It is
// pure: every call filters the complete set again, so relaxing a filter
// brings rows back without another fetch. Empty selectors match
// everything; the class match tolerates stray whitespace in the stored
// class ID.
func FilterRows(rows []models.RegistrationRow, classID string, status models.PaymentStatus) []models.RegistrationRow {
	filtered := make([]models.RegistrationRow, 0, len(rows))
	for _, row := range rows {
		if classID != "" && strings.TrimSpace(row.ClassID) != classID {
			continue
		}
		if status != "" && row.PaymentStatus != string(status) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}
