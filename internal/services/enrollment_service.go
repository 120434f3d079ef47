package services

import (
	"context"
	"time"

	"github.com/sistema-matriculas/app-enrollment/internal/enrollapi"
	"github.com/sistema-matriculas/app-enrollment/internal/logging"
	"github.com/sistema-matriculas/app-enrollment/internal/models"
	"github.com/sistema-matriculas/app-enrollment/internal/observability"
	"github.com/sistema-matriculas/app-enrollment/internal/utils"
	"go.uber.org/zap"
)

// SubmitState is a state of the submission machine. A submit attempt
// starts in Validating and ends in exactly one of RejectedLocal,
// RejectedRemote, Failed or Redirecting; Editing is where the form
// returns to on any non-terminal outcome.
type SubmitState string

const (
	StateEditing        SubmitState = "EDITING"
	StateValidating     SubmitState = "VALIDATING"
	StateRejectedLocal  SubmitState = "REJECTED_LOCAL"
	StateSubmitting     SubmitState = "SUBMITTING"
	StateRejectedRemote SubmitState = "REJECTED_REMOTE"
	StateFailed         SubmitState = "FAILED"
	StateRedirecting    SubmitState = "REDIRECTING"
)

// Cross-field and fallback messages, verbatim from the form
const (
	msgEmailsMustDiffer = "Os e-mails devem ser diferentes"
	msgCPFsMustDiffer   = "Os CPFs devem ser diferentes"
	msgRGsMustDiffer    = "Os RGs devem ser diferentes"
	msgSelectPayment    = "Por favor, selecione um metodo de pagamento"
	msgSubmitFallback   = "Erro ao criar matrícula, por favor, revise suas informações!"
)

// SubmitResult is the outcome of one submission attempt
type SubmitResult struct {
	State SubmitState `json:"state"`
	// Message is the blocking message for cross-field conflicts, remote
	// rejections and network failures; empty on field-level rejections.
	Message string `json:"message,omitempty"`
	// FieldErrors maps field name to its inline error message
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	// RedirectURL is the payment checkout URL, set only on Redirecting
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// EnrollmentService runs the guardian-form submission machine
type EnrollmentService struct {
	api    *enrollapi.Client
	logger *logging.SafeLogger
	now    func() time.Time
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(api *enrollapi.Client, logger *logging.SafeLogger) *EnrollmentService {
	return &EnrollmentService{
		api:    api,
		logger: logger,
		now:    time.Now,
	}
}

// Global enrollment service instance
var EnrollmentServiceInstance *EnrollmentService

// InitEnrollmentService initializes the global enrollment service instance
func InitEnrollmentService(api *enrollapi.Client) {
	EnrollmentServiceInstance = NewEnrollmentService(api, logging.Logger)
	logging.Logger.Info("enrollment service initialized")
}

// ClassInfo fetches the class a guardian is enrolling into, for price and
// availability display.
func (s *EnrollmentService) ClassInfo(ctx context.Context, classID string) (*models.Class, error) {
	return s.api.GetClass(ctx, classID)
}

// Submit runs one submission attempt end to end:
//
//  1. a payment method must be selected, otherwise the form stays in
//     Editing with the selection error now visible;
//  2. every field goes through the declarative schema — any failure is
//     RejectedLocal with inline errors and no network call;
//  3. emails, then normalized CPFs, then normalized RGs must be pairwise
//     distinct across the three people, short-circuiting at the first
//     violated group;
//  4. the payload is assembled (digits-only identifiers, built
//     addresses, age classification) and posted exactly once;
//  5. a remote rejection with a message is RejectedRemote, a transport
//     or decoding failure is Failed, success is Redirecting with the
//     checkout URL.
func (s *EnrollmentService) Submit(ctx context.Context, form *models.GuardianForm, classID string, mode models.ClassMode, method models.PaymentMethod) SubmitResult {
	result := s.submit(ctx, form, classID, mode, method)
	observability.EnrollmentSubmissions.WithLabelValues(string(result.State)).Inc()
	return result
}

func (s *EnrollmentService) submit(ctx context.Context, form *models.GuardianForm, classID string, mode models.ClassMode, method models.PaymentMethod) SubmitResult {
	if method == "" {
		return SubmitResult{
			State:       StateEditing,
			FieldErrors: map[string]string{"paymentMethod": msgSelectPayment},
		}
	}

	validation := ApplySchema(form, GuardianFormSchema(s.now()))
	if !validation.IsValid {
		fieldErrors := make(map[string]string, len(validation.Errors))
		for _, e := range validation.Errors {
			fieldErrors[e.Field] = e.Message
		}
		s.logger.Debug("submission rejected by schema",
			zap.Int("field_errors", len(fieldErrors)))
		return SubmitResult{State: StateRejectedLocal, FieldErrors: fieldErrors}
	}

	if msg := crossFieldConflict(form); msg != "" {
		s.logger.Debug("submission rejected by cross-field check")
		return SubmitResult{State: StateRejectedLocal, Message: msg}
	}

	payload, err := s.buildPayload(form, classID, mode, method)
	if err != nil {
		// Unreachable after schema validation; kept total anyway
		return SubmitResult{
			State:       StateRejectedLocal,
			FieldErrors: map[string]string{"birthDate": msgDateInPast},
		}
	}

	initPoint, err := s.api.CreateEnrollment(ctx, payload)
	if err != nil {
		if apiErr, ok := models.AsAPIError(err); ok {
			s.logger.Info("submission rejected by enrollment API",
				zap.Int("status", apiErr.StatusCode))
			return SubmitResult{State: StateRejectedRemote, Message: apiErr.Message}
		}
		s.logger.Error("submission failed", zap.Error(err))
		return SubmitResult{State: StateFailed, Message: failureMessage(err)}
	}

	s.logger.Info("submission accepted",
		zap.String("class_id", classID),
		zap.String("payment_method", string(method)))
	return SubmitResult{State: StateRedirecting, RedirectURL: initPoint}
}

// crossFieldConflict checks the three uniqueness groups in their fixed
// priority order and returns the message of the first violated one.
func crossFieldConflict(form *models.GuardianForm) string {
	if form.StudentEmail == form.MotherEmail ||
		form.StudentEmail == form.FatherEmail ||
		form.MotherEmail == form.FatherEmail {
		return msgEmailsMustDiffer
	}

	studentCPF := utils.OnlyDigits(form.StudentCPF)
	motherCPF := utils.OnlyDigits(form.MotherCPF)
	fatherCPF := utils.OnlyDigits(form.FatherCPF)
	if studentCPF == motherCPF || studentCPF == fatherCPF || motherCPF == fatherCPF {
		return msgCPFsMustDiffer
	}

	studentRG := utils.OnlyDigits(form.StudentRG)
	motherRG := utils.OnlyDigits(form.MotherRG)
	fatherRG := utils.OnlyDigits(form.FatherRG)
	if studentRG == motherRG || studentRG == fatherRG || motherRG == fatherRG {
		return msgRGsMustDiffer
	}

	return ""
}

// buildPayload assembles the submission document: identifiers normalized
// to digits only, the six address parts of each person collapsed into one
// string, the student classified as ADULT or MINOR as of today.
func (s *EnrollmentService) buildPayload(form *models.GuardianForm, classID string, mode models.ClassMode, method models.PaymentMethod) (*models.EnrollmentPayload, error) {
	isAdult, err := utils.AgeClassificationAt(form.BirthDate, s.now())
	if err != nil {
		return nil, err
	}

	return &models.EnrollmentPayload{
		FullStudentName: form.FullStudentName,
		StudentCPF:      utils.OnlyDigits(form.StudentCPF),
		StudentRG:       utils.OnlyDigits(form.StudentRG),
		StudentPhone:    utils.OnlyDigits(form.StudentPhone),
		StudentEmail:    form.StudentEmail,
		StudentAddress: utils.BuildAddress(
			form.StudentState,
			form.StudentCity,
			form.StudentNeighborhood,
			form.StudentRoad,
			form.StudentHouseNumber,
			form.StudentCEP,
		),
		SocialName: form.SocialName,
		IsAdult:    isAdult,
		Mode:       mode,
		ID:         classID,

		FullMotherName: form.FullMotherName,
		MotherCPF:      utils.OnlyDigits(form.MotherCPF),
		MotherRG:       utils.OnlyDigits(form.MotherRG),
		MotherPhone:    utils.OnlyDigits(form.MotherPhone),
		MotherEmail:    form.MotherEmail,
		MotherAddress: utils.BuildAddress(
			form.MotherState,
			form.MotherCity,
			form.MotherNeighborhood,
			form.MotherRoad,
			form.MotherHouseNumber,
			form.MotherCEP,
		),

		FullFatherName: form.FullFatherName,
		FatherCPF:      utils.OnlyDigits(form.FatherCPF),
		FatherRG:       utils.OnlyDigits(form.FatherRG),
		FatherPhone:    utils.OnlyDigits(form.FatherPhone),
		FatherEmail:    form.FatherEmail,
		FatherAddress: utils.BuildAddress(
			form.FatherState,
			form.FatherCity,
			form.FatherNeighborhood,
			form.FatherRoad,
			form.FatherHouseNumber,
			form.FatherCEP,
		),

		Status:        models.EnrollmentStatusReserved,
		PaymentMethod: method,
	}, nil
}

// failureMessage prefers the transport error's own message, with the
// generic fallback for errors that somehow carry none.
func failureMessage(err error) string {
	if err == nil || err.Error() == "" {
		return msgSubmitFallback
	}
	return err.Error()
}
