package models

// PaymentStatus is the status of a payment transaction
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// PaymentMethod is the method chosen by the guardian at submission
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodPix        PaymentMethod = "PIX"
)

// EnrollmentStatusReserved is the fixed initial status of a new enrollment
const EnrollmentStatusReserved = "RESERVED"

// NotFound is the sentinel rendered for any field a dashboard join misses
const NotFound = "Não encontrado"

// Registration is an enrollment record as returned by the remote API
type Registration struct {
	ID            string `json:"id"`
	StudentID     string `json:"studentId"`
	TransactionID string `json:"transactionId"`
	ClassID       string `json:"classId"`
	Status        string `json:"status"`
}

// Student is the student record referenced by a registration
type Student struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// Responsible is a guardian record keyed by the student it answers for
type Responsible struct {
	StudentID string `json:"studentId"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
}

// Transaction is a payment transaction referenced by a registration
type Transaction struct {
	ID            string        `json:"id"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentValue  float64       `json:"paymentValue"`
}

// RegistrationListResponse is the remote envelope for GET /registration/
type RegistrationListResponse struct {
	Registrations []Registration `json:"registrations"`
}

// StudentListResponse is the remote envelope for GET /students/
type StudentListResponse struct {
	AllStudents []Student `json:"allStudents"`
}

// ResponsibleListResponse is the remote envelope for GET /responsible/
type ResponsibleListResponse struct {
	AllResponsible []Responsible `json:"allResponsible"`
}

// TransactionListResponse is the remote envelope for GET /transactions/
type TransactionListResponse struct {
	AllTransactions []Transaction `json:"allTransactions"`
}

// RegistrationRow is a registration denormalized for the admin dashboard:
// the registration itself joined with its student, responsible and
// transaction. Joined fields are strings so a miss can carry the NotFound
// sentinel. Rebuilt from the remote API on every fetch, never stored.
type RegistrationRow struct {
	Registration
	StudentName               string `json:"studentName"`
	ResponsibleName           string `json:"responsibleName"`
	ResponsibleContact        string `json:"responsibleContact"`
	ResponsibleContactDisplay string `json:"responsibleContactDisplay"`
	PaymentStatus             string `json:"paymentStatus"`
	PaymentMethod             string `json:"paymentMethod"`
	PaymentValue              string `json:"paymentValue"`
}
