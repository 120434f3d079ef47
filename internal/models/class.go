package models

// ClassMode is the delivery mode of a class offering
type ClassMode string

const (
	ClassModeOnline   ClassMode = "ONLINE"
	ClassModeInPerson ClassMode = "IN_PERSON"
)

// Class represents a class offering owned by the remote enrollment API
type Class struct {
	ID             int       `json:"id"`
	FullName       string    `json:"fullName"`
	LessonSchedule string    `json:"lessonSchedule"`
	Mode           ClassMode `json:"mode"`
	MaxSeats       *int      `json:"maxSeats"`
	AvailableSeats *int      `json:"availableSeats"`
	CreatedAt      string    `json:"createdAt"`
	PaymentAmount  float64   `json:"paymentAmount"`
}

// ClassListResponse is the remote envelope for GET /class/
type ClassListResponse struct {
	AllClass []Class `json:"allClass"`
}

// ClassResponse is the remote envelope for GET /class/{id}.
// Class is null when the id does not resolve to an offering.
type ClassResponse struct {
	Class *Class `json:"class"`
}
