package models

// AgeClass classifies the student as of the submission date
type AgeClass string

const (
	AgeClassAdult AgeClass = "ADULT"
	AgeClassMinor AgeClass = "MINOR"
)

// GuardianForm carries the raw field values of the public enrollment form:
// the student, their mother and their father. Values are kept exactly as
// typed (formatting punctuation included); normalization happens only when
// the submission payload is assembled.
type GuardianForm struct {
	BirthDate           string `json:"birthDate"`
	FullStudentName     string `json:"fullStudentName"`
	SocialName          string `json:"socialName"`
	StudentCPF          string `json:"studentCpf"`
	StudentRG           string `json:"studentRg"`
	StudentPhone        string `json:"studentPhone"`
	StudentEmail        string `json:"studentEmail"`
	StudentCEP          string `json:"studentCep"`
	StudentNeighborhood string `json:"studentNeighborhood"`
	StudentCity         string `json:"studentCity"`
	StudentState        string `json:"studentState"`
	StudentRoad         string `json:"studentRoad"`
	StudentHouseNumber  string `json:"studentHouseNumber"`

	FullMotherName     string `json:"fullMotherName"`
	MotherCPF          string `json:"motherCpf"`
	MotherRG           string `json:"motherRg"`
	MotherPhone        string `json:"motherPhone"`
	MotherEmail        string `json:"motherEmail"`
	MotherCEP          string `json:"motherCep"`
	MotherNeighborhood string `json:"motherNeighborhood"`
	MotherCity         string `json:"motherCity"`
	MotherState        string `json:"motherState"`
	MotherRoad         string `json:"motherRoad"`
	MotherHouseNumber  string `json:"motherHouseNumber"`

	FullFatherName     string `json:"fullFatherName"`
	FatherCPF          string `json:"fatherCpf"`
	FatherRG           string `json:"fatherRg"`
	FatherPhone        string `json:"fatherPhone"`
	FatherEmail        string `json:"fatherEmail"`
	FatherCEP          string `json:"fatherCep"`
	FatherNeighborhood string `json:"fatherNeighborhood"`
	FatherCity         string `json:"fatherCity"`
	FatherState        string `json:"fatherState"`
	FatherRoad         string `json:"fatherRoad"`
	FatherHouseNumber  string `json:"fatherHouseNumber"`
}

// Values maps field name to raw value, for uniform schema application.
func (f *GuardianForm) Values() map[string]string {
	return map[string]string{
		"birthDate":           f.BirthDate,
		"fullStudentName":     f.FullStudentName,
		"socialName":          f.SocialName,
		"studentCpf":          f.StudentCPF,
		"studentRg":           f.StudentRG,
		"studentPhone":        f.StudentPhone,
		"studentEmail":        f.StudentEmail,
		"studentCep":          f.StudentCEP,
		"studentNeighborhood": f.StudentNeighborhood,
		"studentCity":         f.StudentCity,
		"studentState":        f.StudentState,
		"studentRoad":         f.StudentRoad,
		"studentHouseNumber":  f.StudentHouseNumber,

		"fullMotherName":     f.FullMotherName,
		"motherCpf":          f.MotherCPF,
		"motherRg":           f.MotherRG,
		"motherPhone":        f.MotherPhone,
		"motherEmail":        f.MotherEmail,
		"motherCep":          f.MotherCEP,
		"motherNeighborhood": f.MotherNeighborhood,
		"motherCity":         f.MotherCity,
		"motherState":        f.MotherState,
		"motherRoad":         f.MotherRoad,
		"motherHouseNumber":  f.MotherHouseNumber,

		"fullFatherName":     f.FullFatherName,
		"fatherCpf":          f.FatherCPF,
		"fatherRg":           f.FatherRG,
		"fatherPhone":        f.FatherPhone,
		"fatherEmail":        f.FatherEmail,
		"fatherCep":          f.FatherCEP,
		"fatherNeighborhood": f.FatherNeighborhood,
		"fatherCity":         f.FatherCity,
		"fatherState":        f.FatherState,
		"fatherRoad":         f.FatherRoad,
		"fatherHouseNumber":  f.FatherHouseNumber,
	}
}

// InheritStudentAddress copies the six student address fields into the
// given person's fields ("mother" or "father"). The fields stay subject to
// schema validation; only direct editing is disabled on the client side.
func (f *GuardianForm) InheritStudentAddress(person string) {
	switch person {
	case "mother":
		f.MotherCEP = f.StudentCEP
		f.MotherNeighborhood = f.StudentNeighborhood
		f.MotherCity = f.StudentCity
		f.MotherState = f.StudentState
		f.MotherRoad = f.StudentRoad
		f.MotherHouseNumber = f.StudentHouseNumber
	case "father":
		f.FatherCEP = f.StudentCEP
		f.FatherNeighborhood = f.StudentNeighborhood
		f.FatherCity = f.StudentCity
		f.FatherState = f.StudentState
		f.FatherRoad = f.StudentRoad
		f.FatherHouseNumber = f.StudentHouseNumber
	}
}

// ClearAddress empties the six address fields of the given person,
// the counterpart of InheritStudentAddress when the toggle is unchecked.
func (f *GuardianForm) ClearAddress(person string) {
	switch person {
	case "mother":
		f.MotherCEP = ""
		f.MotherNeighborhood = ""
		f.MotherCity = ""
		f.MotherState = ""
		f.MotherRoad = ""
		f.MotherHouseNumber = ""
	case "father":
		f.FatherCEP = ""
		f.FatherNeighborhood = ""
		f.FatherCity = ""
		f.FatherState = ""
		f.FatherRoad = ""
		f.FatherHouseNumber = ""
	}
}

// EnrollmentPayload is the document posted to the remote /forms endpoint.
// Built once at submit time, never mutated afterwards. Tax IDs, national
// IDs and phones are digits-only; addresses are single formatted strings.
type EnrollmentPayload struct {
	FullStudentName string        `json:"fullStudentName"`
	StudentCPF      string        `json:"studentCpf"`
	StudentRG       string        `json:"studentRg"`
	StudentPhone    string        `json:"studentPhone"`
	StudentEmail    string        `json:"studentEmail"`
	StudentAddress  string        `json:"studentAddress"`
	SocialName      string        `json:"socialName"`
	IsAdult         AgeClass      `json:"isAdult"`
	Mode            ClassMode     `json:"mode"`
	ID              string        `json:"id"`
	FullMotherName  string        `json:"fullMotherName"`
	MotherCPF       string        `json:"motherCpf"`
	MotherRG        string        `json:"motherRg"`
	MotherPhone     string        `json:"motherPhone"`
	MotherEmail     string        `json:"motherEmail"`
	MotherAddress   string        `json:"motherAddress"`
	FullFatherName  string        `json:"fullFatherName"`
	FatherCPF       string        `json:"fatherCpf"`
	FatherRG        string        `json:"fatherRg"`
	FatherPhone     string        `json:"fatherPhone"`
	FatherEmail     string        `json:"fatherEmail"`
	FatherAddress   string        `json:"fatherAddress"`
	Status          string        `json:"status"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
}

// EnrollmentCreated is the remote success envelope for POST /forms:
// the checkout URL the guardian is redirected to.
type EnrollmentCreated struct {
	InitPoint string `json:"init_point"`
}
