package model

// MaxMedicamentsPerPrescription bounds the line items of one prescription.
const MaxMedicamentsPerPrescription = 10

type Doctor struct {
	ID        int    `db:"id_doctor" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Email     string `db:"email" json:"email"`
}

type Medicament struct {
	ID          int    `db:"id_medicament" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Type        string `db:"type" json:"type"`
}

type Patient struct {
	ID        int    `db:"id_patient" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	BirthDate Date   `db:"birth_date" json:"birthDate"`
}

type PatientWithPrescriptions struct {
	Patient
	Prescriptions []Prescription `json:"prescriptions"`
}

// PrescribedMedicament is a line item merged with its catalog medicament.
type PrescribedMedicament struct {
	PrescriptionID int    `db:"id_prescription" json:"-"`
	MedicamentID   int    `db:"id_medicament" json:"id"`
	Name           string `db:"name" json:"name"`
	Description    string `db:"description" json:"description"`
	Type           string `db:"type" json:"type"`
	Dose           *int   `db:"dose" json:"dose"`
	Details        string `db:"details" json:"details"`
}

type Prescription struct {
	ID          int                    `json:"id"`
	Date        Date                   `json:"date"`
	DueDate     Date                   `json:"dueDate"`
	PatientID   int                    `json:"-"`
	Doctor      Doctor                 `json:"doctor"`
	Medicaments []PrescribedMedicament `json:"medicaments"`
}

type PatientInput struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	DateOfBirth Date   `json:"dateOfBirth" validate:"required"`
}

type LineItemInput struct {
	MedicamentID int    `json:"id" validate:"gt=0"`
	Dose         *int   `json:"dose"`
	Details      string `json:"details" validate:"required,max=100"`
}

type CreatePrescriptionRequest struct {
	Date        Date            `json:"date" validate:"required"`
	DueDate     Date            `json:"dueDate" validate:"required"`
	Patient     PatientInput    `json:"patient" validate:"required"`
	Medicaments []LineItemInput `json:"medicaments" validate:"unique=MedicamentID,dive"`
	DoctorID    int             `json:"doctorId"`
}

// NewPrescription is what gets written for one create request.
type NewPrescription struct {
	Date      Date
	DueDate   Date
	PatientID int
	DoctorID  int
	Items     []LineItemInput
}
