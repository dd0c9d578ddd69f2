package model

import (
	"time"

	apperrors "github.com/jwalitptl/healthcare-api/pkg/errors"
)

type MedicalRecord struct {
	ID           int64     `db:"id" json:"id"`
	PatientID    int64     `db:"patient_id" json:"patient_id"`
	Diagnosis    string    `db:"diagnosis" json:"diagnosis"`
	Prescription *string   `db:"prescription" json:"prescription"`
	DoctorName   string    `db:"doctor_name" json:"doctor_name"`
	RecordDate   Date      `db:"record_date" json:"record_date"`
	Notes        *string   `db:"notes" json:"notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateMedicalRecordRequest struct {
	PatientID    *int64  `json:"patient_id"`
	Diagnosis    *string `json:"diagnosis"`
	DoctorName   *string `json:"doctor_name"`
	Prescription *string `json:"prescription"`
	RecordDate   *string `json:"record_date"`
	Notes        *string `json:"notes"`
}

func (r *CreateMedicalRecordRequest) Validate() error {
	if r.PatientID == nil {
		return apperrors.Validation("Missing required field: patient_id")
	}
	if r.Diagnosis == nil {
		return apperrors.Validation("Missing required field: diagnosis")
	}
	if r.DoctorName == nil {
		return apperrors.Validation("Missing required field: doctor_name")
	}
	return nil
}
