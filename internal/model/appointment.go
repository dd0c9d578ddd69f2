package model

import (
	"fmt"
	"time"

	apperrors "github.com/jwalitptl/healthcare-api/pkg/errors"
)

// AppointmentStatusScheduled is the status assigned at creation when none is
// supplied. The field itself is free-form text; no transition table is
// enforced.
const AppointmentStatusScheduled = "scheduled"

type Appointment struct {
	ID                  int64     `db:"id" json:"id"`
	PatientID           int64     `db:"patient_id" json:"patient_id"`
	DoctorName          string    `db:"doctor_name" json:"doctor_name"`
	AppointmentDateTime time.Time `db:"appointment_datetime" json:"appointment_datetime"`
	Status              string    `db:"status" json:"status"`
	Reason              *string   `db:"reason" json:"reason"`
	Notes               *string   `db:"notes" json:"notes"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

type CreateAppointmentRequest struct {
	PatientID           *int64  `json:"patient_id"`
	DoctorName          *string `json:"doctor_name"`
	AppointmentDateTime *string `json:"appointment_datetime"`
	Status              *string `json:"status"`
	Reason              *string `json:"reason"`
	Notes               *string `json:"notes"`
}

func (r *CreateAppointmentRequest) Validate() error {
	if r.PatientID == nil {
		return apperrors.Validation("Missing required field: patient_id")
	}
	if r.DoctorName == nil {
		return apperrors.Validation("Missing required field: doctor_name")
	}
	if r.AppointmentDateTime == nil {
		return apperrors.Validation("Missing required field: appointment_datetime")
	}
	return nil
}

// UpdateAppointmentRequest covers the only mutable fields; doctor_name,
// patient_id and reason are immutable through the update endpoint.
type UpdateAppointmentRequest struct {
	Status              *string `json:"status"`
	Notes               *string `json:"notes"`
	AppointmentDateTime *string `json:"appointment_datetime"`
}

func (r *UpdateAppointmentRequest) ApplyTo(a *Appointment) error {
	if r.Status != nil {
		a.Status = *r.Status
	}
	if r.Notes != nil {
		a.Notes = r.Notes
	}
	if r.AppointmentDateTime != nil {
		dt, err := time.Parse(DateTimeLayout, *r.AppointmentDateTime)
		if err != nil {
			return apperrors.Validation(fmt.Sprintf("invalid appointment_datetime: expected format %s", DateTimeLayout))
		}
		a.AppointmentDateTime = dt
	}
	return nil
}
