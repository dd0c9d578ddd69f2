package repository

import (
	"context"

	"github.com/jwalitptl/healthcare-api/internal/model"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id int64) (*model.Patient, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, patient *model.Patient) error
	// Delete removes the patient and, in the same transaction, all
	// appointments and medical records that reference it.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Patient, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Get(ctx context.Context, id int64) (*model.Appointment, error)
	Update(ctx context.Context, appointment *model.Appointment) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Appointment, error)
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *model.MedicalRecord) error
	Get(ctx context.Context, id int64) (*model.MedicalRecord, error)
	Delete(ctx context.Context, id int64) error
	ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error)
}
