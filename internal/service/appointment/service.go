package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/healthcare-api/internal/model"
	"github.com/jwalitptl/healthcare-api/internal/repository"
	apperrors "github.com/jwalitptl/healthcare-api/pkg/errors"
)

type AppointmentService interface {
	ListAppointments(ctx context.Context) ([]*model.Appointment, error)
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{repo: repo, patientRepo: patientRepo}
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The referenced patient must exist before anything is constructed.
	exists, err := s.patientRepo.Exists(ctx, *req.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("patient", nil)
	}

	dt, err := time.Parse(model.DateTimeLayout, *req.AppointmentDateTime)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid appointment_datetime: expected format %s", model.DateTimeLayout))
	}

	status := model.AppointmentStatusScheduled
	if req.Status != nil {
		status = *req.Status
	}

	appointment := &model.Appointment{
		PatientID:           *req.PatientID,
		DoctorName:          *req.DoctorName,
		AppointmentDateTime: dt,
		Status:              status,
		Reason:              req.Reason,
		Notes:               req.Notes,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	log.Info().Int64("appointment_id", appointment.ID).Int64("patient_id", appointment.PatientID).Msg("created appointment")
	return appointment, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyTo(appointment); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	log.Info().Int64("appointment_id", id).Msg("updated appointment")
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("appointment_id", id).Msg("deleted appointment")
	return nil
}
