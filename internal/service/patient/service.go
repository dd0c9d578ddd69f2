package patient

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/healthcare-api/internal/model"
	"github.com/jwalitptl/healthcare-api/internal/repository"
	apperrors "github.com/jwalitptl/healthcare-api/pkg/errors"
)

type PatientService interface {
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	GetPatient(ctx context.Context, id int64) (*model.Patient, error)
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dob, err := model.ParseDate(*req.DateOfBirth)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid date_of_birth: expected format %s", model.DateLayout))
	}

	patient := &model.Patient{
		Name:        *req.Name,
		DateOfBirth: dob,
		Email:       *req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		BloodGroup:  req.BloodGroup,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}

	log.Info().Int64("patient_id", patient.ID).Str("name", patient.Name).Msg("created patient")
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyTo(patient); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}

	log.Info().Int64("patient_id", id).Msg("updated patient")
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	// Fetch first so a missing patient reports not-found before any delete.
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("patient_id", id).Msg("deleted patient")
	return nil
}
