package medical

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/healthcare-api/internal/model"
	"github.com/jwalitptl/healthcare-api/internal/repository"
	apperrors "github.com/jwalitptl/healthcare-api/pkg/errors"
)

// PatientRecords bundles a patient's records with the patient's name for the
// list-by-patient response.
type PatientRecords struct {
	PatientName string
	Records     []*model.MedicalRecord
}

type MedicalRecordService interface {
	ListPatientRecords(ctx context.Context, patientID int64) (*PatientRecords, error)
	CreateRecord(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error)
	DeleteRecord(ctx context.Context, id int64) error
}

type Service struct {
	repo        repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
}

func NewService(repo repository.MedicalRecordRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{repo: repo, patientRepo: patientRepo}
}

func (s *Service) ListPatientRecords(ctx context.Context, patientID int64) (*PatientRecords, error) {
	patient, err := s.patientRepo.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &PatientRecords{PatientName: patient.Name, Records: records}, nil
}

func (s *Service) CreateRecord(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.patientRepo.Exists(ctx, *req.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("patient", nil)
	}

	recordDate := model.Today()
	if req.RecordDate != nil {
		recordDate, err = model.ParseDate(*req.RecordDate)
		if err != nil {
			return nil, apperrors.Validation(fmt.Sprintf("invalid record_date: expected format %s", model.DateLayout))
		}
	}

	record := &model.MedicalRecord{
		PatientID:    *req.PatientID,
		Diagnosis:    *req.Diagnosis,
		Prescription: req.Prescription,
		DoctorName:   *req.DoctorName,
		RecordDate:   recordDate,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	log.Info().Int64("record_id", record.ID).Int64("patient_id", record.PatientID).Msg("created medical record")
	return record, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("record_id", id).Msg("deleted medical record")
	return nil
}
