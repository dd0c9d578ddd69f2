package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthcare-api/internal/model"
	"github.com/jwalitptl/healthcare-api/internal/repository"
	apperrors "github.com/jwalitptl/healthcare-api/pkg/errors"
)

var _ repository.PatientRepository = (*mockPatientRepository)(nil)

// mockPatientRepository is a func-field mock of PatientRepository.
type mockPatientRepository struct {
	CreateFunc func(ctx context.Context, patient *model.Patient) error
	GetFunc    func(ctx context.Context, id int64) (*model.Patient, error)
	ExistsFunc func(ctx context.Context, id int64) (bool, error)
	UpdateFunc func(ctx context.Context, patient *model.Patient) error
	DeleteFunc func(ctx context.Context, id int64) error
	ListFunc   func(ctx context.Context) ([]*model.Patient, error)
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not implemented in mock")
}

func (m *mockPatientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockPatientRepository) Update(ctx context.Context, patient *model.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func strptr(s string) *string { return &s }

func TestCreatePatient(t *testing.T) {
	repo := &mockPatientRepository{
		CreateFunc: func(ctx context.Context, p *model.Patient) error {
			p.ID = 1
			return nil
		},
	}
	svc := NewService(repo)

	p, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		Name:        strptr("John Doe"),
		DateOfBirth: strptr("1990-01-01"),
		Email:       strptr("john@example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "John Doe", p.Name)
	assert.Equal(t, "john@example.com", p.Email)
	assert.Equal(t, "1990-01-01", p.DateOfBirth.String())
	assert.Nil(t, p.Phone)
}

func TestCreatePatientMissingField(t *testing.T) {
	svc := NewService(&mockPatientRepository{})

	_, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		Email: strptr("john@example.com"),
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	assert.Equal(t, "Missing required field: name", appErr.Message)
}

func TestCreatePatientBadDateOfBirth(t *testing.T) {
	svc := NewService(&mockPatientRepository{})

	_, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		Name:        strptr("John Doe"),
		DateOfBirth: strptr("Jan 1 1990"),
		Email:       strptr("john@example.com"),
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
}

func TestUpdatePatientPartial(t *testing.T) {
	dob, _ := model.ParseDate("1990-01-01")
	var updated *model.Patient

	repo := &mockPatientRepository{
		GetFunc: func(ctx context.Context, id int64) (*model.Patient, error) {
			return &model.Patient{ID: id, Name: "John Doe", DateOfBirth: dob, Email: "john@example.com"}, nil
		},
		UpdateFunc: func(ctx context.Context, p *model.Patient) error {
			updated = p
			return nil
		},
	}
	svc := NewService(repo)

	p, err := svc.UpdatePatient(context.Background(), 1, &model.UpdatePatientRequest{
		Phone: strptr("555-0100"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "John Doe", p.Name)
	assert.Equal(t, "john@example.com", p.Email)
	require.NotNil(t, p.Phone)
	assert.Equal(t, "555-0100", *p.Phone)
}

func TestUpdatePatientNotFound(t *testing.T) {
	repo := &mockPatientRepository{
		GetFunc: func(ctx context.Context, id int64) (*model.Patient, error) {
			return nil, apperrors.NotFound("patient", nil)
		},
	}
	svc := NewService(repo)

	_, err := svc.UpdatePatient(context.Background(), 42, &model.UpdatePatientRequest{Name: strptr("x")})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestUpdatePatientBadDateLeavesStoreUntouched(t *testing.T) {
	updateCalled := false
	repo := &mockPatientRepository{
		GetFunc: func(ctx context.Context, id int64) (*model.Patient, error) {
			return &model.Patient{ID: id, Name: "John Doe"}, nil
		},
		UpdateFunc: func(ctx context.Context, p *model.Patient) error {
			updateCalled = true
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.UpdatePatient(context.Background(), 1, &model.UpdatePatientRequest{
		DateOfBirth: strptr("bad"),
	})
	require.Error(t, err)
	assert.False(t, updateCalled)
}

func TestDeletePatientNotFound(t *testing.T) {
	repo := &mockPatientRepository{
		GetFunc: func(ctx context.Context, id int64) (*model.Patient, error) {
			return nil, apperrors.NotFound("patient", nil)
		},
	}
	svc := NewService(repo)

	err := svc.DeletePatient(context.Background(), 42)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}
