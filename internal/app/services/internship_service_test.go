package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/app/models/dto"
	"github.com/svit/internhub/internal/datastore"
	"github.com/svit/internhub/internal/pkg/apperrors"
	"github.com/svit/internhub/internal/pkg/listquery"
)

func validInternshipRequest() dto.CreateInternshipRequest {
	return dto.CreateInternshipRequest{
		Title:       "Web Development",
		Description: "Build the department portal",
		Duration:    "3 months",
		StartDate:   "2023-09-01",
		EndDate:     "2023-11-30",
		MaxStudents: 2,
		Guide:       "Dr. Ramesh Kumar",
		Skills:      []string{"HTML", "CSS"},
	}
}

func addStudent(t *testing.T, store *datastore.Store, name string) models.Student {
	t.Helper()
	return store.AddStudent(models.Student{
		Name:           name,
		RegisterNumber: "SVIT2023001",
		Branch:         "CSE",
		Year:           3,
		Email:          "student@svit.edu.in",
		Phone:          "9876543210",
	})
}

func TestCreateInternship(t *testing.T) {
	store := newTestStore(t)
	svc := NewInternshipService(store)

	created, err := svc.CreateInternship(validInternshipRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, models.InternshipActive, created.Status)
}

func TestCreateInternshipValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewInternshipService(store)

	req := validInternshipRequest()
	req.Title = ""
	_, err := svc.CreateInternship(req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	req = validInternshipRequest()
	req.StartDate = "01-09-2023"
	_, err = svc.CreateInternship(req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	req = validInternshipRequest()
	req.MaxStudents = 0
	_, err = svc.CreateInternship(req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, store.Internships())
}

func TestAssignStudentCapacityRule(t *testing.T) {
	store := newTestStore(t)
	svc := NewInternshipService(store)

	internship, err := svc.CreateInternship(validInternshipRequest())
	require.NoError(t, err)
	s1 := addStudent(t, store, "A")
	s2 := addStudent(t, store, "B")
	s3 := addStudent(t, store, "C")

	require.NoError(t, svc.AssignStudent(s1.ID, &internship.ID))
	require.NoError(t, svc.AssignStudent(s2.ID, &internship.ID))

	err = svc.AssignStudent(s3.ID, &internship.ID)
	assert.ErrorIs(t, err, apperrors.ErrInternshipFull)
	assert.Len(t, store.GetStudentsForInternship(internship.ID), 2)
}

func TestAssignStudentReassignAtCapacityAllowed(t *testing.T) {
	// Re-assigning a student to the internship they already hold must not
	// trip the capacity check.
	store := newTestStore(t)
	svc := NewInternshipService(store)

	internship, err := svc.CreateInternship(validInternshipRequest())
	require.NoError(t, err)
	s1 := addStudent(t, store, "A")
	s2 := addStudent(t, store, "B")
	require.NoError(t, svc.AssignStudent(s1.ID, &internship.ID))
	require.NoError(t, svc.AssignStudent(s2.ID, &internship.ID))

	assert.NoError(t, svc.AssignStudent(s1.ID, &internship.ID))
}

func TestAssignStudentUnassign(t *testing.T) {
	store := newTestStore(t)
	svc := NewInternshipService(store)

	internship, err := svc.CreateInternship(validInternshipRequest())
	require.NoError(t, err)
	s1 := addStudent(t, store, "A")
	require.NoError(t, svc.AssignStudent(s1.ID, &internship.ID))

	require.NoError(t, svc.AssignStudent(s1.ID, nil))
	got, ok := store.StudentByID(s1.ID)
	require.True(t, ok)
	assert.Nil(t, got.InternshipID)
}

func TestAssignStudentUnknownTargets(t *testing.T) {
	store := newTestStore(t)
	svc := NewInternshipService(store)

	internship, err := svc.CreateInternship(validInternshipRequest())
	require.NoError(t, err)
	s1 := addStudent(t, store, "A")

	err = svc.AssignStudent(99, &internship.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	missing := int64(99)
	err = svc.AssignStudent(s1.ID, &missing)
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
}

func TestDeleteInternshipNotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewInternshipService(store)

	assert.ErrorIs(t, svc.DeleteInternship(1), apperrors.ErrInternshipNotFound)
}

func TestGetInternshipOccupancy(t *testing.T) {
	store := newTestStore(t)
	svc := NewInternshipService(store)

	internship, err := svc.CreateInternship(validInternshipRequest())
	require.NoError(t, err)
	s1 := addStudent(t, store, "A")
	require.NoError(t, svc.AssignStudent(s1.ID, &internship.ID))

	got, err := svc.GetInternship(internship.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Occupancy)
}

func TestListInternshipsStatusFilter(t *testing.T) {
	store := newTestStore(t)
	svc := NewInternshipService(store)

	first, err := svc.CreateInternship(validInternshipRequest())
	require.NoError(t, err)
	_, err = svc.CreateInternship(validInternshipRequest())
	require.NoError(t, err)

	update := dto.UpdateInternshipRequest{
		Title:       first.Title,
		Description: first.Description,
		Duration:    first.Duration,
		StartDate:   first.StartDate,
		EndDate:     first.EndDate,
		MaxStudents: first.MaxStudents,
		Guide:       first.Guide,
		Skills:      first.Skills,
		Status:      models.InternshipCompleted,
	}
	_, err = svc.UpdateInternship(first.ID, update)
	require.NoError(t, err)

	page, info := svc.ListInternships(InternshipFilters{
		Params: listquery.Params{Page: 1, PageSize: 10},
		Status: models.InternshipCompleted,
	})
	require.Len(t, page, 1)
	assert.Equal(t, first.ID, page[0].ID)
	assert.Equal(t, 1, info.TotalItems)
}
