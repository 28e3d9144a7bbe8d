package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/app/models/dto"
	"github.com/svit/internhub/internal/pkg/apperrors"
	"github.com/svit/internhub/internal/pkg/listquery"
)

func validStudentRequest() dto.CreateStudentRequest {
	return dto.CreateStudentRequest{
		Name:           "Arun Kumar",
		RegisterNumber: "SVIT2023001",
		Branch:         "CSE",
		Year:           3,
		Email:          "arun.kumar@svit.edu.in",
		Phone:          "9876543210",
	}
}

func TestCreateStudent(t *testing.T) {
	store := newTestStore(t)
	svc := NewStudentService(store)

	created, err := svc.CreateStudent(validStudentRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Empty(t, created.Progress)
}

func TestCreateStudentValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewStudentService(store)

	cases := []struct {
		name   string
		mutate func(*dto.CreateStudentRequest)
	}{
		{"empty name", func(r *dto.CreateStudentRequest) { r.Name = " " }},
		{"bad register number", func(r *dto.CreateStudentRequest) { r.RegisterNumber = "12345" }},
		{"bad email", func(r *dto.CreateStudentRequest) { r.Email = "not-an-email" }},
		{"bad phone", func(r *dto.CreateStudentRequest) { r.Phone = "12345" }},
		{"zero year", func(r *dto.CreateStudentRequest) { r.Year = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validStudentRequest()
			tc.mutate(&req)
			_, err := svc.CreateStudent(req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
	assert.Empty(t, store.Students())
}

func TestUpdateStudentKeepsAssignmentAndProgress(t *testing.T) {
	store := newTestStore(t)
	svc := NewStudentService(store)
	internships := NewInternshipService(store)

	created, err := svc.CreateStudent(validStudentRequest())
	require.NoError(t, err)
	internship, err := internships.CreateInternship(validInternshipRequest())
	require.NoError(t, err)
	require.NoError(t, internships.AssignStudent(created.ID, &internship.ID))
	require.NoError(t, svc.AddProgress(created.ID, dto.AddProgressRequest{
		Date:   "2023-09-01",
		Task:   "Setup",
		Status: models.ProgressCompleted,
	}))

	updated, err := svc.UpdateStudent(created.ID, dto.UpdateStudentRequest{
		Name:           "Arun K",
		RegisterNumber: created.RegisterNumber,
		Branch:         "ECE",
		Year:           4,
		Email:          created.Email,
		Phone:          created.Phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "Arun K", updated.Name)
	assert.Equal(t, "ECE", updated.Branch)
	require.NotNil(t, updated.InternshipID)
	assert.Equal(t, internship.ID, *updated.InternshipID)
	assert.Len(t, updated.Progress, 1)
}

func TestUpdateStudentNotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewStudentService(store)

	_, err := svc.UpdateStudent(7, dto.UpdateStudentRequest{
		Name:           "Ghost",
		RegisterNumber: "SVIT2023009",
		Branch:         "CSE",
		Year:           1,
		Email:          "ghost@svit.edu.in",
		Phone:          "9876543219",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestAddProgressValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewStudentService(store)

	created, err := svc.CreateStudent(validStudentRequest())
	require.NoError(t, err)

	err = svc.AddProgress(created.ID, dto.AddProgressRequest{Date: "bad", Task: "Setup"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.AddProgress(99, dto.AddProgressRequest{Date: "2023-09-01", Task: "Setup"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	got, err := svc.GetStudent(created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Progress)
}

func TestListStudentsFilterSortPaginate(t *testing.T) {
	store := newTestStore(t)
	svc := NewStudentService(store)

	seedRows := []struct {
		name   string
		branch string
		year   int
	}{
		{"Charlie", "CSE", 3},
		{"Alice", "ECE", 3},
		{"Bob", "CSE", 2},
	}
	for i, row := range seedRows {
		_, err := svc.CreateStudent(dto.CreateStudentRequest{
			Name:           row.name,
			RegisterNumber: "SVIT202300" + string(rune('1'+i)),
			Branch:         row.branch,
			Year:           row.year,
			Email:          "student@svit.edu.in",
			Phone:          "9876543210",
		})
		require.NoError(t, err)
	}

	page, info := svc.ListStudents(StudentFilters{
		Params: listquery.Params{SortBy: "name", SortOrder: listquery.OrderAsc, Page: 1, PageSize: 10},
		Branch: "CSE",
	})
	require.Len(t, page, 2)
	assert.Equal(t, "Bob", page[0].Name)
	assert.Equal(t, "Charlie", page[1].Name)
	assert.Equal(t, 2, info.TotalItems)

	page, _ = svc.ListStudents(StudentFilters{
		Params: listquery.Params{Search: "ali", Page: 1, PageSize: 10},
	})
	require.Len(t, page, 1)
	assert.Equal(t, "Alice", page[0].Name)

	page, _ = svc.ListStudents(StudentFilters{
		Params: listquery.Params{Page: 1, PageSize: 10},
		Year:   3,
	})
	assert.Len(t, page, 2)
}

func TestParseYearFilter(t *testing.T) {
	assert.Equal(t, 0, ParseYearFilter(""))
	assert.Equal(t, 0, ParseYearFilter("abc"))
	assert.Equal(t, 0, ParseYearFilter("-1"))
	assert.Equal(t, 3, ParseYearFilter("3"))
}
