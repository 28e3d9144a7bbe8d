package services

import (
	"fmt"

	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/app/models/dto"
	"github.com/svit/internhub/internal/datastore"
	"github.com/svit/internhub/internal/pkg/apperrors"
	"github.com/svit/internhub/internal/pkg/listquery"
	"github.com/svit/internhub/internal/pkg/validation"
)

// InternshipFilters narrows an internship listing
type InternshipFilters struct {
	listquery.Params
	Status models.InternshipStatus // empty means no filter
}

// InternshipService owns the business rules around internships, most
// importantly the capacity pre-check the store deliberately does not do.
type InternshipService struct {
	store *datastore.Store
}

// NewInternshipService creates a new internship service instance
func NewInternshipService(store *datastore.Store) *InternshipService {
	return &InternshipService{store: store}
}

func validateInternshipFields(title, description, duration, startDate, endDate, guide string, maxStudents int) error {
	if err := validation.Required(title, "title"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Required(description, "description"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Required(duration, "duration"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Date(startDate, "startDate"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Date(endDate, "endDate"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Required(guide, "guide"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.PositiveInt(maxStudents, 1, "maxStudents"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

// withOccupancy derives the informational occupancy count for a record
func (s *InternshipService) withOccupancy(in models.Internship) dto.InternshipResponse {
	return dto.InternshipResponse{
		Internship: in,
		Occupancy:  len(s.store.GetStudentsForInternship(in.ID)),
	}
}

// ListInternships returns one page of internships with occupancy counts
func (s *InternshipService) ListInternships(filters InternshipFilters) ([]dto.InternshipResponse, listquery.PageInfo) {
	internships := s.store.Internships()

	internships = listquery.Filter(internships, func(in models.Internship) bool {
		if filters.Status != "" && in.Status != filters.Status {
			return false
		}
		return listquery.Matches(filters.Search, in.Title, in.Description, in.Guide)
	})

	switch filters.SortBy {
	case "title":
		listquery.Sort(internships, filters.SortOrder, func(a, b models.Internship) bool {
			return listquery.CompareStrings(a.Title, b.Title)
		})
	case "startDate":
		listquery.Sort(internships, filters.SortOrder, func(a, b models.Internship) bool {
			return a.StartDate < b.StartDate
		})
	case "", "id":
		listquery.Sort(internships, filters.SortOrder, func(a, b models.Internship) bool {
			return a.ID < b.ID
		})
	}

	page, info := listquery.Paginate(internships, filters.Page, filters.PageSize)
	out := make([]dto.InternshipResponse, len(page))
	for i, in := range page {
		out[i] = s.withOccupancy(in)
	}
	return out, info
}

// GetInternship retrieves a single internship with its occupancy
func (s *InternshipService) GetInternship(id int64) (dto.InternshipResponse, error) {
	internship, ok := s.store.InternshipByID(id)
	if !ok {
		return dto.InternshipResponse{}, fmt.Errorf("internship %d: %w", id, apperrors.ErrInternshipNotFound)
	}
	return s.withOccupancy(internship), nil
}

// CreateInternship validates the request and adds the record
func (s *InternshipService) CreateInternship(req dto.CreateInternshipRequest) (models.Internship, error) {
	if err := validateInternshipFields(req.Title, req.Description, req.Duration, req.StartDate, req.EndDate, req.Guide, req.MaxStudents); err != nil {
		return models.Internship{}, err
	}
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	created := s.store.AddInternship(models.Internship{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MaxStudents: req.MaxStudents,
		Guide:       req.Guide,
		Skills:      skills,
	})
	return created, nil
}

// UpdateInternship replaces the stored record with the request
func (s *InternshipService) UpdateInternship(id int64, req dto.UpdateInternshipRequest) (models.Internship, error) {
	if _, ok := s.store.InternshipByID(id); !ok {
		return models.Internship{}, fmt.Errorf("internship %d: %w", id, apperrors.ErrInternshipNotFound)
	}
	if err := validateInternshipFields(req.Title, req.Description, req.Duration, req.StartDate, req.EndDate, req.Guide, req.MaxStudents); err != nil {
		return models.Internship{}, err
	}
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	record := models.Internship{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MaxStudents: req.MaxStudents,
		Guide:       req.Guide,
		Skills:      skills,
		Status:      req.Status,
	}
	s.store.UpdateInternship(record)
	return record, nil
}

// DeleteInternship removes the internship; the store cascades the
// unassignment of every student pointing at it.
func (s *InternshipService) DeleteInternship(id int64) error {
	if _, ok := s.store.InternshipByID(id); !ok {
		return fmt.Errorf("internship %d: %w", id, apperrors.ErrInternshipNotFound)
	}
	s.store.DeleteInternship(id)
	return nil
}

// AssignStudent sets or clears a student's internship. This is where the
// capacity rule lives: the store would happily overfill, so occupancy is
// checked here before the assignment goes through.
func (s *InternshipService) AssignStudent(studentID int64, internshipID *int64) error {
	student, ok := s.store.StudentByID(studentID)
	if !ok {
		return fmt.Errorf("student %d: %w", studentID, apperrors.ErrStudentNotFound)
	}

	if internshipID != nil {
		internship, ok := s.store.InternshipByID(*internshipID)
		if !ok {
			return fmt.Errorf("internship %d: %w", *internshipID, apperrors.ErrInternshipNotFound)
		}
		alreadyAssigned := student.InternshipID != nil && *student.InternshipID == *internshipID
		if !alreadyAssigned {
			occupancy := len(s.store.GetStudentsForInternship(*internshipID))
			if occupancy >= internship.MaxStudents {
				return fmt.Errorf("internship %d: %w", *internshipID, apperrors.ErrInternshipFull)
			}
		}
	}

	s.store.AssignStudentToInternship(studentID, internshipID)
	return nil
}

// StudentsForInternship lists the students assigned to an internship
func (s *InternshipService) StudentsForInternship(id int64) ([]models.Student, error) {
	if _, ok := s.store.InternshipByID(id); !ok {
		return nil, fmt.Errorf("internship %d: %w", id, apperrors.ErrInternshipNotFound)
	}
	return s.store.GetStudentsForInternship(id), nil
}
