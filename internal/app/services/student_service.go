package services

import (
	"fmt"
	"strconv"

	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/app/models/dto"
	"github.com/svit/internhub/internal/datastore"
	"github.com/svit/internhub/internal/pkg/apperrors"
	"github.com/svit/internhub/internal/pkg/listquery"
	"github.com/svit/internhub/internal/pkg/validation"
)

// StudentFilters narrows a student listing
type StudentFilters struct {
	listquery.Params
	Branch string
	Year   int // 0 means no filter
}

// StudentService validates student operations before handing them to the
// store. The store itself trusts its callers, so every business rule lives
// here.
type StudentService struct {
	store *datastore.Store
}

// NewStudentService creates a new student service instance
func NewStudentService(store *datastore.Store) *StudentService {
	return &StudentService{store: store}
}

// validateStudentFields applies the form rules shared by create and update
func validateStudentFields(name, registerNumber, branch, email, phone string, year int) error {
	if err := validation.Required(name, "name"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.RegisterNumber(registerNumber); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Required(branch, "branch"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Email(email); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Phone(phone); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.PositiveInt(year, 1, "year"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

// ListStudents returns one page of the student collection after filtering
// and sorting
func (s *StudentService) ListStudents(filters StudentFilters) ([]models.Student, listquery.PageInfo) {
	students := s.store.Students()

	students = listquery.Filter(students, func(st models.Student) bool {
		if filters.Branch != "" && st.Branch != filters.Branch {
			return false
		}
		if filters.Year != 0 && st.Year != filters.Year {
			return false
		}
		return listquery.Matches(filters.Search, st.Name, st.RegisterNumber, st.Branch, st.Email)
	})

	switch filters.SortBy {
	case "name":
		listquery.Sort(students, filters.SortOrder, func(a, b models.Student) bool {
			return listquery.CompareStrings(a.Name, b.Name)
		})
	case "registerNumber":
		listquery.Sort(students, filters.SortOrder, func(a, b models.Student) bool {
			return listquery.CompareStrings(a.RegisterNumber, b.RegisterNumber)
		})
	case "year":
		listquery.Sort(students, filters.SortOrder, func(a, b models.Student) bool {
			return a.Year < b.Year
		})
	case "", "id":
		listquery.Sort(students, filters.SortOrder, func(a, b models.Student) bool {
			return a.ID < b.ID
		})
	}

	return listquery.Paginate(students, filters.Page, filters.PageSize)
}

// GetStudent retrieves a single student
func (s *StudentService) GetStudent(id int64) (models.Student, error) {
	student, ok := s.store.StudentByID(id)
	if !ok {
		return models.Student{}, fmt.Errorf("student %d: %w", id, apperrors.ErrStudentNotFound)
	}
	return student, nil
}

// CreateStudent validates the request and adds the record
func (s *StudentService) CreateStudent(req dto.CreateStudentRequest) (models.Student, error) {
	if err := validateStudentFields(req.Name, req.RegisterNumber, req.Branch, req.Email, req.Phone, req.Year); err != nil {
		return models.Student{}, err
	}
	created := s.store.AddStudent(models.Student{
		Name:           req.Name,
		RegisterNumber: req.RegisterNumber,
		Branch:         req.Branch,
		Year:           req.Year,
		Email:          req.Email,
		Phone:          req.Phone,
	})
	return created, nil
}

// UpdateStudent merges the request over the stored record and replaces it.
// The internship assignment and progress history are kept from the stored
// record; the store does whole-record replaces, so the merge happens here.
func (s *StudentService) UpdateStudent(id int64, req dto.UpdateStudentRequest) (models.Student, error) {
	current, ok := s.store.StudentByID(id)
	if !ok {
		return models.Student{}, fmt.Errorf("student %d: %w", id, apperrors.ErrStudentNotFound)
	}
	if err := validateStudentFields(req.Name, req.RegisterNumber, req.Branch, req.Email, req.Phone, req.Year); err != nil {
		return models.Student{}, err
	}

	current.Name = req.Name
	current.RegisterNumber = req.RegisterNumber
	current.Branch = req.Branch
	current.Year = req.Year
	current.Email = req.Email
	current.Phone = req.Phone
	s.store.UpdateStudent(current)
	return current, nil
}

// DeleteStudent removes a student record
func (s *StudentService) DeleteStudent(id int64) error {
	if _, ok := s.store.StudentByID(id); !ok {
		return fmt.Errorf("student %d: %w", id, apperrors.ErrStudentNotFound)
	}
	s.store.DeleteStudent(id)
	return nil
}

// AddProgress validates and appends one progress entry
func (s *StudentService) AddProgress(studentID int64, req dto.AddProgressRequest) error {
	if _, ok := s.store.StudentByID(studentID); !ok {
		return fmt.Errorf("student %d: %w", studentID, apperrors.ErrStudentNotFound)
	}
	if err := validation.Date(req.Date, "date"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Required(req.Task, "task"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	s.store.AddStudentProgress(studentID, models.ProgressEntry{
		Date:    req.Date,
		Task:    req.Task,
		Status:  req.Status,
		Remarks: req.Remarks,
	})
	return nil
}

// ParseYearFilter converts a raw year query value, 0 when absent
func ParseYearFilter(raw string) int {
	if raw == "" {
		return 0
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 0 {
		return 0
	}
	return year
}
