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

// CRTSessionFilters narrows a session listing
type CRTSessionFilters struct {
	listquery.Params
	Date string // exact date filter, empty means none
}

// CRTSessionService validates CRT session operations before handing them to
// the store.
type CRTSessionService struct {
	store *datastore.Store
}

// NewCRTSessionService creates a new CRT session service instance
func NewCRTSessionService(store *datastore.Store) *CRTSessionService {
	return &CRTSessionService{store: store}
}

func validateSessionFields(title, description, date, timeSlot, venue, speaker string) error {
	if err := validation.Required(title, "title"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Required(description, "description"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Date(date, "date"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Required(timeSlot, "time"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Required(venue, "venue"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := validation.Required(speaker, "speaker"); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

// ListSessions returns one page of CRT sessions
func (s *CRTSessionService) ListSessions(filters CRTSessionFilters) ([]models.CRTSession, listquery.PageInfo) {
	sessions := s.store.CRTSessions()

	sessions = listquery.Filter(sessions, func(cs models.CRTSession) bool {
		if filters.Date != "" && cs.Date != filters.Date {
			return false
		}
		return listquery.Matches(filters.Search, cs.Title, cs.Description, cs.Speaker, cs.Venue)
	})

	switch filters.SortBy {
	case "title":
		listquery.Sort(sessions, filters.SortOrder, func(a, b models.CRTSession) bool {
			return listquery.CompareStrings(a.Title, b.Title)
		})
	case "date":
		listquery.Sort(sessions, filters.SortOrder, func(a, b models.CRTSession) bool {
			return a.Date < b.Date
		})
	case "", "id":
		listquery.Sort(sessions, filters.SortOrder, func(a, b models.CRTSession) bool {
			return a.ID < b.ID
		})
	}

	return listquery.Paginate(sessions, filters.Page, filters.PageSize)
}

// GetSession retrieves a single session
func (s *CRTSessionService) GetSession(id int64) (models.CRTSession, error) {
	session, ok := s.store.CRTSessionByID(id)
	if !ok {
		return models.CRTSession{}, fmt.Errorf("crt session %d: %w", id, apperrors.ErrSessionNotFound)
	}
	return session, nil
}

// CreateSession validates the request and adds the record
func (s *CRTSessionService) CreateSession(req dto.CreateCRTSessionRequest) (models.CRTSession, error) {
	if err := validateSessionFields(req.Title, req.Description, req.Date, req.Time, req.Venue, req.Speaker); err != nil {
		return models.CRTSession{}, err
	}
	created := s.store.AddCRTSession(models.CRTSession{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Speaker:     req.Speaker,
		Eligibility: req.Eligibility,
	})
	return created, nil
}

// UpdateSession replaces the stored record, keeping its registration set
func (s *CRTSessionService) UpdateSession(id int64, req dto.UpdateCRTSessionRequest) (models.CRTSession, error) {
	current, ok := s.store.CRTSessionByID(id)
	if !ok {
		return models.CRTSession{}, fmt.Errorf("crt session %d: %w", id, apperrors.ErrSessionNotFound)
	}
	if err := validateSessionFields(req.Title, req.Description, req.Date, req.Time, req.Venue, req.Speaker); err != nil {
		return models.CRTSession{}, err
	}

	current.Title = req.Title
	current.Description = req.Description
	current.Date = req.Date
	current.Time = req.Time
	current.Venue = req.Venue
	current.Speaker = req.Speaker
	current.Eligibility = req.Eligibility
	s.store.UpdateCRTSession(current)
	return current, nil
}

// DeleteSession removes a session; nothing references sessions, no cascade
func (s *CRTSessionService) DeleteSession(id int64) error {
	if _, ok := s.store.CRTSessionByID(id); !ok {
		return fmt.Errorf("crt session %d: %w", id, apperrors.ErrSessionNotFound)
	}
	s.store.DeleteCRTSession(id)
	return nil
}

// Register adds a student to a session's registration set. Registering an
// already-registered student succeeds without effect.
func (s *CRTSessionService) Register(studentID, sessionID int64) error {
	if _, ok := s.store.CRTSessionByID(sessionID); !ok {
		return fmt.Errorf("crt session %d: %w", sessionID, apperrors.ErrSessionNotFound)
	}
	if _, ok := s.store.StudentByID(studentID); !ok {
		return fmt.Errorf("student %d: %w", studentID, apperrors.ErrStudentNotFound)
	}
	s.store.RegisterStudentForCRTSession(studentID, sessionID)
	return nil
}

// Unregister removes a student from a session's registration set.
// Unregistering a student who is not registered succeeds without effect.
func (s *CRTSessionService) Unregister(studentID, sessionID int64) error {
	if _, ok := s.store.CRTSessionByID(sessionID); !ok {
		return fmt.Errorf("crt session %d: %w", sessionID, apperrors.ErrSessionNotFound)
	}
	s.store.UnregisterStudentFromCRTSession(studentID, sessionID)
	return nil
}

// StudentsForSession lists the students registered for a session
func (s *CRTSessionService) StudentsForSession(id int64) ([]models.Student, error) {
	if _, ok := s.store.CRTSessionByID(id); !ok {
		return nil, fmt.Errorf("crt session %d: %w", id, apperrors.ErrSessionNotFound)
	}
	return s.store.GetStudentsForCRTSession(id), nil
}
