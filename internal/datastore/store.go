// Package datastore owns the portal's three entity collections and is the
// only code path allowed to mutate them. Every mutation is mirrored to the
// durable substrate in the same logical step.
//
// The store deliberately trusts its callers: it performs no field
// validation, no capacity checks, and it degrades to a silent no-op when a
// mutation references an unknown id. Business rules (internship capacity,
// form validation, role gating) belong to the service layer above it.
package datastore

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/seed"
	"github.com/svit/internhub/internal/storage"
)

// Substrate keys, one per collection
const (
	KeyStudents    = "students"
	KeyInternships = "internships"
	KeyCRTSessions = "crtSessions"
)

// Store holds the students, internships and CRT sessions collections.
// A single mutex serializes all access; the collections are small and flat,
// finer-grained locking buys nothing here.
type Store struct {
	mu      sync.Mutex
	storage storage.Storage
	logger  zerolog.Logger

	students    []models.Student
	internships []models.Internship
	crtSessions []models.CRTSession
}

// New loads the collections from the substrate, seeding any that are
// missing or unparseable with the default dataset (persisted immediately).
func New(st storage.Storage, logger zerolog.Logger) *Store {
	s := &Store{
		storage: st,
		logger:  logger,
	}
	s.students = loadCollection(s, KeyStudents, seed.Students)
	s.internships = loadCollection(s, KeyInternships, seed.Internships)
	s.crtSessions = loadCollection(s, KeyCRTSessions, seed.CRTSessions)
	return s
}

// loadCollection reads one collection from the substrate. Any failure falls
// back to the seed dataset rather than failing startup.
func loadCollection[T any](s *Store, key string, defaults func() []T) []T {
	payload, ok, err := s.storage.Get(key)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to read collection, using seed data")
		items := defaults()
		s.persist(key, items)
		return items
	}
	if !ok {
		items := defaults()
		s.persist(key, items)
		return items
	}
	var items []T
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Unparseable collection payload, falling back to seed data")
		items = defaults()
		s.persist(key, items)
		return items
	}
	return items
}

// persist serializes a collection under its key. In-memory state stays
// authoritative for this process, so persistence failures are logged and
// swallowed rather than returned.
func (s *Store) persist(key string, items any) {
	payload, err := json.Marshal(items)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to serialize collection")
		return
	}
	if err := s.storage.Set(key, string(payload)); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to persist collection")
	}
}

// Reload re-reads all collections from the substrate, replacing in-memory
// state for each collection whose payload loads cleanly. Used when an
// external writer changed the substrate behind this process's back.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	reloadCollection(s, KeyStudents, &s.students)
	reloadCollection(s, KeyInternships, &s.internships)
	reloadCollection(s, KeyCRTSessions, &s.crtSessions)
}

func reloadCollection[T any](s *Store, key string, target *[]T) {
	payload, ok, err := s.storage.Get(key)
	if err != nil || !ok {
		if err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("Reload: failed to read collection, keeping current state")
		}
		return
	}
	var items []T
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Reload: unparseable payload, keeping current state")
		return
	}
	*target = items
}

// nextID assigns max(existing)+1, or 1 for an empty collection
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// --- Students ---

// AddStudent assigns an id, resets progress to empty and appends the
// student. Caller-supplied fields are stored as-is.
func (s *Store) AddStudent(data models.Student) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(s.students))
	for i, st := range s.students {
		ids[i] = st.ID
	}
	data.ID = nextID(ids)
	data.Progress = []models.ProgressEntry{}
	s.students = append(s.students, data)
	s.persist(KeyStudents, s.students)
	return cloneStudent(data)
}

// UpdateStudent replaces the student with matching id. Full-record replace,
// not a merge; no-op when the id is unknown.
func (s *Store) UpdateStudent(record models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.students {
		if st.ID == record.ID {
			s.students[i] = record
			s.persist(KeyStudents, s.students)
			return
		}
	}
}

// DeleteStudent removes the student. No cascade: session registrations keep
// the id, exactly as the portal always behaved.
func (s *Store) DeleteStudent(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.students {
		if st.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			s.persist(KeyStudents, s.students)
			return
		}
	}
}

// AddStudentProgress appends an entry to the student's progress sequence.
// Progress is append-only; entries are never edited or removed.
func (s *Store) AddStudentProgress(studentID int64, entry models.ProgressEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.students {
		if st.ID == studentID {
			s.students[i].Progress = append(s.students[i].Progress, entry)
			s.persist(KeyStudents, s.students)
			return
		}
	}
}

// AssignStudentToInternship sets the student's internship reference, nil to
// unassign. No capacity or existence check here; the internship service
// pre-validates both before calling.
func (s *Store) AssignStudentToInternship(studentID int64, internshipID *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.students {
		if st.ID == studentID {
			s.students[i].InternshipID = internshipID
			s.persist(KeyStudents, s.students)
			return
		}
	}
}

// Students returns a snapshot of the student collection
func (s *Store) Students() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Student, len(s.students))
	for i, st := range s.students {
		out[i] = cloneStudent(st)
	}
	return out
}

// StudentByID returns a copy of the student with the given id
func (s *Store) StudentByID(id int64) (models.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.students {
		if st.ID == id {
			return cloneStudent(st), true
		}
	}
	return models.Student{}, false
}

// --- Internships ---

// AddInternship assigns an id, forces status to Active and appends the record
func (s *Store) AddInternship(data models.Internship) models.Internship {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(s.internships))
	for i, in := range s.internships {
		ids[i] = in.ID
	}
	data.ID = nextID(ids)
	data.Status = models.InternshipActive
	s.internships = append(s.internships, data)
	s.persist(KeyInternships, s.internships)
	return cloneInternship(data)
}

// UpdateInternship replaces the internship with matching id; no-op when unknown
func (s *Store) UpdateInternship(record models.Internship) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, in := range s.internships {
		if in.ID == record.ID {
			s.internships[i] = record
			s.persist(KeyInternships, s.internships)
			return
		}
	}
}

// DeleteInternship removes the internship and cascades: every student
// pointing at it is unassigned first.
func (s *Store) DeleteInternship(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	studentsChanged := false
	for i, st := range s.students {
		if st.InternshipID != nil && *st.InternshipID == id {
			s.students[i].InternshipID = nil
			studentsChanged = true
		}
	}
	if studentsChanged {
		s.persist(KeyStudents, s.students)
	}

	for i, in := range s.internships {
		if in.ID == id {
			s.internships = append(s.internships[:i], s.internships[i+1:]...)
			s.persist(KeyInternships, s.internships)
			return
		}
	}
}

// Internships returns a snapshot of the internship collection
func (s *Store) Internships() []models.Internship {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Internship, len(s.internships))
	for i, in := range s.internships {
		out[i] = cloneInternship(in)
	}
	return out
}

// InternshipByID returns a copy of the internship with the given id
func (s *Store) InternshipByID(id int64) (models.Internship, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, in := range s.internships {
		if in.ID == id {
			return cloneInternship(in), true
		}
	}
	return models.Internship{}, false
}

// GetStudentsForInternship returns the students assigned to the internship,
// preserving collection order. Pure read.
func (s *Store) GetStudentsForInternship(internshipID int64) []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Student{}
	for _, st := range s.students {
		if st.InternshipID != nil && *st.InternshipID == internshipID {
			out = append(out, cloneStudent(st))
		}
	}
	return out
}

// --- CRT sessions ---

// AddCRTSession assigns an id, forces an empty registration set and appends
func (s *Store) AddCRTSession(data models.CRTSession) models.CRTSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(s.crtSessions))
	for i, cs := range s.crtSessions {
		ids[i] = cs.ID
	}
	data.ID = nextID(ids)
	data.RegisteredStudents = []int64{}
	s.crtSessions = append(s.crtSessions, data)
	s.persist(KeyCRTSessions, s.crtSessions)
	return cloneCRTSession(data)
}

// UpdateCRTSession replaces the session with matching id; no-op when unknown
func (s *Store) UpdateCRTSession(record models.CRTSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cs := range s.crtSessions {
		if cs.ID == record.ID {
			s.crtSessions[i] = record
			s.persist(KeyCRTSessions, s.crtSessions)
			return
		}
	}
}

// DeleteCRTSession removes the session. Nothing references sessions, so
// there is no cascade.
func (s *Store) DeleteCRTSession(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cs := range s.crtSessions {
		if cs.ID == id {
			s.crtSessions = append(s.crtSessions[:i], s.crtSessions[i+1:]...)
			s.persist(KeyCRTSessions, s.crtSessions)
			return
		}
	}
}

// RegisterStudentForCRTSession adds the student to the session's
// registration set. Idempotent: registering twice is a no-op, not an error.
func (s *Store) RegisterStudentForCRTSession(studentID, sessionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cs := range s.crtSessions {
		if cs.ID != sessionID {
			continue
		}
		for _, id := range cs.RegisteredStudents {
			if id == studentID {
				return
			}
		}
		s.crtSessions[i].RegisteredStudents = append(cs.RegisteredStudents, studentID)
		s.persist(KeyCRTSessions, s.crtSessions)
		return
	}
}

// UnregisterStudentFromCRTSession removes the student from the session's
// registration set; no-op when not registered or the session is unknown.
func (s *Store) UnregisterStudentFromCRTSession(studentID, sessionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cs := range s.crtSessions {
		if cs.ID != sessionID {
			continue
		}
		for j, id := range cs.RegisteredStudents {
			if id == studentID {
				s.crtSessions[i].RegisteredStudents = append(cs.RegisteredStudents[:j], cs.RegisteredStudents[j+1:]...)
				s.persist(KeyCRTSessions, s.crtSessions)
				return
			}
		}
		return
	}
}

// CRTSessions returns a snapshot of the session collection
func (s *Store) CRTSessions() []models.CRTSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CRTSession, len(s.crtSessions))
	for i, cs := range s.crtSessions {
		out[i] = cloneCRTSession(cs)
	}
	return out
}

// CRTSessionByID returns a copy of the session with the given id
func (s *Store) CRTSessionByID(id int64) (models.CRTSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cs := range s.crtSessions {
		if cs.ID == id {
			return cloneCRTSession(cs), true
		}
	}
	return models.CRTSession{}, false
}

// GetStudentsForCRTSession resolves the session and returns the students in
// its registration set, in collection order. Empty when the session is unknown.
func (s *Store) GetStudentsForCRTSession(sessionID int64) []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	var session *models.CRTSession
	for i := range s.crtSessions {
		if s.crtSessions[i].ID == sessionID {
			session = &s.crtSessions[i]
			break
		}
	}
	if session == nil {
		return []models.Student{}
	}

	registered := make(map[int64]bool, len(session.RegisteredStudents))
	for _, id := range session.RegisteredStudents {
		registered[id] = true
	}

	out := []models.Student{}
	for _, st := range s.students {
		if registered[st.ID] {
			out = append(out, cloneStudent(st))
		}
	}
	return out
}
