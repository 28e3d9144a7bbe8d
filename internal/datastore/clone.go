package datastore

import "github.com/svit/internhub/internal/app/models"

// Snapshots returned to callers must not alias the store's slices, or a
// caller mutating a returned record would bypass the store's write path.

func cloneStudent(st models.Student) models.Student {
	out := st
	if st.InternshipID != nil {
		id := *st.InternshipID
		out.InternshipID = &id
	}
	out.Progress = make([]models.ProgressEntry, len(st.Progress))
	copy(out.Progress, st.Progress)
	return out
}

func cloneInternship(in models.Internship) models.Internship {
	out := in
	out.Skills = make([]string, len(in.Skills))
	copy(out.Skills, in.Skills)
	return out
}

func cloneCRTSession(cs models.CRTSession) models.CRTSession {
	out := cs
	out.RegisteredStudents = make([]int64, len(cs.RegisteredStudents))
	copy(out.RegisteredStudents, cs.RegisteredStudents)
	return out
}
