// Package seed holds the demo dataset the portal starts with when the
// durable substrate is empty or unreadable.
package seed

import "github.com/svit/internhub/internal/app/models"

func ref(id int64) *int64 {
	return &id
}

// Students returns the default student collection
func Students() []models.Student {
	return []models.Student{
		{
			ID:             1,
			Name:           "Arun Kumar",
			RegisterNumber: "SVIT2023001",
			Branch:         "Computer Science",
			Year:           3,
			Email:          "arun.kumar@svit.edu.in",
			Phone:          "9876543210",
			InternshipID:   ref(1),
			Progress: []models.ProgressEntry{
				{Date: "2023-09-01", Task: "Requirements Analysis", Status: models.ProgressCompleted, Remarks: "Good work"},
				{Date: "2023-09-15", Task: "UI Design", Status: models.ProgressInProgress, Remarks: "Needs improvement"},
			},
		},
		{
			ID:             2,
			Name:           "Priya Sharma",
			RegisterNumber: "SVIT2023002",
			Branch:         "Information Technology",
			Year:           3,
			Email:          "priya.sharma@svit.edu.in",
			Phone:          "9876543211",
			InternshipID:   ref(2),
			Progress: []models.ProgressEntry{
				{Date: "2023-09-01", Task: "Database Design", Status: models.ProgressCompleted, Remarks: "Excellent work"},
			},
		},
		{
			ID:             3,
			Name:           "Rahul Verma",
			RegisterNumber: "SVIT2023003",
			Branch:         "Electronics",
			Year:           4,
			Email:          "rahul.verma@svit.edu.in",
			Phone:          "9876543212",
			InternshipID:   ref(1),
			Progress:       []models.ProgressEntry{},
		},
		{
			ID:             4,
			Name:           "Sneha Patel",
			RegisterNumber: "SVIT2023004",
			Branch:         "Computer Science",
			Year:           3,
			Email:          "sneha.patel@svit.edu.in",
			Phone:          "9876543213",
			InternshipID:   ref(3),
			Progress:       []models.ProgressEntry{},
		},
		{
			ID:             5,
			Name:           "Karthik Raja",
			RegisterNumber: "SVIT2023005",
			Branch:         "Mechanical",
			Year:           4,
			Email:          "karthik.raja@svit.edu.in",
			Phone:          "9876543214",
			InternshipID:   nil,
			Progress:       []models.ProgressEntry{},
		},
	}
}

// Internships returns the default internship collection
func Internships() []models.Internship {
	return []models.Internship{
		{
			ID:          1,
			Title:       "Web Application Development",
			Description: "Develop a full-stack web application using modern technologies.",
			Duration:    "3 months",
			StartDate:   "2023-09-01",
			EndDate:     "2023-12-01",
			MaxStudents: 10,
			Guide:       "Dr. Srinivas Reddy",
			Skills:      []string{"JavaScript", "React", "Node.js", "MongoDB"},
			Status:      models.InternshipActive,
		},
		{
			ID:          2,
			Title:       "Machine Learning Project",
			Description: "Implement machine learning algorithms for data analysis and prediction.",
			Duration:    "4 months",
			StartDate:   "2023-08-15",
			EndDate:     "2023-12-15",
			MaxStudents: 8,
			Guide:       "Dr. Anitha Krishnan",
			Skills:      []string{"Python", "TensorFlow", "Data Analysis"},
			Status:      models.InternshipActive,
		},
		{
			ID:          3,
			Title:       "Mobile App Development",
			Description: "Create a cross-platform mobile application using React Native.",
			Duration:    "3 months",
			StartDate:   "2023-09-15",
			EndDate:     "2023-12-15",
			MaxStudents: 6,
			Guide:       "Prof. Ramesh Kumar",
			Skills:      []string{"React Native", "JavaScript", "Firebase"},
			Status:      models.InternshipActive,
		},
	}
}

// CRTSessions returns the default CRT session collection
func CRTSessions() []models.CRTSession {
	return []models.CRTSession{
		{
			ID:                 1,
			Title:              "Resume Building Workshop",
			Description:        "Learn how to craft an impressive resume for placement.",
			Date:               "2023-09-10",
			Time:               "10:00 AM - 12:00 PM",
			Venue:              "Seminar Hall 1",
			Speaker:            "Ms. Kavita Sharma",
			Eligibility:        "All final year students",
			RegisteredStudents: []int64{1, 2, 5},
		},
		{
			ID:                 2,
			Title:              "Technical Interview Preparation",
			Description:        "Practice common technical interview questions and algorithms.",
			Date:               "2023-09-17",
			Time:               "2:00 PM - 5:00 PM",
			Venue:              "Computer Lab 3",
			Speaker:            "Mr. Venkat Rao",
			Eligibility:        "CS and IT final year students",
			RegisteredStudents: []int64{1, 3, 4},
		},
		{
			ID:                 3,
			Title:              "Group Discussion Skills",
			Description:        "Enhance your group discussion skills for campus interviews.",
			Date:               "2023-09-24",
			Time:               "11:00 AM - 1:00 PM",
			Venue:              "Seminar Hall 2",
			Speaker:            "Dr. Rajesh Khanna",
			Eligibility:        "All pre-final and final year students",
			RegisteredStudents: []int64{2, 3},
		},
	}
}
