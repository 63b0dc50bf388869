package domain

import (
	"context"
)

// CourseRepository provides access to the course collection
type CourseRepository interface {
	// ListCourses returns every course visible to the admin
	ListCourses(ctx context.Context) ([]Course, error)

	// GetCourse returns a single course by id
	GetCourse(ctx context.Context, id string) (*Course, error)

	// CreateCourse creates a course; the picture upload, when present,
	// is carried in a multipart body
	CreateCourse(ctx context.Context, payload CreateCourse) (*Course, error)

	// UpdateCourse applies a partial update to a course
	UpdateCourse(ctx context.Context, id string, payload UpdateCourse) (*Course, error)

	// DeleteCourse deletes a course; the backend cascades to all
	// units, sections, lessons, and questions below it
	DeleteCourse(ctx context.Context, id string) error
}

// UnitRepository provides access to units scoped by course
type UnitRepository interface {
	ListUnits(ctx context.Context, courseID string) ([]Unit, error)
	GetUnit(ctx context.Context, id string) (*Unit, error)
	CreateUnit(ctx context.Context, payload CreateUnit) (*Unit, error)
	UpdateUnit(ctx context.Context, id string, payload UpdateUnit) (*Unit, error)
	DeleteUnit(ctx context.Context, id string) error
}

// SectionRepository provides access to sections scoped by unit
type SectionRepository interface {
	ListSections(ctx context.Context, unitID string) ([]Section, error)
	GetSection(ctx context.Context, id string) (*Section, error)
	CreateSection(ctx context.Context, payload CreateSection) (*Section, error)
	UpdateSection(ctx context.Context, id string, payload UpdateSection) (*Section, error)
	DeleteSection(ctx context.Context, id string) error
}

// LessonRepository provides access to lessons scoped by section
type LessonRepository interface {
	ListLessons(ctx context.Context, sectionID string) ([]Lesson, error)
	GetLesson(ctx context.Context, id string) (*Lesson, error)
	CreateLesson(ctx context.Context, payload CreateLesson) (*Lesson, error)
	UpdateLesson(ctx context.Context, id string, payload UpdateLesson) (*Lesson, error)
	DeleteLesson(ctx context.Context, id string) error
}

// QuestionRepository provides access to quiz questions scoped by lesson
type QuestionRepository interface {
	ListQuestions(ctx context.Context, lessonID string) ([]QuizQuestion, error)
	GetQuestion(ctx context.Context, id string) (*QuizQuestion, error)
	CreateQuestion(ctx context.Context, lessonID string, payload CreateQuestion) (*QuizQuestion, error)

	// BulkCreateQuestions creates several questions in one call and
	// returns them in creation order
	BulkCreateQuestions(ctx context.Context, lessonID string, payloads []CreateQuestion) ([]QuizQuestion, error)

	UpdateQuestion(ctx context.Context, id string, payload UpdateQuestion) (*QuizQuestion, error)
	DeleteQuestion(ctx context.Context, id string) error
}

// InterestRepository provides access to the interest catalog
type InterestRepository interface {
	// ListInterests returns every interest, active or not
	ListInterests(ctx context.Context) ([]Interest, error)

	// ListActiveInterests returns the server-side filtered active set
	ListActiveInterests(ctx context.Context) ([]Interest, error)

	GetInterest(ctx context.Context, id string) (*Interest, error)
	CreateInterest(ctx context.Context, payload CreateInterest) (*Interest, error)
	UpdateInterest(ctx context.Context, id string, payload UpdateInterest) (*Interest, error)
	DeleteInterest(ctx context.Context, id string) error
}

// DashboardRepository provides the admin landing-page summary
type DashboardRepository interface {
	GetDashboard(ctx context.Context) (*DashboardStats, error)
}

// AuthRepository handles credential exchange with the identity service
type AuthRepository interface {
	// Login exchanges credentials for a bearer token and profile
	Login(ctx context.Context, identifier, password string) (string, *User, error)
}

// ContentRepository combines the repositories covering the
// Course → Unit → Section → Lesson → QuizQuestion hierarchy.
type ContentRepository interface {
	CourseRepository
	UnitRepository
	SectionRepository
	LessonRepository
	QuestionRepository
}
