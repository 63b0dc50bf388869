package domain

// CourseLevel is the difficulty rating shown on a course card.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// Valid reports whether the level is one of the known values.
func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// LessonType distinguishes how a lesson's content is delivered.
type LessonType string

const (
	LessonVideo LessonType = "Video"
	LessonText  LessonType = "Text"
	LessonQuiz  LessonType = "Quiz"
	LessonFile  LessonType = "File"
)

// Valid reports whether the lesson type is one of the known values.
func (t LessonType) Valid() bool {
	switch t {
	case LessonVideo, LessonText, LessonQuiz, LessonFile:
		return true
	}
	return false
}

// Course is the root of the content hierarchy.
type Course struct {
	ID           string      // Backend-assigned identifier
	Title        string      // Display title
	Description  string      // Course summary
	Duration     string      // Human-readable total duration (e.g. "10h")
	Level        CourseLevel // Difficulty rating
	PictureURL   string      // Uploaded cover image URL
	Rating       float64     // Average user rating (0-5)
	RatingCount  int         // Number of ratings received
	TotalLessons int         // Lesson count across all units
	CreatedAt    string      // RFC 3339 timestamp from the backend
	UpdatedAt    string
}

// Unit groups sections within a course. Order is a display sort key;
// the backend does not enforce uniqueness.
type Unit struct {
	ID          string
	Title       string
	Description string
	CourseID    string // Parent course
	Order       int    // Positive display position
	CreatedAt   string
	UpdatedAt   string
}

// Section groups lessons within a unit.
type Section struct {
	ID          string
	Title       string
	Description string
	UnitID      string // Parent unit
	Order       int
	CreatedAt   string
	UpdatedAt   string
}

// Lesson is a leaf content item. Exactly one content variant is
// meaningful for its type; Content carries that variant.
type Lesson struct {
	ID          string
	Title       string
	Description string
	SectionID   string // Parent section
	Type        LessonType
	Order       int
	Content     LessonContent
	CreatedAt   string
	UpdatedAt   string
}

// QuizQuestion belongs to a Quiz-type lesson.
type QuizQuestion struct {
	ID                 string
	LessonID           string // Parent lesson
	Question           string
	Options            []string // Ordered answer choices, 2-6 entries
	CorrectOptionIndex int      // 0-based index into Options
	Order              int
	CreatedAt          string
	UpdatedAt          string
}

// Interest is a flat catalog tag users pick during onboarding.
// Icon is either an uploaded asset URL or a symbolic name from the
// closed icon set; the presentation layer resolves it.
type Interest struct {
	ID          string
	Name        string
	Description string
	Icon        string
	IsActive    bool
	CreatedAt   string
	UpdatedAt   string
}

// User is the authenticated staff profile returned at login.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalUsers         int
	MonthlyActiveUsers int
	DailyActiveUsers   int
	RecentActivities   []RecentActivity
	CourseStats        []CourseStats
}

// RecentActivity is a single row in the dashboard activity feed.
type RecentActivity struct {
	UserID       string
	UserName     string
	ActivityType string
	LessonTitle  string
	Score        float64
	CreatedAt    string
}

// CourseStats summarizes per-course engagement for the dashboard.
type CourseStats struct {
	CourseID      string
	Title         string
	AverageRating float64
	TotalRatings  int
	EnrolledUsers int
}
