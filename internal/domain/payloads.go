package domain

import "io"

// Upload is a binary asset attached to a multipart payload.
type Upload struct {
	Filename string
	Content  io.Reader
}

// LessonContent is the type-specific payload of a lesson. Each variant
// carries only the fields meaningful for its lesson type, so a payload
// can never mix fields from two types. When a lesson's type changes the
// previous variant's fields are encoded as cleared, not retained.
type LessonContent interface {
	ContentType() LessonType
}

// VideoContent is the payload for Video lessons.
type VideoContent struct {
	VideoURL string
}

func (VideoContent) ContentType() LessonType { return LessonVideo }

// TextContent is the payload for Text lessons.
type TextContent struct {
	Text string
}

func (TextContent) ContentType() LessonType { return LessonText }

// FileContent is the payload for File lessons.
type FileContent struct {
	FileURL  string
	FileName string
}

func (FileContent) ContentType() LessonType { return LessonFile }

// QuizContent is the payload for Quiz lessons. The questions themselves
// live in their own collection under the lesson.
type QuizContent struct{}

func (QuizContent) ContentType() LessonType { return LessonQuiz }

// IconRef names an interest icon: either a binary upload or a symbolic
// reference (a known icon name or an absolute asset URL). Exactly one
// of the two must be set.
type IconRef struct {
	Symbol string
	Upload *Upload
}

// CreateCourse is the payload for creating a course. Picture is
// optional; when present the request is encoded as multipart.
type CreateCourse struct {
	Title       string
	Description string
	Duration    string
	Level       CourseLevel
	Picture     *Upload
}

// UpdateCourse is a partial course update; nil fields are left as-is.
type UpdateCourse struct {
	Title       *string
	Description *string
	Duration    *string
	Level       *CourseLevel
	Picture     *Upload
}

// CreateUnit is the payload for creating a unit under a course.
type CreateUnit struct {
	Title       string
	Description string
	CourseID    string
	Order       int
}

// UpdateUnit is a partial unit update.
type UpdateUnit struct {
	Title       *string
	Description *string
	Order       *int
}

// CreateSection is the payload for creating a section under a unit.
type CreateSection struct {
	Title       string
	Description string
	UnitID      string
	Order       int
}

// UpdateSection is a partial section update.
type UpdateSection struct {
	Title       *string
	Description *string
	Order       *int
}

// CreateLesson is the payload for creating a lesson under a section.
// Content must match a valid lesson type.
type CreateLesson struct {
	Title       string
	Description string
	SectionID   string
	Order       int
	Content     LessonContent
}

// UpdateLesson is a partial lesson update. A non-nil Content switches
// the lesson to the content's type and clears the old type's fields.
type UpdateLesson struct {
	Title       *string
	Description *string
	Order       *int
	Content     LessonContent
}

// CreateQuestion is the payload for adding a quiz question to a lesson.
type CreateQuestion struct {
	Question           string
	Options            []string
	CorrectOptionIndex int
	Order              int
}

// UpdateQuestion is a partial question update. Options and
// CorrectOptionIndex must be updated together so the index can be
// checked against the option count.
type UpdateQuestion struct {
	Question           *string
	Options            []string
	CorrectOptionIndex *int
	Order              *int
}

// CreateInterest is the payload for creating an interest tag.
type CreateInterest struct {
	Name        string
	Description string
	Icon        IconRef
	IsActive    bool
}

// UpdateInterest is a partial interest update.
type UpdateInterest struct {
	Name        *string
	Description *string
	Icon        *IconRef
	IsActive    *bool
}
