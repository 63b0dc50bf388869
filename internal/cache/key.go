package cache

import "strings"

// Kind names a cached collection type.
type Kind string

const (
	KindCourses         Kind = "courses"
	KindUnits           Kind = "units"
	KindSections        Kind = "sections"
	KindLessons         Kind = "lessons"
	KindQuestions       Kind = "questions"
	KindInterests       Kind = "interests"
	KindActiveInterests Kind = "activeInterests"
	KindDashboard       Kind = "dashboard"
)

// Scope is the ancestry of parent ids that partitions a collection.
// Keys carry the full ancestry down to their level so that deleting an
// ancestor can invalidate every descendant scope by field match, the
// same way hierarchical store keys cascade by prefix.
type Scope struct {
	CourseID  string
	UnitID    string
	SectionID string
	LessonID  string
}

// Matches reports whether every non-empty field of the selector equals
// the corresponding field of s. A selector naming only UnitID matches
// all scopes under that unit regardless of depth.
func (sel Scope) Matches(s Scope) bool {
	if sel.CourseID != "" && sel.CourseID != s.CourseID {
		return false
	}
	if sel.UnitID != "" && sel.UnitID != s.UnitID {
		return false
	}
	if sel.SectionID != "" && sel.SectionID != s.SectionID {
		return false
	}
	if sel.LessonID != "" && sel.LessonID != s.LessonID {
		return false
	}
	return true
}

// Key addresses one cached collection. Keys are comparable values;
// two keys built from the same kind and ancestry are equal.
type Key struct {
	Kind  Kind
	Scope Scope
}

// String renders a stable identity used for in-flight coalescing.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(string(k.Kind))
	if k.Scope.CourseID != "" {
		b.WriteString(":course=")
		b.WriteString(k.Scope.CourseID)
	}
	if k.Scope.UnitID != "" {
		b.WriteString(":unit=")
		b.WriteString(k.Scope.UnitID)
	}
	if k.Scope.SectionID != "" {
		b.WriteString(":section=")
		b.WriteString(k.Scope.SectionID)
	}
	if k.Scope.LessonID != "" {
		b.WriteString(":lesson=")
		b.WriteString(k.Scope.LessonID)
	}
	return b.String()
}

// CoursesKey addresses the top-level course collection.
func CoursesKey() Key { return Key{Kind: KindCourses} }

// UnitsKey addresses a course's unit collection.
func UnitsKey(courseID string) Key {
	return Key{Kind: KindUnits, Scope: Scope{CourseID: courseID}}
}

// SectionsKey addresses a unit's section collection.
func SectionsKey(courseID, unitID string) Key {
	return Key{Kind: KindSections, Scope: Scope{CourseID: courseID, UnitID: unitID}}
}

// LessonsKey addresses a section's lesson collection.
func LessonsKey(courseID, unitID, sectionID string) Key {
	return Key{Kind: KindLessons, Scope: Scope{CourseID: courseID, UnitID: unitID, SectionID: sectionID}}
}

// QuestionsKey addresses a lesson's question collection.
func QuestionsKey(courseID, unitID, sectionID, lessonID string) Key {
	return Key{Kind: KindQuestions, Scope: Scope{CourseID: courseID, UnitID: unitID, SectionID: sectionID, LessonID: lessonID}}
}

// InterestsKey addresses the full interest catalog.
func InterestsKey() Key { return Key{Kind: KindInterests} }

// ActiveInterestsKey addresses the server-filtered active projection.
func ActiveInterestsKey() Key { return Key{Kind: KindActiveInterests} }

// DashboardKey addresses the admin dashboard summary.
func DashboardKey() Key { return Key{Kind: KindDashboard} }
