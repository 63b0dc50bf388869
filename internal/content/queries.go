package content

import (
	"context"

	"github.com/deaduz/eduadmin/internal/cache"
	"github.com/deaduz/eduadmin/internal/domain"
)

// Collection reads take the full ancestry of parent ids even where the
// backend route only needs the direct parent. The extra ids give each
// cache key its position in the hierarchy, which is what lets a cascade
// delete invalidate every descendant collection without knowing its id.

// Courses returns the course collection, fetching on first use.
func (s *Service) Courses(ctx context.Context) ([]domain.Course, error) {
	return cache.Load(ctx, s.cache, cache.CoursesKey(), func(ctx context.Context) ([]domain.Course, error) {
		return s.repo.ListCourses(ctx)
	})
}

// Course returns a single course by id. Detail reads are not cached;
// the collection read is the hot path and detail views are rare.
func (s *Service) Course(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.GetCourse(ctx, id)
}

// Units returns the units of a course.
func (s *Service) Units(ctx context.Context, courseID string) ([]domain.Unit, error) {
	return cache.Load(ctx, s.cache, cache.UnitsKey(courseID), func(ctx context.Context) ([]domain.Unit, error) {
		return s.repo.ListUnits(ctx, courseID)
	})
}

// Sections returns the sections of a unit.
func (s *Service) Sections(ctx context.Context, courseID, unitID string) ([]domain.Section, error) {
	return cache.Load(ctx, s.cache, cache.SectionsKey(courseID, unitID), func(ctx context.Context) ([]domain.Section, error) {
		return s.repo.ListSections(ctx, unitID)
	})
}

// Lessons returns the lessons of a section.
func (s *Service) Lessons(ctx context.Context, courseID, unitID, sectionID string) ([]domain.Lesson, error) {
	return cache.Load(ctx, s.cache, cache.LessonsKey(courseID, unitID, sectionID), func(ctx context.Context) ([]domain.Lesson, error) {
		return s.repo.ListLessons(ctx, sectionID)
	})
}

// Lesson returns a single lesson by id.
func (s *Service) Lesson(ctx context.Context, id string) (*domain.Lesson, error) {
	return s.repo.GetLesson(ctx, id)
}

// Questions returns the quiz questions of a lesson.
func (s *Service) Questions(ctx context.Context, courseID, unitID, sectionID, lessonID string) ([]domain.QuizQuestion, error) {
	return cache.Load(ctx, s.cache, cache.QuestionsKey(courseID, unitID, sectionID, lessonID), func(ctx context.Context) ([]domain.QuizQuestion, error) {
		return s.repo.ListQuestions(ctx, lessonID)
	})
}

// Dashboard returns the admin landing-page summary. Content mutations
// that change the stats it aggregates stale this key.
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return cache.Load(ctx, s.cache, cache.DashboardKey(), func(ctx context.Context) (*domain.DashboardStats, error) {
		return s.repo.GetDashboard(ctx)
	})
}

// NextUnitOrder returns the order value a new unit at the end of the
// course should take: one past the current maximum.
func (s *Service) NextUnitOrder(ctx context.Context, courseID string) (int, error) {
	units, err := s.Units(ctx, courseID)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, u := range units {
		if u.Order > max {
			max = u.Order
		}
	}
	return max + 1, nil
}

// NextSectionOrder returns the next free order position in a unit.
func (s *Service) NextSectionOrder(ctx context.Context, courseID, unitID string) (int, error) {
	sections, err := s.Sections(ctx, courseID, unitID)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, sec := range sections {
		if sec.Order > max {
			max = sec.Order
		}
	}
	return max + 1, nil
}

// NextLessonOrder returns the next free order position in a section.
func (s *Service) NextLessonOrder(ctx context.Context, courseID, unitID, sectionID string) (int, error) {
	lessons, err := s.Lessons(ctx, courseID, unitID, sectionID)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, l := range lessons {
		if l.Order > max {
			max = l.Order
		}
	}
	return max + 1, nil
}
