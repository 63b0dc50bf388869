package content

import (
	"context"

	"github.com/deaduz/eduadmin/internal/cache"
	"github.com/deaduz/eduadmin/internal/domain"
)

// Every command validates locally first; a payload that fails
// validation never reaches the backend. After a successful call the
// command marks the affected collections stale synchronously, so no
// later read can serve the pre-mutation value as fresh.

// CreateCourse creates a course and stales the course collection.
func (s *Service) CreateCourse(ctx context.Context, payload domain.CreateCourse) (*domain.Course, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	course, err := s.repo.CreateCourse(ctx, payload)
	if err != nil {
		s.logger.Error("create course failed", "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindCourses, cache.Scope{})
	s.cache.Invalidate(cache.KindDashboard, cache.Scope{})
	s.logger.Debug("course created", "id", course.ID)
	return course, nil
}

// UpdateCourse applies a partial update to a course.
func (s *Service) UpdateCourse(ctx context.Context, id string, payload domain.UpdateCourse) (*domain.Course, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	course, err := s.repo.UpdateCourse(ctx, id, payload)
	if err != nil {
		s.logger.Error("update course failed", "id", id, "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindCourses, cache.Scope{})
	s.cache.Invalidate(cache.KindDashboard, cache.Scope{})
	return course, nil
}

// DeleteCourse deletes a course. The backend cascades the delete, so
// every cached collection under the course is staled in the same pass.
func (s *Service) DeleteCourse(ctx context.Context, id string) error {
	if err := s.repo.DeleteCourse(ctx, id); err != nil {
		s.logger.Error("delete course failed", "id", id, "error", err)
		return err
	}
	s.cache.Invalidate(cache.KindCourses, cache.Scope{})
	s.cache.Invalidate(cache.KindDashboard, cache.Scope{})
	s.cache.InvalidateTree(cache.Scope{CourseID: id})
	s.logger.Debug("course deleted", "id", id)
	return nil
}

// CreateUnit creates a unit inside the course named by the payload.
func (s *Service) CreateUnit(ctx context.Context, payload domain.CreateUnit) (*domain.Unit, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	unit, err := s.repo.CreateUnit(ctx, payload)
	if err != nil {
		s.logger.Error("create unit failed", "courseId", payload.CourseID, "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindUnits, cache.Scope{CourseID: unit.CourseID})
	s.logger.Debug("unit created", "id", unit.ID, "courseId", unit.CourseID)
	return unit, nil
}

// UpdateUnit applies a partial update to a unit.
func (s *Service) UpdateUnit(ctx context.Context, id string, payload domain.UpdateUnit) (*domain.Unit, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	unit, err := s.repo.UpdateUnit(ctx, id, payload)
	if err != nil {
		s.logger.Error("update unit failed", "id", id, "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindUnits, cache.Scope{CourseID: unit.CourseID})
	return unit, nil
}

// DeleteUnit deletes a unit and stales everything below it.
func (s *Service) DeleteUnit(ctx context.Context, courseID, id string) error {
	if err := s.repo.DeleteUnit(ctx, id); err != nil {
		s.logger.Error("delete unit failed", "id", id, "error", err)
		return err
	}
	s.cache.Invalidate(cache.KindUnits, cache.Scope{CourseID: courseID})
	s.cache.InvalidateTree(cache.Scope{UnitID: id})
	s.logger.Debug("unit deleted", "id", id, "courseId", courseID)
	return nil
}

// CreateSection creates a section. The courseID places the staled
// collection in the hierarchy; the backend only needs the unit id.
func (s *Service) CreateSection(ctx context.Context, courseID string, payload domain.CreateSection) (*domain.Section, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	section, err := s.repo.CreateSection(ctx, payload)
	if err != nil {
		s.logger.Error("create section failed", "unitId", payload.UnitID, "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindSections, cache.Scope{CourseID: courseID, UnitID: section.UnitID})
	s.logger.Debug("section created", "id", section.ID, "unitId", section.UnitID)
	return section, nil
}

// UpdateSection applies a partial update to a section.
func (s *Service) UpdateSection(ctx context.Context, courseID, id string, payload domain.UpdateSection) (*domain.Section, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	section, err := s.repo.UpdateSection(ctx, id, payload)
	if err != nil {
		s.logger.Error("update section failed", "id", id, "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindSections, cache.Scope{CourseID: courseID, UnitID: section.UnitID})
	return section, nil
}

// DeleteSection deletes a section and stales everything below it.
func (s *Service) DeleteSection(ctx context.Context, courseID, unitID, id string) error {
	if err := s.repo.DeleteSection(ctx, id); err != nil {
		s.logger.Error("delete section failed", "id", id, "error", err)
		return err
	}
	s.cache.Invalidate(cache.KindSections, cache.Scope{CourseID: courseID, UnitID: unitID})
	s.cache.InvalidateTree(cache.Scope{SectionID: id})
	s.logger.Debug("section deleted", "id", id, "unitId", unitID)
	return nil
}

// CreateLesson creates a lesson. Course cards show a lesson count, so
// the course collection is staled along with the section's lessons.
func (s *Service) CreateLesson(ctx context.Context, courseID, unitID string, payload domain.CreateLesson) (*domain.Lesson, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	lesson, err := s.repo.CreateLesson(ctx, payload)
	if err != nil {
		s.logger.Error("create lesson failed", "sectionId", payload.SectionID, "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindLessons, cache.Scope{CourseID: courseID, UnitID: unitID, SectionID: lesson.SectionID})
	s.cache.Invalidate(cache.KindCourses, cache.Scope{})
	s.logger.Debug("lesson created", "id", lesson.ID, "sectionId", lesson.SectionID, "type", lesson.Type)
	return lesson, nil
}

// UpdateLesson applies a partial update to a lesson. Changing the
// content replaces the lesson type wholesale.
func (s *Service) UpdateLesson(ctx context.Context, courseID, unitID, id string, payload domain.UpdateLesson) (*domain.Lesson, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	lesson, err := s.repo.UpdateLesson(ctx, id, payload)
	if err != nil {
		s.logger.Error("update lesson failed", "id", id, "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindLessons, cache.Scope{CourseID: courseID, UnitID: unitID, SectionID: lesson.SectionID})
	return lesson, nil
}

// DeleteLesson deletes a lesson and stales its question collection.
func (s *Service) DeleteLesson(ctx context.Context, courseID, unitID, sectionID, id string) error {
	if err := s.repo.DeleteLesson(ctx, id); err != nil {
		s.logger.Error("delete lesson failed", "id", id, "error", err)
		return err
	}
	s.cache.Invalidate(cache.KindLessons, cache.Scope{CourseID: courseID, UnitID: unitID, SectionID: sectionID})
	s.cache.Invalidate(cache.KindCourses, cache.Scope{})
	s.cache.InvalidateTree(cache.Scope{LessonID: id})
	s.logger.Debug("lesson deleted", "id", id, "sectionId", sectionID)
	return nil
}

// CreateQuestion creates a single quiz question on a lesson.
func (s *Service) CreateQuestion(ctx context.Context, scope cache.Scope, payload domain.CreateQuestion) (*domain.QuizQuestion, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	q, err := s.repo.CreateQuestion(ctx, scope.LessonID, payload)
	if err != nil {
		s.logger.Error("create question failed", "lessonId", scope.LessonID, "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindQuestions, scope)
	s.logger.Debug("question created", "id", q.ID, "lessonId", scope.LessonID)
	return q, nil
}

// BulkCreateQuestions creates several questions in one backend call.
// Either every payload validates or nothing is sent.
func (s *Service) BulkCreateQuestions(ctx context.Context, scope cache.Scope, payloads []domain.CreateQuestion) ([]domain.QuizQuestion, error) {
	for i := range payloads {
		if err := payloads[i].Validate(); err != nil {
			return nil, err
		}
	}
	qs, err := s.repo.BulkCreateQuestions(ctx, scope.LessonID, payloads)
	if err != nil {
		s.logger.Error("bulk create questions failed", "lessonId", scope.LessonID, "count", len(payloads), "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindQuestions, scope)
	s.logger.Debug("questions created", "lessonId", scope.LessonID, "count", len(qs))
	return qs, nil
}

// UpdateQuestion applies a partial update to a question.
func (s *Service) UpdateQuestion(ctx context.Context, scope cache.Scope, id string, payload domain.UpdateQuestion) (*domain.QuizQuestion, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	q, err := s.repo.UpdateQuestion(ctx, id, payload)
	if err != nil {
		s.logger.Error("update question failed", "id", id, "error", err)
		return nil, err
	}
	s.cache.Invalidate(cache.KindQuestions, scope)
	return q, nil
}

// DeleteQuestion deletes a question. Questions are leaves; only their
// own collection is staled.
func (s *Service) DeleteQuestion(ctx context.Context, scope cache.Scope, id string) error {
	if err := s.repo.DeleteQuestion(ctx, id); err != nil {
		s.logger.Error("delete question failed", "id", id, "error", err)
		return err
	}
	s.cache.Invalidate(cache.KindQuestions, scope)
	s.logger.Debug("question deleted", "id", id, "lessonId", scope.LessonID)
	return nil
}
