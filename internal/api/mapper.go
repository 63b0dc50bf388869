package api

import "github.com/deaduz/eduadmin/internal/domain"

// Mapping between wire DTOs and domain entities.

func pickID(primary, alt string) string {
	if primary != "" {
		return primary
	}
	return alt
}

func mapCourse(d courseDTO) domain.Course {
	return domain.Course{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Duration:     d.Duration,
		Level:        domain.CourseLevel(d.Level),
		PictureURL:   d.Picture,
		Rating:       d.Rating,
		RatingCount:  d.RatingCount,
		TotalLessons: d.TotalLessons,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func mapCourses(dtos []courseDTO) []domain.Course {
	out := make([]domain.Course, len(dtos))
	for i, d := range dtos {
		out[i] = mapCourse(d)
	}
	return out
}

func mapUnit(d unitDTO) domain.Unit {
	return domain.Unit{
		ID:          pickID(d.ID, d.AltID),
		Title:       d.Title,
		Description: d.Description,
		CourseID:    d.CourseID,
		Order:       d.Order,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func mapUnits(dtos []unitDTO) []domain.Unit {
	out := make([]domain.Unit, len(dtos))
	for i, d := range dtos {
		out[i] = mapUnit(d)
	}
	return out
}

func mapSection(d sectionDTO) domain.Section {
	return domain.Section{
		ID:          pickID(d.ID, d.AltID),
		Title:       d.Title,
		Description: d.Description,
		UnitID:      d.UnitID,
		Order:       d.Order,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func mapSections(dtos []sectionDTO) []domain.Section {
	out := make([]domain.Section, len(dtos))
	for i, d := range dtos {
		out[i] = mapSection(d)
	}
	return out
}

func mapLesson(d lessonDTO) domain.Lesson {
	lesson := domain.Lesson{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		SectionID:   d.SectionID,
		Type:        domain.LessonType(d.Type),
		Order:       d.Order,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	switch lesson.Type {
	case domain.LessonVideo:
		lesson.Content = domain.VideoContent{VideoURL: d.VideoURL}
	case domain.LessonText:
		lesson.Content = domain.TextContent{Text: d.TextContent}
	case domain.LessonFile:
		lesson.Content = domain.FileContent{FileURL: d.FileURL, FileName: d.FileName}
	case domain.LessonQuiz:
		lesson.Content = domain.QuizContent{}
	}
	return lesson
}

func mapLessons(dtos []lessonDTO) []domain.Lesson {
	out := make([]domain.Lesson, len(dtos))
	for i, d := range dtos {
		out[i] = mapLesson(d)
	}
	return out
}

func mapQuestion(d questionDTO) domain.QuizQuestion {
	return domain.QuizQuestion{
		ID:                 pickID(d.ID, d.AltID),
		LessonID:           d.LessonID,
		Question:           d.Question,
		Options:            d.Options,
		CorrectOptionIndex: d.CorrectOptionIndex,
		Order:              d.Order,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func mapQuestions(dtos []questionDTO) []domain.QuizQuestion {
	out := make([]domain.QuizQuestion, len(dtos))
	for i, d := range dtos {
		out[i] = mapQuestion(d)
	}
	return out
}

func mapInterest(d interestDTO) domain.Interest {
	return domain.Interest{
		ID:          pickID(d.ID, d.AltID),
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func mapInterests(dtos []interestDTO) []domain.Interest {
	out := make([]domain.Interest, len(dtos))
	for i, d := range dtos {
		out[i] = mapInterest(d)
	}
	return out
}

func mapDashboard(d dashboardDTO) *domain.DashboardStats {
	stats := &domain.DashboardStats{
		TotalUsers:         d.TotalUsers,
		MonthlyActiveUsers: d.MonthlyActiveUsers,
		DailyActiveUsers:   d.DailyActiveUsers,
	}
	for _, a := range d.RecentActivities {
		stats.RecentActivities = append(stats.RecentActivities, domain.RecentActivity{
			UserID:       a.UserID,
			UserName:     a.UserName,
			ActivityType: a.ActivityType,
			LessonTitle:  a.LessonTitle,
			Score:        a.Score,
			CreatedAt:    a.CreatedAt,
		})
	}
	for _, s := range d.CourseStats {
		stats.CourseStats = append(stats.CourseStats, domain.CourseStats{
			CourseID:      s.CourseID,
			Title:         s.Title,
			AverageRating: s.AverageRating,
			TotalRatings:  s.TotalRatings,
			EnrolledUsers: s.EnrolledUsers,
		})
	}
	return stats
}

func mapUser(d userDTO) *domain.User {
	return &domain.User{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Role:      d.Role,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// lessonContentFields flattens a content variant onto the wire fields,
// returning explicit empty strings for the other variants so a type
// change clears them server-side.
func lessonContentFields(content domain.LessonContent) (typ, videoURL, textContent, fileURL, fileName string) {
	typ = string(content.ContentType())
	switch c := content.(type) {
	case domain.VideoContent:
		videoURL = c.VideoURL
	case domain.TextContent:
		textContent = c.Text
	case domain.FileContent:
		fileURL = c.FileURL
		fileName = c.FileName
	}
	return typ, videoURL, textContent, fileURL, fileName
}
