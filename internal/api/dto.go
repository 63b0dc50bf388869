package api

// Wire shapes for the platform REST API. The backend emits Mongo-style
// `_id` fields; some collections also mirror the value under `id`, so
// DTOs carry both and the mapper prefers `_id`.

type courseDTO struct {
	ID           string  `json:"_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Duration     string  `json:"duration"`
	Level        string  `json:"level"`
	Picture      string  `json:"picture"`
	Rating       float64 `json:"rating"`
	RatingCount  int     `json:"ratingCount"`
	TotalLessons int     `json:"totalLessons"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type unitDTO struct {
	ID          string `json:"_id"`
	AltID       string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CourseID    string `json:"courseId"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type sectionDTO struct {
	ID          string `json:"_id"`
	AltID       string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UnitID      string `json:"unitId"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type lessonDTO struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SectionID   string `json:"sectionId"`
	Type        string `json:"type"`
	Order       int    `json:"order"`
	VideoURL    string `json:"videoUrl"`
	TextContent string `json:"textContent"`
	FileURL     string `json:"fileUrl"`
	FileName    string `json:"fileName"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type questionDTO struct {
	ID                 string   `json:"_id"`
	AltID              string   `json:"id"`
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	LessonID           string   `json:"lessonId"`
	Order              int      `json:"order"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

type interestDTO struct {
	ID          string `json:"_id"`
	AltID       string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type dashboardDTO struct {
	TotalUsers         int                 `json:"totalUsers"`
	MonthlyActiveUsers int                 `json:"monthlyActiveUsers"`
	DailyActiveUsers   int                 `json:"dailyActiveUsers"`
	RecentActivities   []recentActivityDTO `json:"recentActivities"`
	CourseStats        []courseStatsDTO    `json:"courseStats"`
}

type recentActivityDTO struct {
	UserID       string  `json:"userId"`
	UserName     string  `json:"userName"`
	ActivityType string  `json:"activityType"`
	LessonTitle  string  `json:"lessonTitle"`
	Score        float64 `json:"score"`
	CreatedAt    string  `json:"createdAt"`
}

type courseStatsDTO struct {
	CourseID      string  `json:"courseId"`
	Title         string  `json:"title"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
	EnrolledUsers int     `json:"enrolledUsers"`
}

// --- Request bodies ---

type createUnitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CourseID    string `json:"courseId"`
	Order       int    `json:"order"`
}

type updateUnitRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

type createSectionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	UnitID      string `json:"unitId"`
	Order       int    `json:"order"`
}

type updateSectionRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

type createLessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	SectionID   string `json:"sectionId"`
	Type        string `json:"type"`
	Order       int    `json:"order"`
	VideoURL    string `json:"videoUrl,omitempty"`
	TextContent string `json:"textContent,omitempty"`
	FileURL     string `json:"fileUrl,omitempty"`
	FileName    string `json:"fileName,omitempty"`
}

// updateLessonRequest carries content fields as pointers: when the
// lesson type changes, every content field is sent explicitly so the
// old type's values are cleared server-side rather than retained.
type updateLessonRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Order       *int    `json:"order,omitempty"`
	Type        *string `json:"type,omitempty"`
	VideoURL    *string `json:"videoUrl,omitempty"`
	TextContent *string `json:"textContent,omitempty"`
	FileURL     *string `json:"fileUrl,omitempty"`
	FileName    *string `json:"fileName,omitempty"`
}

type createQuestionRequest struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Order              int      `json:"order"`
}

type bulkCreateQuestionsRequest struct {
	Questions []createQuestionRequest `json:"questions"`
}

type bulkCreateQuestionsResponse struct {
	Message      string        `json:"message"`
	CreatedCount int           `json:"createdCount"`
	Questions    []questionDTO `json:"questions"`
}

type updateQuestionRequest struct {
	Question           *string  `json:"question,omitempty"`
	Options            []string `json:"options,omitempty"`
	CorrectOptionIndex *int     `json:"correctOptionIndex,omitempty"`
	Order              *int     `json:"order,omitempty"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	AccessToken string  `json:"access_token"`
	User        userDTO `json:"user"`
}

type userDTO struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
