package content

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/deaduz/eduadmin/internal/cache"
	"github.com/deaduz/eduadmin/internal/domain"
	"github.com/deaduz/eduadmin/internal/log"
)

// fakeRepo is an in-memory backend. It counts list calls so tests can
// assert when the cache fetched versus served a stored value, and it
// cascades deletes the way the real backend does.
type fakeRepo struct {
	courses   map[string]domain.Course
	units     map[string]domain.Unit
	sections  map[string]domain.Section
	lessons   map[string]domain.Lesson
	questions map[string]domain.QuizQuestion

	nextID    int
	listCalls map[string]int
	mutations int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		courses:   make(map[string]domain.Course),
		units:     make(map[string]domain.Unit),
		sections:  make(map[string]domain.Section),
		lessons:   make(map[string]domain.Lesson),
		questions: make(map[string]domain.QuizQuestion),
		listCalls: make(map[string]int),
	}
}

func (f *fakeRepo) id() string {
	f.nextID++
	return fmt.Sprintf("id%d", f.nextID)
}

func (f *fakeRepo) ListCourses(ctx context.Context) ([]domain.Course, error) {
	f.listCalls["courses"]++
	out := make([]domain.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f *fakeRepo) CreateCourse(ctx context.Context, p domain.CreateCourse) (*domain.Course, error) {
	f.mutations++
	c := domain.Course{ID: f.id(), Title: p.Title, Description: p.Description, Duration: p.Duration, Level: p.Level}
	f.courses[c.ID] = c
	return &c, nil
}

func (f *fakeRepo) UpdateCourse(ctx context.Context, id string, p domain.UpdateCourse) (*domain.Course, error) {
	f.mutations++
	c, ok := f.courses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	f.courses[id] = c
	return &c, nil
}

func (f *fakeRepo) DeleteCourse(ctx context.Context, id string) error {
	f.mutations++
	delete(f.courses, id)
	for uid, u := range f.units {
		if u.CourseID == id {
			f.DeleteUnit(ctx, uid)
		}
	}
	return nil
}

func (f *fakeRepo) ListUnits(ctx context.Context, courseID string) ([]domain.Unit, error) {
	f.listCalls["units:"+courseID]++
	var out []domain.Unit
	for _, u := range f.units {
		if u.CourseID == courseID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetUnit(ctx context.Context, id string) (*domain.Unit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (f *fakeRepo) CreateUnit(ctx context.Context, p domain.CreateUnit) (*domain.Unit, error) {
	f.mutations++
	u := domain.Unit{ID: f.id(), Title: p.Title, Description: p.Description, CourseID: p.CourseID, Order: p.Order}
	f.units[u.ID] = u
	return &u, nil
}

func (f *fakeRepo) UpdateUnit(ctx context.Context, id string, p domain.UpdateUnit) (*domain.Unit, error) {
	f.mutations++
	u, ok := f.units[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Title != nil {
		u.Title = *p.Title
	}
	if p.Order != nil {
		u.Order = *p.Order
	}
	f.units[id] = u
	return &u, nil
}

func (f *fakeRepo) DeleteUnit(ctx context.Context, id string) error {
	f.mutations++
	delete(f.units, id)
	for sid, sec := range f.sections {
		if sec.UnitID == id {
			f.DeleteSection(ctx, sid)
		}
	}
	return nil
}

func (f *fakeRepo) ListSections(ctx context.Context, unitID string) ([]domain.Section, error) {
	f.listCalls["sections:"+unitID]++
	var out []domain.Section
	for _, sec := range f.sections {
		if sec.UnitID == unitID {
			out = append(out, sec)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetSection(ctx context.Context, id string) (*domain.Section, error) {
	sec, ok := f.sections[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &sec, nil
}

func (f *fakeRepo) CreateSection(ctx context.Context, p domain.CreateSection) (*domain.Section, error) {
	f.mutations++
	sec := domain.Section{ID: f.id(), Title: p.Title, UnitID: p.UnitID, Order: p.Order}
	f.sections[sec.ID] = sec
	return &sec, nil
}

func (f *fakeRepo) UpdateSection(ctx context.Context, id string, p domain.UpdateSection) (*domain.Section, error) {
	f.mutations++
	sec, ok := f.sections[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Title != nil {
		sec.Title = *p.Title
	}
	f.sections[id] = sec
	return &sec, nil
}

func (f *fakeRepo) DeleteSection(ctx context.Context, id string) error {
	f.mutations++
	delete(f.sections, id)
	for lid, l := range f.lessons {
		if l.SectionID == id {
			f.DeleteLesson(ctx, lid)
		}
	}
	return nil
}

func (f *fakeRepo) ListLessons(ctx context.Context, sectionID string) ([]domain.Lesson, error) {
	f.listCalls["lessons:"+sectionID]++
	var out []domain.Lesson
	for _, l := range f.lessons {
		if l.SectionID == sectionID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetLesson(ctx context.Context, id string) (*domain.Lesson, error) {
	l, ok := f.lessons[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (f *fakeRepo) CreateLesson(ctx context.Context, p domain.CreateLesson) (*domain.Lesson, error) {
	f.mutations++
	l := domain.Lesson{
		ID: f.id(), Title: p.Title, SectionID: p.SectionID,
		Type: p.Content.ContentType(), Order: p.Order, Content: p.Content,
	}
	f.lessons[l.ID] = l
	return &l, nil
}

func (f *fakeRepo) UpdateLesson(ctx context.Context, id string, p domain.UpdateLesson) (*domain.Lesson, error) {
	f.mutations++
	l, ok := f.lessons[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Content != nil {
		l.Type = p.Content.ContentType()
		l.Content = p.Content
	}
	f.lessons[id] = l
	return &l, nil
}

func (f *fakeRepo) DeleteLesson(ctx context.Context, id string) error {
	f.mutations++
	delete(f.lessons, id)
	for qid, q := range f.questions {
		if q.LessonID == id {
			delete(f.questions, qid)
		}
	}
	return nil
}

func (f *fakeRepo) ListQuestions(ctx context.Context, lessonID string) ([]domain.QuizQuestion, error) {
	f.listCalls["questions:"+lessonID]++
	var out []domain.QuizQuestion
	for _, q := range f.questions {
		if q.LessonID == lessonID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetQuestion(ctx context.Context, id string) (*domain.QuizQuestion, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &q, nil
}

func (f *fakeRepo) CreateQuestion(ctx context.Context, lessonID string, p domain.CreateQuestion) (*domain.QuizQuestion, error) {
	f.mutations++
	q := domain.QuizQuestion{
		ID: f.id(), LessonID: lessonID, Question: p.Question,
		Options: p.Options, CorrectOptionIndex: p.CorrectOptionIndex, Order: p.Order,
	}
	f.questions[q.ID] = q
	return &q, nil
}

func (f *fakeRepo) BulkCreateQuestions(ctx context.Context, lessonID string, ps []domain.CreateQuestion) ([]domain.QuizQuestion, error) {
	var out []domain.QuizQuestion
	for _, p := range ps {
		q, err := f.CreateQuestion(ctx, lessonID, p)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	return out, nil
}

func (f *fakeRepo) UpdateQuestion(ctx context.Context, id string, p domain.UpdateQuestion) (*domain.QuizQuestion, error) {
	f.mutations++
	q, ok := f.questions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Question != nil {
		q.Question = *p.Question
	}
	if p.Options != nil {
		q.Options = p.Options
		q.CorrectOptionIndex = *p.CorrectOptionIndex
	}
	f.questions[id] = q
	return &q, nil
}

func (f *fakeRepo) DeleteQuestion(ctx context.Context, id string) error {
	f.mutations++
	delete(f.questions, id)
	return nil
}

func (f *fakeRepo) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	f.listCalls["dashboard"]++
	return &domain.DashboardStats{TotalUsers: 42}, nil
}

func newTestService(t *testing.T) (*Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	return NewService(repo, cache.New(log.NullLogger()), log.NullLogger()), repo
}

func TestUnitsCachedAcrossReads(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	u, err := svc.CreateUnit(ctx, domain.CreateUnit{Title: "Grammar", CourseID: "c1", Order: 1})
	if err != nil {
		t.Fatalf("CreateUnit: %v", err)
	}

	for i := 0; i < 3; i++ {
		units, err := svc.Units(ctx, "c1")
		if err != nil {
			t.Fatalf("Units: %v", err)
		}
		if len(units) != 1 || units[0].ID != u.ID {
			t.Fatalf("units = %+v", units)
		}
	}
	if got := repo.listCalls["units:c1"]; got != 1 {
		t.Fatalf("backend hit %d times for cached collection", got)
	}
}

func TestCreateUnitRefreshesCourseUnits(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Units(ctx, "c1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateUnit(ctx, domain.CreateUnit{Title: "Grammar", CourseID: "c1", Order: 1}); err != nil {
		t.Fatalf("CreateUnit: %v", err)
	}

	units, err := svc.Units(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 1 {
		t.Fatalf("new unit not visible after create: %+v", units)
	}
	if got := repo.listCalls["units:c1"]; got != 2 {
		t.Fatalf("list calls = %d, want refetch after mutation", got)
	}

	// Appending at the next free position is visible in the refetched
	// collection's max order.
	next, err := svc.NextUnitOrder(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateUnit(ctx, domain.CreateUnit{Title: "Vocabulary", CourseID: "c1", Order: next}); err != nil {
		t.Fatal(err)
	}
	units, err = svc.Units(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	maxOrder := 0
	for _, u := range units {
		if u.Order > maxOrder {
			maxOrder = u.Order
		}
	}
	if maxOrder != next {
		t.Fatalf("max order = %d, want %d", maxOrder, next)
	}
}

func TestUpdateUnitIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	unit, err := svc.CreateUnit(ctx, domain.CreateUnit{Title: "Grammar", CourseID: "c1", Order: 1})
	if err != nil {
		t.Fatal(err)
	}

	title := "Advanced Grammar"
	first, err := svc.UpdateUnit(ctx, unit.ID, domain.UpdateUnit{Title: &title})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.UpdateUnit(ctx, unit.ID, domain.UpdateUnit{Title: &title})
	if err != nil {
		t.Fatal(err)
	}
	if first.Title != second.Title || second.Title != title {
		t.Fatalf("repeated update diverged: %q vs %q", first.Title, second.Title)
	}
	units, err := svc.Units(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 1 || units[0].Title != title {
		t.Fatalf("collection out of date: %+v", units)
	}
}

func TestCreateUnitScopedToOneCourse(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Units(ctx, "c1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Units(ctx, "c2"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateUnit(ctx, domain.CreateUnit{Title: "Grammar", CourseID: "c1", Order: 1}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Units(ctx, "c2"); err != nil {
		t.Fatal(err)
	}
	if got := repo.listCalls["units:c2"]; got != 1 {
		t.Fatalf("sibling course refetched (%d calls) after unrelated mutation", got)
	}
}

func TestValidationFailureNeverReachesBackend(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUnit(ctx, domain.CreateUnit{Title: "", CourseID: "c1", Order: 1})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if repo.mutations != 0 {
		t.Fatalf("backend called %d times for invalid payload", repo.mutations)
	}
}

func TestDeleteUnitCascadesInvalidation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	unit, err := svc.CreateUnit(ctx, domain.CreateUnit{Title: "Grammar", CourseID: "c1", Order: 1})
	if err != nil {
		t.Fatal(err)
	}
	section, err := svc.CreateSection(ctx, "c1", domain.CreateSection{Title: "Tenses", UnitID: unit.ID, Order: 1})
	if err != nil {
		t.Fatal(err)
	}
	lesson, err := svc.CreateLesson(ctx, "c1", unit.ID, domain.CreateLesson{
		Title: "Past Simple", SectionID: section.ID, Order: 1,
		Content: domain.VideoContent{VideoURL: "https://cdn.dead.uz/v/1.mp4"},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Warm every level under the unit.
	if _, err := svc.Sections(ctx, "c1", unit.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Lessons(ctx, "c1", unit.ID, section.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Questions(ctx, "c1", unit.ID, section.ID, lesson.ID); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteUnit(ctx, "c1", unit.ID); err != nil {
		t.Fatalf("DeleteUnit: %v", err)
	}

	sections, err := svc.Sections(ctx, "c1", unit.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 0 {
		t.Fatalf("deleted unit still has sections: %+v", sections)
	}
	lessons, err := svc.Lessons(ctx, "c1", unit.ID, section.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(lessons) != 0 {
		t.Fatalf("deleted unit still has lessons: %+v", lessons)
	}
	if got := repo.listCalls["questions:"+lesson.ID]; got != 1 {
		// Question collection was staled, not refetched eagerly.
		t.Fatalf("questions fetched eagerly: %d calls", got)
	}
	questions, err := svc.Questions(ctx, "c1", unit.ID, section.ID, lesson.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 0 {
		t.Fatalf("deleted unit still has questions: %+v", questions)
	}
	if got := repo.listCalls["questions:"+lesson.ID]; got != 2 {
		t.Fatalf("questions not refetched after cascade: %d calls", got)
	}
}

func TestAuthoringFlow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, domain.CreateCourse{
		Title: "IELTS Basics", Description: "intro", Duration: "10h", Level: domain.LevelBeginner,
	})
	if err != nil {
		t.Fatal(err)
	}
	unit, err := svc.CreateUnit(ctx, domain.CreateUnit{Title: "Grammar", CourseID: course.ID, Order: 1})
	if err != nil {
		t.Fatal(err)
	}
	section, err := svc.CreateSection(ctx, course.ID, domain.CreateSection{Title: "Tenses", UnitID: unit.ID, Order: 1})
	if err != nil {
		t.Fatal(err)
	}
	lesson, err := svc.CreateLesson(ctx, course.ID, unit.ID, domain.CreateLesson{
		Title: "Present Simple", SectionID: section.ID, Order: 1, Content: domain.QuizContent{},
	})
	if err != nil {
		t.Fatal(err)
	}
	scope := cache.Scope{CourseID: course.ID, UnitID: unit.ID, SectionID: section.ID, LessonID: lesson.ID}
	q, err := svc.CreateQuestion(ctx, scope, domain.CreateQuestion{
		Question: "Which form is correct?", Options: []string{"a", "b", "c"}, CorrectOptionIndex: 1, Order: 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	lessons, err := svc.Lessons(ctx, course.ID, unit.ID, section.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(lessons) != 1 || lessons[0].ID != lesson.ID || lessons[0].Type != domain.LessonQuiz {
		t.Fatalf("lessons = %+v", lessons)
	}
	questions, err := svc.Questions(ctx, course.ID, unit.ID, section.ID, lesson.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 1 || questions[0].ID != q.ID {
		t.Fatalf("questions = %+v", questions)
	}
}

func TestQuestionMutationScopedToLesson(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	scopeA := cache.Scope{CourseID: "c1", UnitID: "u1", SectionID: "s1", LessonID: "lA"}

	if _, err := svc.Questions(ctx, "c1", "u1", "s1", "lA"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Questions(ctx, "c1", "u1", "s1", "lB"); err != nil {
		t.Fatal(err)
	}

	_, err := svc.CreateQuestion(ctx, scopeA, domain.CreateQuestion{
		Question: "A?", Options: []string{"x", "y"}, CorrectOptionIndex: 1, Order: 1,
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	if _, err := svc.Questions(ctx, "c1", "u1", "s1", "lA"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Questions(ctx, "c1", "u1", "s1", "lB"); err != nil {
		t.Fatal(err)
	}
	if got := repo.listCalls["questions:lA"]; got != 2 {
		t.Fatalf("mutated lesson list calls = %d, want refetch", got)
	}
	if got := repo.listCalls["questions:lB"]; got != 1 {
		t.Fatalf("sibling lesson refetched: %d calls", got)
	}
}

func TestBulkCreateAllOrNothingValidation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	scope := cache.Scope{CourseID: "c1", UnitID: "u1", SectionID: "s1", LessonID: "l1"}

	_, err := svc.BulkCreateQuestions(ctx, scope, []domain.CreateQuestion{
		{Question: "ok?", Options: []string{"a", "b"}, CorrectOptionIndex: 0, Order: 1},
		{Question: "bad?", Options: []string{"a", "b"}, CorrectOptionIndex: 5, Order: 2},
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if repo.mutations != 0 {
		t.Fatal("partial batch reached the backend")
	}
}

func TestLessonMutationRefreshesCourseList(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Courses(ctx); err != nil {
		t.Fatal(err)
	}
	_, err := svc.CreateLesson(ctx, "c1", "u1", domain.CreateLesson{
		Title: "Reading", SectionID: "s1", Order: 1,
		Content: domain.TextContent{Text: "body"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Courses(ctx); err != nil {
		t.Fatal(err)
	}
	// Course cards carry a lesson count, so the collection refetches.
	if got := repo.listCalls["courses"]; got != 2 {
		t.Fatalf("courses list calls = %d", got)
	}
}

func TestDashboardCachedAndStaledByCourseMutation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Dashboard(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Dashboard(ctx); err != nil {
		t.Fatal(err)
	}
	if got := repo.listCalls["dashboard"]; got != 1 {
		t.Fatalf("dashboard fetched %d times", got)
	}

	if _, err := svc.CreateCourse(ctx, domain.CreateCourse{
		Title: "IELTS", Description: "d", Duration: "10h", Level: domain.LevelBeginner,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Dashboard(ctx); err != nil {
		t.Fatal(err)
	}
	if got := repo.listCalls["dashboard"]; got != 2 {
		t.Fatalf("dashboard not refetched after course mutation: %d", got)
	}
}

func TestNextOrderPositions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	n, err := svc.NextUnitOrder(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("empty course next order = %d", n)
	}

	if _, err := svc.CreateUnit(ctx, domain.CreateUnit{Title: "A", CourseID: "c1", Order: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateUnit(ctx, domain.CreateUnit{Title: "B", CourseID: "c1", Order: 5}); err != nil {
		t.Fatal(err)
	}
	n, err = svc.NextUnitOrder(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("next order = %d, want one past max", n)
	}
}

func TestUpdateLessonTypeSwitch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	lesson, err := svc.CreateLesson(ctx, "c1", "u1", domain.CreateLesson{
		Title: "Intro", SectionID: "s1", Order: 1,
		Content: domain.VideoContent{VideoURL: "https://cdn.dead.uz/v/1.mp4"},
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateLesson(ctx, "c1", "u1", lesson.ID, domain.UpdateLesson{
		Content: domain.TextContent{Text: "written version"},
	})
	if err != nil {
		t.Fatalf("UpdateLesson: %v", err)
	}
	if updated.Type != domain.LessonText {
		t.Fatalf("type = %q after content switch", updated.Type)
	}
	if _, ok := updated.Content.(domain.TextContent); !ok {
		t.Fatalf("content = %T", updated.Content)
	}
}
