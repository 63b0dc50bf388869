package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deaduz/eduadmin/internal/domain"
	"github.com/deaduz/eduadmin/internal/log"
)

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), s != "" }

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, staticToken("tok-123"), log.NullLogger(), opts...)
}

func TestRequestCarriesSessionHeaders(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	})

	if _, err := c.ListCourses(context.Background()); err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatal("X-Request-ID missing")
	}
}

func TestUnauthorizedSignalsTeardownOnce(t *testing.T) {
	teardowns := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, WithUnauthorizedHook(func() { teardowns++ }))

	_, err := c.ListUnits(context.Background(), "c1")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if teardowns != 1 {
		t.Fatalf("teardown hook ran %d times for one failure", teardowns)
	}
}

func TestNotFoundOnDetailFetch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"course not found"}`, http.StatusNotFound)
	})
	_, err := c.GetCourse(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestBackendRejectionIsValidationError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"order must be positive"}`, http.StatusBadRequest)
	})
	_, err := c.CreateUnit(context.Background(), domain.CreateUnit{Title: "U", CourseID: "c1", Order: 1})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(verr.Fields) == 0 || !strings.Contains(verr.Fields[0].Message, "order must be positive") {
		t.Fatalf("backend message lost: %+v", verr)
	}
}

func TestBackendFieldErrorsPreserved(t *testing.T) {
	cases := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			"field map",
			`{"message":"validation failed","errors":{"title":{"message":"title is required"},"order":{"message":"order must be positive"}}}`,
			map[string]string{"title": "title is required", "order": "order must be positive"},
		},
		{
			"violation list",
			`{"errors":[{"path":"title","msg":"title is required"},{"path":"courseId","msg":"courseId is required"}]}`,
			map[string]string{"title": "title is required", "courseId": "courseId is required"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tc.body, http.StatusBadRequest)
			})
			_, err := c.CreateUnit(context.Background(), domain.CreateUnit{Title: "U", CourseID: "c1", Order: 1})
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if len(verr.Fields) != len(tc.want) {
				t.Fatalf("violations = %+v", verr.Fields)
			}
			for _, f := range verr.Fields {
				if tc.want[f.Field] != f.Message {
					t.Fatalf("field %q: got %q, want %q", f.Field, f.Message, tc.want[f.Field])
				}
			}
		})
	}
}

func TestServerFailureIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	_, err := c.ListCourses(context.Background())
	var terr *domain.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("want TransportError, got %v", err)
	}
}

func TestUnreachableBackendIsTransportError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", staticToken("tok"), log.NullLogger())
	_, err := c.ListCourses(context.Background())
	var terr *domain.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("want TransportError, got %v", err)
	}
}

func TestCreateUnitSendsJSON(t *testing.T) {
	var gotPath, gotCT string
	var gotBody createUnitRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCT = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(unitDTO{ID: "u1", Title: gotBody.Title, CourseID: gotBody.CourseID, Order: gotBody.Order})
	})

	unit, err := c.CreateUnit(context.Background(), domain.CreateUnit{Title: "Grammar", CourseID: "c1", Order: 1})
	if err != nil {
		t.Fatalf("CreateUnit: %v", err)
	}
	if gotPath != "/admin/units" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotCT != "application/json" {
		t.Fatalf("content type = %q", gotCT)
	}
	if gotBody.CourseID != "c1" || gotBody.Order != 1 {
		t.Fatalf("body = %+v", gotBody)
	}
	if unit.ID != "u1" || unit.CourseID != "c1" {
		t.Fatalf("unit = %+v", unit)
	}
}

func TestCreateCourseSendsMultipart(t *testing.T) {
	var gotLevel, gotFile, gotCT string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		gotLevel = r.FormValue("level")
		if f, hdr, err := r.FormFile("picture"); err == nil {
			gotFile = hdr.Filename
			f.Close()
		}
		json.NewEncoder(w).Encode(courseDTO{ID: "cid", Title: r.FormValue("title"), Level: gotLevel})
	})

	course, err := c.CreateCourse(context.Background(), domain.CreateCourse{
		Title:       "IELTS Basics",
		Description: "intro",
		Duration:    "10h",
		Level:       domain.LevelBeginner,
		Picture:     &domain.Upload{Filename: "cover.png", Content: strings.NewReader("png-bytes")},
	})
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if !strings.HasPrefix(gotCT, "multipart/form-data") {
		t.Fatalf("content type = %q", gotCT)
	}
	if gotLevel != "Beginner" || gotFile != "cover.png" {
		t.Fatalf("form = level %q file %q", gotLevel, gotFile)
	}
	if course.ID != "cid" {
		t.Fatalf("course = %+v", course)
	}
}

func TestUpdateLessonTypeChangeClearsOldFields(t *testing.T) {
	var raw map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		json.NewEncoder(w).Encode(lessonDTO{ID: "l1", Type: "Text", TextContent: "body"})
	})

	_, err := c.UpdateLesson(context.Background(), "l1", domain.UpdateLesson{
		Content: domain.TextContent{Text: "body"},
	})
	if err != nil {
		t.Fatalf("UpdateLesson: %v", err)
	}
	if raw["type"] != "Text" || raw["textContent"] != "body" {
		t.Fatalf("active fields wrong: %v", raw)
	}
	// The other variants must be present and explicitly empty.
	for _, field := range []string{"videoUrl", "fileUrl", "fileName"} {
		v, ok := raw[field]
		if !ok {
			t.Fatalf("%s omitted; old value would be retained", field)
		}
		if v != "" {
			t.Fatalf("%s = %v, want cleared", field, v)
		}
	}
}

func TestInterestEndpointsSplitByActivity(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`[{"_id":"i1","name":"Music","icon":"music","isActive":true}]`))
	})

	if _, err := c.ListInterests(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListActiveInterests(context.Background()); err != nil {
		t.Fatal(err)
	}
	if paths[0] != "/admin/interests" || paths[1] != "/interests" {
		t.Fatalf("paths = %v", paths)
	}
}

func TestCreateInterestSymbolicIconGoesAsField(t *testing.T) {
	var gotIcon, gotActive string
	hadFile := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(1 << 20)
		gotIcon = r.FormValue("icon")
		gotActive = r.FormValue("isActive")
		if _, _, err := r.FormFile("icon"); err == nil {
			hadFile = true
		}
		json.NewEncoder(w).Encode(interestDTO{ID: "i1", Name: r.FormValue("name"), Icon: gotIcon})
	})

	_, err := c.CreateInterest(context.Background(), domain.CreateInterest{
		Name: "Music", Icon: domain.IconRef{Symbol: "music"}, IsActive: false,
	})
	if err != nil {
		t.Fatalf("CreateInterest: %v", err)
	}
	if gotIcon != "music" || hadFile {
		t.Fatalf("icon handling wrong: field %q file %v", gotIcon, hadFile)
	}
	if gotActive != "false" {
		t.Fatalf("isActive = %q", gotActive)
	}
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req loginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Identifier != "admin@dead.uz" {
			t.Errorf("identifier = %q", req.Identifier)
		}
		json.NewEncoder(w).Encode(loginResponse{
			AccessToken: "tok-xyz",
			User:        userDTO{ID: "u1", Name: "Admin", Role: "admin"},
		})
	})

	tok, user, err := c.Login(context.Background(), "admin@dead.uz", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok != "tok-xyz" || user.ID != "u1" {
		t.Fatalf("login result: %q %+v", tok, user)
	}
}

func TestBulkCreateQuestions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/lessons/l1/questions/bulk" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req bulkCreateQuestionsRequest
		json.NewDecoder(r.Body).Decode(&req)
		resp := bulkCreateQuestionsResponse{Message: "ok", CreatedCount: len(req.Questions)}
		for i, q := range req.Questions {
			resp.Questions = append(resp.Questions, questionDTO{
				ID: "q" + string(rune('1'+i)), Question: q.Question,
				Options: q.Options, CorrectOptionIndex: q.CorrectOptionIndex, LessonID: "l1",
			})
		}
		json.NewEncoder(w).Encode(resp)
	})

	qs, err := c.BulkCreateQuestions(context.Background(), "l1", []domain.CreateQuestion{
		{Question: "A?", Options: []string{"x", "y"}, CorrectOptionIndex: 0, Order: 1},
		{Question: "B?", Options: []string{"x", "y"}, CorrectOptionIndex: 1, Order: 2},
	})
	if err != nil {
		t.Fatalf("BulkCreateQuestions: %v", err)
	}
	if len(qs) != 2 || qs[0].LessonID != "l1" {
		t.Fatalf("questions = %+v", qs)
	}
}
