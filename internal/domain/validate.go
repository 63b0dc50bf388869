package domain

import (
	"fmt"
	"strings"
)

// Payload validation. Each Validate normalizes the payload in place
// (whitespace trimming) and returns a *ValidationError listing every
// field violation, or nil. Nothing here touches the network; the
// services run these checks before any backend call.

const (
	minOptions = 2
	maxOptions = 6
)

func (p *CreateCourse) Validate() error {
	v := &violations{entity: "course"}
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Duration = strings.TrimSpace(p.Duration)
	if p.Title == "" {
		v.add("title", "required")
	}
	if p.Description == "" {
		v.add("description", "required")
	}
	if p.Duration == "" {
		v.add("duration", "required")
	}
	if !p.Level.Valid() {
		v.add("level", fmt.Sprintf("must be one of %s, %s, %s", LevelBeginner, LevelIntermediate, LevelAdvanced))
	}
	if p.Picture != nil {
		validateUpload(v, "picture", p.Picture)
	}
	return v.err()
}

func (p *UpdateCourse) Validate() error {
	v := &violations{entity: "course"}
	if p.Title != nil {
		*p.Title = strings.TrimSpace(*p.Title)
		if *p.Title == "" {
			v.add("title", "must not be empty")
		}
	}
	if p.Description != nil {
		*p.Description = strings.TrimSpace(*p.Description)
		if *p.Description == "" {
			v.add("description", "must not be empty")
		}
	}
	if p.Level != nil && !p.Level.Valid() {
		v.add("level", fmt.Sprintf("must be one of %s, %s, %s", LevelBeginner, LevelIntermediate, LevelAdvanced))
	}
	if p.Picture != nil {
		validateUpload(v, "picture", p.Picture)
	}
	return v.err()
}

func (p *CreateUnit) Validate() error {
	v := &violations{entity: "unit"}
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		v.add("title", "required")
	}
	if p.CourseID == "" {
		v.add("courseId", "required")
	}
	if p.Order < 1 {
		v.add("order", "must be a positive integer")
	}
	return v.err()
}

func (p *UpdateUnit) Validate() error {
	v := &violations{entity: "unit"}
	validateOptionalTitle(v, p.Title)
	if p.Order != nil && *p.Order < 1 {
		v.add("order", "must be a positive integer")
	}
	return v.err()
}

func (p *CreateSection) Validate() error {
	v := &violations{entity: "section"}
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		v.add("title", "required")
	}
	if p.UnitID == "" {
		v.add("unitId", "required")
	}
	if p.Order < 1 {
		v.add("order", "must be a positive integer")
	}
	return v.err()
}

func (p *UpdateSection) Validate() error {
	v := &violations{entity: "section"}
	validateOptionalTitle(v, p.Title)
	if p.Order != nil && *p.Order < 1 {
		v.add("order", "must be a positive integer")
	}
	return v.err()
}

func (p *CreateLesson) Validate() error {
	v := &violations{entity: "lesson"}
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		v.add("title", "required")
	}
	if p.SectionID == "" {
		v.add("sectionId", "required")
	}
	if p.Order < 1 {
		v.add("order", "must be a positive integer")
	}
	if p.Content == nil {
		v.add("type", "lesson content is required")
	} else {
		validateContent(v, p.Content)
	}
	return v.err()
}

func (p *UpdateLesson) Validate() error {
	v := &violations{entity: "lesson"}
	validateOptionalTitle(v, p.Title)
	if p.Order != nil && *p.Order < 1 {
		v.add("order", "must be a positive integer")
	}
	if p.Content != nil {
		validateContent(v, p.Content)
	}
	return v.err()
}

func (p *CreateQuestion) Validate() error {
	v := &violations{entity: "question"}
	p.Question = strings.TrimSpace(p.Question)
	if p.Question == "" {
		v.add("question", "required")
	}
	validateOptions(v, p.Options, p.CorrectOptionIndex)
	if p.Order < 1 {
		v.add("order", "must be a positive integer")
	}
	return v.err()
}

func (p *UpdateQuestion) Validate() error {
	v := &violations{entity: "question"}
	if p.Question != nil {
		*p.Question = strings.TrimSpace(*p.Question)
		if *p.Question == "" {
			v.add("question", "must not be empty")
		}
	}
	switch {
	case p.Options != nil:
		if p.CorrectOptionIndex == nil {
			v.add("correctOptionIndex", "required when options change")
		} else {
			validateOptions(v, p.Options, *p.CorrectOptionIndex)
		}
	case p.CorrectOptionIndex != nil:
		// Index alone cannot be checked against the stored option count.
		v.add("options", "required when correctOptionIndex changes")
	}
	if p.Order != nil && *p.Order < 1 {
		v.add("order", "must be a positive integer")
	}
	return v.err()
}

func (p *CreateInterest) Validate() error {
	v := &violations{entity: "interest"}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		v.add("name", "required")
	}
	validateIcon(v, &p.Icon)
	return v.err()
}

func (p *UpdateInterest) Validate() error {
	v := &violations{entity: "interest"}
	if p.Name != nil {
		*p.Name = strings.TrimSpace(*p.Name)
		if *p.Name == "" {
			v.add("name", "must not be empty")
		}
	}
	if p.Icon != nil {
		validateIcon(v, p.Icon)
	}
	return v.err()
}

func validateOptionalTitle(v *violations, title *string) {
	if title == nil {
		return
	}
	*title = strings.TrimSpace(*title)
	if *title == "" {
		v.add("title", "must not be empty")
	}
}

func validateContent(v *violations, content LessonContent) {
	switch c := content.(type) {
	case VideoContent:
		if strings.TrimSpace(c.VideoURL) == "" {
			v.add("videoUrl", "required for Video lessons")
		}
	case TextContent:
		if strings.TrimSpace(c.Text) == "" {
			v.add("textContent", "required for Text lessons")
		}
	case FileContent:
		if strings.TrimSpace(c.FileURL) == "" {
			v.add("fileUrl", "required for File lessons")
		}
		if strings.TrimSpace(c.FileName) == "" {
			v.add("fileName", "required for File lessons")
		}
	case QuizContent:
		// Questions are managed under the lesson after creation.
	default:
		v.add("type", "unknown lesson content")
	}
}

func validateOptions(v *violations, options []string, correct int) {
	if len(options) < minOptions || len(options) > maxOptions {
		v.add("options", fmt.Sprintf("length must be between %d and %d", minOptions, maxOptions))
	}
	for i, opt := range options {
		if strings.TrimSpace(opt) == "" {
			v.add("options", fmt.Sprintf("option %d must not be empty", i))
		}
	}
	if correct < 0 || correct >= len(options) {
		v.add("correctOptionIndex", "out of range")
	}
}

func validateIcon(v *violations, icon *IconRef) {
	switch {
	case icon.Upload != nil && icon.Symbol != "":
		v.add("icon", "provide either an upload or a symbol, not both")
	case icon.Upload != nil:
		validateUpload(v, "icon", icon.Upload)
	case icon.Symbol != "":
		if !IconRenderable(icon.Symbol) {
			v.add("icon", "unknown icon symbol")
		}
	default:
		v.add("icon", "required")
	}
}

func validateUpload(v *violations, field string, u *Upload) {
	if u.Filename == "" {
		v.add(field, "upload filename is required")
	}
	if u.Content == nil {
		v.add(field, "upload content is required")
	}
}
