package entities

import (
	"strings"
	"time"

	"github.com/mrlokans/learnhub/internal/apperr"
)

type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Price        float64   `json:"price"` // 0 means free
	Category     string    `json:"category"`
	InstructorID string    `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c Course) RecordID() string { return c.ID }

func (c Course) IsFree() bool { return c.Price == 0 }

type NewCourse struct {
	Title        string
	Description  string
	ThumbnailURL *string
	Price        float64
	Category     string
	InstructorID string
}

func (n NewCourse) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return apperr.Validation("course title is required")
	}
	if n.Price < 0 {
		return apperr.Validation("course price must not be negative")
	}
	if n.InstructorID == "" {
		return apperr.Validation("course instructor is required")
	}
	return nil
}

type CourseUpdate struct {
	Title        *string
	Description  *string
	ThumbnailURL **string
	Price        *float64
	Category     *string
	InstructorID *string
}

func (u CourseUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return apperr.Validation("course title is required")
	}
	if u.Price != nil && *u.Price < 0 {
		return apperr.Validation("course price must not be negative")
	}
	if u.InstructorID != nil && *u.InstructorID == "" {
		return apperr.Validation("course instructor is required")
	}
	return nil
}

func (u CourseUpdate) Apply(c *Course) {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.ThumbnailURL != nil {
		c.ThumbnailURL = *u.ThumbnailURL
	}
	if u.Price != nil {
		c.Price = *u.Price
	}
	if u.Category != nil {
		c.Category = *u.Category
	}
	if u.InstructorID != nil {
		c.InstructorID = *u.InstructorID
	}
}

// Module is an ordered section of a course.
type Module struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CourseID  string    `json:"course_id"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m Module) RecordID() string { return m.ID }

type NewModule struct {
	Title    string
	CourseID string
	Position int
}

func (n NewModule) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return apperr.Validation("module title is required")
	}
	if n.CourseID == "" {
		return apperr.Validation("module course is required")
	}
	if n.Position < 0 {
		return apperr.Validation("module position must not be negative")
	}
	return nil
}

type ModuleUpdate struct {
	Title    *string
	CourseID *string
	Position *int
}

func (u ModuleUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return apperr.Validation("module title is required")
	}
	if u.Position != nil && *u.Position < 0 {
		return apperr.Validation("module position must not be negative")
	}
	return nil
}

func (u ModuleUpdate) Apply(m *Module) {
	if u.Title != nil {
		m.Title = *u.Title
	}
	if u.CourseID != nil {
		m.CourseID = *u.CourseID
	}
	if u.Position != nil {
		m.Position = *u.Position
	}
}

// Lesson is an ordered unit of content inside a module.
type Lesson struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoURL    *string   `json:"video_url"`
	PDFURL      *string   `json:"pdf_url"`
	ModuleID    string    `json:"module_id"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (l Lesson) RecordID() string { return l.ID }

type NewLesson struct {
	Title       string
	Description string
	VideoURL    *string
	PDFURL      *string
	ModuleID    string
	Position    int
}

func (n NewLesson) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return apperr.Validation("lesson title is required")
	}
	if n.ModuleID == "" {
		return apperr.Validation("lesson module is required")
	}
	if n.Position < 0 {
		return apperr.Validation("lesson position must not be negative")
	}
	return nil
}

type LessonUpdate struct {
	Title       *string
	Description *string
	VideoURL    **string
	PDFURL      **string
	ModuleID    *string
	Position    *int
}

func (u LessonUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return apperr.Validation("lesson title is required")
	}
	if u.Position != nil && *u.Position < 0 {
		return apperr.Validation("lesson position must not be negative")
	}
	return nil
}

func (u LessonUpdate) Apply(l *Lesson) {
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.VideoURL != nil {
		l.VideoURL = *u.VideoURL
	}
	if u.PDFURL != nil {
		l.PDFURL = *u.PDFURL
	}
	if u.ModuleID != nil {
		l.ModuleID = *u.ModuleID
	}
	if u.Position != nil {
		l.Position = *u.Position
	}
}
