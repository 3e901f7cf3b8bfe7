// Package demo seeds the sample catalogue: one instructor, one student,
// three courses, and a partly completed enrollment.
package demo

import (
	"fmt"

	"github.com/mrlokans/learnhub/internal/database/courses"
	"github.com/mrlokans/learnhub/internal/database/enrollments"
	"github.com/mrlokans/learnhub/internal/database/lessons"
	"github.com/mrlokans/learnhub/internal/database/modules"
	"github.com/mrlokans/learnhub/internal/database/progress"
	"github.com/mrlokans/learnhub/internal/database/users"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/logger"
	"github.com/mrlokans/learnhub/internal/storage"
)

const (
	InstructorEmail = "instructor@example.com"
	StudentEmail    = "student@example.com"
)

func strPtr(s string) *string { return &s }

// Seed writes the sample data unless users or courses already exist.
// It reports whether anything was written.
func Seed(store *storage.Store, log *logger.Logger) (bool, error) {
	if log == nil {
		log = logger.NewNop()
	}
	usersRepo := users.NewRepository(store)
	coursesRepo := courses.NewRepository(store)

	existingUsers, err := usersRepo.GetUsers()
	if err != nil {
		return false, err
	}
	existingCourses, err := coursesRepo.GetCourses()
	if err != nil {
		return false, err
	}
	if len(existingUsers) > 0 || len(existingCourses) > 0 {
		log.Debug("sample data skipped, store not empty", "users", len(existingUsers), "courses", len(existingCourses))
		return false, nil
	}

	instructor, err := usersRepo.CreateUser(entities.NewUser{
		Email:    InstructorEmail,
		FullName: "John Instructor",
		Role:     entities.RoleInstructor,
	})
	if err != nil {
		return false, fmt.Errorf("create instructor: %w", err)
	}
	student, err := usersRepo.CreateUser(entities.NewUser{
		Email:    StudentEmail,
		FullName: "Jane Student",
		Role:     entities.RoleStudent,
	})
	if err != nil {
		return false, fmt.Errorf("create student: %w", err)
	}

	var created []*entities.Course
	for _, in := range sampleCourses(instructor.ID) {
		course, err := coursesRepo.CreateCourse(in)
		if err != nil {
			return false, fmt.Errorf("create course %q: %w", in.Title, err)
		}
		created = append(created, course)
	}
	intro := created[0]

	modulesRepo := modules.NewRepository(store)
	basics, err := modulesRepo.CreateModule(entities.NewModule{Title: "JavaScript Basics", CourseID: intro.ID, Position: 1})
	if err != nil {
		return false, fmt.Errorf("create module: %w", err)
	}
	if _, err := modulesRepo.CreateModule(entities.NewModule{Title: "Functions and Objects", CourseID: intro.ID, Position: 2}); err != nil {
		return false, fmt.Errorf("create module: %w", err)
	}

	lessonsRepo := lessons.NewRepository(store)
	first, err := lessonsRepo.CreateLesson(entities.NewLesson{
		Title:       "Variables and Data Types",
		Description: "Learn about variables and different data types in JavaScript.",
		VideoURL:    strPtr("https://example.com/video1.mp4"),
		ModuleID:    basics.ID,
		Position:    1,
	})
	if err != nil {
		return false, fmt.Errorf("create lesson: %w", err)
	}
	if _, err := lessonsRepo.CreateLesson(entities.NewLesson{
		Title:       "Operators and Expressions",
		Description: "Understand operators and expressions in JavaScript.",
		VideoURL:    strPtr("https://example.com/video2.mp4"),
		ModuleID:    basics.ID,
		Position:    2,
	}); err != nil {
		return false, fmt.Errorf("create lesson: %w", err)
	}

	if _, err := enrollments.NewRepository(store).CreateEnrollment(student.ID, intro.ID); err != nil {
		return false, fmt.Errorf("create enrollment: %w", err)
	}
	if _, err := progress.NewRepository(store).SetLessonProgress(student.ID, first.ID, true); err != nil {
		return false, fmt.Errorf("create lesson progress: %w", err)
	}

	log.Info("sample data seeded", "courses", len(created))
	return true, nil
}

func sampleCourses(instructorID string) []entities.NewCourse {
	return []entities.NewCourse{
		{
			Title:        "Introduction to JavaScript",
			Description:  "Learn the fundamentals of JavaScript programming language.",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1579468118864-1b9ea3c0db4a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
			Price:        0,
			Category:     "Programming",
			InstructorID: instructorID,
		},
		{
			Title:        "React for Beginners",
			Description:  "Start building modern web applications with React.",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1633356122102-3fe601e05bd2?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
			Price:        29.99,
			Category:     "Programming",
			InstructorID: instructorID,
		},
		{
			Title:        "UI/UX Design Principles",
			Description:  "Learn the core principles of creating effective user interfaces.",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1561070791-2526d30994b5?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
			Price:        19.99,
			Category:     "Design",
			InstructorID: instructorID,
		},
	}
}
