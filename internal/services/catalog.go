// Package services composes repositories into the read-side queries used by
// the catalog and dashboard views. Nothing is cached: every call re-reads
// the collections it needs.
package services

import (
	"cmp"
	"slices"

	"github.com/mrlokans/learnhub/internal/entities"
)

// ModuleLessons is a module together with its lessons in position order.
type ModuleLessons struct {
	Module  entities.Module
	Lessons []entities.Lesson
}

// CourseStats holds the per-course counters shown on course cards.
type CourseStats struct {
	EnrollmentCount int
	ModuleCount     int
	LessonCount     int
}

// CourseSummary is a course joined with its instructor and counters.
// Instructor is nil when the instructor record no longer exists.
type CourseSummary struct {
	Course          entities.Course
	Instructor      *entities.User
	EnrollmentCount int
	LessonCount     int
}

type Catalog struct {
	repos Repositories
}

func NewCatalog(repos Repositories) *Catalog {
	return &Catalog{repos: repos}
}

// EnrolledCourses returns the user's courses in enrollment order. Enrollments
// whose course has been deleted are skipped.
func (c *Catalog) EnrolledCourses(userID string) ([]entities.Course, error) {
	enrollments, err := c.repos.Enrollments.GetEnrollmentsByUser(userID)
	if err != nil {
		return nil, err
	}
	courses, err := c.repos.Courses.GetCourses()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entities.Course, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}

	result := make([]entities.Course, 0, len(enrollments))
	for _, e := range enrollments {
		if course, ok := byID[e.CourseID]; ok {
			result = append(result, course)
		}
	}
	return result, nil
}

// LessonsForCourse returns the course outline: modules by position, and
// lessons by position within each module.
func (c *Catalog) LessonsForCourse(courseID string) ([]ModuleLessons, error) {
	idx, err := c.loadOutline()
	if err != nil {
		return nil, err
	}
	return idx.outline(courseID), nil
}

func (c *Catalog) CourseStats(courseID string) (CourseStats, error) {
	idx, err := c.loadOutline()
	if err != nil {
		return CourseStats{}, err
	}
	enrollments, err := c.repos.Enrollments.GetEnrollmentsByCourse(courseID)
	if err != nil {
		return CourseStats{}, err
	}
	return CourseStats{
		EnrollmentCount: len(enrollments),
		ModuleCount:     len(idx.modules[courseID]),
		LessonCount:     len(idx.courseLessons(courseID)),
	}, nil
}

// CourseSummaries returns every course with its instructor and counters,
// in course creation order.
func (c *Catalog) CourseSummaries() ([]CourseSummary, error) {
	courses, err := c.repos.Courses.GetCourses()
	if err != nil {
		return nil, err
	}
	users, err := c.repos.Users.GetUsers()
	if err != nil {
		return nil, err
	}
	enrollments, err := c.repos.Enrollments.GetEnrollments()
	if err != nil {
		return nil, err
	}
	idx, err := c.loadOutline()
	if err != nil {
		return nil, err
	}

	usersByID := make(map[string]entities.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	enrolled := make(map[string]int)
	for _, e := range enrollments {
		enrolled[e.CourseID]++
	}

	summaries := make([]CourseSummary, 0, len(courses))
	for _, course := range courses {
		s := CourseSummary{
			Course:          course,
			EnrollmentCount: enrolled[course.ID],
			LessonCount:     len(idx.courseLessons(course.ID)),
		}
		if u, ok := usersByID[course.InstructorID]; ok {
			s.Instructor = &u
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// IsCourseCompleted reports whether the user completed every lesson of the
// course. A course without lessons is never completed.
func (c *Catalog) IsCourseCompleted(userID, courseID string) (bool, error) {
	idx, err := c.loadOutline()
	if err != nil {
		return false, err
	}
	done, err := c.repos.Progress.CompletedLessons(userID)
	if err != nil {
		return false, err
	}
	return allCompleted(idx.courseLessons(courseID), done), nil
}

func allCompleted(lessons []entities.Lesson, done map[string]bool) bool {
	if len(lessons) == 0 {
		return false
	}
	for _, l := range lessons {
		if !done[l.ID] {
			return false
		}
	}
	return true
}

// outlineIndex groups modules by course and lessons by module from a single
// read of each collection.
type outlineIndex struct {
	modules map[string][]entities.Module
	lessons map[string][]entities.Lesson
}

func (c *Catalog) loadOutline() (*outlineIndex, error) {
	modules, err := c.repos.Modules.GetModules()
	if err != nil {
		return nil, err
	}
	lessons, err := c.repos.Lessons.GetLessons()
	if err != nil {
		return nil, err
	}

	idx := &outlineIndex{
		modules: make(map[string][]entities.Module),
		lessons: make(map[string][]entities.Lesson),
	}
	for _, m := range modules {
		idx.modules[m.CourseID] = append(idx.modules[m.CourseID], m)
	}
	for _, l := range lessons {
		idx.lessons[l.ModuleID] = append(idx.lessons[l.ModuleID], l)
	}
	for _, ms := range idx.modules {
		slices.SortStableFunc(ms, func(a, b entities.Module) int { return cmp.Compare(a.Position, b.Position) })
	}
	for _, ls := range idx.lessons {
		slices.SortStableFunc(ls, func(a, b entities.Lesson) int { return cmp.Compare(a.Position, b.Position) })
	}
	return idx, nil
}

func (idx *outlineIndex) outline(courseID string) []ModuleLessons {
	modules := idx.modules[courseID]
	out := make([]ModuleLessons, 0, len(modules))
	for _, m := range modules {
		lessons := idx.lessons[m.ID]
		if lessons == nil {
			lessons = []entities.Lesson{}
		}
		out = append(out, ModuleLessons{Module: m, Lessons: lessons})
	}
	return out
}

func (idx *outlineIndex) courseLessons(courseID string) []entities.Lesson {
	var out []entities.Lesson
	for _, m := range idx.modules[courseID] {
		out = append(out, idx.lessons[m.ID]...)
	}
	return out
}
