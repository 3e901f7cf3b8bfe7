package state

import (
	"slices"

	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/logger"
)

const (
	msgCourseNotFound     = "Course not found"
	msgEnrollmentNotFound = "Enrollment not found"
)

// CourseState is a snapshot of the course store.
type CourseState struct {
	Courses           []entities.Course
	EnrolledCourses   []entities.Course
	InstructorCourses []entities.Course
	Loading           bool
	Error             string
}

func cloneCourseState(s CourseState) CourseState {
	s.Courses = slices.Clone(s.Courses)
	s.EnrolledCourses = slices.Clone(s.EnrolledCourses)
	s.InstructorCourses = slices.Clone(s.InstructorCourses)
	return s
}

type CourseStore struct {
	state       *observable[CourseState]
	courses     CourseRepository
	enrollments EnrollmentRepository
	catalog     EnrolledCourseLister
	log         *logger.Logger
}

func NewCourseStore(courses CourseRepository, enrollments EnrollmentRepository, catalog EnrolledCourseLister, log *logger.Logger) *CourseStore {
	if log == nil {
		log = logger.NewNop()
	}
	initial := CourseState{
		Courses:           []entities.Course{},
		EnrolledCourses:   []entities.Course{},
		InstructorCourses: []entities.Course{},
	}
	return &CourseStore{
		state:       newObservable(initial, cloneCourseState),
		courses:     courses,
		enrollments: enrollments,
		catalog:     catalog,
		log:         log.With("component", "course_store"),
	}
}

func (s *CourseStore) State() CourseState {
	return s.state.get()
}

func (s *CourseStore) Subscribe(fn func(CourseState)) func() {
	return s.state.subscribe(fn)
}

func (s *CourseStore) FetchCourses() error {
	s.begin()

	courses, err := s.courses.GetCourses()
	if err != nil {
		return s.fail("fetch_courses", err)
	}

	s.state.update(func(st *CourseState) {
		st.Courses = courses
		st.Loading = false
	})
	return nil
}

func (s *CourseStore) FetchEnrolledCourses(userID string) error {
	s.begin()

	enrolled, err := s.catalog.EnrolledCourses(userID)
	if err != nil {
		return s.fail("fetch_enrolled_courses", err)
	}

	s.state.update(func(st *CourseState) {
		st.EnrolledCourses = enrolled
		st.Loading = false
	})
	return nil
}

func (s *CourseStore) FetchInstructorCourses(instructorID string) error {
	s.begin()

	courses, err := s.courses.GetCoursesByInstructor(instructorID)
	if err != nil {
		return s.fail("fetch_instructor_courses", err)
	}

	s.state.update(func(st *CourseState) {
		st.InstructorCourses = courses
		st.Loading = false
	})
	return nil
}

// CreateCourse stores the course and appends it to both the catalogue and
// the instructor caches.
func (s *CourseStore) CreateCourse(in entities.NewCourse) (*entities.Course, error) {
	s.begin()

	course, err := s.courses.CreateCourse(in)
	if err != nil {
		return nil, s.fail("create_course", err)
	}

	s.log.Info("course created", "course_id", course.ID, "instructor_id", course.InstructorID)
	s.state.update(func(st *CourseState) {
		st.Courses = append(slices.Clone(st.Courses), *course)
		st.InstructorCourses = append(slices.Clone(st.InstructorCourses), *course)
		st.Loading = false
	})
	return course, nil
}

func (s *CourseStore) UpdateCourse(id string, upd entities.CourseUpdate) error {
	s.begin()

	course, err := s.courses.UpdateCourse(id, upd)
	if err != nil {
		return s.fail("update_course", err)
	}

	replace := func(list []entities.Course) []entities.Course {
		out := slices.Clone(list)
		for i := range out {
			if out[i].ID == id {
				out[i] = *course
			}
		}
		return out
	}
	s.state.update(func(st *CourseState) {
		st.Courses = replace(st.Courses)
		st.InstructorCourses = replace(st.InstructorCourses)
		st.Loading = false
	})
	return nil
}

func (s *CourseStore) DeleteCourse(id string) error {
	s.begin()

	removed, err := s.courses.DeleteCourse(id)
	if err == nil && !removed {
		err = apperr.NotFound(msgCourseNotFound)
	}
	if err != nil {
		return s.fail("delete_course", err)
	}

	drop := func(c entities.Course) bool { return c.ID == id }
	s.state.update(func(st *CourseState) {
		st.Courses = slices.DeleteFunc(slices.Clone(st.Courses), drop)
		st.InstructorCourses = slices.DeleteFunc(slices.Clone(st.InstructorCourses), drop)
		st.Loading = false
	})
	return nil
}

// EnrollInCourse enrolls the user, or keeps the existing enrollment, and
// refreshes the enrolled courses cache.
func (s *CourseStore) EnrollInCourse(userID, courseID string) error {
	s.begin()

	if _, err := s.enrollments.CreateEnrollment(userID, courseID); err != nil {
		return s.fail("enroll", err)
	}
	enrolled, err := s.catalog.EnrolledCourses(userID)
	if err != nil {
		return s.fail("enroll", err)
	}

	s.state.update(func(st *CourseState) {
		st.EnrolledCourses = enrolled
		st.Loading = false
	})
	return nil
}

func (s *CourseStore) UnenrollFromCourse(userID, courseID string) error {
	s.begin()

	removed, err := s.enrollments.DeleteEnrollmentByUserAndCourse(userID, courseID)
	if err == nil && !removed {
		err = apperr.NotFound(msgEnrollmentNotFound)
	}
	if err != nil {
		return s.fail("unenroll", err)
	}

	s.state.update(func(st *CourseState) {
		st.EnrolledCourses = slices.DeleteFunc(slices.Clone(st.EnrolledCourses), func(c entities.Course) bool {
			return c.ID == courseID
		})
		st.Loading = false
	})
	return nil
}

func (s *CourseStore) begin() {
	s.state.update(func(st *CourseState) {
		st.Loading = true
		st.Error = ""
	})
}

func (s *CourseStore) fail(action string, err error) error {
	s.log.Warn("action failed", "action", action, "error", err)
	s.state.update(func(st *CourseState) {
		st.Error = err.Error()
		st.Loading = false
	})
	return err
}
