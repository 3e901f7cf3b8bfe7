package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/learnhub/internal/entities"
)

func TestCatalog_EnrolledCourses_PreservesEnrollmentOrder(t *testing.T) {
	f := setupFixture(t)
	first := f.course(t, "First", 0, "i1")
	second := f.course(t, "Second", 0, "i1")
	f.enroll(t, "u1", second.ID)
	f.enroll(t, "u1", first.ID)
	f.enroll(t, "u2", first.ID)

	got, err := NewCatalog(f.repos()).EnrolledCourses("u1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestCatalog_EnrolledCourses_DropsDeletedCourses(t *testing.T) {
	f := setupFixture(t)
	course := f.course(t, "Doomed", 0, "i1")
	f.enroll(t, "u1", course.ID)

	removed, err := f.courses.DeleteCourse(course.ID)
	require.NoError(t, err)
	require.True(t, removed)

	got, err := NewCatalog(f.repos()).EnrolledCourses("u1")

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	// the enrollment itself stays behind
	left, err := f.enrollments.GetEnrollmentsByUser("u1")
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestCatalog_LessonsForCourse_OrdersByPosition(t *testing.T) {
	f := setupFixture(t)
	course := f.course(t, "Course", 0, "i1")
	m2 := f.module(t, course.ID, 2)
	m1 := f.module(t, course.ID, 1)
	f.lesson(t, m1.ID, "b", 2)
	f.lesson(t, m1.ID, "a", 1)
	f.lesson(t, m2.ID, "c", 1)
	other := f.course(t, "Other", 0, "i1")
	om := f.module(t, other.ID, 1)
	f.lesson(t, om.ID, "x", 1)

	outline, err := NewCatalog(f.repos()).LessonsForCourse(course.ID)

	require.NoError(t, err)
	require.Len(t, outline, 2)
	assert.Equal(t, m1.ID, outline[0].Module.ID)
	assert.Equal(t, m2.ID, outline[1].Module.ID)
	require.Len(t, outline[0].Lessons, 2)
	assert.Equal(t, "a", outline[0].Lessons[0].Title)
	assert.Equal(t, "b", outline[0].Lessons[1].Title)
	require.Len(t, outline[1].Lessons, 1)
	assert.Equal(t, "c", outline[1].Lessons[0].Title)
}

func TestCatalog_LessonsForCourse_EmptyModule(t *testing.T) {
	f := setupFixture(t)
	course := f.course(t, "Course", 0, "i1")
	f.module(t, course.ID, 1)

	outline, err := NewCatalog(f.repos()).LessonsForCourse(course.ID)

	require.NoError(t, err)
	require.Len(t, outline, 1)
	assert.NotNil(t, outline[0].Lessons)
	assert.Empty(t, outline[0].Lessons)
}

func TestCatalog_CourseStats(t *testing.T) {
	f := setupFixture(t)
	course := f.course(t, "Course", 0, "i1")
	m1 := f.module(t, course.ID, 1)
	m2 := f.module(t, course.ID, 2)
	f.lesson(t, m1.ID, "a", 1)
	f.lesson(t, m1.ID, "b", 2)
	f.lesson(t, m2.ID, "c", 1)
	f.enroll(t, "u1", course.ID)
	f.enroll(t, "u2", course.ID)
	f.enroll(t, "u1", course.ID) // duplicate, returns the existing enrollment

	stats, err := NewCatalog(f.repos()).CourseStats(course.ID)

	require.NoError(t, err)
	assert.Equal(t, CourseStats{EnrollmentCount: 2, ModuleCount: 2, LessonCount: 3}, stats)
}

func TestCatalog_CourseStats_UnknownCourse(t *testing.T) {
	f := setupFixture(t)

	stats, err := NewCatalog(f.repos()).CourseStats("missing")

	require.NoError(t, err)
	assert.Equal(t, CourseStats{}, stats)
}

func TestCatalog_CourseSummaries(t *testing.T) {
	f := setupFixture(t)
	instructor := f.user(t, "teacher@x.io", entities.RoleInstructor)
	withInstructor := f.course(t, "Known", 10, instructor.ID)
	orphan := f.course(t, "Orphan", 0, "gone")
	m := f.module(t, withInstructor.ID, 1)
	f.lesson(t, m.ID, "a", 1)
	f.enroll(t, "u1", withInstructor.ID)

	summaries, err := NewCatalog(f.repos()).CourseSummaries()

	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, withInstructor.ID, summaries[0].Course.ID)
	require.NotNil(t, summaries[0].Instructor)
	assert.Equal(t, instructor.ID, summaries[0].Instructor.ID)
	assert.Equal(t, 1, summaries[0].EnrollmentCount)
	assert.Equal(t, 1, summaries[0].LessonCount)

	assert.Equal(t, orphan.ID, summaries[1].Course.ID)
	assert.Nil(t, summaries[1].Instructor)
	assert.Zero(t, summaries[1].EnrollmentCount)
	assert.Zero(t, summaries[1].LessonCount)
}

func TestCatalog_IsCourseCompleted(t *testing.T) {
	f := setupFixture(t)
	course := f.course(t, "Course", 0, "i1")
	m := f.module(t, course.ID, 1)
	l1 := f.lesson(t, m.ID, "L1", 1)
	l2 := f.lesson(t, m.ID, "L2", 2)
	f.enroll(t, "u1", course.ID)
	catalog := NewCatalog(f.repos())

	f.complete(t, "u1", l1.ID, true)
	done, err := catalog.IsCourseCompleted("u1", course.ID)
	require.NoError(t, err)
	assert.False(t, done)

	f.complete(t, "u1", l2.ID, true)
	done, err = catalog.IsCourseCompleted("u1", course.ID)
	require.NoError(t, err)
	assert.True(t, done)

	f.complete(t, "u1", l2.ID, false)
	done, err = catalog.IsCourseCompleted("u1", course.ID)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestCatalog_IsCourseCompleted_NoLessons(t *testing.T) {
	f := setupFixture(t)
	course := f.course(t, "Empty", 0, "i1")
	f.module(t, course.ID, 1)

	done, err := NewCatalog(f.repos()).IsCourseCompleted("u1", course.ID)

	require.NoError(t, err)
	assert.False(t, done)
}
