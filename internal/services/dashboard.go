package services

import "math"

// MinutesPerLesson is the time credited for each completed lesson.
const MinutesPerLesson = 15

// StudentStats is the learner dashboard summary over enrolled courses.
type StudentStats struct {
	EnrolledCourses  int
	CompletedCourses int
	CompletedLessons int
	TotalLessons     int
	ProgressPercent  int
	MinutesLearned   int
	QuizScores       []float64
	AverageQuizScore float64
}

// InstructorStats is the instructor dashboard summary over owned courses.
type InstructorStats struct {
	Courses  int
	Students int
	Earnings float64
}

type Dashboard struct {
	catalog *Catalog
	repos   Repositories
}

func NewDashboard(repos Repositories) *Dashboard {
	return &Dashboard{catalog: NewCatalog(repos), repos: repos}
}

// CalculateProgress returns completed/total as a rounded percentage, or 0
// when there is nothing to complete.
func CalculateProgress(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func (d *Dashboard) StudentStats(userID string) (StudentStats, error) {
	courses, err := d.catalog.EnrolledCourses(userID)
	if err != nil {
		return StudentStats{}, err
	}
	idx, err := d.catalog.loadOutline()
	if err != nil {
		return StudentStats{}, err
	}
	done, err := d.repos.Progress.CompletedLessons(userID)
	if err != nil {
		return StudentStats{}, err
	}
	attempts, err := d.repos.Quizzes.GetQuizAttemptsByUser(userID)
	if err != nil {
		return StudentStats{}, err
	}

	stats := StudentStats{
		EnrolledCourses: len(courses),
		QuizScores:      make([]float64, 0, len(attempts)),
	}
	for _, course := range courses {
		lessons := idx.courseLessons(course.ID)
		stats.TotalLessons += len(lessons)
		for _, l := range lessons {
			if done[l.ID] {
				stats.CompletedLessons++
			}
		}
		if allCompleted(lessons, done) {
			stats.CompletedCourses++
		}
	}
	stats.ProgressPercent = CalculateProgress(stats.CompletedLessons, stats.TotalLessons)
	stats.MinutesLearned = stats.CompletedLessons * MinutesPerLesson

	var sum float64
	for _, a := range attempts {
		stats.QuizScores = append(stats.QuizScores, a.Score)
		sum += a.Score
	}
	if len(attempts) > 0 {
		stats.AverageQuizScore = sum / float64(len(attempts))
	}
	return stats, nil
}

// InstructorStats counts distinct students across the instructor's courses
// and sums price times enrollments as earnings.
func (d *Dashboard) InstructorStats(instructorID string) (InstructorStats, error) {
	courses, err := d.repos.Courses.GetCoursesByInstructor(instructorID)
	if err != nil {
		return InstructorStats{}, err
	}

	students := make(map[string]struct{})
	var earnings float64
	for _, course := range courses {
		enrollments, err := d.repos.Enrollments.GetEnrollmentsByCourse(course.ID)
		if err != nil {
			return InstructorStats{}, err
		}
		for _, e := range enrollments {
			students[e.UserID] = struct{}{}
		}
		earnings += course.Price * float64(len(enrollments))
	}

	return InstructorStats{
		Courses:  len(courses),
		Students: len(students),
		Earnings: math.Round(earnings*100) / 100,
	}, nil
}
