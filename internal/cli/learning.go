package cli

import (
	"flag"
	"fmt"
)

// EnrollCommand enrolls the signed-in user in a course, or drops it.
type EnrollCommand struct {
	baseCommand
	CourseID string
	Drop     bool
}

func NewEnrollCommand() *EnrollCommand {
	return &EnrollCommand{baseCommand: newBaseCommand()}
}

func (cmd *EnrollCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("enroll", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.StringVar(&cmd.CourseID, "course", "", "Course id (required)")
	fs.BoolVar(&cmd.Drop, "drop", false, "Unenroll instead of enrolling")
	fs.Usage = usage(fs, "enroll -course <id> [options]", "Enroll the signed-in user in a course. Enrolling twice is harmless.")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.CourseID == "" {
		return fmt.Errorf("required flag -course not provided")
	}
	return nil
}

func (cmd *EnrollCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	user, err := currentUser(app)
	if err != nil {
		return err
	}

	if cmd.Drop {
		if err := app.CourseStore.UnenrollFromCourse(user.ID, cmd.CourseID); err != nil {
			return err
		}
		cmd.printf("Unenrolled from %s\n", cmd.CourseID)
		return nil
	}

	// the course must exist; enrollments themselves do not check references
	course, err := app.Courses.GetCourseByID(cmd.CourseID)
	if err != nil {
		return err
	}
	if err := app.CourseStore.EnrollInCourse(user.ID, course.ID); err != nil {
		return err
	}
	cmd.printf("Enrolled in %q (%d enrolled course(s))\n", course.Title, len(app.CourseStore.State().EnrolledCourses))
	return nil
}

// CompleteCommand marks a lesson completed, or not, for the signed-in user.
type CompleteCommand struct {
	baseCommand
	LessonID string
	Undo     bool
}

func NewCompleteCommand() *CompleteCommand {
	return &CompleteCommand{baseCommand: newBaseCommand()}
}

func (cmd *CompleteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("complete", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.StringVar(&cmd.LessonID, "lesson", "", "Lesson id (required)")
	fs.BoolVar(&cmd.Undo, "undo", false, "Mark the lesson as not completed")
	fs.Usage = usage(fs, "complete -lesson <id> [options]", "Record lesson progress for the signed-in user.")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.LessonID == "" {
		return fmt.Errorf("required flag -lesson not provided")
	}
	return nil
}

func (cmd *CompleteCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	user, err := currentUser(app)
	if err != nil {
		return err
	}
	lesson, err := app.Lessons.GetLessonByID(cmd.LessonID)
	if err != nil {
		return err
	}
	p, err := app.Progress.SetLessonProgress(user.ID, lesson.ID, !cmd.Undo)
	if err != nil {
		return err
	}

	state := "completed"
	if !p.Completed {
		state = "not completed"
	}
	cmd.printf("%q marked %s\n", lesson.Title, state)
	return nil
}

// QuizCommand records a quiz attempt for the signed-in user.
type QuizCommand struct {
	baseCommand
	QuizID string
	Score  float64
}

func NewQuizCommand() *QuizCommand {
	return &QuizCommand{baseCommand: newBaseCommand()}
}

func (cmd *QuizCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("quiz", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.StringVar(&cmd.QuizID, "quiz", "", "Quiz id (required)")
	fs.Float64Var(&cmd.Score, "score", 0, "Score in percent")
	fs.Usage = usage(fs, "quiz -quiz <id> -score <n> [options]", "Record a quiz attempt. Every attempt is kept.")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.QuizID == "" {
		return fmt.Errorf("required flag -quiz not provided")
	}
	return nil
}

func (cmd *QuizCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	user, err := currentUser(app)
	if err != nil {
		return err
	}
	attempt, err := app.Quizzes.CreateQuizAttempt(user.ID, cmd.QuizID, cmd.Score)
	if err != nil {
		return err
	}
	cmd.printf("Recorded %.1f%% on quiz %s\n", attempt.Score, attempt.QuizID)
	return nil
}
