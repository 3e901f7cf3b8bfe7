package cli

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mrlokans/learnhub/internal/services"
)

// CoursesCommand lists the catalogue, optionally filtered.
type CoursesCommand struct {
	baseCommand
	Query        string
	Category     string
	InstructorID string
	Mine         bool
}

func NewCoursesCommand() *CoursesCommand {
	return &CoursesCommand{baseCommand: newBaseCommand()}
}

func (cmd *CoursesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("courses", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.StringVar(&cmd.Query, "q", "", "Search title and description (case-insensitive)")
	fs.StringVar(&cmd.Category, "category", "", "Filter by category: "+strings.Join(services.Categories, ", "))
	fs.StringVar(&cmd.InstructorID, "instructor", "", "Only courses taught by this instructor id")
	fs.BoolVar(&cmd.Mine, "enrolled", false, "Only courses the signed-in user is enrolled in")
	fs.Usage = usage(fs, "courses [options]", "List courses with instructor, enrollment and lesson counts.")
	return fs.Parse(args)
}

func (cmd *CoursesCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	summaries, err := app.Catalog.CourseSummaries()
	if err != nil {
		return err
	}
	summaries = services.SearchCourses(summaries, services.CourseFilter{Query: cmd.Query, Category: cmd.Category})

	keep := func(services.CourseSummary) bool { return true }
	switch {
	case cmd.Mine:
		user, err := currentUser(app)
		if err != nil {
			return err
		}
		if err := app.CourseStore.FetchEnrolledCourses(user.ID); err != nil {
			return err
		}
		enrolled := make(map[string]bool)
		for _, c := range app.CourseStore.State().EnrolledCourses {
			enrolled[c.ID] = true
		}
		keep = func(s services.CourseSummary) bool { return enrolled[s.Course.ID] }
	case cmd.InstructorID != "":
		keep = func(s services.CourseSummary) bool { return s.Course.InstructorID == cmd.InstructorID }
	}

	w := tabwriter.NewWriter(cmd.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE\tINSTRUCTOR\tSTUDENTS\tLESSONS")
	shown := 0
	for _, s := range summaries {
		if !keep(s) {
			continue
		}
		instructor := "(unknown)"
		if s.Instructor != nil {
			instructor = s.Instructor.FullName
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			s.Course.ID, s.Course.Title, s.Course.Category, formatPrice(s.Course.Price),
			instructor, s.EnrollmentCount, s.LessonCount)
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}
	cmd.printf("%d course(s)\n", shown)
	return nil
}

func formatPrice(price float64) string {
	if price == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", price)
}

// OutlineCommand prints a course's modules and lessons in order.
type OutlineCommand struct {
	baseCommand
	CourseID string
}

func NewOutlineCommand() *OutlineCommand {
	return &OutlineCommand{baseCommand: newBaseCommand()}
}

func (cmd *OutlineCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("outline", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.StringVar(&cmd.CourseID, "course", "", "Course id (required)")
	fs.Usage = usage(fs, "outline -course <id> [options]", "Show a course's modules and lessons. Completed lessons are marked when signed in.")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.CourseID == "" {
		return fmt.Errorf("required flag -course not provided")
	}
	return nil
}

func (cmd *OutlineCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	course, err := app.Courses.GetCourseByID(cmd.CourseID)
	if err != nil {
		return err
	}
	stats, err := app.Catalog.CourseStats(course.ID)
	if err != nil {
		return err
	}
	outline, err := app.Catalog.LessonsForCourse(course.ID)
	if err != nil {
		return err
	}

	done := map[string]bool{}
	if user, err := currentUser(app); err == nil {
		if done, err = app.Progress.CompletedLessons(user.ID); err != nil {
			return err
		}
	}

	cmd.printf("%s (%s)\n", course.Title, formatPrice(course.Price))
	cmd.printf("%d module(s), %d lesson(s), %d student(s)\n\n", stats.ModuleCount, stats.LessonCount, stats.EnrollmentCount)
	for _, m := range outline {
		cmd.printf("%d. %s\n", m.Module.Position, m.Module.Title)
		for _, l := range m.Lessons {
			mark := " "
			if done[l.ID] {
				mark = "x"
			}
			cmd.printf("   [%s] %d. %s (%s)\n", mark, l.Position, l.Title, l.ID)
		}
	}
	return nil
}
