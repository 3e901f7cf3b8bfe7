package cli

import (
	"flag"

	"github.com/mrlokans/learnhub/internal/entities"
)

// DashboardCommand prints learner or instructor statistics for the
// signed-in user, depending on their role.
type DashboardCommand struct {
	baseCommand
}

func NewDashboardCommand() *DashboardCommand {
	return &DashboardCommand{baseCommand: newBaseCommand()}
}

func (cmd *DashboardCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.Usage = usage(fs, "dashboard [options]", "Show progress for students, or students and earnings for instructors.")
	return fs.Parse(args)
}

func (cmd *DashboardCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	user, err := currentUser(app)
	if err != nil {
		return err
	}

	if user.Role == entities.RoleInstructor {
		stats, err := app.Dashboard.InstructorStats(user.ID)
		if err != nil {
			return err
		}
		cmd.printf("Instructor dashboard for %s\n", user.FullName)
		cmd.printf("  Courses created:   %d\n", stats.Courses)
		cmd.printf("  Students enrolled: %d\n", stats.Students)
		cmd.printf("  Lifetime earnings: $%.2f\n", stats.Earnings)
		return nil
	}

	stats, err := app.Dashboard.StudentStats(user.ID)
	if err != nil {
		return err
	}
	cmd.printf("Dashboard for %s\n", user.FullName)
	cmd.printf("  Overall progress:  %d%% (%d of %d lessons completed)\n", stats.ProgressPercent, stats.CompletedLessons, stats.TotalLessons)
	cmd.printf("  Learning time:     %d mins\n", stats.MinutesLearned)
	cmd.printf("  Completed courses: %d of %d enrolled\n", stats.CompletedCourses, stats.EnrolledCourses)
	cmd.printf("  Quiz average:      %.1f%%\n", stats.AverageQuizScore)
	return nil
}
