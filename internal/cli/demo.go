package cli

import (
	"context"
	"flag"

	"github.com/mrlokans/learnhub/internal/entrypoint"
	"github.com/mrlokans/learnhub/internal/scheduler"
)

// DemoCommand keeps the store at the sample data, resetting it on a
// schedule until interrupted.
type DemoCommand struct {
	baseCommand
}

func NewDemoCommand() *DemoCommand {
	return &DemoCommand{baseCommand: newBaseCommand()}
}

func (cmd *DemoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.StringVar(&cmd.Config.Demo.ResetSchedule, "schedule", cmd.Config.Demo.ResetSchedule, "Cron schedule for resets")
	fs.Usage = usage(fs, "demo [options]", "Wipe and reseed the store now and then on every scheduled run. Stops on Ctrl+C.")

	if err := fs.Parse(args); err != nil {
		return err
	}
	// demo mode always logs
	cmd.Verbose = true
	return scheduler.ValidateCronSchedule(cmd.Config.Demo.ResetSchedule)
}

func (cmd *DemoCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	cmd.printf("Demo mode: resetting %s, %s\n", cmd.Config.Storage.Backend, scheduler.CronDescription(cmd.Config.Demo.ResetSchedule))
	return entrypoint.RunDemo(context.Background(), app)
}
