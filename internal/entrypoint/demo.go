package entrypoint

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mrlokans/learnhub/internal/scheduler"
)

// RunDemo resets the store to the sample data, then keeps resetting it on
// the configured schedule until ctx is cancelled or SIGINT/SIGTERM arrives.
func RunDemo(ctx context.Context, app *App) error {
	reset := scheduler.NewDemoResetScheduler(app.Store, app.Config.Demo.ResetSchedule, app.Log)
	if err := reset.RunNow(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := reset.Start(ctx); err != nil {
		return err
	}
	if next := reset.NextRunTime(); next != nil {
		app.Log.Info("demo mode running", "next_reset", next.String())
	}

	<-ctx.Done()
	reset.Stop()
	app.Log.Info("demo mode exiting")
	return nil
}

