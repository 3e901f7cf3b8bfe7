package cli

import (
	"flag"

	"github.com/mrlokans/learnhub/internal/demo"
)

// InitCommand creates the empty collections.
type InitCommand struct {
	baseCommand
}

func NewInitCommand() *InitCommand {
	return &InitCommand{baseCommand: newBaseCommand()}
}

func (cmd *InitCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.Usage = usage(fs, "init [options]", "Create every missing collection. Existing data is left alone.")
	return fs.Parse(args)
}

func (cmd *InitCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	cmd.printf("Store initialized (%s)\n", cmd.Config.Storage.Backend)
	return nil
}

// SeedCommand writes the sample catalogue into an empty store.
type SeedCommand struct {
	baseCommand
	Reset bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{baseCommand: newBaseCommand()}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.BoolVar(&cmd.Reset, "reset", false, "Wipe every collection before seeding")
	fs.Usage = usage(fs, "seed [options]", "Add the sample users, courses and progress. Skipped when users or courses exist.")
	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	if cmd.Reset {
		if err := app.Store.Reset(); err != nil {
			return err
		}
		cmd.printf("Store wiped\n")
	}

	seeded, err := demo.Seed(app.Store, app.Log)
	if err != nil {
		return err
	}
	if !seeded {
		cmd.printf("Store already has data, nothing seeded\n")
		return nil
	}
	cmd.printf("Sample data added. Sign in as %s or %s.\n", demo.InstructorEmail, demo.StudentEmail)
	return nil
}
