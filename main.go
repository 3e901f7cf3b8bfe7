package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/learnhub/internal/cli"
	"github.com/mrlokans/learnhub/internal/config"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

var commands = map[string]func() command{
	"init":      func() command { return cli.NewInitCommand() },
	"seed":      func() command { return cli.NewSeedCommand() },
	"courses":   func() command { return cli.NewCoursesCommand() },
	"outline":   func() command { return cli.NewOutlineCommand() },
	"signup":    func() command { return cli.NewSignUpCommand() },
	"signin":    func() command { return cli.NewSignInCommand() },
	"signout":   func() command { return cli.NewSignOutCommand() },
	"whoami":    func() command { return cli.NewWhoAmICommand() },
	"enroll":    func() command { return cli.NewEnrollCommand() },
	"complete":  func() command { return cli.NewCompleteCommand() },
	"quiz":      func() command { return cli.NewQuizCommand() },
	"dashboard": func() command { return cli.NewDashboardCommand() },
	"demo":      func() command { return cli.NewDemoCommand() },
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// .env values must be in place before any command reads its config
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name := os.Args[1]
	switch name {
	case "-h", "--help", "help":
		printUsage()
		return
	case "version", "--version":
		fmt.Printf("learnhub %s (%s)\n", Version, Commit)
		return
	}

	newCmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	cmd := newCmd()
	if err := cmd.ParseFlags(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  init        Create the empty collections\n")
	fmt.Fprintf(os.Stderr, "  seed        Add the sample users and courses to an empty store\n")
	fmt.Fprintf(os.Stderr, "  courses     List and search courses\n")
	fmt.Fprintf(os.Stderr, "  outline     Show a course's modules and lessons\n")
	fmt.Fprintf(os.Stderr, "  signup      Create an account and sign in\n")
	fmt.Fprintf(os.Stderr, "  signin      Sign in with an existing account\n")
	fmt.Fprintf(os.Stderr, "  signout     Clear the current session\n")
	fmt.Fprintf(os.Stderr, "  whoami      Show the signed-in user\n")
	fmt.Fprintf(os.Stderr, "  enroll      Enroll in (or drop) a course\n")
	fmt.Fprintf(os.Stderr, "  complete    Mark a lesson completed\n")
	fmt.Fprintf(os.Stderr, "  quiz        Record a quiz attempt\n")
	fmt.Fprintf(os.Stderr, "  dashboard   Show learner or instructor statistics\n")
	fmt.Fprintf(os.Stderr, "  demo        Reset the store to the sample data on a schedule\n")
	fmt.Fprintf(os.Stderr, "  version     Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
