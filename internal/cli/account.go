package cli

import (
	"flag"
	"fmt"

	"github.com/mrlokans/learnhub/internal/entities"
)

type SignUpCommand struct {
	baseCommand
	Email    string
	Password string
	FullName string
	Role     string
}

func NewSignUpCommand() *SignUpCommand {
	return &SignUpCommand{baseCommand: newBaseCommand()}
}

func (cmd *SignUpCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.StringVar(&cmd.Email, "email", "", "Account email (required)")
	fs.StringVar(&cmd.Password, "password", "", "Account password")
	fs.StringVar(&cmd.FullName, "name", "", "Full name")
	fs.StringVar(&cmd.Role, "role", string(entities.RoleStudent), "Role: student or instructor")
	fs.Usage = usage(fs, "signup -email <email> [options]", "Create an account and sign in.")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Email == "" {
		return fmt.Errorf("required flag -email not provided")
	}
	return nil
}

func (cmd *SignUpCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.AuthStore.SignUp(cmd.Email, cmd.Password, cmd.FullName, entities.Role(cmd.Role)); err != nil {
		return err
	}
	user := app.AuthStore.State().User
	cmd.printf("Signed up as %s (%s), id %s\n", user.Email, user.Role, user.ID)
	return nil
}

type SignInCommand struct {
	baseCommand
	Email    string
	Password string
}

func NewSignInCommand() *SignInCommand {
	return &SignInCommand{baseCommand: newBaseCommand()}
}

func (cmd *SignInCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("signin", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.StringVar(&cmd.Email, "email", "", "Account email (required)")
	fs.StringVar(&cmd.Password, "password", "", "Account password")
	fs.Usage = usage(fs, "signin -email <email> [options]", "Sign in to an existing account.")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Email == "" {
		return fmt.Errorf("required flag -email not provided")
	}
	return nil
}

func (cmd *SignInCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.AuthStore.SignIn(cmd.Email, cmd.Password); err != nil {
		return err
	}
	cmd.printf("Signed in as %s\n", app.AuthStore.State().User.Email)
	return nil
}

type SignOutCommand struct {
	baseCommand
}

func NewSignOutCommand() *SignOutCommand {
	return &SignOutCommand{baseCommand: newBaseCommand()}
}

func (cmd *SignOutCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("signout", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.Usage = usage(fs, "signout [options]", "Clear the current session.")
	return fs.Parse(args)
}

func (cmd *SignOutCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.AuthStore.SignOut(); err != nil {
		return err
	}
	cmd.printf("Signed out\n")
	return nil
}

type WhoAmICommand struct {
	baseCommand
}

func NewWhoAmICommand() *WhoAmICommand {
	return &WhoAmICommand{baseCommand: newBaseCommand()}
}

func (cmd *WhoAmICommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	cmd.registerStoreFlags(fs)
	fs.Usage = usage(fs, "whoami [options]", "Show the signed-in user.")
	return fs.Parse(args)
}

func (cmd *WhoAmICommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.AuthStore.LoadUser(); err != nil {
		return err
	}
	st := app.AuthStore.State()
	if st.User == nil {
		cmd.printf("Not signed in\n")
		return nil
	}
	cmd.printf("%s <%s>\n", st.User.FullName, st.User.Email)
	cmd.printf("  id:        %s\n", st.User.ID)
	cmd.printf("  role:      %s\n", st.User.Role)
	cmd.printf("  signed in: %s\n", st.Session.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
