package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/klwxsrx/loopon-client/internal/session"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	"github.com/klwxsrx/loopon-client/pkg/worker"
)

var (
	errUsage      = errors.New("usage: loopon <command> [flags]")
	errUnresolved = errors.New("entry route is not resolved, check the connection and retry")
)

type command struct {
	description string
	run         func(ctx context.Context, args []string) error
}

type app struct {
	container *session.DependencyContainer
	pool      worker.Pool
	out       io.Writer
	commands  map[string]command
}

func newApp(container *session.DependencyContainer, pool worker.Pool, out io.Writer) *app {
	a := &app{
		container: container,
		pool:      pool,
		out:       out,
	}
	a.commands = map[string]command{
		"launch":          {"validate the stored session and resolve the entry screen", a.launch},
		"route":           {"resolve the entry screen, -force restarts a running resolution", a.resolve},
		"login":           {"log in with email and password", a.login},
		"signup":          {"create an account and log in", a.signUp},
		"social":          {"log in with a social provider access token", a.socialLogin},
		"logout":          {"forget the stored token", a.logout},
		"whoami":          {"print the session state and the current profile", a.whoAmI},
		"journey":         {"print the current journey", a.journey},
		"password-code":   {"send a password reset code", a.passwordCode},
		"password-verify": {"verify a password reset code", a.passwordVerify},
		"password-reset":  {"set a new password", a.passwordReset},
	}
	return a
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errUsage
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd.run(ctx, args[1:])
}

func (a *app) usage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	a.printf("%s\n\ncommands:\n", errUsage)
	for _, name := range names {
		a.printf("  %-16s %s\n", name, a.commands[name].description)
	}
}

func (a *app) launch(ctx context.Context, args []string) error {
	if err := newFlagSet("launch").Parse(args); err != nil {
		return err
	}

	a.container.State.MustLoad().ValidateSessionAtLaunchIfNeeded(ctx)
	resolver := a.container.RouteResolver.MustLoad()
	resolver.Resolve(ctx, false)
	a.pool.Wait()

	route := resolver.Route()
	a.printf("route: %s\n", route)
	if route == domain.RouteLoading {
		return errUnresolved
	}
	if journey, ok := a.container.HomeRefresher.MustLoad().CurrentJourney(); ok {
		a.printf("journey: %d\n", journey.ID)
	}
	return nil
}

func (a *app) resolve(ctx context.Context, args []string) error {
	flags := newFlagSet("route")
	force := flags.Bool("force", false, "restart a running resolution")
	if err := flags.Parse(args); err != nil {
		return err
	}

	route := a.container.RouteResolver.MustLoad().Resolve(ctx, *force)
	a.printf("route: %s\n", route)
	if route == domain.RouteLoading {
		return errUnresolved
	}
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	flags := newFlagSet("login")
	email := flags.String("email", "", "account email")
	password := flags.String("password", "", "account password")
	if err := flags.Parse(args); err != nil {
		return err
	}

	err := a.container.AuthService.MustLoad().Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	a.printLoggedIn()
	return nil
}

func (a *app) signUp(ctx context.Context, args []string) error {
	flags := newFlagSet("signup")
	email := flags.String("email", "", "account email")
	password := flags.String("password", "", "account password")
	nickname := flags.String("nickname", "", "display name")
	if err := flags.Parse(args); err != nil {
		return err
	}

	err := a.container.AuthService.MustLoad().SignUp(ctx, *email, *password, *nickname)
	if err != nil {
		return err
	}
	a.printLoggedIn()
	return nil
}

func (a *app) socialLogin(ctx context.Context, args []string) error {
	flags := newFlagSet("social")
	provider := flags.String("provider", "", "kakao or apple")
	token := flags.String("token", "", "access token issued by the provider")
	if err := flags.Parse(args); err != nil {
		return err
	}

	tokenProvider := func(context.Context) (string, error) {
		if *token == "" {
			return "", errors.New("provider token is empty")
		}
		return *token, nil
	}

	err := a.container.AuthService.MustLoad().SocialLogin(
		ctx,
		domain.SocialProvider(strings.ToUpper(*provider)),
		tokenProvider,
	)
	if err != nil {
		return err
	}
	a.printLoggedIn()
	return nil
}

func (a *app) logout(ctx context.Context, args []string) error {
	if err := newFlagSet("logout").Parse(args); err != nil {
		return err
	}

	err := a.container.State.MustLoad().Logout(ctx)
	if err != nil {
		return err
	}
	a.printf("logged out\n")
	return nil
}

func (a *app) whoAmI(ctx context.Context, args []string) error {
	if err := newFlagSet("whoami").Parse(args); err != nil {
		return err
	}

	state := a.container.State.MustLoad()
	hasToken := state.HasValidToken(ctx)
	snapshot := state.Snapshot(ctx)
	a.printf("has token: %t\nonboarding completed: %t\nlogged in before: %t\n",
		hasToken, snapshot.IsOnboardingCompleted, snapshot.HasLoggedInBefore)
	if !hasToken {
		return nil
	}

	user, err := a.container.UserAPI.MustLoad().GetCurrent(ctx)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	a.printf("user: %d %s <%s>\n", user.ID, user.Nickname, user.Email)
	return nil
}

func (a *app) journey(ctx context.Context, args []string) error {
	if err := newFlagSet("journey").Parse(args); err != nil {
		return err
	}

	journey, err := a.container.JourneyAPI.MustLoad().GetCurrent(ctx)
	if err != nil {
		return fmt.Errorf("get current journey: %w", err)
	}
	a.printf("journey: %d\n", journey.ID)
	return nil
}

func (a *app) passwordCode(ctx context.Context, args []string) error {
	flags := newFlagSet("password-code")
	email := flags.String("email", "", "account email")
	if err := flags.Parse(args); err != nil {
		return err
	}

	err := a.container.AuthService.MustLoad().RequestPasswordResetCode(ctx, *email)
	if err != nil {
		return err
	}
	a.printf("reset code sent to %s\n", *email)
	return nil
}

func (a *app) passwordVerify(ctx context.Context, args []string) error {
	flags := newFlagSet("password-verify")
	email := flags.String("email", "", "account email")
	code := flags.String("code", "", "code from the reset email")
	if err := flags.Parse(args); err != nil {
		return err
	}

	err := a.container.AuthService.MustLoad().VerifyPasswordResetCode(ctx, *email, *code)
	if err != nil {
		return err
	}
	a.printf("code verified\n")
	return nil
}

func (a *app) passwordReset(ctx context.Context, args []string) error {
	flags := newFlagSet("password-reset")
	email := flags.String("email", "", "account email")
	password := flags.String("password", "", "new password")
	confirmation := flags.String("confirm", "", "new password again")
	if err := flags.Parse(args); err != nil {
		return err
	}

	err := a.container.AuthService.MustLoad().ResetPassword(ctx, *email, *password, *confirmation)
	if err != nil {
		return err
	}
	a.printf("password changed\n")
	return nil
}

// printLoggedIn waits for the profile fetch started by the login so the nickname is known.
func (a *app) printLoggedIn() {
	a.pool.Wait()

	state := a.container.State.MustLoad()
	a.printf("logged in as %s\nroute: %s\n", state.Nickname(), a.container.RouteResolver.MustLoad().Route())
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}
