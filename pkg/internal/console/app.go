package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/api"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/prefs"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/services"
)

// App drives the screens over one command loop. Everything runs on this one
// goroutine; each network call is the sole suspension point of a command.
type App struct {
	gateway      *api.Client
	session      *services.SessionState
	interactions *services.Interactions
	prefs        *prefs.Store

	// Currently mounted screens; nil until their command runs.
	feed   *services.FeedState
	detail *services.DetailState

	in  *bufio.Scanner
	out io.Writer
}

func New(gateway *api.Client, session *services.SessionState, display *prefs.Store, in io.Reader, out io.Writer) *App {
	return &App{
		gateway:      gateway,
		session:      session,
		interactions: services.NewInteractions(gateway, session),
		prefs:        display,
		in:           bufio.NewScanner(in),
		out:          out,
	}
}

func (a *App) theme() Theme {
	return ThemeFor(a.prefs.DarkMode())
}

// Run reads commands until quit or EOF.
func (a *App) Run(ctx context.Context) {
	a.printHelp()
	for {
		fmt.Fprint(a.out, a.prompt())
		if !a.in.Scan() {
			return
		}
		line := strings.TrimSpace(a.in.Text())
		if len(line) == 0 {
			continue
		}

		fields := strings.Fields(line)
		command, args := fields[0], fields[1:]
		if command == "quit" || command == "exit" {
			return
		}
		a.dispatch(ctx, command, args)
	}
}

func (a *App) prompt() string {
	if user := a.session.Current(); user != nil {
		return a.theme().Accent.Sprintf("%s> ", user.Username)
	}
	return a.theme().Muted.Sprint("chyrp> ")
}

func (a *App) dispatch(ctx context.Context, command string, args []string) {
	theme := a.theme()
	switch command {
	case "feed":
		a.showFeed(ctx)
	case "open":
		if len(args) < 1 {
			theme.Error.Fprintln(a.out, "Usage: open <post id>")
			return
		}
		a.showDetail(ctx, args[0])
	case "like":
		if len(args) < 1 {
			theme.Error.Fprintln(a.out, "Usage: like <post id>")
			return
		}
		a.likePost(ctx, args[0])
	case "comment":
		if len(args) < 2 {
			theme.Error.Fprintln(a.out, "Usage: comment <post id> <text>")
			return
		}
		a.commentPost(ctx, args[0], strings.Join(args[1:], " "))
	case "profile":
		a.showProfile(ctx)
	case "compose":
		a.compose(ctx)
	case "login":
		a.login(ctx)
	case "signup":
		a.signup(ctx)
	case "logout":
		a.session.Logout()
		theme.Success.Fprintln(a.out, "Logged out.")
	case "theme":
		dark := a.prefs.Toggle()
		theme = a.theme()
		theme.Success.Fprintf(a.out, "Switched to %s mode.\n", lo.Ternary(dark, "dark", "light"))
	case "help":
		a.printHelp()
	default:
		theme.Error.Fprintf(a.out, "Unknown command: %s (try help)\n", command)
	}
}

func (a *App) printHelp() {
	theme := a.theme()
	theme.Title.Fprintln(a.out, "Commands")
	for _, row := range [][2]string{
		{"feed", "load and show the post feed"},
		{"open <id>", "show one post with its comments"},
		{"like <id>", "like a post"},
		{"comment <id> <text>", "comment on a post"},
		{"profile", "show your own posts"},
		{"compose", "write and publish a new post"},
		{"login / signup / logout", "manage your session"},
		{"theme", "toggle dark mode"},
		{"quit", "leave"},
	} {
		fmt.Fprintf(a.out, "  %-24s %s\n", row[0], theme.Muted.Sprint(row[1]))
	}
}

// readLine powers the form-style screens (auth, composer).
func (a *App) readLine(label string) string {
	fmt.Fprint(a.out, a.theme().Accent.Sprintf("%s: ", label))
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

// errorMessage turns any failure into the inline message a screen shows.
// Nothing is fatal; the worst case is a stale or empty view.
func errorMessage(err error) string {
	var reqErr *api.RequestError
	switch {
	case errors.Is(err, api.ErrUnauthenticated):
		return "You must be logged in to do that."
	case errors.Is(err, api.ErrNotFound):
		return "Post not found."
	case errors.Is(err, api.ErrEmptyComment):
		return "Write a comment first."
	case errors.As(err, &reqErr):
		return reqErr.Detail
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Sprintf("Invalid %s.", strings.ToLower(fieldErrs[0].Field()))
	}
	return "An unexpected error occurred."
}
