package console

import "context"

func (a *App) login(ctx context.Context) {
	theme := a.theme()

	email := a.readLine("Email")
	password := a.readLine("Password")

	session, err := a.session.Login(ctx, email, password)
	if err != nil {
		theme.Error.Fprintln(a.out, errorMessage(err))
		return
	}
	theme.Success.Fprintf(a.out, "Welcome back, %s!\n", session.Username)
}

func (a *App) signup(ctx context.Context) {
	theme := a.theme()

	username := a.readLine("Username")
	email := a.readLine("Email")
	password := a.readLine("Password")

	session, err := a.session.Signup(ctx, username, email, password)
	if err != nil {
		theme.Error.Fprintln(a.out, errorMessage(err))
		return
	}
	theme.Success.Fprintf(a.out, "Welcome, %s!\n", session.Username)
}
