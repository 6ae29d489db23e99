package main

import (
	"context"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/internal/utils"
	"github.com/jrsteele09/go-jobboard/sessions"
	"github.com/jrsteele09/go-jobboard/token/jwt"
	"github.com/jrsteele09/go-jobboard/views"
	"github.com/pterm/pterm"
)

// promptPassword asks for a password when none was passed as a flag
func promptPassword(password string) (string, error) {
	if password != "" {
		return password, nil
	}
	return pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
}

func loginCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("login")
	accountType := fs.String("type", "jobSeeker", "Account type: employer or jobSeeker")
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password, prompted when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pw, err := promptPassword(*password)
	if err != nil {
		return err
	}

	route, err := views.NewLoginForm(a.client, a.sessions, a.notify).Submit(ctx, *accountType, *email, pw)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Next: jobboard open %s", route)
	return nil
}

func registerCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("register")
	accountType := fs.String("type", "jobSeeker", "Account type: employer or jobSeeker")
	name := fs.String("name", "", "Full name")
	email := fs.String("email", "", "Email")
	password := fs.String("password", "", "Password, prompted when empty")
	company := fs.String("company", "", "Company name (employers)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pw, err := promptPassword(*password)
	if err != nil {
		return err
	}

	_, err = views.NewRegisterForm(a.client, a.notify).Submit(ctx, api.Registration{
		FullName:    *name,
		Email:       *email,
		Password:    pw,
		AccountType: sessions.AccountType(strings.TrimSpace(*accountType)),
		CompanyName: *company,
	})
	if err != nil {
		return err
	}
	pterm.Info.Println("Next: jobboard login")
	return nil
}

func logoutCmd(ctx context.Context, a *app, args []string) error {
	_, err := views.Logout(a.sessions, a.notify)
	return err
}

func whoamiCmd(ctx context.Context, a *app, args []string) error {
	sess, err := a.sessions.Current()
	if err != nil {
		return err
	}
	if !sess.LoggedIn() {
		pterm.Info.Println("Not logged in.")
		return nil
	}

	data := pterm.TableData{
		{"Key", "Value"},
		{"Name", sess.UserName},
		{"User ID", sess.UserID},
		{"Account type", sess.AccountType},
		{"Session file", a.store.Path()},
	}
	// Claims are read for display only; the server remains the authority.
	if ti, err := jwt.InspectUnverified(sess.AuthToken); err == nil {
		if ti.Email != "" {
			data = append(data, []string{"Email", ti.Email})
		}
		if ti.Exp != nil {
			expiry := humanize.Time(utils.Value(ti.Exp))
			if ti.Expired() {
				expiry = pterm.Red("expired " + expiry)
			}
			data = append(data, []string{"Token expires", expiry})
		}
	}
	return renderTable(data, "")
}

func navCmd(ctx context.Context, a *app, args []string) error {
	items := make([]pterm.BulletListItem, 0)
	for _, link := range a.gate.NavLinks() {
		items = append(items, pterm.BulletListItem{Level: 0, Text: link.Label + "  " + pterm.Gray(link.Route)})
	}
	return pterm.DefaultBulletList.WithItems(items).Render()
}
