package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/addressbook/internal/common"
)

const notAvailable = "N/A"

// Profile prints the logged-in user's record.
func (a *App) Profile(context.Context) error {
	u := a.session.User
	if u == nil {
		a.println("Please log in first")
		return common.ErrNoSession
	}

	age := ""
	if u.Age > 0 {
		age = strconv.Itoa(u.Age)
	}
	city := ""
	if u.Address != nil {
		city = u.Address.City
	}

	rows := [][2]string{
		{"Name", u.FullName()},
		{"Username", u.Username},
		{"Gender", u.Gender},
		{"Email", u.Email},
		{"Phone", u.Phone},
		{"Age", age},
		{"University", u.University},
		{"City", city},
	}
	for _, r := range rows {
		a.printf("%-11s %s\n", r[0]+":", orNA(r[1]))
	}

	if !a.session.ExpiresAt.IsZero() {
		a.printf("%-11s %s\n", "Token:", "expires "+a.session.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
