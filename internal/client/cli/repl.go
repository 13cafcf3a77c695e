package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Users(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Filter(ctx context.Context, key, value string) error
	ClearFilter(ctx context.Context) error
	Keys(ctx context.Context) error
	Fav(ctx context.Context, id string) error
	Favs(ctx context.Context) error
	Profile(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, help, exit"
	helpLoggedIn  = "Available commands: users, (l)ist, search [text], filter <key> <value>, clear, keys, fav <id>, favs, profile, logout, help, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Logged out, only login, help and exit are accepted; every other known
// command answers with a hint to log in. Handlers print their own messages,
// so their errors are dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ab%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in, use logout first")
				continue
			}
			_ = a.Login(ctx)
			continue
		}

		if !isHomeCommand(cmd) {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.isLoggedIn() {
			printlnFn("Please log in first")
			continue
		}

		switch cmd {
		case "users":
			_ = a.Users(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))
		case "filter":
			if len(args) < 2 {
				printlnFn("Usage: filter <key> <value>  (see keys)")
				continue
			}
			_ = a.Filter(ctx, args[0], strings.Join(args[1:], " "))
		case "clear":
			_ = a.ClearFilter(ctx)
		case "keys":
			_ = a.Keys(ctx)
		case "fav":
			if len(args) != 1 {
				printlnFn("Usage: fav <id>")
				continue
			}
			_ = a.Fav(ctx, args[0])
		case "favs":
			_ = a.Favs(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "logout":
			_ = a.Logout(ctx)
		}
	}
}

func isHomeCommand(cmd string) bool {
	switch cmd {
	case "users", "l", "list", "search", "filter", "clear", "keys", "fav", "favs", "profile", "logout":
		return true
	}
	return false
}
