package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/clientnotes/internal/view"
)

// now is a test seam for the view evaluation time.
var now = time.Now

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s %d/%d)", a.mode, a.shown.Shown, a.shown.Total)
}

// Root runs the command loop. Every mutating command awaits the store
// operation, reloads the record set and re-renders before the next prompt.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to clientnotes (type 'help' for commands)")

	if err := a.refresh(ctx); err != nil {
		a.log.Error(ctx, "initial load failed", "error", err)
		return
	}
	a.renderList()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "notes %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if a.dispatch(ctx, cmd, args) {
			return
		}
	}
}

// dispatch executes one command; it reports true when the loop should exit.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		a.printHelp()

	case "list", "l":
		a.rerender(ctx)

	case "search", "s":
		a.search = strings.Join(args, " ")
		a.rerender(ctx)

	case "filter", "f":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "usage: filter all|today|overdue|star")
			return false
		}
		mode, ok := view.ParseMode(args[0])
		if !ok {
			fmt.Fprintln(a.out, "unknown filter mode:", args[0])
			return false
		}
		a.mode = mode
		a.rerender(ctx)

	case "add", "a":
		a.Add(ctx)

	case "show":
		a.withItem(args, func(n int) { a.Show(n) })

	case "edit", "e":
		a.withItem(args, func(n int) { a.Edit(ctx, n) })

	case "star":
		a.withItem(args, func(n int) { a.Star(ctx, n) })

	case "del", "rm":
		a.withItem(args, func(n int) { a.Delete(ctx, n) })

	case "ics":
		a.withItem(args, func(n int) {
			file := ""
			if len(args) > 1 {
				file = args[1]
			}
			a.Calendar(ctx, n, file)
		})

	case "export":
		a.Export(ctx, args)

	case "import":
		a.Import(ctx, args)

	case "exit", "quit", "q":
		return true

	default:
		fmt.Fprintln(a.out, "unknown command:", cmd)
	}
	return false
}

// withItem parses the first argument as a 1-based view index and runs fn.
func (a *App) withItem(args []string, fn func(n int)) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "record number required")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "not a record number:", args[0])
		return
	}
	if _, ok := a.item(n); !ok {
		fmt.Fprintf(a.out, "no record %d in the current list\n", n)
		return
	}
	fn(n)
}

// rerender rebuilds and prints the view; on a load failure the previous
// cache stays on screen.
func (a *App) rerender(ctx context.Context) {
	if err := a.refresh(ctx); err != nil {
		a.log.Error(ctx, "reload failed", "error", err)
		return
	}
	a.renderList()
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `Commands:
  add                      add a record (interactive)
  list                     re-render the current view
  search <text>            substring filter (empty to clear)
  filter all|today|overdue|star
  show <n>                 full record details and contact links
  edit <n>                 edit fields (blank keeps the current value)
  star <n>                 toggle the star flag
  del <n>                  delete the record
  ics <n> [file]           calendar event for the follow-up
  export csv|json <file>   write the full set to a file
  import csv|json <file>   read records from a file
  exit`)
}
