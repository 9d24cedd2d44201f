package cli

import (
	"context"
	"fmt"
	"os"
)

// Calendar builds the ICS event for the selected record's follow-up and
// either prints it or writes it to a file. Precondition failures (no
// follow-up, unparseable date) are reported as messages, never fatal.
func (a *App) Calendar(ctx context.Context, n int, file string) {
	it, ok := a.item(n)
	if !ok {
		return
	}

	text, err := a.service.CalendarEvent(ctx, it.Id)
	if err != nil {
		fmt.Fprintln(a.out, "cannot build calendar event:", err)
		return
	}

	if file == "" {
		fmt.Fprintln(a.out, text)
		return
	}

	if err := os.WriteFile(file, []byte(text), 0o600); err != nil {
		a.log.Error(ctx, "error writing file", "path", file, "error", err)
		return
	}
	fmt.Fprintln(a.out, "Saved to", file)
}
