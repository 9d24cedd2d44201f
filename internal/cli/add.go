package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clientnotes/internal/models"
)

// Add collects the user fields for a new record, persists it and re-renders.
// Id and created are generated by the service.
func (a *App) Add(ctx context.Context) {
	var draft models.Record

	fields := []struct {
		label string
		dest  *string
	}{
		{"Name", &draft.Name},
		{"Tag", &draft.Tag},
		{"Phone", &draft.Phone},
		{"Email", &draft.Email},
		{"Note", &draft.Note},
		{"Next contact (YYYY-MM-DDTHH:MM)", &draft.Follow},
		{"Source", &draft.Source},
	}

	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.label, a.out)
		if err != nil {
			a.log.Error(ctx, "input aborted", "error", err)
			return
		}
		*f.dest = v
	}

	rec, err := a.service.Add(ctx, draft)
	if err != nil {
		a.log.Error(ctx, "add failed", "error", err)
		return
	}

	fmt.Fprintln(a.out, "Added", rec.Id)
	a.rerender(ctx)
}
