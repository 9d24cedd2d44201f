package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clientnotes/internal/models"
)

// Edit prompts for each editable field of the selected record. A blank line
// keeps the current value, "-" clears it; the collected overrides are
// applied as one merge-then-replace.
func (a *App) Edit(ctx context.Context, n int) {
	it, ok := a.item(n)
	if !ok {
		return
	}

	var req models.EditRequest

	fields := []struct {
		label   string
		current string
		dest    **string
	}{
		{"Name", it.Name, &req.Name},
		{"Tag", it.Tag, &req.Tag},
		{"Phone", it.Phone, &req.Phone},
		{"Email", it.Email, &req.Email},
		{"Note", it.Note, &req.Note},
		{"Next contact (YYYY-MM-DDTHH:MM)", it.Follow, &req.Follow},
		{"Source", it.Source, &req.Source},
	}

	for _, f := range fields {
		v, err := GetOverride(a.reader, f.label, f.current, a.out)
		if err != nil {
			a.log.Error(ctx, "input aborted", "error", err)
			return
		}
		*f.dest = v
	}

	if err := a.service.Apply(ctx, it.Id, req); err != nil {
		a.log.Error(ctx, "edit failed", "error", err)
		return
	}
	a.rerender(ctx)
}

// Star toggles the star flag of the selected record.
func (a *App) Star(ctx context.Context, n int) {
	it, ok := a.item(n)
	if !ok {
		return
	}

	on, err := a.service.ToggleStar(ctx, it.Id)
	if err != nil {
		a.log.Error(ctx, "star failed", "error", err)
		return
	}
	if on {
		fmt.Fprintln(a.out, "Starred", it.Id)
	} else {
		fmt.Fprintln(a.out, "Unstarred", it.Id)
	}
	a.rerender(ctx)
}

// Delete removes the selected record after confirmation. Removal is
// permanent and immediate.
func (a *App) Delete(ctx context.Context, n int) {
	it, ok := a.item(n)
	if !ok {
		return
	}

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete %q? (y/N)", it.Name), a.out)
	if err != nil || answer != "y" {
		return
	}

	if err := a.service.Delete(ctx, it.Id); err != nil {
		a.log.Error(ctx, "delete failed", "error", err)
		return
	}
	a.rerender(ctx)
}
