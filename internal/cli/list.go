package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clientnotes/internal/view"
)

var badgeLabels = map[view.Badge]string{
	view.BadgeToday:     "today",
	view.BadgeOverdue:   "OVERDUE",
	view.BadgeScheduled: "scheduled",
}

// renderList prints the current view: one line per record plus the
// shown/total stats line.
func (a *App) renderList() {
	for i, it := range a.shown.Items {
		star := " "
		if it.Star {
			star = "*"
		}

		name := it.Name
		if name == "" {
			name = "(no name)"
		}

		line := fmt.Sprintf("%3d %s %s", i+1, star, name)
		if it.Tag != "" {
			line += " [" + it.Tag + "]"
		}
		if it.Follow != "" {
			line += " — " + it.Follow
		}
		if label, ok := badgeLabels[it.Badge]; ok {
			line += " (" + label + ")"
		}
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintf(a.out, "Shown: %d / %d\n", a.shown.Shown, a.shown.Total)
}

// Show prints the full detail of one displayed record, including the
// contact links built from its phone number.
func (a *App) Show(n int) {
	it, ok := a.item(n)
	if !ok {
		return
	}

	name := it.Name
	if name == "" {
		name = "(no name)"
	}
	fmt.Fprintln(a.out, name)

	var meta []string
	if it.Phone != "" {
		meta = append(meta, "tel "+it.Phone)
	}
	if it.Email != "" {
		meta = append(meta, "email "+it.Email)
	}
	if it.Source != "" {
		meta = append(meta, "source "+it.Source)
	}
	if len(meta) > 0 {
		fmt.Fprintln(a.out, strings.Join(meta, " · "))
	}

	if it.Tag != "" {
		fmt.Fprintln(a.out, "tag:", it.Tag)
	}
	if note := strings.TrimSpace(it.Note); note != "" {
		fmt.Fprintln(a.out, note)
	}
	if it.Follow != "" {
		line := "next contact: " + it.Follow
		if label, ok := badgeLabels[it.Badge]; ok {
			line += " (" + label + ")"
		}
		fmt.Fprintln(a.out, line)
	}

	if it.Phone != "" {
		fmt.Fprintln(a.out, "call:", TelLink(it.Phone))
		fmt.Fprintln(a.out, "whatsapp:", WhatsAppLink(&it.Record))
	}
}
