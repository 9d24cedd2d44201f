// Package view derives the display order, filtering and urgency badges for a
// set of note records. It is a pure function of its inputs and never mutates
// the record set it is given.
package view

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/clientnotes/internal/models"
)

// Mode selects the active filter; exactly one is active at a time.
type Mode string

const (
	ModeAll     Mode = "all"
	ModeToday   Mode = "today"
	ModeOverdue Mode = "overdue"
	ModeStar    Mode = "star"
)

// ParseMode maps a user-supplied string to a Mode, defaulting to ModeAll.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeAll, ModeToday, ModeOverdue, ModeStar:
		return Mode(s), true
	}
	return ModeAll, false
}

// Badge is the derived, non-persisted urgency classification of a record.
type Badge string

const (
	BadgeNone      Badge = ""
	BadgeToday     Badge = "today"
	BadgeOverdue   Badge = "overdue"
	BadgeScheduled Badge = "scheduled"
)

// Item is one displayed record together with its badge.
type Item struct {
	models.Record
	Badge Badge
}

// View is the result of one pipeline run: the ordered filtered items plus
// the shown/total count pair.
type View struct {
	Items []Item
	Shown int
	Total int
}

// followSentinel sorts records without a follow-up after every real date.
const followSentinel = "9999-12-31T23:59"

// Build sorts records by follow-up (empty last, created-descending
// tie-break), then keeps those matching the search text and the filter mode,
// evaluated against now.
func Build(recs []models.Record, search string, mode Mode, now time.Time) View {
	sorted := slices.Clone(recs)
	slices.SortFunc(sorted, func(a, b models.Record) int {
		af, bf := a.Follow, b.Follow
		if af == "" {
			af = followSentinel
		}
		if bf == "" {
			bf = followSentinel
		}
		if c := strings.Compare(af, bf); c != 0 {
			return c
		}
		return cmp.Compare(b.Created, a.Created)
	})

	q := strings.ToLower(strings.TrimSpace(search))
	today := now.Format("2006-01-02")

	items := make([]Item, 0, len(sorted))
	for _, r := range sorted {
		if !matchesSearch(&r, q) {
			continue
		}
		if !matchesMode(&r, mode, today, now) {
			continue
		}
		items = append(items, Item{Record: r, Badge: badge(&r, today, now)})
	}

	return View{Items: items, Shown: len(items), Total: len(recs)}
}

func matchesSearch(r *models.Record, q string) bool {
	if q == "" {
		return true
	}
	hay := strings.ToLower(strings.Join([]string{r.Name, r.Phone, r.Email, r.Note, r.Tag}, " "))
	return strings.Contains(hay, q)
}

func matchesMode(r *models.Record, mode Mode, today string, now time.Time) bool {
	switch mode {
	case ModeToday:
		return r.Follow != "" && r.FollowDate() == today
	case ModeOverdue:
		t, ok := r.FollowTime()
		return ok && t.Before(now)
	case ModeStar:
		return r.Star
	default:
		return true
	}
}

func badge(r *models.Record, today string, now time.Time) Badge {
	if r.Follow == "" {
		return BadgeNone
	}
	t, ok := r.FollowTime()
	if !ok {
		// unparseable follow-up counts as none scheduled
		return BadgeNone
	}
	if t.Format("2006-01-02") == today {
		return BadgeToday
	}
	if t.Before(now) {
		return BadgeOverdue
	}
	return BadgeScheduled
}
