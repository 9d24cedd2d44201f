package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/clientnotes/internal/models"
)

// fixed evaluation point: 2024-03-05 12:00 local
var now = time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Id
	}
	return out
}

func TestBuild_SortOrder(t *testing.T) {
	recs := []models.Record{
		{Id: "later", Created: 1, Follow: "2024-01-01T10:00"},
		{Id: "none", Created: 2},
		{Id: "earlier", Created: 3, Follow: "2023-06-01T08:00"},
	}

	v := Build(recs, "", ModeAll, now)

	assert.Equal(t, []string{"earlier", "later", "none"}, ids(v.Items),
		"empty follow sorts last, otherwise ascending by follow")
	assert.Equal(t, 3, v.Shown)
	assert.Equal(t, 3, v.Total)
}

func TestBuild_TieBreakByCreatedDescending(t *testing.T) {
	recs := []models.Record{
		{Id: "old", Created: 10, Follow: "2024-01-01T10:00"},
		{Id: "new", Created: 20, Follow: "2024-01-01T10:00"},
	}

	v := Build(recs, "", ModeAll, now)

	assert.Equal(t, []string{"new", "old"}, ids(v.Items))
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	recs := []models.Record{
		{Id: "b", Created: 1, Follow: "2024-06-01T10:00"},
		{Id: "a", Created: 2, Follow: "2024-01-01T10:00"},
	}

	_ = Build(recs, "", ModeAll, now)

	assert.Equal(t, "b", recs[0].Id, "input order must stay untouched")
}

func TestBuild_Search(t *testing.T) {
	recs := []models.Record{
		{Id: "a", Name: "Anna", Note: "wants a demo"},
		{Id: "b", Name: "Boris", Phone: "+371 200 11 22"},
		{Id: "c", Email: "carol@example.com", Tag: "VIP"},
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"anna", []string{"a"}},
		{"DEMO", []string{"a"}},
		{"200 11", []string{"b"}},
		{"example.com", []string{"c"}},
		{"vip", []string{"c"}},
		{"", []string{"a", "b", "c"}},
		{"nobody", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.search, func(t *testing.T) {
			v := Build(recs, tc.search, ModeAll, now)
			assert.ElementsMatch(t, tc.want, ids(v.Items))
			assert.Equal(t, len(tc.want), v.Shown)
			assert.Equal(t, 3, v.Total)
		})
	}
}

func TestBuild_FilterModes(t *testing.T) {
	recs := []models.Record{
		{Id: "today", Follow: "2024-03-05T16:00"},
		{Id: "overdue", Follow: "2024-03-01T10:00"},
		{Id: "future", Follow: "2024-04-01T10:00"},
		{Id: "none", Star: true},
		{Id: "badfollow", Follow: "not-a-date"},
	}

	tests := []struct {
		mode Mode
		want []string
	}{
		{ModeAll, []string{"today", "overdue", "future", "none", "badfollow"}},
		{ModeToday, []string{"today"}},
		{ModeOverdue, []string{"overdue"}},
		{ModeStar, []string{"none"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			v := Build(recs, "", tc.mode, now)
			assert.ElementsMatch(t, tc.want, ids(v.Items))
		})
	}
}

func TestBuild_OverdueIsStrictlyBeforeNow(t *testing.T) {
	recs := []models.Record{
		{Id: "exact", Follow: "2024-03-05T12:00"},
		{Id: "before", Follow: "2024-03-05T11:59"},
	}

	v := Build(recs, "", ModeOverdue, now)

	assert.Equal(t, []string{"before"}, ids(v.Items))
}

func TestBuild_Badges(t *testing.T) {
	recs := []models.Record{
		{Id: "today", Follow: "2024-03-05T08:00"}, // earlier today is still "today"
		{Id: "overdue", Follow: "2024-03-01T10:00"},
		{Id: "scheduled", Follow: "2024-04-01T10:00"},
		{Id: "none"},
		{Id: "bad", Follow: "not-a-date"},
	}

	v := Build(recs, "", ModeAll, now)
	require.Len(t, v.Items, 5)

	byId := map[string]Badge{}
	for _, it := range v.Items {
		byId[it.Id] = it.Badge
	}

	assert.Equal(t, BadgeToday, byId["today"])
	assert.Equal(t, BadgeOverdue, byId["overdue"])
	assert.Equal(t, BadgeScheduled, byId["scheduled"])
	assert.Equal(t, BadgeNone, byId["none"])
	assert.Equal(t, BadgeNone, byId["bad"])
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"all", "today", "overdue", "star"} {
		m, ok := ParseMode(s)
		assert.True(t, ok)
		assert.Equal(t, Mode(s), m)
	}

	m, ok := ParseMode("bogus")
	assert.False(t, ok)
	assert.Equal(t, ModeAll, m)
}
