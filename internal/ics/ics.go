// Package ics builds a calendar event for one record's follow-up.
package ics

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/clientnotes/internal/common"
	"github.com/dmitrijs2005/clientnotes/internal/models"
)

// stampLayout is the UTC basic date-time format of RFC 5545.
const stampLayout = "20060102T150405Z"

var escaper = strings.NewReplacer(",", "\\,", ";", "\\;", "\n", "\\n")

// BuildEvent renders a single VCALENDAR block with one 30-minute VEVENT
// starting at the record's follow-up time. An empty follow-up fails with
// common.ErrMissingFollowUp, an unparseable one with common.ErrInvalidDate.
// Lines are CRLF-joined; comma, semicolon and newline in the summary and
// description are escaped per the calendar text rules.
func BuildEvent(r *models.Record, now time.Time) (string, error) {
	if r.Follow == "" {
		return "", common.ErrMissingFollowUp
	}
	start, ok := r.FollowTime()
	if !ok {
		return "", common.ErrInvalidDate
	}
	end := start.Add(30 * time.Minute)

	name := r.Name
	if name == "" {
		name = "client"
	}
	summary := "Follow-up: " + name

	desc := r.Note
	if r.Phone != "" {
		desc += " | Tel.: " + r.Phone
	}
	if r.Email != "" {
		desc += " | Email: " + r.Email
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//clientnotes//EN",
		"BEGIN:VEVENT",
		"UID:" + r.Id + "@clientnotes",
		"DTSTAMP:" + now.UTC().Format(stampLayout),
		"DTSTART:" + start.UTC().Format(stampLayout),
		"DTEND:" + end.UTC().Format(stampLayout),
		"SUMMARY:" + escaper.Replace(summary),
		"DESCRIPTION:" + escaper.Replace(desc),
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return strings.Join(lines, "\r\n"), nil
}
