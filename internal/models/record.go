// Package models defines the client note record and its field semantics.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is one client/contact note. No field is ever null: absent values
// are the empty string (or false for Star). The JSON tag order is also the
// fixed CSV column order of the import/export codec.
type Record struct {
	// Id is the immutable primary key, generated at creation.
	Id string `json:"id"`

	// Created is the creation time in milliseconds since the epoch.
	// Used only as a tie-break sort key; not required unique.
	Created int64 `json:"created"`

	// Name is the display label; may be empty.
	Name string `json:"name"`

	// Tag is a free-form category label.
	Tag string `json:"tag"`

	Phone string `json:"phone"`
	Email string `json:"email"`

	// Note is the free-form body text.
	Note string `json:"note"`

	// Follow is the next-contact timestamp in local "YYYY-MM-DDTHH:MM" form,
	// or empty when no follow-up is scheduled. Consumers must treat an
	// unparseable value as "no follow-up", never as an error.
	Follow string `json:"follow"`

	// Source is a free-form provenance label.
	Source string `json:"source"`

	// Star marks user-flagged importance.
	Star bool `json:"star"`
}

// NewId returns a fresh record id.
func NewId() string {
	return uuid.NewString()
}

// Now returns the current time as a Created value.
func Now() int64 {
	return time.Now().UnixMilli()
}

// Normalize fills the generated fields of a record parsed from an external
// source: a missing Id gets a fresh one, a missing Created gets the current
// time. String fields are already empty by zero value.
func (r *Record) Normalize() {
	if r.Id == "" {
		r.Id = NewId()
	}
	if r.Created == 0 {
		r.Created = Now()
	}
}

// followLayouts are the accepted follow formats, most specific first.
// The first two come from datetime-local style input and are interpreted
// in local time.
var followLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// FollowTime parses the follow timestamp. The second result is false when
// Follow is empty or does not parse.
func (r *Record) FollowTime() (time.Time, bool) {
	if r.Follow == "" {
		return time.Time{}, false
	}
	for _, layout := range followLayouts {
		if t, err := time.ParseInLocation(layout, r.Follow, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FollowDate returns the date portion (YYYY-MM-DD) of the follow timestamp,
// or an empty string when there is none.
func (r *Record) FollowDate() string {
	if len(r.Follow) < 10 {
		return ""
	}
	return r.Follow[:10]
}

// EditRequest is a partial-field override applied to an existing record as a
// merge-then-replace: nil fields keep the current value, non-nil fields
// replace it. Id and Created are never editable.
type EditRequest struct {
	Name   *string
	Tag    *string
	Phone  *string
	Email  *string
	Note   *string
	Follow *string
	Source *string
	Star   *bool
}

// Apply merges the request into a copy of r and returns the result.
func (e EditRequest) Apply(r Record) Record {
	if e.Name != nil {
		r.Name = *e.Name
	}
	if e.Tag != nil {
		r.Tag = *e.Tag
	}
	if e.Phone != nil {
		r.Phone = *e.Phone
	}
	if e.Email != nil {
		r.Email = *e.Email
	}
	if e.Note != nil {
		r.Note = *e.Note
	}
	if e.Follow != nil {
		r.Follow = *e.Follow
	}
	if e.Source != nil {
		r.Source = *e.Source
	}
	if e.Star != nil {
		r.Star = *e.Star
	}
	return r
}
