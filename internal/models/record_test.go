package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FillsGeneratedFields(t *testing.T) {
	var r Record
	r.Normalize()

	assert.NotEmpty(t, r.Id)
	assert.NotZero(t, r.Created)
}

func TestNormalize_KeepsExistingFields(t *testing.T) {
	r := Record{Id: "id1", Created: 42}
	r.Normalize()

	assert.Equal(t, "id1", r.Id)
	assert.Equal(t, int64(42), r.Created)
}

func TestFollowTime(t *testing.T) {
	tests := []struct {
		name   string
		follow string
		ok     bool
		want   time.Time
	}{
		{"empty", "", false, time.Time{}},
		{"garbage", "not-a-date", false, time.Time{}},
		{"datetime-local", "2024-03-05T09:30", true,
			time.Date(2024, 3, 5, 9, 30, 0, 0, time.Local)},
		{"with seconds", "2024-03-05T09:30:15", true,
			time.Date(2024, 3, 5, 9, 30, 15, 0, time.Local)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Record{Follow: tc.follow}
			got, ok := r.FollowTime()
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.True(t, tc.want.Equal(got), "want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFollowDate(t *testing.T) {
	assert.Equal(t, "2024-03-05", (&Record{Follow: "2024-03-05T09:30"}).FollowDate())
	assert.Equal(t, "", (&Record{}).FollowDate())
	assert.Equal(t, "", (&Record{Follow: "short"}).FollowDate())
}

func TestEditRequest_Apply(t *testing.T) {
	orig := Record{
		Id: "id1", Created: 7,
		Name: "Anna", Tag: "lead", Phone: "123",
		Note: "old note", Follow: "2024-01-01T10:00",
	}

	name := "Boris"
	star := true
	empty := ""

	got := EditRequest{Name: &name, Star: &star, Follow: &empty}.Apply(orig)

	assert.Equal(t, "Boris", got.Name)
	assert.True(t, got.Star)
	assert.Equal(t, "", got.Follow, "empty override clears the follow-up")
	assert.Equal(t, "lead", got.Tag, "nil fields keep current values")
	assert.Equal(t, "123", got.Phone)
	assert.Equal(t, "id1", got.Id)
	assert.Equal(t, int64(7), got.Created)
}
