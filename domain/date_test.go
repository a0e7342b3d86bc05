package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.August, Day: 29}, d)

	_, err = ParseDate("29/08/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	// Truncation keeps the calendar date in the time's own location.
	loc := time.FixedZone("UTC-5", -5*60*60)

	late := time.Date(2026, time.March, 1, 23, 45, 0, 0, loc)
	assert.Equal(t, Date{Year: 2026, Month: time.March, Day: 1}, DateOf(late))
}

func TestDateBefore(t *testing.T) {
	a := Date{Year: 2026, Month: time.January, Day: 15}
	b := Date{Year: 2026, Month: time.February, Day: 1}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestDateJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		d := Date{Year: 2026, Month: time.August, Day: 29}
		raw, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2026-08-29"`, string(raw))

		var parsed Date
		require.NoError(t, json.Unmarshal(raw, &parsed))
		assert.Equal(t, d, parsed)
	})

	t.Run("zero marshals as null", func(t *testing.T) {
		raw, err := json.Marshal(Date{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(raw))
	})

	t.Run("null and empty unmarshal as zero", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte("null"), &d))
		assert.True(t, d.IsZero())

		d = Date{Year: 2020, Month: time.May, Day: 5}
		require.NoError(t, json.Unmarshal([]byte(`""`), &d))
		assert.True(t, d.IsZero())
	})
}

func TestTaskCompleteReopen(t *testing.T) {
	task := &Task{Title: "write report", DueDate: Date{Year: 2026, Month: time.September, Day: 1}}

	on := Date{Year: 2026, Month: time.August, Day: 29}
	task.Complete(on)
	assert.True(t, task.Done)
	assert.Equal(t, on, task.CompletedDate)

	task.Reopen()
	assert.False(t, task.Done)
	assert.True(t, task.CompletedDate.IsZero())
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "alice", NormalizeUsername("Alice"))
	assert.Equal(t, "alice", NormalizeUsername("  aLiCe  "))
	assert.Equal(t, "", NormalizeUsername("   "))
}
