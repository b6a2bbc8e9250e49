package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("14:00")
		require.NoError(t, err)
		assert.Equal(t, "14:00", ts.String())
	})

	t.Run("unpadded hour is normalized", func(t *testing.T) {
		ts, err := NewTimeStringFromString("9:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
		// После нормализации лексикографический порядок совпадает с временным
		assert.True(t, ts.IsBefore(TimeString("14:00")))
		assert.True(t, ts.IsBefore(TimeString("10:00")))
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:99")
		assert.Error(t, err)

		_, err = NewTimeStringFromString("2pm")
		assert.Error(t, err)

		_, err = NewTimeStringFromString("")
		assert.Error(t, err)
	})
}

func TestTimeStringComparison(t *testing.T) {
	a := TimeString("10:30")
	b := TimeString("14:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, a.IsAfter(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	t.Run("within same day", func(t *testing.T) {
		ts, err := TimeString("14:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("15:30"), ts)
	})

	t.Run("crossing midnight", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(90)
		assert.Error(t, err)
	})
}

func TestTimeStringScan(t *testing.T) {
	t.Run("string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30:00"))
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("plain string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("21:00"))
		assert.Equal(t, TimeString("21:00"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 17, 30, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("17:30"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		ts := TimeString("10:30")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 9, 5, 42, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}
