package civiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_FixedZone(t *testing.T) {
	f, err := New("America/New_York")
	require.NoError(t, err)

	// 2025-06-01 18:30:00 UTC is 14:30 EDT
	instant := time.Date(2025, 6, 1, 18, 30, 45, 0, time.UTC)

	assert.Equal(t, "06/01/2025", f.Date(instant))
	assert.Equal(t, "06/01/2025, 02:30:45 PM", f.Timestamp(instant))
}

func TestFormatter_DateRollsWithZone(t *testing.T) {
	f, err := New("America/New_York")
	require.NoError(t, err)

	// 2025-01-02 03:00 UTC is still 2025-01-01 on the US east coast
	instant := time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, "01/01/2025", f.Date(instant))
}

func TestFormatter_DefaultZone(t *testing.T) {
	f, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultZone, f.Zone())
}

func TestFormatter_UnknownZone(t *testing.T) {
	_, err := New("Not/AZone")
	assert.Error(t, err)
}
