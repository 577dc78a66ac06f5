package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		dateStr     string
		expectedOk  bool
		expectedY   int
		expectedM   time.Month
		expectedD   int
		expectedFmt string
	}{
		{"JS ISO timestamp", "2024-01-15T10:30:00.000Z", true, 2024, time.January, 15, time.RFC3339Nano},
		{"RFC3339 with offset", "2023-12-01T08:00:00+02:00", true, 2023, time.December, 1, time.RFC3339Nano},
		{"Local timestamp", "2024-03-05T12:00:00", true, 2024, time.March, 5, DateLayoutLocal},
		{"ISO date", "2024-01-02", true, 2024, time.January, 2, DateLayoutISO},
		{"European format", "15.01.2023", true, 2023, time.January, 15, DateLayoutEuropean},
		{"US format", "01/15/2023", true, 2023, time.January, 15, DateLayoutUS},
		{"Full timestamp", "2023-01-15 10:30:45", true, 2023, time.January, 15, DateLayoutFull},
		{"Padded", "  2024-01-02  ", true, 2024, time.January, 2, DateLayoutISO},
		{"Empty string", "", false, 0, 0, 0, ""},
		{"Invalid format", "not a date", false, 0, 0, 0, ""},
		{"Month label", "Jan 2024", false, 0, 0, 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, format, err := ParseDate(tc.dateStr)

			if tc.expectedOk {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
				assert.Equal(t, tc.expectedFmt, format)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseDateString_KeepsRecordedOffset(t *testing.T) {
	// 23:30 at -05:00 is already February in UTC but January as recorded.
	date, err := ParseDateString("2024-01-31T23:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, time.January, date.Month())
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2024, time.January, 15, 11, 30, 0, 123456789, loc)

	assert.Equal(t, "2024-01-15T10:30:00.123Z", FormatTimestamp(ts))

	parsed, err := ParseDateString(FormatTimestamp(ts))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts.Truncate(time.Millisecond)))
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2023-01-15", ToISODate(time.Date(2023, time.January, 15, 10, 30, 0, 0, time.UTC)))
}

func TestCleanDateString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2023-01-15", "2023-01-15"},
		{"  2023-01-15  ", "2023-01-15"},
		{"Jan  2,   2006", "Jan 2, 2006"},
		{"\t15.01.2023\n", "15.01.2023"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, CleanDateString(tc.input))
	}
}

func TestStartOfMonth(t *testing.T) {
	date := time.Date(2024, time.February, 29, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(date))
}
