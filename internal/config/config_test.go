package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePlayDays(t *testing.T) {
	assert.Equal(t, []time.Weekday{time.Tuesday, time.Thursday, time.Saturday}, parsePlayDays(""))
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, parsePlayDays("mon,fri"))
	assert.Equal(t, []time.Weekday{time.Wednesday}, parsePlayDays("Wednesday"))
	// Garbage falls back to the default schedule.
	assert.Equal(t, []time.Weekday{time.Tuesday, time.Thursday, time.Saturday}, parsePlayDays("xyz,abc"))
}

func TestHTTPAddr(t *testing.T) {
	assert.Equal(t, ":8080", (&Config{Port: "8080"}).HTTPAddr())
	assert.Equal(t, ":9000", (&Config{Port: ":9000"}).HTTPAddr())
	assert.Equal(t, ":8080", (&Config{Port: ""}).HTTPAddr())
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, int64(120000), parseInt64("120000", 0))
	assert.Equal(t, int64(5), parseInt64("not-a-number", 5))
	assert.True(t, parseBool("true", false))
	assert.False(t, parseBool("", false))
	assert.Equal(t, 24*time.Hour, parseDuration("", "24h"))
	assert.Equal(t, 30*time.Minute, parseDuration("30m", "24h"))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a, b ,"))
}
