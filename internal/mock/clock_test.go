package mock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock_FiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	var fired []string
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	c.AfterFunc(5*time.Second, func() { fired = append(fired, "c") })

	c.Advance(3 * time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, start.Add(3*time.Second), c.Now())
	assert.Equal(t, 1, c.Pending())
}

func TestManualClock_Stop(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))

	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Minute)
	assert.False(t, fired)
}

func TestManualClock_ChainedTimers(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))

	count := 0
	var rearm func()
	rearm = func() {
		count++
		c.AfterFunc(time.Second, rearm)
	}
	c.AfterFunc(time.Second, rearm)

	c.Advance(3 * time.Second)
	assert.Equal(t, 3, count)
	assert.Equal(t, 1, c.Pending())
}
