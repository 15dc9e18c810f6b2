package core

import "time"

// TimeSource is a monotonic tick counter with a fixed frequency.
type TimeSource interface {
	Now() uint64
	Frequency() uint64
}

// MonotonicSource reports nanoseconds elapsed since it was created.
type MonotonicSource struct {
	start time.Time
}

// NewMonotonicSource starts a nanosecond time source at zero.
func NewMonotonicSource() *MonotonicSource {
	return &MonotonicSource{start: time.Now()}
}

// Now returns the elapsed ticks. time.Since uses the monotonic clock reading.
func (m *MonotonicSource) Now() uint64 { return uint64(time.Since(m.start)) }

// Frequency returns ticks per second.
func (m *MonotonicSource) Frequency() uint64 { return uint64(time.Second) }

// Clock is a fixed-timestep accumulator deciding when a generation is due,
// independent of how often it is polled.
//
// At most one step is reported per Tick. After a stall the clock does not
// catch up with multiple steps, so the rate is capped by the polling rate.
type Clock struct {
	rate        float64
	period      float64
	frequency   float64
	accumulated float64
	last        uint64
}

// NewClock constructs a Clock targeting rate steps per second, reading
// timestamps of the given frequency, starting at now.
func NewClock(rate float64, frequency uint64, now uint64) *Clock {
	if frequency == 0 {
		frequency = uint64(time.Second)
	}
	c := &Clock{frequency: float64(frequency), last: now}
	c.SetRate(rate)
	return c
}

// SetRate changes the target steps per second. The accumulator is kept.
func (c *Clock) SetRate(rate float64) {
	if rate <= 0 {
		rate = 20
	}
	c.rate = rate
	c.period = 1 / rate
}

// Rate returns the target steps per second.
func (c *Clock) Rate() float64 { return c.rate }

// Period returns the seconds between steps.
func (c *Clock) Period() float64 { return c.period }

// Accumulated returns the seconds carried towards the next step.
func (c *Clock) Accumulated() float64 { return c.accumulated }

// Tick folds the time elapsed since the previous call into the accumulator
// and reports whether a step is due. Excess time is retained.
func (c *Clock) Tick(now uint64) bool {
	if now > c.last {
		c.accumulated += float64(now-c.last) / c.frequency
	}
	c.last = now
	if c.accumulated >= c.period {
		c.accumulated -= c.period
		return true
	}
	return false
}
