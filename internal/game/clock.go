package game

import (
	"fmt"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/entity"
)

const (
	minutesPerDay  = 24 * 60
	minutesPerTurn = 10
	startMinute    = 12 * 60
	dayStart       = 6 * 60
	nightStart     = 19 * 60
)

// Clock is the in-game time of day in minutes past midnight.
type Clock struct {
	minute int
}

// NewClock returns a clock set to noon.
func NewClock() Clock {
	return Clock{minute: startMinute}
}

// Advance moves the clock forward one world turn, wrapping at midnight.
func (c *Clock) Advance() {
	c.minute = (c.minute + minutesPerTurn) % minutesPerDay
}

// Minute returns minutes past midnight.
func (c Clock) Minute() int { return c.minute }

// TimeOfDay is day from 06:00 up to 19:00, night otherwise.
func (c Clock) TimeOfDay() entity.TimeOfDay {
	if c.minute >= dayStart && c.minute < nightStart {
		return entity.Day
	}
	return entity.Night
}

// String formats the time as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.minute/60, c.minute%60)
}
