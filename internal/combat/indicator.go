package combat

// Attack bar geometry, in abstract pixels.
const (
	barWidth       = 300
	indicatorWidth = 10
	indicatorSpeed = 5
)

// Indicator is the marker bouncing along the attack bar. The UI ticks it at a
// fixed rate and releases it with Value when the player strikes.
type Indicator struct {
	x     int
	right bool
}

// NewIndicator returns an indicator at the left end moving right.
func NewIndicator() *Indicator {
	return &Indicator{right: true}
}

// Tick advances the indicator one step, bouncing off both ends.
func (i *Indicator) Tick() {
	if i.right {
		i.x += indicatorSpeed
		if i.x+indicatorWidth >= barWidth {
			i.x = barWidth - indicatorWidth
			i.right = false
		}
		return
	}
	i.x -= indicatorSpeed
	if i.x <= 0 {
		i.x = 0
		i.right = true
	}
}

// Value returns the indicator centre as a fraction of the bar width.
func (i *Indicator) Value() float64 {
	return float64(i.x+indicatorWidth/2) / barWidth
}
