package playback

type Zone int

const (
	ZoneToggle Zone = iota
	ZoneBack
	ZoneForward
)

func (z Zone) String() string {
	switch z {
	case ZoneBack:
		return "back"
	case ZoneForward:
		return "forward"
	default:
		return "toggle"
	}
}

// Zoning splits the frame width, in percent, into back, toggle and forward
// regions.
type Zoning struct {
	Back    float64
	Forward float64
}

var DefaultZoning = Zoning{Back: 30, Forward: 70}

// Classify maps a horizontal tap position in percent to a zone.
func (z Zoning) Classify(x float64) Zone {
	switch {
	case x < z.Back:
		return ZoneBack
	case x > z.Forward:
		return ZoneForward
	default:
		return ZoneToggle
	}
}

// PercentX converts a pixel offset within a frame of the given width to a
// percentage.
func PercentX(offset, width float64) float64 {
	if width <= 0 {
		return 50
	}
	return offset / width * 100
}
