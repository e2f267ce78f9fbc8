package booking

type Status string

const (
	StatusAvailable    Status = "AVAILABLE"
	StatusNotAvailable Status = "NOT_AVAILABLE"
)

// Grid maps "YYYY-MM-DD" to "HH:MM" to a slot status. It is never persisted.
type Grid map[string]map[string]Status

// NewGrid builds a grid where every slot of every date is available.
func NewGrid(dates []Date, slots []TimeOfDay) Grid {
	g := make(Grid, len(dates))
	for _, d := range dates {
		day := make(map[string]Status, len(slots))
		for _, s := range slots {
			day[s.String()] = StatusAvailable
		}
		g[d.String()] = day
	}
	return g
}

// MarkTaken flags a slot as booked. Slots outside the grid are ignored and reported as false.
func (g Grid) MarkTaken(d Date, t TimeOfDay) bool {
	day, ok := g[d.String()]
	if !ok {
		return false
	}
	key := t.String()
	if _, ok := day[key]; !ok {
		return false
	}
	day[key] = StatusNotAvailable
	return true
}

func (g Grid) Status(d Date, t TimeOfDay) (Status, bool) {
	day, ok := g[d.String()]
	if !ok {
		return "", false
	}
	s, ok := day[t.String()]
	return s, ok
}
