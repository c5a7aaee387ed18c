package calendar

// Event is the projector's view of an appointment: just enough to decide
// cell occupancy. Duration is deliberately absent — an appointment occupies
// only its starting hour cell regardless of length.
type Event struct {
	ID        string
	Day       int
	StartHour int
}

// Cell addresses one slot of the projected grid.
type Cell struct {
	Column int
	Hour   int
}

// HourRange is the inclusive span of hours rendered by the grid.
type HourRange struct {
	First int
	Last  int
}

// Contains reports whether the hour falls inside the range.
func (r HourRange) Contains(hour int) bool {
	return hour >= r.First && hour <= r.Last
}

// Hours enumerates the range in ascending order.
func (r HourRange) Hours() []int {
	if r.Last < r.First {
		return nil
	}
	hours := make([]int, 0, r.Last-r.First+1)
	for h := r.First; h <= r.Last; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Project buckets events into (column, hour) cells for the given view.
//
// In day view only logical column 0 participates and an event qualifies when
// its Day equals anchorDay (the anchor's Monday-based weekday). In week view
// — and in the month/year week-fallback — an event qualifies when its Day
// equals the column index. Events whose start hour lies outside the range
// land in no cell; cell contents preserve input order.
func Project(events []Event, view ViewType, anchorDay, columnCount int, hours HourRange) map[Cell][]string {
	cells := make(map[Cell][]string)
	for _, event := range events {
		if !hours.Contains(event.StartHour) {
			continue
		}

		var column int
		switch view {
		case ViewDay:
			if event.Day != anchorDay {
				continue
			}
			column = 0
		case ViewWeek, ViewMonth, ViewYear:
			if event.Day < 0 || event.Day >= columnCount {
				continue
			}
			column = event.Day
		default:
			continue
		}

		key := Cell{Column: column, Hour: event.StartHour}
		cells[key] = append(cells[key], event.ID)
	}
	return cells
}
