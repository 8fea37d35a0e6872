package booking

// Morning and afternoon around the lunch closure.
var fixedSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

// FixedSlots returns a copy of the canonical daily slot labels, ascending.
func FixedSlots() []string {
	out := make([]string, len(fixedSlots))
	copy(out, fixedSlots)
	return out
}

func IsFixedSlot(label string) bool {
	for _, s := range fixedSlots {
		if s == label {
			return true
		}
	}
	return false
}

// OpenSlots removes the booked labels from the fixed slots, keeping canonical order.
func OpenSlots(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	open := make([]string, 0, len(fixedSlots))
	for _, s := range fixedSlots {
		if _, ok := taken[s]; !ok {
			open = append(open, s)
		}
	}
	return open
}

func Contains(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}
