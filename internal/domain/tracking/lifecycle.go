package tracking

// validTransitions is the legal status graph:
// Scheduled → Collected → {In Transit, At Facility} → Disposed, with
// Cancelled reachable from any non-terminal state. The update-status
// endpoint does not enforce it (collectors may correct mistakes by
// setting any status); it is exposed so clients can render sensible
// next-step choices.
var validTransitions = map[Status][]Status{
	StatusScheduled:  {StatusCollected, StatusCancelled},
	StatusCollected:  {StatusInTransit, StatusAtFacility, StatusCancelled},
	StatusInTransit:  {StatusAtFacility, StatusCancelled},
	StatusAtFacility: {StatusDisposed, StatusCancelled},
	StatusDisposed:   {},
	StatusCancelled:  {},
}

// AllowedTransitions returns the legal next statuses from current.
func AllowedTransitions(current Status) []Status {
	return validTransitions[current]
}

// CanTransition reports whether moving from current to next follows the
// legal graph.
func CanTransition(current, next Status) bool {
	for _, s := range validTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}
