package order

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func ValidStatus(s Status) bool { return validStatuses[s] }

// transitionAllowed reports whether an order may move between two statuses.
// Every transition between known statuses is currently accepted so that
// admins can correct orders by hand, including moving them backwards. If a
// real state machine is ever wanted, replace the body with a transition
// table; callers do not need to change.
func transitionAllowed(from, to Status) bool {
	_ = from
	return ValidStatus(to)
}
