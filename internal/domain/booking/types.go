package booking

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusProcessing     Status = "processing"
	StatusConfirmed      Status = "confirmed"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
	StatusNoShow         Status = "no_show"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusProcessing, StatusConfirmed,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusNoShow
}

// statusTransitions is the intended lifecycle. Enforced only when strict
// transitions are enabled; the reference behavior is permissive.
var statusTransitions = map[Status][]Status{
	StatusPendingPayment: {StatusProcessing},
	StatusProcessing:     {StatusConfirmed},
	StatusConfirmed:      {StatusCompleted},
	StatusCompleted:      {},
	StatusCancelled:      {},
	StatusNoShow:         {},
}

// CanTransition reports whether from → to follows the lifecycle diagram.
// Any non-terminal status may move to cancelled or no_show.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	if from.IsTerminal() {
		return false
	}
	if to == StatusCancelled || to == StatusNoShow {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) String() string { return string(p) }

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}
