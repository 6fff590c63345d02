package booking

import (
	"trimly/models"
)

// transitionTable is the explicit booking state machine. A status maps to the
// set of statuses reachable from it; terminal states are absent. Every
// transition request is checked against this table, uniformly.
var transitionTable = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:    {models.BookingApproved, models.BookingRejected},
	models.BookingApproved:   {models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled},
	models.BookingConfirmed:  {models.BookingInProgress, models.BookingCompleted, models.BookingCancelled},
	models.BookingInProgress: {models.BookingCompleted, models.BookingCancelled},
}

// CanTransition reports whether the state machine permits moving from one
// status to another.
func CanTransition(from, to models.BookingStatus) bool {
	for _, allowed := range transitionTable[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

// RequiresShopOwner reports whether a transition into the given status is
// restricted to the shop owner. Approval and rejection are owner decisions;
// every other transition is open to either participant.
func RequiresShopOwner(to models.BookingStatus) bool {
	return to == models.BookingApproved || to == models.BookingRejected
}
