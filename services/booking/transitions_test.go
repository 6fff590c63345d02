package booking

import (
	"testing"

	"trimly/models"
)

func TestTransitionTable(t *testing.T) {
	all := []models.BookingStatus{
		models.BookingPending,
		models.BookingApproved,
		models.BookingRejected,
		models.BookingConfirmed,
		models.BookingInProgress,
		models.BookingCompleted,
		models.BookingCancelled,
	}

	allowed := map[models.BookingStatus]map[models.BookingStatus]bool{
		models.BookingPending: {
			models.BookingApproved: true,
			models.BookingRejected: true,
		},
		models.BookingApproved: {
			models.BookingConfirmed: true,
			models.BookingCompleted: true,
			models.BookingCancelled: true,
		},
		models.BookingConfirmed: {
			models.BookingInProgress: true,
			models.BookingCompleted:  true,
			models.BookingCancelled:  true,
		},
		models.BookingInProgress: {
			models.BookingCompleted: true,
			models.BookingCancelled: true,
		},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, status := range []models.BookingStatus{models.BookingCompleted, models.BookingRejected, models.BookingCancelled} {
		if !status.IsTerminal() {
			t.Errorf("%s should be terminal", status)
		}
		if _, ok := transitionTable[status]; ok {
			t.Errorf("terminal status %s must not appear in the transition table", status)
		}
	}
}

func TestRequiresShopOwner(t *testing.T) {
	ownerOnly := map[models.BookingStatus]bool{
		models.BookingApproved: true,
		models.BookingRejected: true,
	}
	for _, status := range []models.BookingStatus{
		models.BookingApproved, models.BookingRejected, models.BookingConfirmed,
		models.BookingInProgress, models.BookingCompleted, models.BookingCancelled,
	} {
		if got := RequiresShopOwner(status); got != ownerOnly[status] {
			t.Errorf("RequiresShopOwner(%s) = %v, want %v", status, got, ownerOnly[status])
		}
	}
}
