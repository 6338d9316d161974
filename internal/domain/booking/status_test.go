package booking

import (
	"testing"
	"time"

	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		status      Status
		canCancel   bool
		canComplete bool
	}{
		{StatusBooked, true, true},
		{StatusCancelled, false, false},
		{StatusCompleted, false, false},
	}

	for _, c := range cases {
		if got := CanCancel(c.status) == nil; got != c.canCancel {
			t.Fatalf("CanCancel(%s): expected allowed=%v, got %v", c.status, c.canCancel, got)
		}
		if got := CanComplete(c.status) == nil; got != c.canComplete {
			t.Fatalf("CanComplete(%s): expected allowed=%v, got %v", c.status, c.canComplete, got)
		}
	}

	if err := CanCancel(StatusCompleted); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestCanMarkPaid(t *testing.T) {
	cases := []struct {
		status  Status
		payment PaymentStatus
		want    bool
	}{
		{StatusBooked, PaymentPending, true},
		{StatusBooked, PaymentPaid, false},
		{StatusCancelled, PaymentPending, false},
		{StatusCompleted, PaymentPending, false},
	}

	for _, c := range cases {
		if got := CanMarkPaid(c.status, c.payment) == nil; got != c.want {
			t.Fatalf("CanMarkPaid(%s, %s): expected allowed=%v, got %v", c.status, c.payment, c.want, got)
		}
	}
}

func TestCancelAppointment(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusBooked)}
	if err := Cancel(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Fatalf("expected status cancelled, got %s", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatal("expected CancelledAt to be set")
	}

	done := &models.Appointment{Status: string(StatusCompleted)}
	err := Cancel(done, now)
	if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}
	if done.Status != string(StatusCompleted) {
		t.Fatal("completed appointment must not be mutated on rejected cancel")
	}
}

func TestMarkPaidAppointment(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusBooked), PaymentStatus: string(PaymentPending)}
	if err := MarkPaid(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.PaymentStatus != string(PaymentPaid) {
		t.Fatalf("expected payment status paid, got %s", ap.PaymentStatus)
	}
	if ap.PaidAt == nil {
		t.Fatal("expected PaidAt to be set")
	}

	if err := MarkPaid(ap, now); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state on second MarkPaid, got %v", err)
	}

	cancelled := &models.Appointment{Status: string(StatusCancelled), PaymentStatus: string(PaymentPending)}
	if err := MarkPaid(cancelled, now); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state for cancelled appointment, got %v", err)
	}
	if cancelled.PaymentStatus != string(PaymentPending) {
		t.Fatal("cancelled appointment must not be mutated on rejected MarkPaid")
	}
}
