package statemachine

import (
	"testing"

	"restaurant-orders-api/models"
)

func TestStatusRules(t *testing.T) {
	tests := []struct {
		status     models.OrderStatus
		known      bool
		assignable bool
		mutable    bool
		deletable  bool
	}{
		{models.StatusPending, true, true, true, true},
		{models.StatusPreparing, true, true, true, false},
		{models.StatusOutForDelivery, true, true, true, false},
		{models.StatusDelivered, true, false, false, false},
		{"cancelled", false, false, true, false},
		{"", false, false, true, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := Known(tt.status); got != tt.known {
				t.Errorf("Known(%q) = %v, want %v", tt.status, got, tt.known)
			}
			if got := Assignable(tt.status); got != tt.assignable {
				t.Errorf("Assignable(%q) = %v, want %v", tt.status, got, tt.assignable)
			}
			if got := Mutable(tt.status); got != tt.mutable {
				t.Errorf("Mutable(%q) = %v, want %v", tt.status, got, tt.mutable)
			}
			if got := Deletable(tt.status); got != tt.deletable {
				t.Errorf("Deletable(%q) = %v, want %v", tt.status, got, tt.deletable)
			}
		})
	}
}

func TestTransitionsFollowLifecycle(t *testing.T) {
	tr := Transitions()
	if len(tr) != 3 {
		t.Fatalf("got %d transitions, want 3", len(tr))
	}
	if tr[0].From != models.StatusPending || tr[2].To != models.StatusDelivered {
		t.Fatalf("unexpected lifecycle ends: %+v", tr)
	}
	for i := 1; i < len(tr); i++ {
		if tr[i].From != tr[i-1].To {
			t.Errorf("transition %d does not continue from %q", i, tr[i-1].To)
		}
	}
}

func TestStatusesIsACopy(t *testing.T) {
	s := Statuses()
	s[0] = "mutated"
	if Statuses()[0] != models.StatusPending {
		t.Fatal("Statuses leaked the internal slice")
	}
}
