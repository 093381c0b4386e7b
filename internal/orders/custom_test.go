package orders

import (
	"context"
	"testing"
	"time"
)

func testCustomStore() (*CustomStore, time.Time) {
	s := NewCustomStore(SeedCustomOrders(), 0)
	now := time.Date(2024, time.February, 2, 9, 0, 0, 0, time.UTC)
	s.nowFunc = func() time.Time { return now }
	return s, now
}

func TestCustomList_FiltersByStatus(t *testing.T) {
	s, _ := testCustomStore()

	quoted, err := s.List(context.Background(), CustomStatusQuoted)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(quoted) != 1 || quoted[0].CustomerName != "Bikash Rai" {
		t.Fatalf("expected only Bikash Rai quoted, got %+v", quoted)
	}
}

func TestCustomUpdate_StatusNoteAndQuoteTogether(t *testing.T) {
	s, now := testCustomStore()

	note := "Called, discussed flavors. Quoting 3 pounds."
	quote := 2800
	o, err := s.Update(context.Background(), "1", CustomStatusUpdate{
		Status:      CustomStatusQuoted,
		AdminNotes:  &note,
		QuotedPrice: &quote,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if o.Status != CustomStatusQuoted {
		t.Fatalf("expected quoted, got %s", o.Status)
	}
	if o.AdminNotes != note {
		t.Fatalf("expected note attached, got %q", o.AdminNotes)
	}
	if o.QuotedPrice == nil || *o.QuotedPrice != quote {
		t.Fatalf("expected quote %d, got %v", quote, o.QuotedPrice)
	}
	if !o.UpdatedAt.Equal(now) {
		t.Fatalf("expected UpdatedAt refreshed, got %v", o.UpdatedAt)
	}
}

func TestCustomUpdate_StatusOnlyKeepsExistingFields(t *testing.T) {
	s, _ := testCustomStore()

	// completed from quoted without touching the earlier note or quote
	o, err := s.Update(context.Background(), "2", CustomStatusUpdate{Status: CustomStatusCompleted})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if o.AdminNotes == "" || o.QuotedPrice == nil {
		t.Fatalf("expected note and quote preserved, got %+v", o)
	}

	if _, err := s.Update(context.Background(), "missing", CustomStatusUpdate{Status: CustomStatusContacted}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomCreate_DefaultsToNew(t *testing.T) {
	s, now := testCustomStore()

	o, err := s.Create(context.Background(), CustomOrder{
		CustomerName: "Maya Gurung",
		Phone:        "+977 9801234567",
		CakeDetails:  "Football themed cake, 2 pounds",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID == "" || o.Status != CustomStatusNew {
		t.Fatalf("expected assigned id and new status, got %+v", o)
	}
	if !o.CreatedAt.Equal(now) {
		t.Fatalf("expected CreatedAt %v, got %v", now, o.CreatedAt)
	}

	count, err := s.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 requests, got %d", count)
	}
}
