package store

import (
	"context"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nagulan1506/real-estate-app/models"
)

func intPtr(n int) *int       { return &n }
func int64Ptr(n int64) *int64 { return &n }

// satisfies re-states the filter contract independently of Match, so the
// in-memory path is checked against the predicate definition rather than
// against itself.
func satisfies(f Filter, p models.Property) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Type != "" && strings.ToLower(p.Type) != strings.ToLower(f.Type) {
		return false
	}
	if f.MinRooms != nil && p.Rooms < *f.MinRooms {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func TestFilterApplyAgainstDemoCatalog(t *testing.T) {
	filters := []struct {
		name string
		f    Filter
	}{
		{"empty", Filter{}},
		{"location substring", Filter{Location: "anna nagar"}},
		{"location case insensitive", Filter{Location: "CHENNAI"}},
		{"type exact", Filter{Type: "Apartment"}},
		{"type case insensitive", Filter{Type: "house"}},
		{"min rooms", Filter{MinRooms: intPtr(4)}},
		{"price band", Filter{MinPrice: int64Ptr(8000000), MaxPrice: int64Ptr(30000000)}},
		{"combined", Filter{Location: "chennai", Type: "House", MinRooms: intPtr(3), MinPrice: int64Ptr(10000000), MaxPrice: int64Ptr(50000000)}},
		{"excludes everything", Filter{MinPrice: int64Ptr(999999999)}},
	}

	for _, tc := range filters {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.f.Apply(mockProperties)

			want := 0
			for _, p := range mockProperties {
				if satisfies(tc.f, p) {
					want++
				}
			}
			if len(got) != want {
				t.Fatalf("got %d properties, want %d", len(got), want)
			}
			for _, p := range got {
				if !satisfies(tc.f, p) {
					t.Errorf("property %s does not satisfy filter %+v", p.ID, tc.f)
				}
			}
		})
	}
}

func TestFilterApplyPreservesOrder(t *testing.T) {
	f := Filter{Location: "Chennai"}
	got := f.Apply(mockProperties)
	if len(got) != len(mockProperties) {
		t.Fatalf("expected every demo property to match, got %d of %d", len(got), len(mockProperties))
	}
	for i := range got {
		if got[i].ID != mockProperties[i].ID {
			t.Fatalf("order changed at index %d: got %s want %s", i, got[i].ID, mockProperties[i].ID)
		}
	}
}

func TestFilterApplyBoundsAreInclusive(t *testing.T) {
	f := Filter{MinPrice: int64Ptr(7500000), MaxPrice: int64Ptr(7500000)}
	got := f.Apply(mockProperties)
	if len(got) != 1 || got[0].ID != "p7" {
		t.Fatalf("expected exactly p7 at the inclusive bound, got %v", got)
	}

	rooms := Filter{MinRooms: intPtr(5)}
	found := false
	for _, p := range rooms.Apply(mockProperties) {
		if p.Rooms == 5 {
			found = true
		}
	}
	if !found {
		t.Fatal("rooms filter should include properties with exactly the minimum")
	}
}

func TestFilterQueryShape(t *testing.T) {
	f := Filter{
		Location: "Adyar",
		Type:     "House",
		MinRooms: intPtr(2),
		MinPrice: int64Ptr(100),
		MaxPrice: int64Ptr(200),
	}
	q := f.Query()

	for _, key := range []string{"location", "type", "rooms", "price"} {
		if _, ok := q[key]; !ok {
			t.Errorf("query missing %q", key)
		}
	}

	price, ok := q["price"].(bson.M)
	if !ok {
		t.Fatalf("price clause has wrong type: %T", q["price"])
	}
	if price["$gte"] != int64(100) || price["$lte"] != int64(200) {
		t.Errorf("price bounds wrong: %v", price)
	}

	if len(Filter{}.Query()) != 0 {
		t.Error("empty filter should compile to an empty query")
	}
}

func TestFilterIgnoresAbsentParams(t *testing.T) {
	// A filter with no fields set must pass everything through.
	got := Filter{}.Apply(mockProperties)
	if len(got) != len(mockProperties) {
		t.Fatalf("empty filter dropped properties: %d of %d", len(got), len(mockProperties))
	}
}

func TestStaticListAndGet(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()

	list, err := s.ListProperties(ctx, Filter{Type: "Apartment"})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range list {
		if p.Type != "Apartment" {
			t.Errorf("got non-apartment %s", p.ID)
		}
	}

	p, err := s.GetProperty(ctx, "p1")
	if err != nil || p.Title != "Grand Villa in Anna Nagar" {
		t.Fatalf("GetProperty(p1) = %v, %v", p, err)
	}
	if _, err := s.GetProperty(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	agents, err := s.ListAgents(ctx)
	if err != nil || len(agents) != 4 {
		t.Fatalf("ListAgents = %d agents, %v", len(agents), err)
	}

	handled, err := s.ListPropertiesByAgent(ctx, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if len(handled) != 3 {
		t.Fatalf("agent a1 should handle 3 properties, got %d", len(handled))
	}
}
