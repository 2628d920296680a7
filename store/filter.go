package store

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nagulan1506/real-estate-app/models"
)

// Filter is the catalog search surface: every field is optional and the
// predicates combine with AND. The same filter compiles to a Mongo query
// for the live store and to an in-memory predicate for the demo catalog;
// the two must accept exactly the same documents.
type Filter struct {
	Location string
	Type     string
	MinPrice *int64
	MaxPrice *int64
	MinRooms *int
}

// Query compiles the filter for the live store.
func (f Filter) Query() bson.M {
	q := bson.M{}
	if f.Location != "" {
		q["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Location), Options: "i"}
	}
	if f.Type != "" {
		// Anchored case-insensitive match so the live path agrees with
		// the in-memory equality check.
		q["type"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(f.Type) + "$", Options: "i"}
	}
	if f.MinRooms != nil {
		q["rooms"] = bson.M{"$gte": *f.MinRooms}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		q["price"] = price
	}
	return q
}

// Match reports whether a property satisfies the filter.
func (f Filter) Match(p models.Property) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(p.Type, f.Type) {
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

// Apply filters a slice, preserving order and leaving the input intact.
func (f Filter) Apply(list []models.Property) []models.Property {
	out := make([]models.Property, 0, len(list))
	for _, p := range list {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
