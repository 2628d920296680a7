package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "ravi.kumar@example.com", "x+tag@sub.domain.org"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("%q should be valid", e)
		}
	}

	invalid := []string{"", "plain", "@nouser.com", "user@", "user@nodot", "user@.com", "user@dot."}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("%q should be invalid", e)
		}
	}
}

func TestIsValidPropertyType(t *testing.T) {
	for _, v := range []string{"Apartment", "apartment", "HOUSE", "Villa", "condo", "Studio"} {
		if !IsValidPropertyType(v) {
			t.Errorf("%q should be valid", v)
		}
	}
	for _, v := range []string{"", "Castle", "Apartments", "Land"} {
		if IsValidPropertyType(v) {
			t.Errorf("%q should be invalid", v)
		}
	}
}
