package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-31", "2024-02-29", "1999-12-01"}
	invalid := []string{"2025-02-30", "2025-13-01", "01/31/2025", "2025-1-5", "", "not-a-date"}

	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00+08:00",
		"2024-01-15T10:30:00.123Z",
	}
	invalid := []string{"2024-01-15", "2024-01-15 10:30:00", "", "tomorrow"}

	for _, ts := range valid {
		if _, ok := IsValidDateTime(ts); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", ts)
		}
	}
	for _, ts := range invalid {
		if _, ok := IsValidDateTime(ts); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", ts)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	allowed := []string{"hourly", "monthly"}

	if !IsInSlice("hourly", allowed) {
		t.Error("IsInSlice(hourly) = false, want true")
	}
	if IsInSlice("weekly", allowed) {
		t.Error("IsInSlice(weekly) = true, want false")
	}
	if IsInSlice("", allowed) {
		t.Error("IsInSlice(\"\") = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "full_name", Message: "is required"},
		{Field: "base_salary", Message: "must be non-negative"},
	}

	if got := errs.Error(); got != "full_name: is required; base_salary: must be non-negative" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if m["full_name"] != "is required" || m["base_salary"] != "must be non-negative" {
		t.Errorf("ToMap() = %v", m)
	}
}
