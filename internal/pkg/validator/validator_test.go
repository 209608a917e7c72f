package validator

import (
	"testing"
	"time"
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
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestOptionalString(t *testing.T) {
	if OptionalString("  ") != nil {
		t.Errorf("OptionalString(blank) should be nil")
	}
	got := OptionalString(" eng ")
	if got == nil || *got != "eng" {
		t.Errorf("OptionalString(' eng ') = %v, want 'eng'", got)
	}
}

func TestDateField(t *testing.T) {
	var errs ValidationErrors

	if d := DateField(&errs, "start_date", ""); d != nil {
		t.Errorf("DateField(empty) = %v, want nil", d)
	}
	d := DateField(&errs, "start_date", "2025-05-01")
	if d == nil || !d.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateField(2025-05-01) = %v", d)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if d := DateField(&errs, "end_date", "05/03/2025"); d != nil {
		t.Errorf("DateField(malformed) = %v, want nil", d)
	}
	if errs.ToMap()["end_date"] == "" {
		t.Errorf("expected end_date error, got %v", errs)
	}
}

func TestEnumField(t *testing.T) {
	var errs ValidationErrors
	allowed := []string{"PRESENT", "ABSENT"}

	if v := EnumField(&errs, "status", "PRESENT", allowed); v == nil || *v != "PRESENT" {
		t.Errorf("EnumField(PRESENT) = %v", v)
	}
	if v := EnumField(&errs, "status", "", allowed); v != nil {
		t.Errorf("EnumField(empty) = %v, want nil", v)
	}
	if v := EnumField(&errs, "status", "bogus", allowed); v != nil {
		t.Errorf("EnumField(bogus) = %v, want nil", v)
	}
	if len(errs) != 1 {
		t.Errorf("expected 1 error, got %d", len(errs))
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "report_type", Message: "invalid"},
		{Field: "year", Message: "required"},
	}
	got := errs.Error()
	want := "report_type: invalid; year: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_Err(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Errorf("empty ValidationErrors.Err() should be nil")
	}
	errs.Add("year", "required")
	if errs.Err() == nil {
		t.Errorf("non-empty ValidationErrors.Err() should not be nil")
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "invalid"},
		{Field: "end_date", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"start_date": "invalid", "end_date": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestUUIDField(t *testing.T) {
	var errs ValidationErrors

	if v := UUIDField(&errs, "departmentId", ""); v != nil {
		t.Errorf("UUIDField(empty) = %v, want nil", v)
	}
	v := UUIDField(&errs, "departmentId", "123e4567-e89b-12d3-a456-426614174000")
	if v == nil || *v != "123e4567-e89b-12d3-a456-426614174000" {
		t.Errorf("UUIDField(valid) = %v", v)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if v := UUIDField(&errs, "departmentId", "eng"); v != nil {
		t.Errorf("UUIDField(eng) = %v, want nil", v)
	}
	if errs.ToMap()["departmentId"] == "" {
		t.Errorf("expected departmentId error, got %v", errs)
	}
}
