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

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2023-01", "2023-12", "1999-06"}
	invalid := []string{"2023-13", "2023-00", "2023-1", "23-01", "2023/01", "2023-01-01", ""}
	for _, m := range valid {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"VAE-0001", "VAE-0042", "VAE-12345"}
	invalid := []string{"VAE-001", "vae-0001", "VAE0001", "EMP-0001", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2023-10-02"); !ok {
		t.Error("IsValidDate(2023-10-02) = false, want true")
	}
	if _, ok := IsValidDate("02/10/2023"); ok {
		t.Error("IsValidDate(02/10/2023) = true, want false")
	}
}
