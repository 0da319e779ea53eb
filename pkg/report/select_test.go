package report

import (
	"strings"
	"testing"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
)

func selectableFields() []Field {
	return []Field{
		{Name: "os", Label: "OS"},
		{Name: "host", Label: "Host"},
		{Name: "kernel", Label: "Kernel"},
		{Name: "uptime", Label: "Uptime"},
		{Name: "packages", Label: "Packages", NotImplemented: true},
		{Name: "shell", Label: "Shell"},
		{Name: "cpu", Label: "CPU"},
		{Name: "memory", Label: "Memory"},
		{Name: "disk", Label: "Disk"},
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		patterns  []string
		wantNames []string
	}{
		{
			name:      "no patterns keeps everything",
			patterns:  nil,
			wantNames: []string{"os", "host", "kernel", "uptime", "packages", "shell", "cpu", "memory", "disk"},
		},
		{
			name:      "exact match",
			patterns:  []string{"cpu"},
			wantNames: []string{"cpu"},
		},
		{
			name:      "prefix wildcard",
			patterns:  []string{"me*"},
			wantNames: []string{"memory"},
		},
		{
			name:      "suffix wildcard",
			patterns:  []string{"*l"},
			wantNames: []string{"kernel", "shell"},
		},
		{
			name:      "star matches everything",
			patterns:  []string{"*"},
			wantNames: []string{"os", "host", "kernel", "uptime", "packages", "shell", "cpu", "memory", "disk"},
		},
		{
			name:      "report order wins over pattern order",
			patterns:  []string{"disk", "os"},
			wantNames: []string{"os", "disk"},
		},
		{
			name:      "overlapping patterns do not duplicate",
			patterns:  []string{"cpu", "c*"},
			wantNames: []string{"cpu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(selectableFields(), tt.patterns)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("Select() returned %d fields, want %d", len(got), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if got[i].Name != name {
					t.Errorf("field %d = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestSelectRejectsUnknownPattern(t *testing.T) {
	_, err := Select(selectableFields(), []string{"cpu", "resolutio"})
	if zyerrors.CodeOf(err) != zyerrors.ErrCodeInvalidRequest {
		t.Fatalf("expected INVALID_REQUEST, got %v", err)
	}
}

func TestSelectSuggestsClosestName(t *testing.T) {
	_, err := Select(selectableFields(), []string{"memry"})
	if zyerrors.CodeOf(err) != zyerrors.ErrCodeInvalidRequest {
		t.Fatalf("expected INVALID_REQUEST, got %v", err)
	}
	if !strings.Contains(err.Error(), `did you mean "memory"`) {
		t.Errorf("expected a suggestion for %q, got %v", "memry", err)
	}
}

func TestSelectNoSuggestionForWildcards(t *testing.T) {
	_, err := Select(selectableFields(), []string{"memry*"})
	if zyerrors.CodeOf(err) != zyerrors.ErrCodeInvalidRequest {
		t.Fatalf("expected INVALID_REQUEST, got %v", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("wildcard patterns should not get suggestions, got %v", err)
	}
}

func TestSelectDoesNotShareBackingArray(t *testing.T) {
	fields := selectableFields()
	got, err := Select(fields, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got[0].Value = "mutated"
	if fields[0].Value == "mutated" {
		t.Error("Select() should copy the field slice")
	}
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		pattern string
		want    bool
	}{
		// Exact matches
		{"exact match - same", "memory", "memory", true},
		{"exact match - different", "memory", "disk", false},

		// Prefix wildcards
		{"prefix wildcard - matches", "memory", "mem*", true},
		{"prefix wildcard - no match", "shell", "mem*", false},
		{"prefix wildcard - empty prefix", "anything", "*", true},

		// Suffix wildcards
		{"suffix wildcard - matches", "shell", "*ll", true},
		{"suffix wildcard - no match", "memory", "*ll", false},

		// Contains wildcards
		{"contains wildcard - matches", "uptime", "*tim*", true},
		{"contains wildcard - at start", "uptime", "*up*", true},
		{"contains wildcard - no match", "disk", "*tim*", false},

		// Edge cases
		{"empty pattern", "os", "", false},
		{"empty field name", "", "pattern", false},
		{"both empty", "", "", true},
		{"asterisk in the middle", "abc", "a*c", false}, // middle wildcards are not supported
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesPattern(tt.field, tt.pattern)
			if got != tt.want {
				t.Errorf("matchesPattern(%q, %q) = %v, want %v", tt.field, tt.pattern, got, tt.want)
			}
		})
	}
}
