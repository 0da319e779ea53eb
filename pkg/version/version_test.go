package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get("zyfetch")

	if info.Name != "zyfetch" {
		t.Errorf("expected name zyfetch, got %q", info.Name)
	}
	if info.Version != Version {
		t.Errorf("expected version %q, got %q", Version, info.Version)
	}
	if info.Commit != Commit {
		t.Errorf("expected commit %q, got %q", Commit, info.Commit)
	}
	if info.Date != Date {
		t.Errorf("expected date %q, got %q", Date, info.Date)
	}
}

func TestRenderText(t *testing.T) {
	info := Info{Name: "zyfetch", Version: "1.0.0", Commit: "abc1234", Date: "2025-01-01"}

	got := info.RenderText()

	if !strings.HasPrefix(got, "zyfetch 1.0.0") {
		t.Errorf("expected name and version prefix, got %q", got)
	}
	if !strings.Contains(got, "commit: abc1234") {
		t.Errorf("expected commit in output, got %q", got)
	}
	if !strings.Contains(got, "built: 2025-01-01") {
		t.Errorf("expected build date in output, got %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("expected trailing newline, got %q", got)
	}
}
