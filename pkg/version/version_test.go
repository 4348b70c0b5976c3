package version

import (
	"strings"
	"testing"
)

func TestGetFullVersion(t *testing.T) {
	orig := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = orig[0], orig[1], orig[2] })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	if got := GetVersion(); got != "v1.2.3" {
		t.Errorf("GetVersion() = %q", got)
	}
	full := GetFullVersion()
	for _, want := range []string{"v1.2.3", "commit: abc123", "built: 2026-01-02"} {
		if !strings.Contains(full, want) {
			t.Errorf("GetFullVersion() = %q, missing %q", full, want)
		}
	}
	if GetCommit() != "abc123" || GetDate() != "2026-01-02" {
		t.Errorf("GetCommit/GetDate = %q/%q", GetCommit(), GetDate())
	}
}
