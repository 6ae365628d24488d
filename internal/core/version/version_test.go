package version

import "testing"

func TestInfo(t *testing.T) {
	bi := Info()
	if bi.Service != "levain-api" || bi.Version != "dev" || bi.Date != "unknown" {
		t.Fatalf("info = %+v", bi)
	}
	if bi.Commit == "" {
		t.Fatal("commit should never be empty")
	}
}

func TestInfo_LdflagsWin(t *testing.T) {
	old := commit
	t.Cleanup(func() { commit = old })
	commit = "abc123"
	if got := Info().Commit; got != "abc123" {
		t.Fatalf("commit = %q", got)
	}
}
