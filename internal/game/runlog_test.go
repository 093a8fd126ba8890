package game

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLogDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := runLogDir()
	if err != nil {
		t.Fatalf("runLogDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "glaive")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestRunLogDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "") // force the fallback path

	dir, err := runLogDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "glaive")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestSaveRunLogAppendsJSONLines(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	first := newRunLog()
	first.FloorsReached = 3
	first.TurnsPlayed = 42
	first.ItemsUsed["health potion"] = 2
	first.Died = true
	saveRunLog(first)

	second := newRunLog()
	second.FloorsReached = 1
	saveRunLog(second)

	f, err := os.Open(filepath.Join(tmp, "glaive", "runs.jsonl"))
	if err != nil {
		t.Fatalf("open runs.jsonl: %v", err)
	}
	defer f.Close()

	var got []RunLog
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var r RunLog
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("bad JSON line %q: %v", sc.Text(), err)
		}
		got = append(got, r)
	}
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0].FloorsReached != 3 || !got[0].Died {
		t.Errorf("first line = %+v", got[0])
	}
	if got[0].ItemsUsed["health potion"] != 2 {
		t.Errorf("items used = %v", got[0].ItemsUsed)
	}
}
