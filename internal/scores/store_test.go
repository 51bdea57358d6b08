package scores

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Best() != 0 || len(s.Top(5)) != 0 {
		t.Error("missing file should be an empty table")
	}
}

func TestAddPersistsAndOrders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, sc := range []int{3, 9, 1, 9} {
		err := s.Add(Record{ID: uuid.New(), Name: "p", Score: sc, Difficulty: "normal", At: base.Add(time.Duration(i) * time.Minute)})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	top := again.Top(10)
	got := []int{}
	for _, r := range top {
		got = append(got, r.Score)
	}
	if len(got) != 4 || got[0] != 9 || got[1] != 9 || got[2] != 3 || got[3] != 1 {
		t.Fatalf("scores = %v", got)
	}
	if !top[0].At.Before(top[1].At) {
		t.Error("ties should keep the earlier record first")
	}
	if again.Best() != 9 {
		t.Errorf("Best() = %d", again.Best())
	}
}

func TestAddCapsAndNamesAnonymous(t *testing.T) {
	s, _ := Open("")
	for i := 0; i < DefaultLimit+5; i++ {
		if err := s.Add(Record{Score: i}); err != nil {
			t.Fatal(err)
		}
	}
	top := s.Top(100)
	if len(top) != DefaultLimit {
		t.Fatalf("kept %d records", len(top))
	}
	if top[len(top)-1].Score != 5 {
		t.Errorf("lowest kept score = %d, want 5", top[len(top)-1].Score)
	}
	if top[0].Name != "anonymous" {
		t.Errorf("name = %q", top[0].Name)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil || !strings.Contains(err.Error(), "decode") {
		t.Errorf("Open corrupt file: err = %v", err)
	}
}

func TestTable(t *testing.T) {
	if out := Table(nil); !strings.Contains(out, "no scores") {
		t.Errorf("empty table = %q", out)
	}
	out := Table([]Record{{Name: "averyveryverylongname", Score: 12, Difficulty: "hard"}})
	if !strings.Contains(out, "12") || !strings.Contains(out, "hard") || !strings.Contains(out, "…") {
		t.Errorf("table = %q", out)
	}
}
