package news

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadInterests(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interests.txt")

	content := `# topics to follow
espace

jeux vidéo
  peinture
# commented out
cinéma
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	interests := LoadInterests(path)

	expected := []string{"espace", "jeux vidéo", "peinture", "cinéma"}
	if len(interests) != len(expected) {
		t.Fatalf("expected %d interests, got %d: %v", len(expected), len(interests), interests)
	}
	for i, want := range expected {
		if interests[i] != want {
			t.Errorf("interest %d: expected %q, got %q", i, want, interests[i])
		}
	}
}

func TestLoadInterests_MissingFile(t *testing.T) {
	interests := LoadInterests(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if len(interests) != 0 {
		t.Errorf("expected no interests for a missing file, got %v", interests)
	}
}

func TestFileInterests_RereadsOnEachCall(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interests.txt")

	if err := os.WriteFile(path, []byte("espace\n"), 0644); err != nil {
		t.Fatal(err)
	}

	src := FileInterests{Path: path}
	if got := src.Interests(); len(got) != 1 {
		t.Fatalf("expected 1 interest, got %v", got)
	}

	if err := os.WriteFile(path, []byte("espace\npeinture\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := src.Interests(); len(got) != 2 {
		t.Errorf("expected the updated list, got %v", got)
	}
}
