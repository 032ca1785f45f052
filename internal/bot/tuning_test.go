package bot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuning(t *testing.T) {
	tn := DefaultTuning()
	if tn.ThreatBase != 100 || tn.ThreatDecay != 0.1 || tn.ThreatHomeMultiplier != 5 {
		t.Fatalf("unexpected threat defaults: %+v", tn)
	}
	if tn.CleanupBudget != 8 || tn.CleanupItemRadius != 5 {
		t.Fatalf("unexpected cleanup defaults: %+v", tn)
	}
}

func TestLoadTuning_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("threat_base: 250\ncleanup_budget: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	tn, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tn.ThreatBase != 250 {
		t.Fatalf("threat_base = %v, want the file's 250", tn.ThreatBase)
	}
	if tn.CleanupBudget != 12 {
		t.Fatalf("cleanup_budget = %v, want the file's 12", tn.CleanupBudget)
	}
	if tn.ThreatDecay != 0.1 {
		t.Fatal("fields absent from the file keep their defaults")
	}
}

func TestLoadTuning_MissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadTuning_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
