package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPersonaSeeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "personas.yaml")
	data := `personas:
  - name: Priya
    age: 24
    gender: female
    bio: "chai lover"
    location: Mumbai
    vibes: [Deep talks, Music]
  - name: Aisha
    age: 22
    bio: "bookworm"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}

	seeds, err := LoadPersonaSeeds(path)
	if err != nil {
		t.Fatalf("LoadPersonaSeeds failed: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("expected 2 seeds, got %d", len(seeds))
	}
	if seeds[0].Name != "Priya" || seeds[0].Age != 24 || seeds[0].Location != "Mumbai" {
		t.Errorf("unexpected first seed: %+v", seeds[0])
	}
	if len(seeds[0].Vibes) != 2 {
		t.Errorf("expected 2 vibes, got %v", seeds[0].Vibes)
	}
}

func TestLoadPersonaSeedsMissingFile(t *testing.T) {
	if _, err := LoadPersonaSeeds("does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadPersonaSeedsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "personas.yaml")
	if err := os.WriteFile(path, []byte("personas: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	if _, err := LoadPersonaSeeds(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.SwipeDailyLimit != 20 {
		t.Errorf("expected default swipe limit 20, got %d", cfg.SwipeDailyLimit)
	}
	if cfg.MessageDailyLimit != 30 {
		t.Errorf("expected default message limit 30, got %d", cfg.MessageDailyLimit)
	}
	if cfg.OnLimitReached != "soft" {
		t.Errorf("expected default soft limit policy, got %q", cfg.OnLimitReached)
	}
	if cfg.HistoryWindow != 12 {
		t.Errorf("expected default history window 12, got %d", cfg.HistoryWindow)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SWIPE_DAILY_LIMIT", "5")
	t.Setenv("MATCH_THRESHOLD", "0.25")
	t.Setenv("ON_LIMIT_REACHED", "hard")

	cfg := LoadConfig()
	if cfg.SwipeDailyLimit != 5 {
		t.Errorf("expected swipe limit 5, got %d", cfg.SwipeDailyLimit)
	}
	if cfg.MatchThreshold != 0.25 {
		t.Errorf("expected match threshold 0.25, got %f", cfg.MatchThreshold)
	}
	if cfg.OnLimitReached != "hard" {
		t.Errorf("expected hard limit policy, got %q", cfg.OnLimitReached)
	}
}

func TestLoadConfigBadNumberFallsBack(t *testing.T) {
	t.Setenv("SWIPE_DAILY_LIMIT", "twenty")
	cfg := LoadConfig()
	if cfg.SwipeDailyLimit != 20 {
		t.Errorf("expected fallback 20 for bad value, got %d", cfg.SwipeDailyLimit)
	}
}
