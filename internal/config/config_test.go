package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() differ:\n%+v\n%+v", cfg, Default())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
obstacles:
  count: 12
  acceleration: 1.5
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Obstacles.Count != 12 {
		t.Errorf("Count = %d, expected 12", cfg.Obstacles.Count)
	}
	if cfg.Obstacles.Acceleration != 1.5 {
		t.Errorf("Acceleration = %v, expected 1.5", cfg.Obstacles.Acceleration)
	}
	// Untouched keys keep defaults
	if cfg.Obstacles.Size != 20 {
		t.Errorf("Size = %v, expected default 20", cfg.Obstacles.Size)
	}
	if cfg.Player.Speed != 7.5 {
		t.Errorf("Player.Speed = %v, expected default 7.5", cfg.Player.Speed)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg != Default() {
		t.Error("empty document should yield defaults")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("obstacles:\n  cuont: 3\n"))
	if err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"no obstacles", func(c *Config) { c.Obstacles.Count = 0 }, "obstacles.count"},
		{"huge obstacles", func(c *Config) { c.Obstacles.Size = 300 }, "obstacles.size"},
		{"negative acceleration", func(c *Config) { c.Obstacles.Acceleration = -1 }, "obstacles.acceleration"},
		{"zero player speed", func(c *Config) { c.Player.Speed = 0 }, "player.speed"},
		{"decay of one never settles", func(c *Config) { c.Player.RotationDecay = 1 }, "player.rotation_decay"},
		{"rocket too tall", func(c *Config) { c.Player.Height = 400 }, "does not fit"},
		{"zero screen", func(c *Config) { c.Screen.Width = 0 }, "screen"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Speed != 10 {
		t.Errorf("Player.Speed = %v, expected 10", cfg.Player.Speed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Error("expected embedded defaults when no files exist")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("obstacles:\n  count: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Obstacles.Count != 4 {
		t.Errorf("Count = %d, expected 4 from ./configs", cfg.Obstacles.Count)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != Default() {
		t.Error("round trip changed the tuning")
	}
}

func TestTickConversions(t *testing.T) {
	cfg := Default()

	if got := cfg.GoDelayTicks(60); got != 30 {
		t.Errorf("GoDelayTicks(60) = %d, expected 30", got)
	}
	if got := cfg.GoDelayTicks(0); got != 0 {
		t.Errorf("GoDelayTicks(0) = %d, expected 0", got)
	}
	if got := cfg.HoldTicks(60); got != 9 {
		t.Errorf("HoldTicks(60) = %d, expected 9", got)
	}

	cfg.Input.HoldMS = 0
	if got := cfg.HoldTicks(60); got != 1 {
		t.Errorf("HoldTicks with zero window = %d, expected 1", got)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change tuning")
	}

	fixed := base
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Obstacles.Acceleration != 0 {
		t.Errorf("fixed preset acceleration = %v, expected 0", fixed.Obstacles.Acceleration)
	}

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Obstacles.BaseSpeed >= base.Obstacles.BaseSpeed || easy.Obstacles.Count >= base.Obstacles.Count {
		t.Errorf("easy preset should be slower and sparser: %+v", easy.Obstacles)
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Obstacles.BaseSpeed <= base.Obstacles.BaseSpeed || hard.Obstacles.Count <= base.Obstacles.Count {
		t.Errorf("hard preset should be faster and denser: %+v", hard.Obstacles)
	}

	for _, p := range Presets {
		cfg := Default()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produced invalid tuning: %v", p, err)
		}
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("obstacles:\n  count: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Obstacles.Count != 7 {
			t.Errorf("reloaded Count = %d, expected 7", cfg.Obstacles.Count)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if _, ok := <-w.Updates; ok {
		t.Error("Updates should be closed")
	}
	// Second close is a no-op
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
