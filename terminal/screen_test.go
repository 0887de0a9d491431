package terminal

import "testing"

func TestSimulationScreenLifecycle(t *testing.T) {
	s, sim, err := NewSimulation(80, 24)
	if err != nil {
		t.Fatalf("Expected simulation screen, got error %v", err)
	}

	w, h := sim.Size()
	if w != 80 || h != 24 {
		t.Errorf("Expected 80x24, got %dx%d", w, h)
	}

	// Restore is idempotent
	s.Close()
	s.Close()
}

func TestProcessLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	if got := processLanguage(); got != "de_DE" {
		t.Errorf("Expected de_DE, got %q", got)
	}

	t.Setenv("LC_ALL", "fr_FR")
	if got := processLanguage(); got != "fr_FR" {
		t.Errorf("Expected LC_ALL to win, got %q", got)
	}

	t.Setenv("LC_ALL", "C")
	t.Setenv("LANG", "")
	if got := processLanguage(); got != "en_US" {
		t.Errorf("Expected fallback en_US, got %q", got)
	}
}
