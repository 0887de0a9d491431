package console

import (
	"testing"

	"github.com/lixenwraith/console/terminal"
)

func TestLayoutTooSmall(t *testing.T) {
	screen, _, err := terminal.NewSimulation(80, 24)
	if err != nil {
		t.Fatalf("Expected simulation screen, got error %v", err)
	}
	defer screen.Close()

	l := NewLayout(screen)
	if got := l.Apply(20, 5); got != TooSmall {
		t.Errorf("Expected TooSmall for 20x5, got %v", got)
	}
	if w, h := l.Viewport(); w != 0 || h != 0 {
		t.Errorf("Expected no viewport while TooSmall, got %dx%d", w, h)
	}
}

func TestLayoutReadyGeometry(t *testing.T) {
	screen, _, err := terminal.NewSimulation(80, 24)
	if err != nil {
		t.Fatalf("Expected simulation screen, got error %v", err)
	}
	defer screen.Close()

	l := NewLayout(screen)
	l.Apply(20, 5)
	if got := l.Apply(80, 24); got != Ready {
		t.Fatalf("Expected Ready for 80x24, got %v", got)
	}

	// outputHeight = terminalHeight - inputHeight
	if _, h := l.outputBorder.Size(); h != 21 {
		t.Errorf("Expected output region height 21, got %d", h)
	}
	if _, h := l.inputBorder.Size(); h != InputHeight {
		t.Errorf("Expected input region height %d, got %d", InputHeight, h)
	}

	// Content surfaces are inset one row/column on each side
	if w, h := l.Viewport(); w != 78 || h != 19 {
		t.Errorf("Expected viewport 78x19, got %dx%d", w, h)
	}
	if w, h := l.inputContent.Size(); w != 78 || h != 1 {
		t.Errorf("Expected input content 78x1, got %dx%d", w, h)
	}
}

func TestLayoutApplyIdempotent(t *testing.T) {
	screen, _, err := terminal.NewSimulation(80, 24)
	if err != nil {
		t.Fatalf("Expected simulation screen, got error %v", err)
	}
	defer screen.Close()

	l := NewLayout(screen)
	l.Apply(80, 24)
	w1, h1 := l.Viewport()

	if got := l.Apply(80, 24); got != Ready {
		t.Fatalf("Expected Ready on re-apply, got %v", got)
	}
	if w2, h2 := l.Viewport(); w2 != w1 || h2 != h1 {
		t.Errorf("Expected equivalent surfaces on re-apply, got %dx%d vs %dx%d", w2, h2, w1, h1)
	}
}

func TestLayoutAllocationFailureIsTooSmall(t *testing.T) {
	screen, _, err := terminal.NewSimulation(80, 24)
	if err != nil {
		t.Fatalf("Expected simulation screen, got error %v", err)
	}
	defer screen.Close()

	// Ready-sized geometry that the physical screen cannot hold
	l := NewLayout(screen)
	if got := l.Apply(200, 60); got != TooSmall {
		t.Errorf("Expected TooSmall on allocation failure, got %v", got)
	}
}
