package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/console/audio"
	"github.com/lixenwraith/console/console"
	"github.com/lixenwraith/console/terminal"
)

func main() {
	bell := audio.NewBell()
	defer bell.Close()

	var alert console.Bell
	if bell.Enabled() {
		alert = bell
	} else {
		// Non-fatal, the console falls back to the terminal bell
		log.Printf("audio init failed, using terminal bell")
	}

	ui, err := console.Create(console.DefaultProcessor{}, alert)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", initMessage(err))
		os.Exit(1)
	}
	defer ui.Close()

	ui.Run()
}

// initMessage maps the typed init failures to operator-facing text.
func initMessage(err error) string {
	switch {
	case errors.Is(err, terminal.ErrNoColorSupport):
		return "terminal does not support colors"
	case errors.Is(err, terminal.ErrCannotSetColor):
		return "terminal colors could not be configured"
	default:
		return err.Error()
	}
}
