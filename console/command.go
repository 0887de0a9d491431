package console

import "github.com/leonelquinteros/gotext"

// Processor is the external command interpreter. It receives one
// submitted command line and returns the message to display.
type Processor interface {
	Execute(command string) string
}

// DefaultProcessor recognizes nothing; every command renders as
// unknown. Unknown commands are not errors, the loop continues.
type DefaultProcessor struct{}

// Execute implements Processor.
func (DefaultProcessor) Execute(command string) string {
	return gotext.Get("Unknown: '%s'", command)
}

// execute runs one submitted command. The built-ins exit, clear and
// help are handled locally; everything else is delegated to the
// processor.
func (c *Console) execute(command string) {
	switch command {
	case "exit":
		c.Stop()
	case "clear":
		c.scroll.Clear()
	case "help":
		c.scroll.Append(gotext.Get("Commands: exit, clear, help. Scroll: PgUp/PgDn"))
	default:
		c.scroll.Append(c.proc.Execute(command))
	}
}
