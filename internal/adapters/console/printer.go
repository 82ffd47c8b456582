package console

import (
	"context"
	"fmt"
	"io"

	"github.com/jsamuelsen/repeater/internal/ports"
)

// Compile-time check that Printer satisfies the port.
var _ ports.Output = (*Printer)(nil)

// Printer writes newline-terminated lines to a writer.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WriteLine writes line followed by a newline.
func (p *Printer) WriteLine(_ context.Context, line string) error {
	if _, err := io.WriteString(p.w, line+"\n"); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}

	return nil
}
