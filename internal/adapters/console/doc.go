// Package console provides the terminal output adapter.
//
// Printer implements ports.Output over any io.Writer. In production the
// writer is os.Stdout; tests pass a bytes.Buffer.
package console
