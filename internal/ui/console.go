package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	markOK   = "✓"
	markFail = "✗"
	markWarn = "!"
	markInfo = "•"
)

// Console writes status lines to an output stream.
type Console struct {
	out     io.Writer
	painter Painter
}

// NewConsole creates a Console writing to out. Color is enabled only for terminals.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	var painter Painter = plain{}
	if ShouldColorize(out) {
		painter = styles
	}
	return &Console{out: out, painter: painter}
}

// ShouldColorize reports whether w is a terminal.
func ShouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (c *Console) Title(format string, args ...any) error {
	title := fmt.Sprintf(format, args...)
	rule := strings.Repeat("═", max(len([]rune(title)), 8))
	return c.write(c.painter.Title(rule) + "\n" + c.painter.Title(title) + "\n" + c.painter.Title(rule) + "\n")
}

func (c *Console) Success(format string, args ...any) error {
	return c.status(c.painter.Success, markOK, format, args...)
}

func (c *Console) Failure(format string, args ...any) error {
	return c.status(c.painter.Failure, markFail, format, args...)
}

func (c *Console) Warning(format string, args ...any) error {
	return c.status(c.painter.Warning, markWarn, format, args...)
}

func (c *Console) Info(format string, args ...any) error {
	return c.status(c.painter.Muted, markInfo, format, args...)
}

func (c *Console) status(paint func(string) string, mark, format string, args ...any) error {
	return c.write(paint(mark) + " " + fmt.Sprintf(format, args...) + "\n")
}

func (c *Console) write(s string) error {
	if _, err := io.WriteString(c.out, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
