package indent

import "fmt"

// WriteString writes s through the indenting write path.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// WriteLine writes s followed by a line terminator.
func (w *Writer) WriteLine(s string) error {
	if _, err := w.WriteString(s); err != nil {
		return err
	}
	return w.Newline()
}

// Printf formats its arguments per fmt rules and writes the result
// through the indenting write path, so indentation is applied exactly
// as it would be for a plain Write of the formatted bytes.
func (w *Writer) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// Printfln is Printf followed by a line terminator.
func (w *Writer) Printfln(format string, args ...any) error {
	if err := w.Printf(format, args...); err != nil {
		return err
	}
	return w.Newline()
}
