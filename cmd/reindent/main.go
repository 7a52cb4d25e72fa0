// Command reindent is a small host generator for the indent package:
// it strips the existing leading whitespace from each input line and
// re-emits the text indented by brace, bracket and parenthesis depth.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/streamwriters/indent"
)

type args struct {
	width      *int
	inputPath  *string
	outputPath *string
	trace      *bool
}

func readArgs() *args {
	a := &args{
		width:      flag.Int("width", 4, "Indentation width per nesting level"),
		inputPath:  flag.String("input", "", "Path to the input file (default: stdin)"),
		outputPath: flag.String("output", "", "Path to the output file (default: stdout)"),
		trace:      flag.Bool("trace", false, "Log indent-stack transitions to stderr"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	in := os.Stdin
	if *a.inputPath != "" {
		f, err := os.Open(*a.inputPath)
		if err != nil {
			fatal("Can't open input file: %s", err.Error())
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if *a.outputPath != "" {
		f, err := os.Create(*a.outputPath)
		if err != nil {
			fatal("Can't create output file: %s", err.Error())
		}
		defer f.Close()
		out = f
	}

	opts := indent.Options{Width: *a.width}
	if *a.trace {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.TraceLevel)
		opts.Logger = &logger
	}

	if err := reindent(in, out, opts); err != nil {
		fatal("%s", err.Error())
	}
}

func reindent(in io.Reader, out io.Writer, opts indent.Options) error {
	w := indent.NewWithOptions(out, opts)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")

		// Closers at the head of a line dedent the line itself.
		leading := 0
		for leading < len(line) && isCloser(line[leading]) && w.Depth() > 0 {
			w.Pop()
			leading++
		}

		if line == "" {
			if err := w.Newline(); err != nil {
				return err
			}
		} else if err := w.WriteLine(line); err != nil {
			return err
		}

		delta := opens(line) - closes(line) + leading
		for ; delta > 0; delta-- {
			w.Push()
		}
		for ; delta < 0 && w.Depth() > 0; delta++ {
			w.Pop()
		}
	}
	return scanner.Err()
}

func opens(line string) int {
	n := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{', '[', '(':
			n++
		}
	}
	return n
}

func closes(line string) int {
	n := 0
	for i := 0; i < len(line); i++ {
		if isCloser(line[i]) {
			n++
		}
	}
	return n
}

func isCloser(b byte) bool {
	return b == '}' || b == ']' || b == ')'
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: ")
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintf(os.Stderr, "\n")
	os.Exit(1)
}
