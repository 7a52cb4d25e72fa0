package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamwriters/indent"
)

func TestReindent(t *testing.T) {
	input := strings.Join([]string{
		"func main() {",
		"      println(\"hi\")",
		"if ok {",
		"return",
		"}",
		"}",
	}, "\n")

	var out bytes.Buffer
	err := reindent(strings.NewReader(input), &out, indent.Options{Width: 2})
	require.NoError(t, err)

	expected := strings.Join([]string{
		"func main() {",
		"  println(\"hi\")",
		"  if ok {",
		"    return",
		"  }",
		"}",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestReindentBlankLinesStayBlank(t *testing.T) {
	input := "a {\n\nb\n}\n"

	var out bytes.Buffer
	err := reindent(strings.NewReader(input), &out, indent.Options{Width: 2})
	require.NoError(t, err)
	assert.Equal(t, "a {\n\n  b\n}\n", out.String())
}

func TestReindentUnbalancedClosersDoNotUnderflow(t *testing.T) {
	var out bytes.Buffer
	err := reindent(strings.NewReader("}\n}\nx\n"), &out, indent.Options{Width: 2})
	require.NoError(t, err)
	assert.Equal(t, "}\n}\nx\n", out.String())
}
