package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPathFor(t *testing.T) {
	assert.Equal(t, "widget.js", outputPathFor("widget.jsx", "js"))
	assert.Equal(t, "widget.ts", outputPathFor("widget.tsx", "ts"))
	assert.Equal(t, "widget.js", outputPathFor("widget.js", "js"))
}

func TestParseSyntaxFlag(t *testing.T) {
	_, ok := parseSyntaxFlag("")
	assert.False(t, ok)

	s, ok := parseSyntaxFlag("ts")
	assert.True(t, ok)
	assert.Equal(t, 1, int(s))
}

func TestRootCmdRequiresExactlyOneArg(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
}
