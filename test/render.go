// Package test holds helpers shared by tests across packages.
package test

import (
	"strings"
	"testing"

	"github.com/idursun/clgl/internal/scene"
	"github.com/idursun/clgl/internal/sink"
	"github.com/stretchr/testify/require"
)

// Frame runs one tick of root into an in-memory sink and returns the output.
func Frame(t testing.TB, root *scene.Root) string {
	t.Helper()
	rec := sink.NewRecorder()
	require.NoError(t, root.Tick(rec, true))
	return rec.String()
}

// FrameLines is Frame split into rows.
func FrameLines(t testing.TB, root *scene.Root) []string {
	t.Helper()
	return strings.Split(Frame(t, root), "\n")
}

// Stripped drops carriage returns and trailing blanks on every line, for
// comparing output that went through a terminal renderer.
func Stripped(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
