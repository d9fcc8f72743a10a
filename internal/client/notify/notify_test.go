package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterSink(t *testing.T) {
	var sb strings.Builder
	s := NewWriterSink(&sb)

	s.Success("URL shortened successfully!")
	s.Error("Invalid email or password")
	s.Info("Updating URL...")

	out := sb.String()
	require.Contains(t, out, "✓ URL shortened successfully!")
	require.Contains(t, out, "✗ Invalid email or password")
	require.Contains(t, out, "· Updating URL...")
}
