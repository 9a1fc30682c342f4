package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New("portkiller", false, &buf)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message logged at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "portkiller") {
		t.Fatalf("info message missing or app field absent: %q", out)
	}

	buf.Reset()
	logger = New("portkiller", true, &buf)
	logger.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("verbose logger dropped debug message: %q", buf.String())
	}
}
