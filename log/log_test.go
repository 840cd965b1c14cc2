package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.config.level != DefaultLevel {
		t.Errorf("expected default level %v, got %v", DefaultLevel, logger.config.level)
	}

	if logger.config.caller {
		t.Error("expected caller info disabled by default")
	}

	if logger.config.format != FormatText {
		t.Errorf("expected default format text, got %v", logger.config.format)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelDebug), WithColor(false))

	logger.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged at Debug level")
	}

	buf.Reset()

	quiet := Make(&buf, WithLevel(LevelError), WithColor(false))
	quiet.Info("info message")

	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	quiet.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_TraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithColor(false))
	logger.Trace("trace message")

	output := buf.String()
	if !strings.Contains(output, "trace message") {
		t.Error("trace message not logged at Trace level")
	}

	if !strings.Contains(output, "TRACE") {
		t.Errorf("expected TRACE level label, got: %s", output)
	}

	buf.Reset()

	Make(&buf, WithLevel(LevelDebug)).Trace("hidden")

	if buf.Len() > 0 {
		t.Error("trace message logged when level is Debug")
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelInfo))
	logger.Info("structured", slog.String("expr", "1 + 1"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if record["msg"] != "structured" {
		t.Errorf("expected msg field, got %v", record["msg"])
	}

	if record["expr"] != "1 + 1" {
		t.Errorf("expected expr attribute, got %v", record["expr"])
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelError))
	derived := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != LevelError {
		t.Errorf("wrapping mutated the base logger: %v", base.Level())
	}

	if derived.Level() != LevelDebug {
		t.Errorf("expected derived level Debug, got %v", derived.Level())
	}
}

func TestLogger_With_IncludesAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelInfo), WithColor(false)).
		With(slog.String("component", "render"))

	logger.Info("begin")

	if !strings.Contains(buf.String(), "component=render") {
		t.Errorf("expected bound attribute in output, got: %s", buf.String())
	}
}

func TestLogger_ZeroValueIsNoop(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("dropped")
	logger.Error("dropped")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level from zero value, got %v", logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("expected default format from zero value, got %v", logger.Format())
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelInfo), WithColor(false))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 25; j++ {
				logger.Info("concurrent")
			}
		}()
	}

	wg.Wait()

	lines := strings.Count(buf.String(), "\n")
	if lines != 200 {
		t.Errorf("expected 200 log lines, got %d", lines)
	}
}
