package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "json")
	logger.Info("boot", "port", 8080)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("not json output: %v", err)
	}
	if record["service"] != serviceName {
		t.Fatalf("service attr: %v", record["service"])
	}
	if record["msg"] != "boot" {
		t.Fatalf("msg: %v", record["msg"])
	}
}

func TestLoggerDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "pretty")
	logger.Info("boot")

	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("pretty format must not emit json: %q", out)
	}
	if !strings.Contains(out, "service=meezan") {
		t.Fatalf("missing service attr: %q", out)
	}
}
