package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunLogger_WritesPlainLines(t *testing.T) {
	var console, file bytes.Buffer
	l := NewZerologAdapterWithLogger(NewRunLogger(&console, &file))

	l.Info("cropped", String("input", "a.cbor"), Int("samples", 69))
	l.Error("failed", String("input", "b.cbor"), Err(errors.New("boom")))

	lines := strings.Split(strings.TrimRight(file.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), file.String())
	}
	if !strings.Contains(lines[0], "cropped") || !strings.Contains(lines[0], "input=a.cbor") || !strings.Contains(lines[0], "samples=69") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "boom") {
		t.Errorf("line 1 = %q, want error text", lines[1])
	}
	if strings.Contains(file.String(), "\x1b[") {
		t.Errorf("file output contains color codes: %q", file.String())
	}
	if console.Len() == 0 {
		t.Error("console received nothing")
	}
}

func TestAddField_Types(t *testing.T) {
	var file bytes.Buffer
	l := NewZerologAdapterWithLogger(NewRunLogger(&bytes.Buffer{}, &file))
	l.Warn("fields",
		Float64("trigger", 0.1),
		Bool("incremental", true),
		Duration("debounce", 250*time.Millisecond),
		Any("suffixes", []string{".cbor"}),
	)
	out := file.String()
	for _, want := range []string{"trigger=0.1", "incremental=true", "debounce=", "suffixes="} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestOpenRunLog_TruncatesAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")

	f, err := OpenRunLog(path)
	if err != nil {
		t.Fatalf("OpenRunLog: %v", err)
	}
	if _, err := f.WriteString("old line\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	f, err = OpenRunLog(path)
	if err != nil {
		t.Fatalf("OpenRunLog again: %v", err)
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("log not truncated: %q", data)
	}
}
