package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, f func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := f()

	w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func TestRunSynthSplit(t *testing.T) {
	synthBits = 8
	out, err := captureStdout(t, func() error { return runSynth(rootCmd, []string{"split"}) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "def main(1 private input(s)) -> 8 output(s):") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRunSynthCast(t *testing.T) {
	out, err := captureStdout(t, func() error { return runSynth(rootCmd, []string{"cast"}) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "_bool_to_field") {
		t.Errorf("unexpected output: %q", out)
	}
}
