package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{"-short", "50ms", "-long", "5s", "-delay", "300ms", "-v"}, &buf)
	out := buf.String()
	if code != 0 {
		t.Fatalf("run() = %d, output:\n%s", code, out)
	}

	for _, want := range []string{
		`"outcome":"timeout"`,
		`"outcome":"occurred"`,
		`"result":"notified"`,
		`"msg":"wakepair: created"`,
		`"msg":"wakepair: closed"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}

	var shutdown string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, `"msg":"shutdown"`) {
			shutdown = line
		}
	}
	if !strings.Contains(shutdown, `"outstanding_pairs":"0"`) && !strings.Contains(shutdown, `"outstanding_pairs":0`) {
		t.Errorf("unexpected shutdown line: %s", shutdown)
	}
}

func TestRun_BadSource(t *testing.T) {
	var buf bytes.Buffer
	if code := run([]string{"-source", "pipe"}, &buf); code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
	if !strings.Contains(buf.String(), "unknown source kind") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	var buf bytes.Buffer
	if code := run([]string{"-nope"}, &buf); code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
}
