package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/mol2props/sanitize"
)

const (
	three     = "../../test/three.mol2"
	truncated = "../../test/truncated.mol2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// orphanFile writes a file with one good record followed by an end marker
// outside any record.
func orphanFile(t *testing.T, dir string) string {
	data, err := os.ReadFile(truncated)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.SplitAfter(string(data), "\n")
	return writeFile(t, dir, "orphan.mol2", strings.Join(lines[:21], "")+"ROOT\n")
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	noconf := writeFile(t, dir, "empty.json", "{}")
	confMissingInput := writeFile(t, dir, "input.json", `{"input": "`+filepath.Join(dir, "nothere.mol2")+`"}`)
	confReject := writeFile(t, dir, "reject.json", `{"orphans": "reject"}`)
	orphans := orphanFile(t, dir)

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"version", []string{"-version"}, exitOK},
		{"no input", []string{"-config", noconf}, exitTrouble},
		{"two inputs", []string{"-config", noconf, three, truncated}, exitTrouble},
		{"bad flag", []string{"-nope"}, exitTrouble},
		{"failures", []string{"-config", noconf, three}, exitFailed},
		{"failures, fail fast", []string{"-config", noconf, "-failfast", three}, exitFailed},
		{"truncated", []string{"-config", noconf, truncated}, exitOK},
		{"missing input", []string{"-config", noconf, filepath.Join(dir, "nothere.mol2")}, exitTrouble},
		{"missing config", []string{"-config", filepath.Join(dir, "nothere.json"), truncated}, exitTrouble},
		{"bad orphan policy", []string{"-config", noconf, "-orphans", "maybe", truncated}, exitTrouble},
		{"argument overrides config input", []string{"-config", confMissingInput, truncated}, exitOK},
		{"config input", []string{"-config", confMissingInput}, exitTrouble},
		{"orphan block", []string{"-config", noconf, orphans}, exitFailed},
		{"orphan reject from config", []string{"-config", confReject, orphans}, exitTrouble},
		{"flag overrides config orphans", []string{"-config", confReject, "-orphans", "skip", orphans}, exitOK},
	}
	for _, c := range cases {
		var stdout, stderr bytes.Buffer
		if got := run(c.args, &stdout, &stderr); got != c.want {
			t.Errorf("%s: expected exit code %d, got %d. stderr:\n%s", c.name, c.want, got, stderr.String())
		}
	}
}

func TestRunReport(t *testing.T) {
	dir := t.TempDir()
	noconf := writeFile(t, dir, "empty.json", "{}")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", noconf, "-json", "-", three}, &stdout, &stderr); code != exitFailed {
		t.Fatalf("expected exit code %d, got %d", exitFailed, code)
	}
	rep := new(sanitize.Report)
	if err := json.Unmarshal(stdout.Bytes(), rep); err != nil {
		t.Fatal(err)
	}
	if rep.Blocks != 3 || rep.Passed != 2 || len(rep.Failures) != 1 || rep.Aborted {
		t.Errorf("wrong report %+v", rep)
	}
	if !strings.Contains(stderr.String(), "FAILED") {
		t.Errorf("the summary should report the failure, got:\n%s", stderr.String())
	}

	//fail_fast from the config, report to a file from the flag.
	conf := writeFile(t, dir, "failfast.json", `{"fail_fast": true, "report_json": "ignored.json"}`)
	out := filepath.Join(dir, "report.json")
	stdout.Reset()
	if code := run([]string{"-config", conf, "-json", out, three}, &stdout, &stderr); code != exitFailed {
		t.Fatalf("expected exit code %d, got %d", exitFailed, code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	rep = new(sanitize.Report)
	if err := json.Unmarshal(data, rep); err != nil {
		t.Fatal(err)
	}
	if !rep.Aborted || rep.Passed != 1 {
		t.Errorf("wrong fail-fast report %+v", rep)
	}
	if _, err := os.Stat("ignored.json"); err == nil {
		t.Error("the -json flag should override the config")
	}
}
