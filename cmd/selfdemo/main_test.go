package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

// TestWalkthrough tests that the built-in scenario passes in full.
func TestWalkthrough(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit status %d\nstdout:\n%s\nstderr:\n%s", code, stdout.String(), stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{
		"ok: evaluate\n\tExpected: 5\n\tActual: 5\n",
		"ok: print child\n\tExpected: { parent (parent) }\n\tActual: { parent (parent) }\n",
		"ok: missing slot\n\tExpected: error: slot not found: x\n\tActual: error: selfobj: slot not found: x\n",
		"13 of 13 checks passed\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestQuiet tests that -q prints only the summary when everything passes.
func TestQuiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-q"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit status %d: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "13 of 13 checks passed\n" {
		t.Errorf("wrong output: %q", got)
	}
}

// TestScenarioFile tests loading scenarios from files, including failing
// ones.
func TestScenarioFile(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]struct {
		src  string
		code int
		want string
	}{
		"Pass": {
			src:  "objects:\n  n: {value: 1}\nchecks:\n  - {op: evaluate, object: n, want: \"1\"}\n",
			code: 0,
			want: "1 of 1 checks passed\n",
		},
		"Fail": {
			src:  "objects:\n  n: {value: 1}\nchecks:\n  - {op: evaluate, object: n, want: \"2\"}\n",
			code: 1,
			want: "FAIL: evaluate n\n\tExpected: 2\n\tActual: 1\n0 of 1 checks passed\n",
		},
		"Function": {
			src:  "objects:\n  f: {function: identity}\nchecks:\n  - {op: evaluate, object: f, want: \"{ }\"}\n",
			code: 0,
			want: "1 of 1 checks passed\n",
		},
		"Invalid": {
			src:  "objects:\n  n: {value: 1, function: identity}\n",
			code: 2,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			if err := os.WriteFile(path, []byte(c.src), 0o644); err != nil {
				t.Fatal(err)
			}
			var stdout, stderr bytes.Buffer
			if code := run([]string{"-q", "-f", path}, &stdout, &stderr); code != c.code {
				t.Errorf("wrong exit status: want %d, have %d (%s)", c.code, code, stderr.String())
			}
			if got := stdout.String(); c.want != "" && got != c.want {
				t.Errorf("wrong output: want %q, have %q", c.want, got)
			}
		})
	}
	t.Run("Missing", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := run([]string{"-f", filepath.Join(dir, "absent.yaml")}, &stdout, &stderr); code != 2 {
			t.Errorf("wrong exit status %d", code)
		}
	})
}

// TestEncoding tests transcoded output.
func TestEncoding(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-q", "-encoding", "utf16"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit status %d: %s", code, stderr.String())
	}
	d := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	b, err := d.Bytes(stdout.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); got != "13 of 13 checks passed\n" {
		t.Errorf("wrong decoded output: %q", got)
	}

	stdout.Reset()
	if code := run([]string{"-encoding", "ebcdic"}, &stdout, &stderr); code != 2 {
		t.Errorf("unsupported encoding gave exit status %d", code)
	}
}
