package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the command line with the given stdin and returns what was
// written to stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLex(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "text",
			args: []string{"lex", "-"},
			want: "1:1\tlet\t\"let\"\n" +
				"1:5\tidentifier\t\"x\"\n" +
				"1:7\t=\t\"=\"\n" +
				"1:9\tnumber\t\"1\"\n" +
				"1:10\t;\t\";\"\n",
		},
		{
			name: "match",
			args: []string{"lex", "--match", "^[a-z]+$", "-"},
			want: "1:1\tlet\t\"let\"\n" +
				"1:5\tidentifier\t\"x\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "let x = 1;", tt.args...)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if out != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", out, tt.want)
			}
		})
	}
}

func TestLexJSON(t *testing.T) {
	out, _, err := run(t, `"hi" 2`, "lex", "--format", "json", "-")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	var records []tokenRecord
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Kind != "string" || records[0].Value != "hi" {
		t.Errorf("first record = %+v", records[0])
	}
	if records[1].Value != 2.0 || records[1].Span != [2]int{5, 6} {
		t.Errorf("second record = %+v", records[1])
	}
}

func TestLexBadPattern(t *testing.T) {
	if _, _, err := run(t, "x", "lex", "--match", "(", "-"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestParse(t *testing.T) {
	out, _, err := run(t, "let x = 1 + 2;", "parse", "-")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if want := "(let x (+ 1 2))\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestParseStats(t *testing.T) {
	out, _, err := run(t, "loop { break; }", "parse", "--stats", "-")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	for _, want := range []string{"(loop (block (break)))", "statements:  3", "loops:       1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseFormatFromConfig(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "scriptlang.toml", "format = \"json\"\n")

	out, _, err := run(t, "x;", "--config", config, "parse", "-")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	var tree map[string]any
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if tree["type"] != "Program" {
		t.Errorf("type = %v, want Program", tree["type"])
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, stderr, err := run(t, "let x = ;", "parse", "-")
	if !errors.Is(err, errReported) {
		t.Fatalf("error = %v, want errReported", err)
	}
	want := "<stdin>:1:9: expected expression, got ';'"
	if !strings.Contains(stderr, want) {
		t.Errorf("stderr missing %q:\n%s", want, stderr)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.sl", "fn f() { return 1; }\n")
	bad := writeFile(t, dir, "bad.sl", "let x = 1\n")
	worse := writeFile(t, dir, "worse.sl", "break;\n")

	if _, _, err := run(t, "", "check", good); err != nil {
		t.Errorf("check good: %v", err)
	}

	_, stderr, err := run(t, "", "check", good, bad, worse)
	if !errors.Is(err, errReported) {
		t.Fatalf("error = %v, want errReported", err)
	}
	for _, want := range []string{"bad.sl:1:10: unexpected end of input", "worse.sl:1:1: break must be inside a loop"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestCheckMissingFile(t *testing.T) {
	_, _, err := run(t, "", "check", filepath.Join(t.TempDir(), "missing.sl"))
	if err == nil || errors.Is(err, errReported) {
		t.Errorf("error = %v, want read error", err)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if !strings.HasPrefix(out, "scriptlang dev (library ") {
		t.Errorf("unexpected version output %q", out)
	}
}
