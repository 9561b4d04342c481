package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildElf builds the elf binary into the calling test's own temp dir,
// skipping that test if the build fails.
func buildElf(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	binary := filepath.Join(dir, "elf")
	cmd := exec.Command("go", "build", "-o", binary, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("skipping CLI tests: failed to build elf: %v\n%s", err, out)
	}
	return binary
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.santa")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunModePrintsPutsOutputThenFinalValue(t *testing.T) {
	binary := buildElf(t)
	script := writeScript(t, `let mut y = 10
y = 20
puts(y)`)

	out, err := exec.Command(binary, script).CombinedOutput()
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	want := "20 \nnil\n"
	if string(out) != want {
		t.Errorf("output = %q, want %q", string(out), want)
	}
}

func TestRunModeExitsNonZeroOnRuntimeError(t *testing.T) {
	binary := buildElf(t)
	script := writeScript(t, `let x = 1
x = 2`)

	out, err := exec.Command(binary, script).CombinedOutput()
	if err == nil {
		t.Fatalf("expected non-zero exit, output: %s", out)
	}
	want := "[Error] Variable 'x' is not mutable\n"
	if string(out) != want {
		t.Errorf("output = %q, want %q", string(out), want)
	}
}

func TestRunModeMissingFileReportsError(t *testing.T) {
	binary := buildElf(t)
	out, err := exec.Command(binary, filepath.Join(t.TempDir(), "missing.santa")).CombinedOutput()
	if err == nil {
		t.Fatalf("expected non-zero exit, output: %s", out)
	}
	if !strings.HasPrefix(string(out), "[Error] ") {
		t.Errorf("output = %q, want a [Error] prefix", out)
	}
}

func TestTokensModePrintsOneJSONObjectPerLine(t *testing.T) {
	binary := buildElf(t)
	script := writeScript(t, `let x = 1`)

	out, err := exec.Command(binary, "tokens", script).CombinedOutput()
	if err != nil {
		t.Fatalf("tokens failed: %v\n%s", err, out)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	// let / x / = / 1 / EOF
	if len(lines) != 5 {
		t.Fatalf("expected 5 token lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], `"type":"LET"`) {
		t.Errorf("first line = %q, want LET token", lines[0])
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, `"type":"EOF"`) {
		t.Errorf("last line = %q, want EOF token", last)
	}
}

func TestASTModePrintsSortedKeyJSONDocument(t *testing.T) {
	binary := buildElf(t)
	script := writeScript(t, `let x = 1`)

	out, err := exec.Command(binary, "ast", script).CombinedOutput()
	if err != nil {
		t.Fatalf("ast failed: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), `"type": "Program"`) {
		t.Errorf("expected Program node in output, got %q", out)
	}
}

func TestVerboseFlagASTModeRunsCleanOnValidInput(t *testing.T) {
	binary := buildElf(t)
	script := writeScript(t, `let x = 1`)

	out, err := exec.Command(binary, "ast", "--verbose", script).CombinedOutput()
	if err != nil {
		t.Fatalf("ast --verbose failed: %v\n%s", err, out)
	}
	_ = out // no parse errors expected for valid input; just confirm it still runs clean
}
