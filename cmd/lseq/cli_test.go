package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildCLI(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "lseq")
	cmd := exec.Command("go", "build", "-o", bin, "./")
	cmd.Dir = "."
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build lseq: %v\n%s", err, out)
	}
	return bin
}

func TestEvalFlag(t *testing.T) {
	tmpDir := t.TempDir()
	bin := buildCLI(t, tmpDir)

	cmd := exec.Command(bin, "-no-history", "-e", "seq 1 to 10 by 3")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run lseq: %v\n%s", err, output)
	}
	if strings.TrimSpace(string(output)) != "1 4 7 10" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestFileExecution(t *testing.T) {
	tmpDir := t.TempDir()
	bin := buildCLI(t, tmpDir)

	script := filepath.Join(tmpDir, "prog.lseq")
	content := `# narrow then print
set a = seq 0 9
slice a 2 5
print a
`
	if err := os.WriteFile(script, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	cmd := exec.Command(bin, "-no-history", "-f", script)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run lseq: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "2 3 4 5") {
		t.Errorf("expected sliced series in output, got: %s", output)
	}
}

func TestPipedInput(t *testing.T) {
	tmpDir := t.TempDir()
	bin := buildCLI(t, tmpDir)

	cmd := exec.Command(bin, "-no-history")
	cmd.Stdin = strings.NewReader("set a = seq 5\nreverse a\n")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run lseq: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "4 3 2 1 0") {
		t.Errorf("expected reversed series in output, got: %s", output)
	}
}

func TestHistoryPersistsAcrossRuns(t *testing.T) {
	tmpDir := t.TempDir()
	bin := buildCLI(t, tmpDir)
	dbPath := filepath.Join(tmpDir, "history.db")

	cmd := exec.Command(bin, "-db", dbPath, "-e", "seq 1 3")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to run lseq: %v\n%s", err, out)
	}

	cmd = exec.Command(bin, "-db", dbPath, "-e", "history")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run lseq: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "seq 1 3") {
		t.Errorf("expected recorded line in history output, got: %s", output)
	}
}
