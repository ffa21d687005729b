package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestE2E runs the driver over every .alna file in testdata/.
// Each test:
//  1. Runs alnac -fmt on the file
//  2. Checks the exit status: files named err_* must fail, all others succeed
//  3. Compares stdout followed by stderr against the .golden file
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.alna")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .alna test files found in testdata/")
	}

	alnac := buildDriver(t)

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".alna")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, alnac, testFile, strings.HasPrefix(name, "err_"))
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, alnac, alnaFile string, wantFail bool) {
	t.Helper()

	goldenFile := strings.TrimSuffix(alnaFile, ".alna") + ".golden"
	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(alnac, "-fmt", alnaFile)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err = cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		if wantFail {
			t.Errorf("alnac succeeded, want failure")
		}
	case errors.As(err, &exitErr):
		if !wantFail {
			t.Errorf("alnac failed with %v:\n%s", err, stderr.String())
		} else if exitErr.ExitCode() != 1 {
			t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
		}
	default:
		t.Fatalf("running alnac: %v", err)
	}

	got := stdout.String() + stderr.String()
	if got != string(expected) {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

// buildDriver compiles cmd/alnac into a temporary directory.
func buildDriver(t *testing.T) string {
	t.Helper()

	goTool, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go tool not found, skipping E2E tests")
	}

	bin := filepath.Join(t.TempDir(), "alnac")
	cmd := exec.Command(goTool, "build", "-o", bin, "../../cmd/alnac")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go build failed:\n%s\n%v", out, err)
	}
	return bin
}
