package rules

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gopep257/pkg/lint"
)

// GoldenTestCase represents a single golden file test case.
type GoldenTestCase struct {
	// Name is the test case name derived from the file path.
	Name string

	// InputPath is the absolute path to the input Rust file.
	InputPath string

	// DiagsTxtPath is the path to the expected violations.
	DiagsTxtPath string

	// RuleID restricts the comparison to one rule (empty means all rules).
	RuleID string
}

// discoverTestCases walks the testdata directory. Directories named after a
// rule ID compare only that rule's violations; any other directory compares
// everything.
func discoverTestCases(t *testing.T, baseDir string) []GoldenTestCase {
	t.Helper()

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		t.Fatalf("failed to read testdata directory: %v", err)
	}

	var cases []GoldenTestCase
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dirName := entry.Name()
		dirPath := filepath.Join(baseDir, dirName)

		ruleID := ""
		if _, ok := Default().Get(dirName); ok {
			ruleID = dirName
		}

		inputs, err := filepath.Glob(filepath.Join(dirPath, "*.input.rs"))
		if err != nil {
			t.Fatalf("failed to glob input files in %s: %v", dirPath, err)
		}

		for _, inputPath := range inputs {
			baseName := strings.TrimSuffix(filepath.Base(inputPath), ".input.rs")
			cases = append(cases, GoldenTestCase{
				Name:         filepath.Join(dirName, baseName),
				InputPath:    inputPath,
				DiagsTxtPath: filepath.Join(dirPath, baseName+".diags.txt"),
				RuleID:       ruleID,
			})
		}
	}

	return cases
}

// filterByRule keeps the violations reported by ruleID, including every code
// a multi-code rule reports.
func filterByRule(violations []lint.Violation, ruleID string) []lint.Violation {
	if ruleID == "" {
		return violations
	}

	var kept []lint.Violation
	for _, v := range violations {
		if rule, ok := Default().Get(v.Rule); ok && rule.ID() == ruleID {
			kept = append(kept, v)
		}
	}
	return kept
}

// formatDiags renders violations one per line as
// "file:line:col severity [code]: message".
func formatDiags(violations []lint.Violation, filename string) []byte {
	var buf bytes.Buffer
	for _, v := range violations {
		fmt.Fprintf(&buf, "%s:%d:%d %s [%s]: %s\n", filename, v.Line, v.Column, v.Severity, v.Rule, v.Message)
	}
	return buf.Bytes()
}

// compareWithGolden compares actual bytes with the golden file.
// If update is true, it updates the golden file instead of comparing.
func compareWithGolden(t *testing.T, actual []byte, goldenPath string, update bool) {
	t.Helper()

	if update {
		if err := os.WriteFile(goldenPath, actual, 0o644); err != nil {
			t.Fatalf("failed to write golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Errorf("Golden file does not exist: %s\nRun with -update flag to create it.", goldenPath)
		t.Logf("Actual content:\n%s", string(actual))
		return
	}

	if !bytes.Equal(actual, expected) {
		t.Errorf("Output does not match golden file: %s", goldenPath)
		showDiff(t, expected, actual)
	}
}

// showDiff displays a simple line diff between expected and actual content.
func showDiff(t *testing.T, expected, actual []byte) {
	t.Helper()

	expectedLines := bytes.Split(expected, []byte("\n"))
	actualLines := bytes.Split(actual, []byte("\n"))

	var diffBuf bytes.Buffer
	for lineNum := range max(len(expectedLines), len(actualLines)) {
		var expLine, actLine string
		if lineNum < len(expectedLines) {
			expLine = string(expectedLines[lineNum])
		}
		if lineNum < len(actualLines) {
			actLine = string(actualLines[lineNum])
		}

		if expLine != actLine {
			if expLine != "" {
				diffBuf.WriteString("- " + expLine + "\n")
			}
			if actLine != "" {
				diffBuf.WriteString("+ " + actLine + "\n")
			}
		}
	}

	if diffBuf.Len() > 0 {
		t.Logf("Diff (- expected, + actual):\n%s", diffBuf.String())
	}
}
