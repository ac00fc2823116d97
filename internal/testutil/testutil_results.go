package testutil

import (
	"fmt"
	"strings"
)

// FormatTestTreeOutput joins already-serialized html5lib-tests tree-dump
// lines into one newline-separated string, for comparison against expected
// output.
func FormatTestTreeOutput(lines []string) string {
	return strings.Join(lines, "\n")
}

// TestResult holds the result of running a single test.
type TestResult struct {
	Passed         bool
	TestName       string
	Input          string
	Expected       string
	Actual         string
	ExpectedErrors []string
	ActualErrors   []string
	ErrorMessage   string
}

// TestSummary holds aggregate results for a test file.
type TestSummary struct {
	FileName string
	Passed   int
	Failed   int
	Skipped  int
	Total    int
	Results  []TestResult
}

// FormatSummary returns a formatted summary string.
func (s *TestSummary) FormatSummary() string {
	runnable := s.Passed + s.Failed
	if runnable == 0 {
		return fmt.Sprintf("%s: 0/0 (N/A)", s.FileName)
	}
	pct := float64(s.Passed) * 100 / float64(runnable)
	result := fmt.Sprintf("%s: %d/%d (%.0f%%)", s.FileName, s.Passed, runnable, pct)
	if s.Skipped > 0 {
		result += fmt.Sprintf(" (%d skipped)", s.Skipped)
	}
	return result
}
