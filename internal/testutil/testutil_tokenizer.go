package testutil

import (
	"encoding/json"
	"os"
)

// TokenizerTestFile represents a tokenizer test file (JSON format).
type TokenizerTestFile struct {
	Tests             []TokenizerTest `json:"tests"`
	XMLViolationTests []TokenizerTest `json:"xmlViolationTests"`
}

// TokenizerTest represents a single tokenizer test case.
type TokenizerTest struct {
	Description   string            `json:"description"`
	Input         string            `json:"input"`
	Output        []json.RawMessage `json:"output"`
	Errors        []TokenizerError  `json:"errors"`
	InitialStates []string          `json:"initialStates"`
	LastStartTag  string            `json:"lastStartTag"`
	DoubleEscaped bool              `json:"doubleEscaped"`
	DiscardBOM    bool              `json:"discardBom"`
}

// TokenizerError represents a tokenizer error in the test format.
type TokenizerError struct {
	Code   string `json:"code"`
	Line   int    `json:"line"`
	Column int    `json:"col"`
}

// ParseTokenizerFile parses a .test file containing tokenizer tests (JSON format).
func ParseTokenizerFile(path string) (*TokenizerTestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var testFile TokenizerTestFile
	if err := json.Unmarshal(data, &testFile); err != nil {
		return nil, err
	}

	return &testFile, nil
}

