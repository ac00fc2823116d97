package testutil

import (
	"encoding/json"
	"os"
)

// SerializerTestFile represents a serializer test file (JSON format).
type SerializerTestFile struct {
	Tests []SerializerTest `json:"tests"`
}

// SerializerTest represents a single serializer test case.
type SerializerTest struct {
	Description string                 `json:"description"`
	Input       []json.RawMessage      `json:"input"`
	Expected    []string               `json:"expected"`
	Options     map[string]interface{} `json:"options"`
}

// ParseSerializerFile parses a .test file containing serializer tests (JSON format).
func ParseSerializerFile(path string) (*SerializerTestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var testFile SerializerTestFile
	if err := json.Unmarshal(data, &testFile); err != nil {
		return nil, err
	}

	return &testFile, nil
}

