package testutil

import (
	"os"
	"strings"
)

// EncodingTest represents a single encoding test case.
type EncodingTest struct {
	Data             []byte
	ExpectedEncoding string
}

// ParseEncodingFile parses a .dat file containing encoding tests.
func ParseEncodingFile(path string) ([]EncodingTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tests []EncodingTest
	var currentData []byte
	var currentEncoding string
	mode := ""

	flush := func() {
		if currentData != nil && currentEncoding != "" {
			tests = append(tests, EncodingTest{
				Data:             currentData,
				ExpectedEncoding: currentEncoding,
			})
		}
		currentData = nil
		currentEncoding = ""
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r")

		if trimmed == "#"+sectionData {
			flush()
			mode = sectionData
			continue
		}
		if trimmed == "#"+sectionEncoding {
			mode = sectionEncoding
			continue
		}

		switch mode {
		case sectionData:
			currentData = append(currentData, []byte(line+"\n")...)
		case sectionEncoding:
			if currentEncoding == "" && strings.TrimSpace(trimmed) != "" {
				currentEncoding = strings.TrimSpace(trimmed)
			}
		}
	}

	flush()

	return tests, nil
}

