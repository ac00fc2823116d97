// Package testutil provides utilities for running html5lib-tests.
package testutil

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Test file section markers.
const (
	sectionData     = "data"
	sectionErrors   = "errors"
	sectionDocument = "document"
	sectionFragment = "fragment"
	sectionEncoding = "encoding"
)

// TreeConstructionTest represents a single tree-construction test case.
type TreeConstructionTest struct {
	Data            string
	Errors          []string
	Document        string
	FragmentContext string // e.g., "div" or "svg path"
	ScriptDirective string // "script-on" or "script-off"
	IframeSrcdoc    bool
	XMLCoercion     bool
}

// ParseTreeConstructionFile parses a .dat file containing tree-construction tests.
func ParseTreeConstructionFile(path string) ([]TreeConstructionTest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var tests []TreeConstructionTest
	scanner := bufio.NewScanner(file)

	var currentTest *TreeConstructionTest
	var mode string
	var dataLines, errorLines, documentLines []string

	flush := func() {
		if currentTest != nil && (len(dataLines) > 0 || len(documentLines) > 0) {
			currentTest.Data = decodeEscapes(strings.Join(dataLines, "\n"))
			currentTest.Errors = errorLines
			currentTest.Document = strings.Join(documentLines, "\n")
			tests = append(tests, *currentTest)
		}
		currentTest = &TreeConstructionTest{}
		dataLines = nil
		errorLines = nil
		documentLines = nil
		mode = ""
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.HasPrefix(line, "#") {
			directive := strings.TrimPrefix(line, "#")
			switch directive {
			case sectionData:
				flush()
				mode = sectionData
			case sectionErrors:
				mode = sectionErrors
			case sectionDocument:
				mode = sectionDocument
			case "document-fragment":
				mode = sectionFragment
			case "script-on", "script-off":
				if currentTest != nil {
					currentTest.ScriptDirective = directive
				}
			case "iframe-srcdoc":
				if currentTest != nil {
					currentTest.IframeSrcdoc = true
				}
			case "xml-coercion":
				if currentTest != nil {
					currentTest.XMLCoercion = true
				}
			default:
				mode = directive
			}
			continue
		}

		switch mode {
		case sectionData:
			dataLines = append(dataLines, line)
		case sectionErrors:
			if strings.TrimSpace(line) != "" {
				errorLines = append(errorLines, line)
			}
		case sectionDocument:
			documentLines = append(documentLines, line)
		case sectionFragment:
			if currentTest != nil && strings.TrimSpace(line) != "" {
				currentTest.FragmentContext = strings.TrimSpace(line)
			}
		}
	}

	flush() // Final test

	return tests, scanner.Err()
}

func decodeEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
			i++
			continue
		case 'n':
			b.WriteByte('\n')
			i++
			continue
		case 't':
			b.WriteByte('\t')
			i++
			continue
		case 'f':
			b.WriteByte('\f')
			i++
			continue
		case 'r':
			b.WriteByte('\r')
			i++
			continue
		case 'x':
			if i+3 < len(s) {
				if v, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 3
					continue
				}
			}
		case 'u':
			if i+5 < len(s) {
				if v, err := strconv.ParseUint(s[i+2:i+6], 16, 16); err == nil {
					b.WriteRune(rune(v))
					i += 5
					continue
				}
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

