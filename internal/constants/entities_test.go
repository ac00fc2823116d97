package constants

import (
	"testing"
)

// TestNamedEntitiesBasic tests common named entities.
func TestNamedEntitiesBasic(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"amp", "&"},
		{"lt", "<"},
		{"gt", ">"},
		{"quot", "\""},
		{"nbsp", " "},
		{"copy", "©"},
		{"reg", "®"},
		{"aacute", "á"},
		{"Aacute", "Á"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, ok := NamedEntities[tt.name]
			if !ok {
				t.Errorf("Entity %q not found", tt.name)
				return
			}
			if actual != tt.expected {
				t.Errorf("Entity %q: expected %q, got %q", tt.name, tt.expected, actual)
			}
		})
	}
}

// TestNamedEntitiesCaseSensitive verifies entity names are case-sensitive.
func TestNamedEntitiesCaseSensitive(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Alpha;", "Α"},
		{"alpha;", "α"},
		{"AMP;", "&"},
		{"amp;", "&"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, ok := NamedEntities[tt.name]
			if !ok {
				t.Errorf("Entity %q not found", tt.name)
				return
			}
			if actual != tt.expected {
				t.Errorf("Entity %q: expected %q, got %q", tt.name, tt.expected, actual)
			}
		})
	}
}

// TestLegacyEntitiesBasic tests that common legacy (semicolon-optional) entities are present.
func TestLegacyEntitiesBasic(t *testing.T) {
	tests := []string{
		"amp", "lt", "gt", "quot", "nbsp",
		"copy", "reg", "aacute", "Aacute",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			if !LegacyEntities[name] {
				t.Errorf("Legacy entity %q not found", name)
			}
		})
	}
}

// TestLegacyEntitiesAreInNamedEntities verifies all legacy entities exist in NamedEntities.
func TestLegacyEntitiesAreInNamedEntities(t *testing.T) {
	for name := range LegacyEntities {
		if _, ok := NamedEntities[name]; !ok {
			t.Errorf("Legacy entity %q not found in NamedEntities", name)
		}
	}
}

// TestModernEntitiesRequireSemicolon verifies entities with no legacy
// (semicolon-optional) spelling are absent from LegacyEntities.
func TestModernEntitiesRequireSemicolon(t *testing.T) {
	modern := []string{"lang", "rang", "notin", "prod"}

	for _, name := range modern {
		t.Run(name, func(t *testing.T) {
			if _, ok := NamedEntities[name+";"]; !ok {
				t.Errorf("Modern entity %q; not found in NamedEntities", name)
			}
			if LegacyEntities[name] {
				t.Errorf("Modern entity %q incorrectly in LegacyEntities", name)
			}
		})
	}
}

// TestNumericReplacementsBasic tests the windows-1252 fixup table entries
// used by numeric character references in the 0x80-0x9F range.
func TestNumericReplacementsBasic(t *testing.T) {
	tests := []struct {
		code     int
		expected rune
	}{
		{0x00, '�'},
		{0x80, '€'}, // EURO SIGN
		{0x82, '‚'}, // SINGLE LOW-9 QUOTATION MARK
		{0x91, '‘'}, // LEFT SINGLE QUOTATION MARK
		{0x92, '’'}, // RIGHT SINGLE QUOTATION MARK
		{0x99, '™'}, // TRADE MARK SIGN
	}

	for _, tt := range tests {
		t.Run(string(rune(tt.code)), func(t *testing.T) {
			actual, ok := NumericReplacements[tt.code]
			if !ok {
				t.Errorf("Numeric replacement for 0x%02X not found", tt.code)
				return
			}
			if actual != tt.expected {
				t.Errorf("Numeric replacement for 0x%02X: expected %q, got %q", tt.code, tt.expected, actual)
			}
		})
	}
}

// TestNumericReplacementsOmitsUnmappedCodes verifies 0x81, 0x8D, 0x8F, 0x90
// and 0x9D are absent: the windows-1252 fixup table has no substitution for
// them, so callers fall back to the code point itself.
func TestNumericReplacementsOmitsUnmappedCodes(t *testing.T) {
	unmapped := []int{0x81, 0x8D, 0x8F, 0x90, 0x9D}
	for _, code := range unmapped {
		if _, ok := NumericReplacements[code]; ok {
			t.Errorf("0x%02X should have no fixup entry", code)
		}
	}
}

// TestNonExistentEntities verifies names that are not entities return not-found.
func TestNonExistentEntities(t *testing.T) {
	nonExistent := []string{"noti", "notanentity"}

	for _, name := range nonExistent {
		t.Run(name, func(t *testing.T) {
			if _, ok := NamedEntities[name]; ok {
				t.Errorf("Entity %q should not exist but was found", name)
			}
		})
	}
}

// Benchmarks for entity lookup performance.

func BenchmarkNamedEntityLookupCommon(b *testing.B) {
	commonEntities := []string{"amp", "lt", "gt", "quot", "nbsp"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		name := commonEntities[i%len(commonEntities)]
		_, _ = NamedEntities[name]
	}
}

func BenchmarkNamedEntityLookupMissing(b *testing.B) {
	missingEntities := []string{"notanentity", "invalid", "xyz", "test"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		name := missingEntities[i%len(missingEntities)]
		_, _ = NamedEntities[name]
	}
}

func BenchmarkLegacyEntityLookup(b *testing.B) {
	legacyNames := []string{"amp", "lt", "gt", "quot", "nbsp", "copy", "reg"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		name := legacyNames[i%len(legacyNames)]
		_ = LegacyEntities[name]
	}
}

func BenchmarkNumericReplacementLookup(b *testing.B) {
	codes := []int{0x00, 0x80, 0x82, 0x91, 0x92, 0x99}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		code := codes[i%len(codes)]
		_, _ = NumericReplacements[code]
	}
}

func BenchmarkNamedEntityLookupAll(b *testing.B) {
	names := make([]string, 0, len(NamedEntities))
	for name := range NamedEntities {
		names = append(names, name)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		name := names[i%len(names)]
		_, _ = NamedEntities[name]
	}
}
