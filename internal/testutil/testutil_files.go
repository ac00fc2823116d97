package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// Precompile to avoid regex construction on every sort comparison.
var naturalNumberRe = regexp.MustCompile(`(\d+)`)

// CollectTestFiles returns all test files matching the given pattern in directory.
func CollectTestFiles(dir, pattern string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		matched, err := filepath.Match(pattern, info.Name())
		if err != nil {
			return err
		}
		if matched {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return naturalLess(filepath.Base(files[i]), filepath.Base(files[j]))
	})

	return files, nil
}

// naturalLess compares strings with natural number ordering.
func naturalLess(a, b string) bool {
	partsA := naturalNumberRe.Split(a, -1)
	numsA := naturalNumberRe.FindAllString(a, -1)
	partsB := naturalNumberRe.Split(b, -1)
	numsB := naturalNumberRe.FindAllString(b, -1)

	maxLen := len(partsA)
	if len(partsB) > maxLen {
		maxLen = len(partsB)
	}

	for i := range maxLen {
		var pa, pb string
		if i < len(partsA) {
			pa = partsA[i]
		}
		if i < len(partsB) {
			pb = partsB[i]
		}

		if pa != pb {
			return pa < pb
		}

		var na, nb string
		if i < len(numsA) {
			na = numsA[i]
		}
		if i < len(numsB) {
			nb = numsB[i]
		}

		if na != nb {
			numA, _ := strconv.Atoi(na)
			numB, _ := strconv.Atoi(nb)
			return numA < numB
		}
	}

	return a < b
}

