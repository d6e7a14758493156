package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SplitNames are the fixed dataset partitions, in reporting order.
var SplitNames = []string{"train", "validation", "test"}

// LoadResult is the outcome of loading every split of one domain.
// Records is the union of all splits in split order; SplitCounts preserves
// per-split totals for the ratio check; Errors accumulates one message per
// malformed entry or unreadable file.
type LoadResult struct {
	Records     []Record
	SplitCounts map[string]int
	Errors      []string
}

// ExampleCount returns the number of successfully loaded records.
func (lr LoadResult) ExampleCount() int {
	return len(lr.Records)
}

// LoadDomain loads all splits for the domain rooted at dir. For each split
// it prefers <split>.json (root must be a JSON array) and falls back to
// <split>.jsonl (one record per line). A malformed line or entry is never
// fatal: it becomes an error string and loading continues.
func LoadDomain(dir string) LoadResult {
	res := LoadResult{SplitCounts: make(map[string]int, len(SplitNames))}

	for _, split := range SplitNames {
		jsonPath := filepath.Join(dir, split+".json")
		path := jsonPath
		if _, err := os.Stat(jsonPath); err != nil {
			path = filepath.Join(dir, split+".jsonl")
		}

		records, errs := LoadSplitFile(path)
		res.SplitCounts[split] = len(records)
		res.Records = append(res.Records, records...)
		res.Errors = append(res.Errors, errs...)
	}

	return res
}

// LoadSplitFile parses a single split file, dispatching on extension:
// .jsonl is decoded line by line, anything else is treated as a JSON array.
// Returns the parsed records and one error string per failure.
func LoadSplitFile(path string) ([]Record, []string) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, []string{fmt.Sprintf("file not found: %s", path)}
		}
		return nil, []string{fmt.Sprintf("%s: %v", filepath.Base(path), err)}
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return loadJSONLines(f, filepath.Base(path))
	}
	return loadJSONArray(f, filepath.Base(path))
}

func loadJSONLines(f io.Reader, name string) ([]Record, []string) {
	var (
		records []Record
		errs    []string
	)

	scanner := bufio.NewScanner(f)
	// Raise the line limit well past bufio's 64KB default; serialized
	// conversations routinely exceed it.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(line), &v); err != nil {
			errs = append(errs, fmt.Sprintf("%s line %d: %v", name, lineNum, err))
			continue
		}
		records = append(records, NewRecord(v))
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Sprintf("%s: read failed after line %d: %v", name, lineNum, err))
	}

	return records, errs
}

func loadJSONArray(f io.Reader, name string) ([]Record, []string) {
	var raw []json.RawMessage
	dec := json.NewDecoder(f)
	if err := dec.Decode(&raw); err != nil {
		return nil, []string{fmt.Sprintf("%s: expected a JSON array at top level: %v", name, err)}
	}

	var (
		records []Record
		errs    []string
	)
	for i, entry := range raw {
		var v any
		if err := json.Unmarshal(entry, &v); err != nil {
			// Unreachable for entries of an already-decoded array, but a
			// corrupt entry must degrade to a load error, not a panic.
			errs = append(errs, fmt.Sprintf("%s entry %d: %v", name, i, err))
			continue
		}
		records = append(records, NewRecord(v))
	}

	return records, errs
}
