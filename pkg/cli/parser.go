package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type parseFunc func(r io.Reader, wordKey string, onEachWord func(word string) error) error

// parsers by lower-cased file extension
var parsers = map[string]parseFunc{
	".txt":  parseText,
	".csv":  parseCsv(','),
	".tsv":  parseCsv('\t'),
	".json": parseJson,
	".yaml": parseYaml,
	".yml":  parseYaml,
}

// parseFile streams every word of a word list to onEachWord.
// The format is picked from the file extension.
func parseFile(path string, wordKey string, onEachWord func(word string) error) error {
	parse, ok := parsers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("%s: unsupported file type", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := parse(file, wordKey, onEachWord); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// one word per line, surrounding spaces trimmed, blank lines skipped
func parseText(r io.Reader, _ string, onEachWord func(word string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseCsv(comma rune) parseFunc {
	return func(r io.Reader, wordKey string, onEachWord func(word string) error) error {
		reader := csv.NewReader(r)
		reader.Comma = comma

		// the first line is the header
		headers, err := reader.Read()
		if err != nil {
			return err
		}
		column := slices.Index(headers, wordKey)
		if column < 0 {
			return fmt.Errorf("no %q column in header %v", wordKey, headers)
		}

		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if err := onEachWord(record[column]); err != nil {
				return err
			}
		}
	}
}

// a JSON array of strings or of objects holding the word under wordKey
func parseJson(r io.Reader, wordKey string, onEachWord func(word string) error) error {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("expected a JSON array, got %v", token)
	}

	for decoder.More() {
		var value any
		if err := decoder.Decode(&value); err != nil {
			return err
		}
		word, err := wordOf(value, wordKey)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}

// a YAML sequence of strings or of mappings holding the word under wordKey
func parseYaml(r io.Reader, wordKey string, onEachWord func(word string) error) error {
	var values []any
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty document
		}
		return err
	}

	for _, value := range values {
		word, err := wordOf(value, wordKey)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}
	return nil
}

func wordOf(value any, wordKey string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case map[string]any:
		word, ok := v[wordKey].(string)
		if !ok {
			return "", fmt.Errorf("record %v has no string %q", v, wordKey)
		}
		return word, nil
	default:
		return "", fmt.Errorf("unexpected record %v", value)
	}
}
