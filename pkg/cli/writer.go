package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Writer writes a list of words in one output format.
type Writer interface {
	Write(out io.Writer, words []string) error
}

// NewWriter returns the writer for format, one of text, csv, json or yaml.
func NewWriter(format string, wordKey string) (Writer, error) {
	switch format {
	case "text":
		return TextWriter{}, nil
	case "csv":
		return CsvWriter{WordKey: wordKey}, nil
	case "json":
		return JsonWriter{}, nil
	case "yaml":
		return YamlWriter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// TextWriter writes one word per line.
type TextWriter struct{}

func (TextWriter) Write(out io.Writer, words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(out, word); err != nil {
			return err
		}
	}
	return nil
}

// CsvWriter writes a single column named WordKey.
type CsvWriter struct {
	WordKey string
}

func (w CsvWriter) Write(out io.Writer, words []string) error {
	writer := csv.NewWriter(out)

	if err := writer.Write([]string{w.WordKey}); err != nil {
		return err
	}
	for _, word := range words {
		if err := writer.Write([]string{word}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// JsonWriter streams a JSON array of strings.
type JsonWriter struct{}

func (JsonWriter) Write(out io.Writer, words []string) error {
	encoder := json.NewEncoder(out)

	if _, err := io.WriteString(out, "["); err != nil {
		return err
	}
	for i, word := range words {
		if i > 0 {
			if _, err := io.WriteString(out, ","); err != nil {
				return err
			}
		}
		if err := encoder.Encode(word); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, "]\n")
	return err
}

// YamlWriter writes a YAML sequence of strings.
type YamlWriter struct{}

func (YamlWriter) Write(out io.Writer, words []string) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(words); err != nil {
		return err
	}
	return encoder.Close()
}
