// Package input reads puzzle input files in the shapes the solvers need:
// the whole file, one string per line, or blank-line separated paragraphs.
// Every reader reports an empty file as a distinct error.
package input

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"almanac/internal/errors"
)

// ReadString reads the entire file, line endings normalised to "\n".
func ReadString(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapFileError(path, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return "", errors.NewEmptyInputError(path)
	}
	return strings.ReplaceAll(string(content), "\r\n", "\n"), nil
}

// ReadLines reads the file as one string per line without the line ending.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapFileError(path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapFileError(path, err)
	}

	if len(lines) == 0 {
		return nil, errors.NewEmptyInputError(path)
	}
	return lines, nil
}

// Paragraph is a block of consecutive non-blank lines. Line is the 1-based
// file line of the block's first line.
type Paragraph struct {
	Line  int
	Lines []string
}

// Text returns the paragraph joined with newlines.
func (p Paragraph) Text() string {
	return strings.Join(p.Lines, "\n")
}

// ReadParagraphs reads the file as blocks separated by blank lines. Each
// line is trimmed; whitespace-only lines count as separators.
func ReadParagraphs(path string) ([]Paragraph, error) {
	content, err := ReadString(path)
	if err != nil {
		return nil, err
	}

	paragraphs := SplitParagraphs(content)
	if len(paragraphs) == 0 {
		return nil, errors.NewEmptyInputError(path)
	}
	return paragraphs, nil
}

// SplitParagraphs splits already loaded content the way ReadParagraphs does.
func SplitParagraphs(content string) []Paragraph {
	var (
		paragraphs []Paragraph
		current    *Paragraph
	)

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			current = nil
			continue
		}
		if current == nil {
			paragraphs = append(paragraphs, Paragraph{Line: i + 1})
			current = &paragraphs[len(paragraphs)-1]
		}
		current.Lines = append(current.Lines, line)
	}

	return paragraphs
}
