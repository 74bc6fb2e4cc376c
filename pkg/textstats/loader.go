package textstats

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single line; bufio.Scanner's default of 64KB is too
// small for passages pasted without line breaks.
const maxLineSize = 4 * 1024 * 1024

// LoadOptions controls how a file is turned into a Document.
type LoadOptions struct {
	// Encoding names the input charset ("utf-8", "shift_jis", "auto", ...).
	// Empty means UTF-8.
	Encoding string
	// HTML extracts the readable article text before splitting into lines.
	HTML bool
}

// LoadFile reads the file at path and returns its tokens and sentences.
// Open and read failures are wrapped with ErrFileAccess.
func LoadFile(path string, opts LoadOptions) (Document, error) {
	// Validate the encoding name before touching the file.
	if err := ValidateEncoding(opts.Encoding); err != nil {
		return Document{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return Document{}, fmt.Errorf("%w: read %s: %w", ErrFileAccess, path, err)
	}

	text, err := decode(content, opts.Encoding)
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}

	if opts.HTML {
		text, err = ExtractArticle(text, path)
		if err != nil {
			return Document{}, fmt.Errorf("extract article from %s: %w", path, err)
		}
	}

	doc, err := ReadDocument(strings.NewReader(text))
	if err != nil {
		return Document{}, fmt.Errorf("%w: read %s: %w", ErrFileAccess, path, err)
	}
	return doc, nil
}

// scanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a
// lone "\r". The terminator is not part of the returned line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need one more byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ReadDocument reads r line by line. Lines that are exactly empty are
// skipped; every other line becomes a sentence and contributes its tokens.
// A whitespace-only line is kept as a sentence even though it has no tokens.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		doc.Sentences = append(doc.Sentences, line)
		doc.Tokens = append(doc.Tokens, Tokenize(line)...)
	}
	if err := scanner.Err(); err != nil {
		return Document{}, err
	}
	return doc, nil
}
