// Package textstats computes simple statistics over a plain-text passage:
// total word count, the most frequent words, and the sentence (line) that
// contains the most occurrences of those words.
package textstats

// Version returns the current version of the package.
func Version() string { return "0.1.0" }

// DefaultTopN is the number of words kept by the frequency ranker.
const DefaultTopN = 10

// Document is the result of loading a passage.
type Document struct {
	// Tokens holds every whitespace-delimited token in file order.
	Tokens []string
	// Sentences holds every non-empty line verbatim, in file order.
	Sentences []string
}

// CountTotalWords returns the number of tokens in the document.
func (d Document) CountTotalWords() int {
	return len(d.Tokens)
}
