package textstats

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Report holds the three values printed for a passage.
type Report struct {
	TotalWords int
	TopWords   []string
	Best       SentenceScore
}

// Reporter runs the pipeline over a loaded Document.
type Reporter struct {
	// TopN is the number of words kept by the ranker.
	TopN int
	// Logger receives debug output. nil means no logging.
	Logger *slog.Logger
}

// NewReporter creates a Reporter keeping topN words. Non-positive values
// fall back to DefaultTopN.
func NewReporter(topN int) *Reporter {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Reporter{TopN: topN}
}

// Analyze computes the full report without writing anything. It fails with
// ErrEmptyInput when the document has no sentences.
func (r *Reporter) Analyze(doc Document) (Report, error) {
	rep := Report{
		TotalWords: doc.CountTotalWords(),
		TopWords:   r.rank(doc),
	}
	best, err := r.selectBest(doc, rep.TopWords)
	if err != nil {
		return Report{}, err
	}
	rep.Best = best
	return rep, nil
}

// Write prints the report lines to w as each value becomes available. If
// selection fails the first two lines have already been written.
func (r *Reporter) Write(w io.Writer, doc Document) (Report, error) {
	rep := Report{TotalWords: doc.CountTotalWords()}
	if _, err := fmt.Fprintf(w, "1. Total Words :: %d\n", rep.TotalWords); err != nil {
		return Report{}, err
	}

	rep.TopWords = r.rank(doc)
	if _, err := fmt.Fprintf(w, "2. Top Ten Words :: %s\n", FormatList(rep.TopWords)); err != nil {
		return Report{}, err
	}

	best, err := r.selectBest(doc, rep.TopWords)
	if err != nil {
		return Report{}, err
	}
	rep.Best = best
	if _, err := fmt.Fprintf(w, "3. Sentence with most words :: %s\n", best.Text); err != nil {
		return Report{}, err
	}
	return rep, nil
}

func (r *Reporter) rank(doc Document) []string {
	top := TopWords(doc.Tokens, r.TopN)
	if r.Logger != nil && r.Logger.Enabled(context.Background(), slog.LevelDebug) {
		r.Logger.Debug("ranked words", "distinct", len(CountFrequencies(doc.Tokens)), "top", len(top))
	}
	return top
}

func (r *Reporter) selectBest(doc Document, top []string) (SentenceScore, error) {
	scores := ScoreSentences(doc.Sentences, top)
	best, err := SelectSentence(scores)
	if err != nil {
		return SentenceScore{}, err
	}
	if r.Logger != nil {
		r.Logger.Debug("selected sentence", "index", best.Index, "score", best.Score, "sentences", len(scores))
	}
	return best, nil
}

// FormatList renders words as "[a, b, c]".
func FormatList(words []string) string {
	return "[" + strings.Join(words, ", ") + "]"
}
