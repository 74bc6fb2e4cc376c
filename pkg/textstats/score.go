package textstats

import "fmt"

// SentenceScore records how many top-word occurrences a sentence holds.
type SentenceScore struct {
	// Index is the 1-based position of the sentence in file order.
	Index int
	Text  string
	Score int
}

// ScoreSentences re-tokenizes each sentence and counts the tokens that are
// exact matches for a top word. Repeated matches within a sentence all count.
// The result is in file order.
func ScoreSentences(sentences, topWords []string) []SentenceScore {
	set := make(map[string]struct{}, len(topWords))
	for _, w := range topWords {
		set[w] = struct{}{}
	}

	scores := make([]SentenceScore, 0, len(sentences))
	for i, s := range sentences {
		score := 0
		for _, t := range Tokenize(s) {
			if _, ok := set[t]; ok {
				score++
			}
		}
		scores = append(scores, SentenceScore{Index: i + 1, Text: s, Score: score})
	}
	return scores
}

// SelectSentence returns the record with the highest score. When several
// sentences share the maximum, the first one in file order wins.
func SelectSentence(scores []SentenceScore) (SentenceScore, error) {
	if len(scores) == 0 {
		return SentenceScore{}, fmt.Errorf("%w: no sentences to select from", ErrEmptyInput)
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best, nil
}
