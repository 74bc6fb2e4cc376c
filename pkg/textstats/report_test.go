package textstats

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func TestReporterWrite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "two sentences",
			input: "the cat sat on the mat\nthe cat ran\n\n",
			want: "1. Total Words :: 9\n" +
				"2. Top Ten Words :: [the, cat, sat, on, mat, ran]\n" +
				"3. Sentence with most words :: the cat sat on the mat\n",
		},
		{
			name:  "single line",
			input: "hello hello hello",
			want: "1. Total Words :: 3\n" +
				"2. Top Ten Words :: [hello]\n" +
				"3. Sentence with most words :: hello hello hello\n",
		},
		{
			name:  "truncated to ten",
			input: "w1 w2 w3 w4 w5 w6\nw7 w8 w9 w10 w11 w12\n",
			want: "1. Total Words :: 12\n" +
				"2. Top Ten Words :: [w1, w2, w3, w4, w5, w6, w7, w8, w9, w10]\n" +
				"3. Sentence with most words :: w1 w2 w3 w4 w5 w6\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ReadDocument(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadDocument failed: %v", err)
			}
			var out bytes.Buffer
			if _, err := NewReporter(DefaultTopN).Write(&out, doc); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", out.String(), tt.want)
			}
		})
	}
}

func TestReporterWriteEmptyInput(t *testing.T) {
	var out bytes.Buffer
	_, err := NewReporter(DefaultTopN).Write(&out, Document{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	// Output is progressive: the first two lines are already written.
	want := "1. Total Words :: 0\n2. Top Ten Words :: []\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestReporterAnalyze(t *testing.T) {
	doc, err := LoadFile("testdata/passage.txt", LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	r := NewReporter(0)
	if r.TopN != DefaultTopN {
		t.Errorf("NewReporter(0).TopN = %d, want %d", r.TopN, DefaultTopN)
	}

	first, err := r.Analyze(doc)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if first.TotalWords != 9 {
		t.Errorf("TotalWords = %d, want 9", first.TotalWords)
	}
	if first.Best.Index != 1 || first.Best.Score != 6 {
		t.Errorf("Best = %+v, want sentence 1 with score 6", first.Best)
	}

	second, err := r.Analyze(doc)
	if err != nil {
		t.Fatalf("second Analyze failed: %v", err)
	}
	if first.TotalWords != second.TotalWords || !slices.Equal(first.TopWords, second.TopWords) || first.Best != second.Best {
		t.Errorf("runs differ: %+v vs %+v", first, second)
	}

	if _, err := r.Analyze(Document{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput for empty document, got %v", err)
	}
}

func TestReporterTopN(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader("a a a b b c\nc d\n"))
	if err != nil {
		t.Fatalf("ReadDocument failed: %v", err)
	}
	rep, err := NewReporter(2).Analyze(doc)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if want := []string{"a", "b"}; !slices.Equal(rep.TopWords, want) {
		t.Errorf("TopWords = %q, want %q", rep.TopWords, want)
	}
	if rep.Best.Index != 1 || rep.Best.Score != 5 {
		t.Errorf("Best = %+v, want sentence 1 with score 5", rep.Best)
	}
}

func TestFormatList(t *testing.T) {
	if got := FormatList(nil); got != "[]" {
		t.Errorf("FormatList(nil) = %q", got)
	}
	if got := FormatList([]string{"a", "b,", "c"}); got != "[a, b,, c]" {
		t.Errorf("FormatList = %q", got)
	}
}

func TestReporterDebugLogging(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader("the cat sat on the mat\nthe cat ran\n"))
	if err != nil {
		t.Fatalf("ReadDocument failed: %v", err)
	}

	tests := []struct {
		name      string
		level     slog.Level
		wantDebug bool
	}{
		{name: "debug enabled", level: slog.LevelDebug, wantDebug: true},
		{name: "debug disabled", level: slog.LevelWarn, wantDebug: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			r := NewReporter(DefaultTopN)
			r.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: tt.level}))

			if _, err := r.Analyze(doc); err != nil {
				t.Fatalf("Analyze failed: %v", err)
			}
			got := strings.Contains(logs.String(), "distinct=6")
			if got != tt.wantDebug {
				t.Errorf("ranked words debug logged = %v, want %v; logs: %q", got, tt.wantDebug, logs.String())
			}
		})
	}
}
