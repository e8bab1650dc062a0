package keywords

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	e := NewExtractor()

	testCases := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "FrequencyWins",
			text:  "The dragon flew over the mountains. The dragon slept.",
			limit: 2,
			want:  []string{"dragon", "flew"},
		},
		{
			name:  "StemDeduplication",
			text:  "running runs run",
			limit: 0,
			want:  []string{"running"},
		},
		{
			name:  "StopWordsOnly",
			text:  "the and of to was",
			limit: 3,
			want:  nil,
		},
		{
			name:  "Empty",
			text:  "",
			limit: 5,
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Extract(tc.text, tc.limit)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Extract(%q, %d) = %v, want %v", tc.text, tc.limit, got, tc.want)
			}
		})
	}
}

func TestExtractLimit(t *testing.T) {
	e := NewExtractor()
	got := e.Extract("apples oranges pears plums grapes", 3)
	if len(got) != 3 {
		t.Errorf("expected 3 keywords, got %d: %v", len(got), got)
	}
}
