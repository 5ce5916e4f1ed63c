package sentiment

import "testing"

func TestScoreBounds(t *testing.T) {
	analyzer := NewAnalyzer()

	inputs := []string{
		"",
		"   ",
		"I love this wonderful amazing movie",
		"I hate this terrible awful disaster",
		"The report was filed on Tuesday",
		"absolutely fantastic!!! best thing ever",
		"worst. garbage. horrible. never again.",
	}
	for _, input := range inputs {
		score := analyzer.Score(input)
		if score < -1 || score > 1 {
			t.Errorf("Score(%q) = %v, outside [-1, 1]", input, score)
		}
	}
}

func TestScoreEmptyIsNeutral(t *testing.T) {
	analyzer := NewAnalyzer()

	if got := analyzer.Score(""); got != 0 {
		t.Errorf("Score(\"\") = %v, want 0", got)
	}
	if got := analyzer.Score("   \t "); got != 0 {
		t.Errorf("Score(whitespace) = %v, want 0", got)
	}
}

func TestScoreSign(t *testing.T) {
	analyzer := NewAnalyzer()

	if got := analyzer.Score("I love this wonderful movie"); got <= 0 {
		t.Errorf("positive text scored %v, want > 0", got)
	}
	if got := analyzer.Score("I hate this terrible awful movie"); got >= 0 {
		t.Errorf("negative text scored %v, want < 0", got)
	}
}

func TestScoreDeterministic(t *testing.T) {
	analyzer := NewAnalyzer()

	const text = "a quiet and moving story about loss"
	first := analyzer.Score(text)
	second := analyzer.Score(text)
	if first != second {
		t.Errorf("Score not deterministic: %v vs %v", first, second)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{-0.5, -0.5},
		{1.5, 1},
		{-1.5, -1},
		{0, 0},
	}
	for _, tt := range tests {
		if got := clamp(tt.in); got != tt.want {
			t.Errorf("clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
