package learn

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Con Mèo  ", "con mèo"},
		{"con\t mèo", "con mèo"},
		{"CAT", "cat"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := normalizeAnswer(tt.in); got != tt.want {
			t.Errorf("normalizeAnswer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGradeAnswer(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name      string
		canonical string
		raw       string
		want      Result
	}{
		{"exact", "con mèo", "con mèo", ResultCorrect},
		{"exact with outer whitespace", "con mèo", "  con mèo ", ResultCorrect},
		{"case slip", "con mèo", "Con Mèo", ResultCorrectMinor},
		{"inner whitespace slip", "con mèo", "con  mèo", ResultCorrectMinor},
		{"missing diacritic", "con mèo", "con meo", ResultCorrectMinor},
		{"one typo short answer", "cat", "cot", ResultCorrectMinor},
		{"two typos short answer", "cat", "cut!", ResultIncorrect},
		{"two typos long answer", "elephant seal", "elefant seal", ResultCorrectMinor},
		{"wrong word", "con mèo", "con chó", ResultIncorrect},
		{"empty input", "con mèo", "", ResultIncorrect},
		{"whitespace only input", "con mèo", "   ", ResultIncorrect},
		{"completely different", "con mèo", "dog", ResultIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gradeAnswer(tt.canonical, tt.raw, p); got != tt.want {
				t.Errorf("gradeAnswer(%q, %q) = %v, want %v", tt.canonical, tt.raw, got, tt.want)
			}
		})
	}
}

func TestGradeAnswer_DeterministicAcrossCalls(t *testing.T) {
	p := DefaultPolicy()
	first := gradeAnswer("con mèo", "con meo", p)
	second := gradeAnswer("con mèo", "con meo", p)
	if first != second {
		t.Errorf("grading not deterministic: %v then %v", first, second)
	}
}
