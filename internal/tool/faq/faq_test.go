package faq

import "testing"

func testKB() *KnowledgeBase {
	return New([]Entry{
		{
			Question: "How do I cancel my ticket?",
			Keywords: []string{"cancel", "refund", "ticket"},
			Answer:   "You can cancel up to 24 hours before departure.",
		},
		{
			Question: "What payment methods are accepted?",
			Keywords: []string{"payment", "pay", "card"},
			Answer:   "We accept credit cards and bank transfer.",
		},
		{
			Question: "How early should I arrive?",
			Keywords: []string{"arrive", "early", "ticket"},
			Answer:   "Please arrive 15 minutes before departure.",
		},
	})
}

func TestAnswer_BestKeywordMatch(t *testing.T) {
	kb := testKB()

	tests := []struct {
		name     string
		question string
		want     string
	}{
		{
			name:     "multiple keywords beat a single overlap",
			question: "Can I cancel my ticket and get a refund?",
			want:     "You can cancel up to 24 hours before departure.",
		},
		{
			name:     "case insensitive",
			question: "WHAT PAYMENT do you take?",
			want:     "We accept credit cards and bank transfer.",
		},
		{
			name:     "no keyword overlap falls back",
			question: "Do you allow pets on board?",
			want:     FallbackAnswer,
		},
		{
			name:     "empty question falls back",
			question: "",
			want:     FallbackAnswer,
		},
		{
			name:     "tie keeps the first entry",
			question: "ticket", // one keyword hit in entries 1 and 3
			want:     "You can cancel up to 24 hours before departure.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kb.Answer(tt.question); got != tt.want {
				t.Errorf("Answer(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}

func TestAnswer_Deterministic(t *testing.T) {
	kb := testKB()
	question := "How do I pay for my ticket?"

	first := kb.Answer(question)
	for i := 0; i < 10; i++ {
		if got := kb.Answer(question); got != first {
			t.Fatalf("Answer is not deterministic: %q then %q", first, got)
		}
	}
}

func TestAnswer_EmptyKnowledgeBase(t *testing.T) {
	kb := New(nil)
	if got := kb.Answer("anything"); got != UnavailableAnswer {
		t.Errorf("expected unavailable answer, got %q", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte(`{"not":"a list"}`)); err == nil {
		t.Error("expected error for non-array JSON")
	}
}

func TestDefault_LoadsEmbeddedData(t *testing.T) {
	kb, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if kb.Len() == 0 {
		t.Fatal("embedded knowledge base is empty")
	}

	if got := kb.Answer("How do I cancel my ticket?"); got == FallbackAnswer {
		t.Errorf("embedded data did not answer a canonical question: %q", got)
	}
}
