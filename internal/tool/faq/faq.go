// Package faq implements keyword-overlap lookup over a static knowledge
// base of question/answer records.
package faq

import (
	"encoding/json"
	"strings"
)

// Fixed answers for queries the knowledge base cannot serve.
const (
	FallbackAnswer    = "I'm sorry, I couldn't find an answer to that specific question in my current knowledge base. Could you try rephrasing or asking something else?"
	UnavailableAnswer = "I'm sorry, my FAQ knowledge base is currently unavailable."
)

// Entry is one question/answer record. Keywords drive matching; the
// question text itself is informational.
type Entry struct {
	Question string   `json:"question"`
	Keywords []string `json:"keywords"`
	Answer   string   `json:"answer"`
}

// KnowledgeBase is a read-only set of FAQ entries. Safe for concurrent use.
type KnowledgeBase struct {
	entries []Entry
}

// New creates a knowledge base from the given entries.
func New(entries []Entry) *KnowledgeBase {
	return &KnowledgeBase{entries: entries}
}

// Parse creates a knowledge base from JSON data.
func Parse(data []byte) (*KnowledgeBase, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return New(entries), nil
}

// Len returns the number of entries.
func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

// Answer scores each entry by the count of its keywords appearing as
// substrings of the lowercased question and returns the highest-scoring
// answer. Ties keep the first entry in source order. A question matching
// no keywords yields the fixed fallback answer; an empty knowledge base
// yields the unavailable answer.
func (kb *KnowledgeBase) Answer(question string) string {
	if len(kb.entries) == 0 {
		return UnavailableAnswer
	}

	questionLower := strings.ToLower(question)

	bestAnswer := ""
	highestCount := 0
	for _, entry := range kb.entries {
		count := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(questionLower, strings.ToLower(keyword)) {
				count++
			}
		}
		if count > highestCount {
			highestCount = count
			bestAnswer = entry.Answer
		}
	}

	if highestCount == 0 {
		return FallbackAnswer
	}
	return bestAnswer
}
