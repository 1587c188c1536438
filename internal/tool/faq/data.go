package faq

import (
	_ "embed"
	"fmt"
)

//go:embed faq_data.json
var defaultData []byte

// Default loads the knowledge base embedded in the binary.
func Default() (*KnowledgeBase, error) {
	kb, err := Parse(defaultData)
	if err != nil {
		return nil, fmt.Errorf("parse embedded faq data: %w", err)
	}
	return kb, nil
}
