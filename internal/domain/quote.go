// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"time"
)

// Quote represents a persisted quotation.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the system-assigned identifier. It never changes after creation.
	ID int64

	// Content is the text of the quote.
	Content string

	// Author is who said or wrote the quote.
	Author string

	// Category is a free-form tag used for grouping (e.g. "poetry").
	Category string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuoteAttributes holds the client-writable fields of a quote.
// Anything outside this set is assigned by the store.
type QuoteAttributes struct {
	Content  string
	Author   string
	Category string
}

// Validate checks the attributes before they are persisted.
func (a QuoteAttributes) Validate() error {
	if strings.TrimSpace(a.Content) == "" {
		return NewValidationError("content", "can't be blank")
	}

	return nil
}

// NewQuote builds an unsaved quote from attributes, stamping both timestamps with now.
func NewQuote(attrs QuoteAttributes, now time.Time) *Quote {
	return &Quote{
		Content:   attrs.Content,
		Author:    attrs.Author,
		Category:  attrs.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
