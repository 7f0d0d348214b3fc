package domain

import "time"

// KnowledgeArticle is a knowledge-base entry. An article is published
// iff PublishedAt is non-nil; a nil timestamp means draft.
type KnowledgeArticle struct {
	ID          string
	Title       string
	Content     string
	Category    string
	Tags        []string
	Author      string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Published reports whether the article is visible to the portal.
func (a *KnowledgeArticle) Published() bool {
	return a.PublishedAt != nil
}
