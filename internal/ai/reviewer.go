package ai

import "context"

// Review is one piece of feedback from the content-feedback oracle. Scored
// reports whether a numeric score could be parsed out of the prose.
type Review struct {
	Feedback string
	Score    int
	Scored   bool
	Raw      string
}

// ContentHints are heuristic results forwarded to the oracle so its content
// review can reference them.
type ContentHints struct {
	PresenceScore     int
	OrderScore        int
	BestMatchingOrder []string
}

// Reviewer is the external content-feedback oracle. Implementations call a
// text-generation service; callers must treat every error as a missing
// score and continue.
type Reviewer interface {
	ReviewContent(ctx context.Context, resume string, hints ContentHints) (*Review, error)
	ReviewGrammar(ctx context.Context, resume string) (*Review, error)
	MatchJobDescription(ctx context.Context, resume, jobDescription string) (*Review, error)
	ReviewFormatting(ctx context.Context, resume string) (*Review, error)
}
