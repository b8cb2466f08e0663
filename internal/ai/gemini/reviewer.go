package gemini

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/upendrajamana/PerfectFitAI07/internal/ai"
	"github.com/upendrajamana/PerfectFitAI07/internal/utils"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompts/grammar.md
var grammarPrompt string

//go:embed prompts/content.md
var contentPrompt string

//go:embed prompts/match.md
var matchPrompt string

//go:embed prompts/format.md
var formatPrompt string

const defaultMaxLogLength = 200

// Reviewer implements ai.Reviewer on top of a Gemini content generator.
type Reviewer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewReviewer builds a Reviewer. A non-positive maxLogLength falls back to
// the default preview length for debug logging.
func NewReviewer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Reviewer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reviewer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// ReviewGrammar asks the oracle for grammar feedback and parses the
// embedded score out of the prose.
func (r *Reviewer) ReviewGrammar(ctx context.Context, resume string) (*ai.Review, error) {
	prompt := strings.ReplaceAll(grammarPrompt, "{{RESUME_TEXT}}", resume)
	return r.review(ctx, "grammar", prompt)
}

// ReviewContent asks the oracle for a full content analysis. The heuristic
// presence/order results are forwarded as hints so the feedback can
// reference them.
func (r *Reviewer) ReviewContent(ctx context.Context, resume string, hints ai.ContentHints) (*ai.Review, error) {
	prompt := strings.ReplaceAll(contentPrompt, "{{RESUME_TEXT}}", resume)
	prompt = strings.ReplaceAll(prompt, "{{PRESENCE_SCORE}}", strconv.Itoa(hints.PresenceScore))
	prompt = strings.ReplaceAll(prompt, "{{ORDER_SCORE}}", strconv.Itoa(hints.OrderScore))

	orderHint := ""
	if len(hints.BestMatchingOrder) > 0 {
		orderHint = "Matched Ideal Section Order:\n" + strings.Join(hints.BestMatchingOrder, " -> ")
	}
	prompt = strings.ReplaceAll(prompt, "{{ORDER_HINT}}", orderHint)

	return r.review(ctx, "content", prompt)
}

// MatchJobDescription asks the oracle for a tailoring score of the resume
// against the job description.
func (r *Reviewer) MatchJobDescription(ctx context.Context, resume, jobDescription string) (*ai.Review, error) {
	prompt := strings.ReplaceAll(matchPrompt, "{{RESUME_TEXT}}", resume)
	prompt = strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", jobDescription)
	return r.review(ctx, "match", prompt)
}

// ReviewFormatting asks the oracle for formatting-only feedback. No score
// is expected in the response.
func (r *Reviewer) ReviewFormatting(ctx context.Context, resume string) (*ai.Review, error) {
	prompt := strings.ReplaceAll(formatPrompt, "{{RESUME_TEXT}}", resume)
	return r.review(ctx, "format", prompt)
}

func (r *Reviewer) review(ctx context.Context, kind, prompt string) (*ai.Review, error) {
	if r == nil || r.generator == nil {
		return nil, fmt.Errorf("gemini reviewer is not initialized")
	}

	r.logger.Debug("gemini review request",
		zap.String("kind", kind),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, r.maxLogLen)),
	)

	raw, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%s review: %w", kind, err)
	}

	r.logger.Debug("gemini review response",
		zap.String("kind", kind),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, r.maxLogLen)),
	)

	feedback := strings.TrimSpace(raw)
	score, scored := ai.ExtractScore(feedback)

	return &ai.Review{
		Feedback: feedback,
		Score:    score,
		Scored:   scored,
		Raw:      raw,
	}, nil
}
