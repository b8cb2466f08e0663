package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/upendrajamana/PerfectFitAI07/internal/ai"
	"github.com/upendrajamana/PerfectFitAI07/internal/ai/gemini"
	"github.com/upendrajamana/PerfectFitAI07/internal/analyzers"
	"github.com/upendrajamana/PerfectFitAI07/internal/logger"
	"github.com/upendrajamana/PerfectFitAI07/internal/ordering"
	"github.com/upendrajamana/PerfectFitAI07/internal/scoring"
	"github.com/upendrajamana/PerfectFitAI07/internal/sections"
	"github.com/upendrajamana/PerfectFitAI07/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a plain-text resume",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("resume", "r", "", "path to the resume as plain text (required)")
	scoreCmd.Flags().String("job-description", "", "path to a target job description as plain text")
	scoreCmd.Flags().Bool("experienced", false, "use the experienced-profile ideal length band")
	scoreCmd.Flags().StringSlice("analyzer", nil, "run only the named analyzers (default: all)")
	scoreCmd.Flags().Bool("formatting", false, "also request formatting feedback from the AI reviewer")
	scoreCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before sending the resume to the AI reviewer")
	scoreCmd.Flags().StringP("output", "o", "console", "output format: console or json")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		log.Fatalf("marking resume flag required: %v", err)
	}

	viper.BindPFlag("experienced", scoreCmd.Flags().Lookup("experienced"))
}

// score is the main command for the cli.
func score(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting perfectfit", zap.String("version", version))

	text, err := readTextFile(cmd.Flag("resume").Value.String())
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("resume text is empty; scores will degrade to their neutral values")
	}

	jobDescription := ""
	if path := cmd.Flag("job-description").Value.String(); path != "" {
		jobDescription, err = readTextFile(path)
		if err != nil {
			logger.Fatal("reading job description", zap.Error(err))
		}
	}

	experienced := viper.GetBool("experienced") || config.Experienced

	names, err := cmd.Flags().GetStringSlice("analyzer")
	if err != nil {
		logger.Fatal("reading analyzer flag", zap.Error(err))
	}

	steps, err := analyzers.Select(names, experienced)
	if err != nil {
		logger.Fatal("selecting analyzers", zap.Error(err))
	}

	detected := sections.Detect(text)
	presenceScore := sections.PresenceScore(text)
	orderScore, bestOrder := ordering.Score(detected)

	logger.Info("section analysis",
		zap.Strings("detected_sections", sections.Labels(detected)),
		zap.Int("presence_score", presenceScore),
		zap.Int("order_score", orderScore),
		zap.Strings("best_matching_order", bestOrder),
	)

	report := &scoring.Report{
		DetectedSections:  sections.Labels(detected),
		PresenceScore:     presenceScore,
		OrderScore:        orderScore,
		BestMatchingOrder: bestOrder,
		LengthScore:       analyzers.LengthScore(text, experienced),
		Analyzers:         analyzers.Run(logger, text, steps),
	}

	regime := scoring.RegimeDefault
	if strings.TrimSpace(jobDescription) != "" {
		regime = scoring.RegimeJobDescription
	}

	reviewer := prepareReviewer(ctx, cmd, config, logger)
	if reviewer != nil {
		runReviews(ctx, cmd, reviewer, logger, report, text, jobDescription)
	}

	report.Regime = regime.String()
	report.Composite = scoring.Composite(report.CompositeInputs(), regime)

	logger.Info("scoring finished",
		zap.String("regime", report.Regime),
		zap.Float64("composite", report.Composite),
	)

	if err := emitReport(cmd.Flag("output").Value.String(), report, logger); err != nil {
		logger.Fatal("emitting report", zap.Error(err))
	}
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// prepareReviewer builds the Gemini-backed reviewer when AI feedback is
// enabled and the user approves sending the resume out. A nil return means
// heuristics only.
func prepareReviewer(ctx context.Context, cmd *cobra.Command, config *Config, logger *zap.Logger) ai.Reviewer {
	if config == nil || config.AI == nil || !config.AI.Enabled {
		return nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.AI.Provider))
	if provider != "" && provider != "gemini" {
		logger.Warn("skipping AI review", zap.String("reason", "unsupported provider"), zap.String("provider", config.AI.Provider))
		return nil
	}

	if config.AI.Gemini == nil {
		logger.Warn("skipping AI review", zap.String("reason", "gemini configuration is missing"))
		return nil
	}

	if cmd.Flag("auto-approve").Value.String() == "false" {
		prompt := promptui.Select{
			Label: "Send the resume text to the Gemini API for review?",
			Items: []string{PromptYes, PromptNo},
		}
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("confirmation prompt failed", zap.Error(err))
		}
		if action != PromptYes {
			logger.Info("skipping AI review", zap.String("reason", "declined by user"))
			return nil
		}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: config.AI.Gemini.APIKey,
		File:  config.AI.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		logger.Warn("skipping AI review",
			zap.Error(err),
			zap.String("hint", "set ai.gemini.api-key-file or GEMINI_API_KEY"),
		)
		return nil
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, config.AI.Gemini.Model)
	if err != nil {
		logger.Warn("skipping AI review", zap.Error(err))
		return nil
	}

	reviewerLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewReviewer(generator, reviewerLogger, config.AI.Gemini.MaxLogLength)
}

// runReviews collects oracle feedback. Every failure is absorbed: the
// composite score stays computable from whatever came back.
func runReviews(ctx context.Context, cmd *cobra.Command, reviewer ai.Reviewer, logger *zap.Logger, report *scoring.Report, text, jobDescription string) {
	hints := ai.ContentHints{
		PresenceScore:     report.PresenceScore,
		OrderScore:        report.OrderScore,
		BestMatchingOrder: report.BestMatchingOrder,
	}

	if review, err := reviewer.ReviewContent(ctx, text, hints); err != nil {
		logger.Warn("content review failed", zap.Error(err))
	} else {
		report.Content = &scoring.OracleFeedback{Score: review.Score, Scored: review.Scored, Feedback: review.Feedback}
	}

	if review, err := reviewer.ReviewGrammar(ctx, text); err != nil {
		logger.Warn("grammar review failed", zap.Error(err))
	} else {
		report.Grammar = &scoring.OracleFeedback{Score: review.Score, Scored: review.Scored, Feedback: review.Feedback}
	}

	if strings.TrimSpace(jobDescription) != "" {
		if review, err := reviewer.MatchJobDescription(ctx, text, jobDescription); err != nil {
			logger.Warn("job description match failed", zap.Error(err))
		} else {
			report.Tailoring = &scoring.OracleFeedback{Score: review.Score, Scored: review.Scored, Feedback: review.Feedback}
		}
	}

	if cmd.Flag("formatting").Value.String() == "true" {
		if review, err := reviewer.ReviewFormatting(ctx, text); err != nil {
			logger.Warn("formatting review failed", zap.Error(err))
		} else {
			report.Formatting = review.Feedback
		}
	}
}

func emitReport(format string, report *scoring.Report, logger *zap.Logger) error {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "json":
		pretty, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(pretty))
	case "console", "":
		for name, result := range report.Analyzers {
			logger.Info("analyzer result",
				zap.String("name", name),
				zap.Int("score", result.Score),
				zap.String("feedback", result.Feedback),
			)
		}
		fmt.Printf("composite score: %.2f\n", report.Composite)
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}

	return nil
}
