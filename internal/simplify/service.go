// Package simplify orchestrates a simplification request: one model attempt,
// the quality gate, an optional strict retry and the local rule-based
// fallback. A result is always produced.
package simplify

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/SuyashSrivastava1/ReadAble/internal/ingestion"
	"github.com/SuyashSrivastava1/ReadAble/internal/llm"
	"github.com/SuyashSrivastava1/ReadAble/internal/profiles"
	"github.com/SuyashSrivastava1/ReadAble/internal/readability"
	"github.com/SuyashSrivastava1/ReadAble/internal/rewriting"
	"github.com/SuyashSrivastava1/ReadAble/internal/schemas"
	"github.com/SuyashSrivastava1/ReadAble/internal/summary"
	"github.com/SuyashSrivastava1/ReadAble/internal/types"
	"github.com/SuyashSrivastava1/ReadAble/internal/validation"
)

// DefaultTemperature is the sampling temperature for every completion.
const DefaultTemperature float32 = 0.2

// Validator checks a parsed model object before it is used.
type Validator func(obj map[string]any) error

// Service simplifies and translates text. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	client      llm.Client
	models      []string
	temperature float32
	validate    Validator
	logger      *zap.Logger
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger used for capability failures and gate decisions.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTemperature overrides DefaultTemperature.
func WithTemperature(temperature float32) Option {
	return func(s *Service) { s.temperature = temperature }
}

// WithValidator replaces the schema check applied to parsed model objects.
// A nil validator accepts every object.
func WithValidator(v Validator) Option {
	return func(s *Service) { s.validate = v }
}

// WithModels sets the ordered model candidates.
func WithModels(models []string) Option {
	return func(s *Service) {
		if len(models) > 0 {
			s.models = append([]string(nil), models...)
		}
	}
}

// New creates a Service. A nil client behaves as a disabled one.
func New(client llm.Client, opts ...Option) *Service {
	if client == nil {
		client = llm.DisabledClient{}
	}
	s := &Service{
		client:      client,
		models:      llm.DefaultConfig().ModelCandidates(),
		temperature: DefaultTemperature,
		validate:    schemas.SimplificationResponse,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// candidate is one parsed model response; obj is nil when nothing usable came back.
type candidate struct {
	obj   map[string]any
	model string
}

func (c candidate) simplified() string {
	return stringField(c.obj, "simplified")
}

// Simplify rewrites text for the profile. Model failures, unparseable output
// and rejected rewrites all end in the local rewrite; ModelUsed is set only
// when a model result was accepted.
func (s *Service) Simplify(ctx context.Context, text, profileID string) types.SimplificationResult {
	profile := profiles.Get(profileID)
	log := s.logger.With(zap.String("profile", profile.ID))

	if !s.client.Available() {
		log.Debug("text generation unavailable, using local rewrite")
		return rewriting.Heuristic(text, profile.ID)
	}

	current, err := s.request(ctx, text, profile, false)
	if err != nil {
		log.Warn("simplification request failed, using local rewrite", zap.Error(err))
		return rewriting.Heuristic(text, profile.ID)
	}

	if assessment := validation.Assess(text, current.simplified(), profile.ID); !assessment.Accepted {
		log.Info("first attempt rejected, retrying with strict instructions",
			zap.Strings("reasons", assessment.Reasons),
			zap.Float64("similarity", assessment.Similarity),
			zap.Float64("avg_words", assessment.AvgWords),
		)

		retry, err := s.request(ctx, text, profile, true)
		switch {
		case err != nil:
			log.Warn("strict retry failed", zap.Error(err))
		case retry.obj != nil:
			current = retry
		default:
			log.Info("strict retry returned no usable object")
		}
	}

	if current.obj == nil {
		log.Info("no usable model output, using local rewrite")
		return rewriting.Heuristic(text, profile.ID)
	}

	simplified := ingestion.NormalizeWhitespace(current.simplified())
	if assessment := validation.Assess(text, simplified, profile.ID); !assessment.Accepted {
		log.Info("model rewrite rejected, using local rewrite",
			zap.String("model", current.model),
			zap.Strings("reasons", assessment.Reasons),
		)
		return rewriting.Heuristic(text, profile.ID)
	}

	raw := current.obj["summaryBullets"]
	if isBlank(raw) {
		raw = current.obj["summary"]
	}
	bullets := summary.NormalizeBullets(raw, simplified)

	readingLevel := readingLevelField(current.obj)
	if readingLevel == "" {
		readingLevel = readability.EstimateLevel(simplified)
	}

	model := current.model
	log.Debug("model rewrite accepted", zap.String("model", model))
	return types.SimplificationResult{
		Simplified:   simplified,
		Summary:      summary.ToBulletString(bullets),
		ReadingLevel: readingLevel,
		ModelUsed:    &model,
	}
}

// request performs one completion and parses it. Only capability failures
// are returned as errors; unparseable or invalid output yields a candidate
// with a nil obj.
func (s *Service) request(ctx context.Context, text string, profile profiles.ReadingProfile, strict bool) (candidate, error) {
	messages, err := simplifyMessages(text, profile, strict)
	if err != nil {
		return candidate{}, err
	}

	completion, err := s.client.Complete(ctx, s.models, messages, s.temperature)
	if err != nil {
		return candidate{}, err
	}

	result := candidate{model: completion.Model}
	obj, ok := llm.ParseJSONObject(completion.Text)
	if !ok {
		s.logger.Info("model output is not a JSON object", zap.String("model", completion.Model), zap.Bool("strict", strict))
		return result, nil
	}
	if s.validate != nil {
		if err := s.validate(obj); err != nil {
			s.logger.Info("model output failed schema check", zap.String("model", completion.Model), zap.Error(err))
			return result, nil
		}
	}
	result.obj = obj
	return result, nil
}

func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}

// readingLevelField accepts a label or a bare grade number.
func readingLevelField(obj map[string]any) string {
	switch v := obj["readingLevel"].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	}
	return false
}

// Respond builds the caller-facing response, recomputing both reading levels locally.
func Respond(original, profileID string, result types.SimplificationResult) types.SimplifyResponse {
	originalGrade := readability.EstimateGrade(original)
	simplifiedGrade := readability.EstimateGrade(result.Simplified)
	simplifiedLevel := readability.FormatLevel(simplifiedGrade)

	return types.SimplifyResponse{
		Simplified:             result.Simplified,
		Summary:                result.Summary,
		ReadingLevel:           simplifiedLevel,
		OriginalReadingLevel:   readability.FormatLevel(originalGrade),
		SimplifiedReadingLevel: simplifiedLevel,
		ImprovementPercent:     readability.ImprovementPercent(originalGrade, simplifiedGrade),
		ReadingProfile:         profiles.Get(profileID).ID,
		ModelUsed:              result.ModelUsed,
	}
}
