package simplify

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// English is returned unchanged without calling a model.
const English = "english"

// Languages maps supported target language ids to display names.
var Languages = map[string]string{
	"english": "English",
	"spanish": "Spanish",
	"hindi":   "Hindi",
	"french":  "French",
}

// IsSupportedLanguage reports whether language is a known target id.
func IsSupportedLanguage(language string) bool {
	_, ok := Languages[normalizeLanguage(language)]
	return ok
}

// LanguageName returns the display name for a language id, or the id itself when unknown.
func LanguageName(language string) string {
	id := normalizeLanguage(language)
	if name, ok := Languages[id]; ok {
		return name
	}
	return id
}

// Placeholder marks text that could not be translated.
func Placeholder(text, language string) string {
	return fmt.Sprintf("[Mock %s translation]\n%s", LanguageName(language), text)
}

// Translate returns text in the target language. English input is returned as
// is; without a usable model response the placeholder is returned instead.
func (s *Service) Translate(ctx context.Context, text, language string) string {
	language = normalizeLanguage(language)
	if language == English {
		return text
	}

	log := s.logger.With(zap.String("language", language))
	if !s.client.Available() {
		log.Debug("text generation unavailable, returning placeholder translation")
		return Placeholder(text, language)
	}

	messages, err := translateMessages(text, LanguageName(language))
	if err != nil {
		log.Error("failed to build translation prompt", zap.Error(err))
		return Placeholder(text, language)
	}

	completion, err := s.client.Complete(ctx, s.models, messages, s.temperature)
	if err != nil {
		log.Warn("translation request failed, returning placeholder", zap.Error(err))
		return Placeholder(text, language)
	}

	translated := strings.TrimSpace(completion.Text)
	if translated == "" {
		log.Info("model returned an empty translation", zap.String("model", completion.Model))
		return Placeholder(text, language)
	}
	return translated
}

func normalizeLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}
