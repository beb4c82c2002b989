package moderation

import (
	"log/slog"

	"github.com/abadojack/whatlanggo"
)

// LanguageModerator picks the dictionary of the detected language of each
// message. Text whose language is unknown, or has no dictionary, is
// checked against every dictionary at once.
type LanguageModerator struct {
	byLanguage map[string]Moderator
	fallback   Moderator
	log        *slog.Logger
}

func NewLanguageModerator(dictionaries Dictionaries, censoredChar rune, log *slog.Logger) (*LanguageModerator, error) {
	byLanguage := make(map[string]Moderator, len(dictionaries))
	for lang, words := range dictionaries {
		m, err := NewModerator(words, censoredChar)
		if err != nil {
			return nil, err
		}
		byLanguage[lang] = m
	}
	fallback, err := NewModerator(dictionaries.All(), censoredChar)
	if err != nil {
		return nil, err
	}
	return &LanguageModerator{byLanguage: byLanguage, fallback: fallback, log: log}, nil
}

// Censor implements contract.Censor.
func (l *LanguageModerator) Censor(text string) string {
	lang := l.detect(text)
	moderator, ok := l.byLanguage[lang]
	if !ok {
		moderator = l.fallback
	}
	censored, words := moderator.Censor(text)
	if len(words) > 0 {
		l.log.Debug("Message censored", "lang", lang, "words", len(words))
	}
	return censored
}

func (l *LanguageModerator) detect(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
