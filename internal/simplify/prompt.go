package simplify

import (
	"strconv"

	"github.com/SuyashSrivastava1/ReadAble/internal/llm"
	"github.com/SuyashSrivastava1/ReadAble/internal/profiles"
	"github.com/SuyashSrivastava1/ReadAble/internal/prompts"
)

func simplifyMessages(text string, profile profiles.ReadingProfile, strict bool) ([]llm.Message, error) {
	instruction, err := prompts.Render(prompts.SimplifyFile, "instruction-normal", nil)
	if strict {
		instruction, err = prompts.Render(prompts.SimplifyFile, "instruction-strict", map[string]string{
			"MaxWords": strconv.Itoa(profile.MaxWordsPerSentence),
		})
	}
	if err != nil {
		return nil, err
	}

	system, err := prompts.Get(prompts.SimplifyFile, "system")
	if err != nil {
		return nil, err
	}
	user, err := prompts.Render(prompts.SimplifyFile, "user", map[string]string{
		"ProfileID":      profile.ID,
		"ProfileLabel":   profile.Label,
		"Tone":           profile.Tone,
		"SentenceLength": profile.SentenceLength,
		"Vocabulary":     profile.Vocabulary,
		"StructureStyle": profile.StructureStyle,
		"Text":           text,
		"Instruction":    instruction,
	})
	if err != nil {
		return nil, err
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, nil
}

func translateMessages(text, languageName string) ([]llm.Message, error) {
	system, err := prompts.Get(prompts.TranslateFile, "system")
	if err != nil {
		return nil, err
	}
	user, err := prompts.Render(prompts.TranslateFile, "user", map[string]string{
		"Language": languageName,
		"Text":     text,
	})
	if err != nil {
		return nil, err
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, nil
}
