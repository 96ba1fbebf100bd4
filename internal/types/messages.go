package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var fieldMessages = map[string]string{
	"Text.required":           "Text cannot be empty",
	"Text.max":                fmt.Sprintf("Text must be %d characters or fewer", MaxTextLength),
	"ReadingProfile.oneof":    "Reading profile must be one of: child, standard, neurodivergent, elderly, academic",
	"TargetLanguage.required": "Target language is required",
	"TargetLanguage.oneof":    "Target language must be one of: english, spanish, hindi, french",
	"HistoryID.uuid":          "historyId must be a valid id",
}

// ValidationMessage converts a Validate error into the message shown to
// clients, one clause per failed field joined with ", ".
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return strings.Join(messages, ", ")
}
