package errors

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// UserMessage returns a user-friendly error message
func UserMessage(err error) string {
	if uErr, ok := err.(*UtilError); ok {
		return formatUserError(uErr)
	}
	return err.Error()
}

// formatUserError creates user-friendly error messages based on error type
func formatUserError(uErr *UtilError) string {
	switch uErr.Type {
	case ErrorTypeValidation:
		return formatValidationError(uErr)
	case ErrorTypeInput:
		return formatInputError(uErr)
	case ErrorTypeConfig:
		return formatConfigError(uErr)
	default:
		return uErr.Message
	}
}

func formatValidationError(uErr *UtilError) string {
	msg := uErr.Message
	if field, ok := uErr.Context["field"]; ok {
		msg = fmt.Sprintf("Invalid %s: %s", field, msg)
	}
	return msg
}

func formatInputError(uErr *UtilError) string {
	msg := uErr.Message
	if source, ok := uErr.Context["source"]; ok {
		msg = fmt.Sprintf("Bad input from %s: %s", source, msg)
	}
	return msg
}

func formatConfigError(uErr *UtilError) string {
	msg := uErr.Message
	if flag, ok := uErr.Context["flag"]; ok {
		msg = fmt.Sprintf("Configuration error (--%s): %s", flag, msg)
	}
	return msg
}

// PresentError displays an error to the user through centralized zerolog system
func PresentError(err error) {
	if err == nil {
		return
	}

	if uErr, ok := err.(*UtilError); ok {
		event := log.Fatal()

		// Add context fields as structured data
		for key, value := range uErr.Context {
			event = event.Interface(key, value)
		}

		event.Msg(uErr.Message)
	} else {
		log.Fatal().Err(err).Msg("")
	}
}
