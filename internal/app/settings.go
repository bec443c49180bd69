package app

import "strings"

type SettingsErrorCode string

const (
	SettingsErrInvalid      SettingsErrorCode = "INVALID_SETTINGS"
	SettingsErrImportFormat SettingsErrorCode = "INVALID_IMPORT"
)

// SettingsValidationError collects every rule a settings record broke.
type SettingsValidationError struct {
	Code     SettingsErrorCode
	Messages []string
}

func (e *SettingsValidationError) Error() string {
	return string(e.Code) + ": " + strings.Join(e.Messages, "; ")
}
