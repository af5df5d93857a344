package models

// TranslationResult is the suggestion returned by the remote service
type TranslationResult struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// HasCommand reports whether there is a command worth copying
func (r *TranslationResult) HasCommand() bool {
	return r != nil && r.Command != ""
}
