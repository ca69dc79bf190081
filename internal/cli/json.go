package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"holewatch/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine
// parsing. All --json output uses this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts an error into a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	env := JSONEnvelope{
		Success: false,
		Error:   errorToJSON(err),
	}
	return writeJSONEnvelope(w, env)
}

// errorToJSON maps structured errors onto the wire shape; anything else
// becomes an API error with the raw text.
func errorToJSON(err error) *JSONError {
	var structured *errors.Error
	if stderrors.As(err, &structured) {
		return &JSONError{
			Code:       structured.Code,
			Message:    structured.Message,
			Suggestion: structured.Suggestion,
		}
	}
	return &JSONError{
		Code:    errors.ErrAPI,
		Message: err.Error(),
	}
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
