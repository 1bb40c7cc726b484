package output

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dashkit/pkg/errors"
	"gopkg.in/yaml.v3"
)

// errorPayload is how errors are encoded by the machine renderers.
type errorPayload struct {
	Error   string                 `json:"error" yaml:"error"`
	Code    string                 `json:"code" yaml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

type messagePayload struct {
	Message string `json:"message" yaml:"message"`
}

func newErrorPayload(err error) errorPayload {
	return errorPayload{
		Error:   userMessage(err),
		Code:    string(errors.GetErrorCode(err)),
		Details: errors.GetErrorDetails(err),
	}
}

// payload returns what the machine renderers encode for result.
func payload(result interface{}) interface{} {
	if r, ok := result.(*Report); ok {
		return r.Data
	}
	return result
}

// JSONRenderer provides JSON output for machine consumption
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSONRenderer creates a new JSON renderer
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

// RenderResult renders any result type as JSON
func (r *JSONRenderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(payload(result))
}

// RenderError renders an error as JSON
func (r *JSONRenderer) RenderError(err error) error {
	return r.encoder.Encode(newErrorPayload(err))
}

// RenderMessage renders a simple message as JSON
func (r *JSONRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(messagePayload{Message: msg})
}

// YAMLRenderer provides YAML output for machine consumption
type YAMLRenderer struct {
	w io.Writer
}

// NewYAMLRenderer creates a new YAML renderer
func NewYAMLRenderer(w io.Writer) *YAMLRenderer {
	return &YAMLRenderer{w: w}
}

// RenderResult renders any result type as a YAML document
func (r *YAMLRenderer) RenderResult(result interface{}) error {
	return r.encode(payload(result))
}

// RenderError renders an error as YAML
func (r *YAMLRenderer) RenderError(err error) error {
	return r.encode(newErrorPayload(err))
}

// RenderMessage renders a simple message as YAML
func (r *YAMLRenderer) RenderMessage(msg string) error {
	return r.encode(messagePayload{Message: msg})
}

func (r *YAMLRenderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
