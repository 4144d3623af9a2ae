package generation

import "fmt"

// UpstreamError represents a network or provider failure calling the LLM,
// embedding, or vector store collaborators.
type UpstreamError struct {
	Op    string
	Cause error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream failure during %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("upstream failure during %s", e.Op)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// NoContextError indicates retrieval returned nothing for the query; the
// generator refuses to prompt the model without grounding context.
type NoContextError struct {
	Persona string
}

func (e *NoContextError) Error() string {
	if e.Persona != "" {
		return fmt.Sprintf("no relevant documents found for persona %q", e.Persona)
	}
	return "no relevant documents found"
}

// InvalidJSONError indicates the model output could not be parsed as JSON.
// Raw preserves the full response text for diagnostics.
type InvalidJSONError struct {
	Raw   string
	Cause error
}

func (e *InvalidJSONError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model output is not valid JSON: %v", e.Cause)
	}
	return "model output is not valid JSON"
}

func (e *InvalidJSONError) Unwrap() error {
	return e.Cause
}

// SchemaError indicates the model output parsed as JSON but does not match
// the strategy output schema (wrong-typed fields). Raw preserves the full
// response text for diagnostics.
type SchemaError struct {
	Raw   string
	Cause error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model output failed schema validation: %v", e.Cause)
	}
	return "model output failed schema validation"
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}
