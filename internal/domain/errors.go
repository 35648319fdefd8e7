package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// ValidationErr represents an error when validation of caller input fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// LookupReason classifies why an upstream lookup did not return usable data.
type LookupReason string

const (
	LookupReason_NotFound      LookupReason = "not_found"
	LookupReason_NoResults     LookupReason = "no_results"
	LookupReason_UpstreamError LookupReason = "upstream_error"
	LookupReason_NetworkError  LookupReason = "network_error"
	LookupReason_Timeout       LookupReason = "timeout"
)

// LookupSource identifies the upstream service a lookup was issued against.
type LookupSource string

const (
	LookupSource_Structure LookupSource = "structure"
	LookupSource_Nutrients LookupSource = "nutrients"
)

// LookupErr represents an upstream structure or nutrient lookup that did not return usable data.
// Its message is safe to return to callers.
type LookupErr struct {
	domainErr
	Source LookupSource
	Reason LookupReason
}

// NewLookupErr creates a new LookupErr.
func NewLookupErr(source LookupSource, reason LookupReason, message string) *LookupErr {
	return &LookupErr{
		domainErr: domainErr{message: message},
		Source:    source,
		Reason:    reason,
	}
}

// ServiceUnavailableErr reports that the inference models were never loaded.
type ServiceUnavailableErr struct {
	domainErr
}

// NewServiceUnavailableErr creates a new ServiceUnavailableErr with the given message.
func NewServiceUnavailableErr(message string) *ServiceUnavailableErr {
	return &ServiceUnavailableErr{
		domainErr: domainErr{message: message},
	}
}

// ConfigurationErr reports a missing or inconsistent model artifact.
type ConfigurationErr struct {
	domainErr
}

// NewConfigurationErr creates a new ConfigurationErr with a formatted message.
func NewConfigurationErr(format string, args ...any) *ConfigurationErr {
	return &ConfigurationErr{
		domainErr: domainErr{message: fmt.Sprintf(format, args...)},
	}
}

// InferenceErr reports a feature shape mismatch or a failure inside the classifier.
type InferenceErr struct {
	domainErr
	cause error
}

// NewInferenceErr creates a new InferenceErr wrapping cause.
func NewInferenceErr(message string, cause error) *InferenceErr {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &InferenceErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *InferenceErr) Unwrap() error {
	return e.cause
}
