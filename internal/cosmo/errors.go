package cosmo

import (
	"errors"
	"fmt"
)

// ErrReleased is returned by Model.Close when the handle was already
// released. Release must happen exactly once per model.
var ErrReleased = errors.New("cosmo: model already released")

// ModelError represents a failure while building a model or computing with
// one.
//
// Model errors include:
//   - Invalid configuration: structurally invalid request detected before
//     any computation (wrong shapes, impossible mode combinations)
//   - Unsupported setting: a settings name outside its closed vocabulary
//   - Computation failure: the external spectrum engine rejected a
//     (multipole, bin-pair) evaluation
//   - Allocation failure: the output buffer could not be allocated
type ModelError struct {
	// Code identifies the error category.
	Code ModelErrorCode

	// Message is a human-readable description. For computation failures it
	// carries the engine-provided diagnostic verbatim.
	Message string

	// Category names the settings category (for unsupported settings).
	Category SettingCategory

	// Name is the rejected settings string (for unsupported settings).
	Name string
}

// ModelErrorCode categorizes model errors.
type ModelErrorCode string

const (
	// ErrCodeConfigInvalid indicates a structurally invalid request,
	// detectable before any external computation.
	ErrCodeConfigInvalid ModelErrorCode = "CONFIG_INVALID"

	// ErrCodeUnsupportedSetting indicates a settings string outside the
	// closed vocabulary for its category.
	ErrCodeUnsupportedSetting ModelErrorCode = "UNSUPPORTED_SETTING"

	// ErrCodeComputationFailed indicates the external spectrum computation
	// failed for some (multipole, bin-pair).
	ErrCodeComputationFailed ModelErrorCode = "COMPUTATION_FAILED"

	// ErrCodeAllocFailed indicates the output buffer could not be allocated.
	ErrCodeAllocFailed ModelErrorCode = "ALLOC_FAILED"
)

// Error implements the error interface.
func (e *ModelError) Error() string {
	if e.Category != "" && e.Name != "" {
		return fmt.Sprintf("%s: %s (category=%s, name=%s)", e.Code, e.Message, e.Category, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConfigurationError reports whether err is a CONFIG_INVALID model error.
// Uses errors.As to handle wrapped errors.
func IsConfigurationError(err error) bool {
	var me *ModelError
	if errors.As(err, &me) {
		return me.Code == ErrCodeConfigInvalid
	}
	return false
}

// IsUnsupportedSetting reports whether err is an UNSUPPORTED_SETTING model
// error. Uses errors.As to handle wrapped errors.
func IsUnsupportedSetting(err error) bool {
	var me *ModelError
	if errors.As(err, &me) {
		return me.Code == ErrCodeUnsupportedSetting
	}
	return false
}

// IsComputationError reports whether err is a COMPUTATION_FAILED model
// error. Uses errors.As to handle wrapped errors.
func IsComputationError(err error) bool {
	var me *ModelError
	if errors.As(err, &me) {
		return me.Code == ErrCodeComputationFailed
	}
	return false
}

// IsAllocationError reports whether err is an ALLOC_FAILED model error.
func IsAllocationError(err error) bool {
	var me *ModelError
	if errors.As(err, &me) {
		return me.Code == ErrCodeAllocFailed
	}
	return false
}

// NewConfigurationError creates a ModelError for a structurally invalid
// request.
func NewConfigurationError(format string, args ...any) *ModelError {
	return &ModelError{
		Code:    ErrCodeConfigInvalid,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewUnsupportedSettingError creates a ModelError for a name outside its
// category's vocabulary. The message mirrors the historical binding
// diagnostic.
func NewUnsupportedSettingError(category SettingCategory, name string) *ModelError {
	return &ModelError{
		Code:     ErrCodeUnsupportedSetting,
		Message:  fmt.Sprintf("setting %s not implemented", name),
		Category: category,
		Name:     name,
	}
}

// NewComputationError creates a ModelError carrying an engine diagnostic.
func NewComputationError(message string) *ModelError {
	return &ModelError{
		Code:    ErrCodeComputationFailed,
		Message: message,
	}
}

// NewAllocationError creates a ModelError for an allocation failure.
func NewAllocationError(message string) *ModelError {
	return &ModelError{
		Code:    ErrCodeAllocFailed,
		Message: message,
	}
}
