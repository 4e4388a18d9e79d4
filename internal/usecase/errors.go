package usecase

// Error codes shared by the two error families. STORE and RELAY failures are
// independent outcomes of independent calls: a relay failure never implies
// the record was not persisted, and vice versa.
const (
	CodeValidation      = "VALIDATION"
	CodeInvalidSchedule = "INVALID_SCHEDULE"
	CodeStoreError      = "STORE_ERROR"
	CodeRelayError      = "RELAY_ERROR"
	CodeStorageError    = "STORAGE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
	Cause   error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Cause
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func NewStoreError(cause error) *TechnicalError {
	return &TechnicalError{Code: CodeStoreError, Message: "record store call failed", Cause: cause}
}

func NewRelayError(cause error) *TechnicalError {
	return &TechnicalError{Code: CodeRelayError, Message: "webhook relay failed", Cause: cause}
}

func errCode(err error) string {
	switch e := err.(type) {
	case *DomainError:
		return e.Code
	case *TechnicalError:
		return e.Code
	}
	return ""
}

func IsStoreError(err error) bool {
	return errCode(err) == CodeStoreError
}

func IsRelayError(err error) bool {
	return errCode(err) == CodeRelayError
}

func IsInvalidSchedule(err error) bool {
	return errCode(err) == CodeInvalidSchedule
}
