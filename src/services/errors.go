package services

// BusinessError is a rule violation reported to the caller as a message,
// never as a fault. Controllers map it to 400.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func NewBusinessError(message string) *BusinessError {
	return &BusinessError{Message: message}
}
