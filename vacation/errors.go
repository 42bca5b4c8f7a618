package vacation

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidBirthday is returned when a birthday is not a valid "MM-DD".
	ErrInvalidBirthday = errors.New("invalid birthday (use MM-DD)")

	// ErrInvalidDate is returned when a date is not a valid "YYYY-MM-DD".
	ErrInvalidDate = errors.New("invalid date (use YYYY-MM-DD)")

	// ErrInvalidDays is returned when a request asks for zero or fewer days.
	ErrInvalidDays = errors.New("invalid days (must be greater than 0)")

	// ErrInvalidEmployee is returned when an employee record is missing
	// required fields.
	ErrInvalidEmployee = errors.New("invalid employee")

	// ErrEmployeeNotFound is returned when a referenced employee doesn't exist.
	ErrEmployeeNotFound = errors.New("employee not found")
)

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidBirthday) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidDays) ||
		errors.Is(err, ErrInvalidEmployee)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}
