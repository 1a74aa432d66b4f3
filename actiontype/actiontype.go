package actiontype

import "strings"

const (
	ErrorSuffix   = "_ERROR"
	SuccessSuffix = "_SUCCESS"
)

// Base returns the base type of name by removing a trailing ErrorSuffix
// and then a trailing SuccessSuffix. Base names are returned unchanged.
func Base(name string) string {
	name = strings.TrimSuffix(name, ErrorSuffix)
	return strings.TrimSuffix(name, SuccessSuffix)
}

// Error returns the error variant of name.
func Error(name string) string {
	return name + ErrorSuffix
}

// Success returns the success variant of name.
func Success(name string) string {
	return name + SuccessSuffix
}

// IsBase reports whether name contains neither "ERROR" nor "SUCCESS".
func IsBase(name string) bool {
	return !strings.Contains(name, "ERROR") && !strings.Contains(name, "SUCCESS")
}

// IsError reports whether name contains "ERROR" anywhere.
func IsError(name string) bool {
	return strings.Contains(name, "ERROR")
}

// IsSuccess reports whether name contains "SUCCESS" anywhere.
func IsSuccess(name string) bool {
	return strings.Contains(name, "SUCCESS")
}
