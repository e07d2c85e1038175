package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *CheckError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *CheckError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *CheckError {
	return New(CategoryValidation, SeverityFatal, "validation failed: "+field+": "+reason).
		WithContext("field", field).
		WithContext("reason", reason)
}

// Scan errors

func ReadFailed(path string, cause error) *CheckError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to read file").
		WithContext("path", path)
}

func WalkFailed(root string, cause error) *CheckError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to walk directory").
		WithContext("root", root)
}

// BrokenLinks reports the aggregated result of a scan that found unresolved
// links. The message is the full human-readable report.
func BrokenLinks(message string, count int) *CheckError {
	return New(CategoryLinks, SeverityError, message).
		WithContext("count", count)
}
