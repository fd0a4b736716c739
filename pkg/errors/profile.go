package errors

// Constructors for the profile error kinds callers test against with
// errors.Is / IsErrorCode.

// NewConfigError reports that no application name or config directory could
// be determined.
func NewConfigError(reason string) *EnvprofError {
	return New(ErrConfig, reason)
}

// NewNotFoundError reports a missing profile.
func NewNotFoundError(profile string) *EnvprofError {
	return Newf(ErrNotFound, "profile %q does not exist", profile).
		WithDetail("profile", profile)
}

// NewAlreadyExistsError reports a create target that is already on disk.
func NewAlreadyExistsError(profile, path string) *EnvprofError {
	return Newf(ErrAlreadyExists, "profile %q already exists at %s", profile, path).
		WithDetail("profile", profile).
		WithDetail("path", path)
}

// NewMissingRequiredVariableError reports the first required variable that is
// unset or empty after a load. The profile name is always included so the
// message identifies which file needs fixing.
func NewMissingRequiredVariableError(variable, profile string) *EnvprofError {
	return Newf(ErrMissingVariable, "required variable %q is not set by profile %q", variable, profile).
		WithDetail("variable", variable).
		WithDetail("profile", profile)
}

// NewInputRequiredError reports that no profile name could be obtained,
// interactively or otherwise.
func NewInputRequiredError(what string) *EnvprofError {
	return Newf(ErrInputRequired, "%s is required", what)
}

// NewNoProfilesAvailableError reports a selection attempted against an empty
// store.
func NewNoProfilesAvailableError() *EnvprofError {
	return New(ErrNoProfilesAvailable, "no profiles available")
}
