package graph

// apiError is surfaced to clients as a GraphQL error with a machine-readable
// extension code, matching Apollo's error convention.
type apiError struct {
	message string
	code    string
}

func (e *apiError) Error() string {
	return e.message
}

func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func errUnauthenticated() error {
	return &apiError{message: "Authentication required", code: "UNAUTHENTICATED"}
}

func errBadInput(message string) error {
	return &apiError{message: message, code: "BAD_USER_INPUT"}
}

func errNotFound(message string) error {
	return &apiError{message: message, code: "NOT_FOUND"}
}

func errInternal(message string) error {
	return &apiError{message: message, code: "INTERNAL_SERVER_ERROR"}
}
