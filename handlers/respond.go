package handlers

import (
	"github.com/pocketbase/pocketbase/core"
)

// errorJSON writes a {"success": false, "error": msg} body with the given status.
func errorJSON(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]any{
		"success": false,
		"error":   message,
	})
}

// fieldErrorsJSON writes a 400 with the field -> message map produced by the
// validation layer, so the form can surface inline errors.
func fieldErrorsJSON(e *core.RequestEvent, errors map[string]string) error {
	return e.JSON(400, map[string]any{
		"success": false,
		"errors":  errors,
	})
}
