package models

import "github.com/google/uuid"

// ensureID assigns a fresh UUID when the caller did not pick an id.
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
