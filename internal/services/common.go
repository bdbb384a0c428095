package services

import (
	"errors"
	"strings"

	"github.com/yukikurage/piyuclean-api/internal/models"
)

var (
	// ErrReferenceInUse is returned when deleting reference data that an
	// assignment or checklist still points at.
	ErrReferenceInUse       = errors.New("record is referenced by existing assignments")
	ErrInvalidAccountStatus = errors.New("status must be active or inactive")
)

// uniqueStrings drops blanks and repeats, keeping first-seen order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// applyTrimmed copies a non-nil, non-blank update into dst.
func applyTrimmed(dst *string, update *string) error {
	if update == nil {
		return nil
	}
	v := strings.TrimSpace(*update)
	if v == "" {
		return ErrMissingField
	}
	*dst = v
	return nil
}

func accountStatusOrDefault(status models.AccountStatus) (models.AccountStatus, error) {
	if status == "" {
		return models.AccountStatusActive, nil
	}
	if !status.Valid() {
		return "", ErrInvalidAccountStatus
	}
	return status, nil
}
