package controllers

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
)

// parseID converts a path parameter to a row id. Ids are server-assigned
// positive integers, so anything else can never name an existing row and
// callers answer with their resource's 404.
func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// isDuplicate reports a unique-index violation surfaced by gorm's error
// translation. Creation paths use it so a race past the pre-insert check
// still answers with the same conflict body.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isNotFound reports the record-not-found sentinel.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
