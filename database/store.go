package database

import (
	"errors"

	"gorm.io/gorm"
)

// ErrConflict is returned when a guarded update finds the row changed
// since it was read. The caller reports it as retryable; nothing is merged.
var ErrConflict = errors.New("record was modified concurrently")

// UpdateIfUnchanged applies updates to the row matching id only if its
// version still equals the version read earlier, bumping the version in the
// same statement. Two writers racing on the same row leave exactly one
// winner; the loser must distinguish "row gone" from "row changed":
//
//	gorm.ErrRecordNotFound  the row was deleted in between
//	ErrConflict             the row still exists but was updated
func UpdateIfUnchanged(db *gorm.DB, model interface{}, idColumn string, id string, version uint, updates map[string]interface{}) error {
	updates["version"] = version + 1

	res := db.Model(model).
		Where(idColumn+" = ? AND version = ?", id, version).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Zero rows touched: re-check existence to name the failure
	var count int64
	if err := db.Model(model).Where(idColumn+" = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrConflict
}
