package models

import "time"

// Timestamps carries the lifecycle instants stamped by the write path itself.
// Automatic tracking is disabled so repositories control exactly when a
// record is touched.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime:false"`
}

// TouchOnCreate stamps both instants with the same value on first persist.
func (t *Timestamps) TouchOnCreate() {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
}

// TouchOnUpdate refreshes only the update instant.
func (t *Timestamps) TouchOnUpdate() {
	t.UpdatedAt = time.Now().UTC()
}
