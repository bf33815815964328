package database

import (
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type statusCount struct {
	Status string
	Count  int64
}

// countGroupedByStatus aggregates row counts per status value. Only statuses
// actually present in storage appear as keys.
func countGroupedByStatus(db *gorm.DB, model any) (map[string]int64, error) {
	var rows []statusCount
	err := db.Model(model).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.Associate(rows, func(row statusCount) (string, int64) {
		return row.Status, row.Count
	}), nil
}
