package db

import (
	"time"

	"gorm.io/gorm"
)

type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
}

const startedAtKey = "metrics:started_at"

// RegisterMetricsCallbacks times every select and insert issued through db.
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	if err := db.Callback().Query().Before("gorm:query").Register("metrics:query_before", markStart); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("metrics:query_after", record(recorder, "select")); err != nil {
		return err
	}
	if err := db.Callback().Create().Before("gorm:create").Register("metrics:create_before", markStart); err != nil {
		return err
	}
	return db.Callback().Create().After("gorm:create").Register("metrics:create_after", record(recorder, "insert"))
}

func markStart(db *gorm.DB) {
	db.InstanceSet(startedAtKey, time.Now())
}

func record(recorder MetricsRecorder, operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		startedAt, ok := db.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		recorder.RecordDBQuery(operation, table, time.Since(startedAt.(time.Time)), db.Error)
	}
}
