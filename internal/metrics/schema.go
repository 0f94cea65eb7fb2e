package metrics

import "codeberg.org/mutker/cpuctl/internal/database"

const (
	SchemaVersion = 1

	createTablesSQL = `
	CREATE TABLE IF NOT EXISTS metrics (
	    id             INTEGER PRIMARY KEY AUTOINCREMENT,
	    timestamp      INTEGER NOT NULL,
	    temperature    INTEGER NOT NULL CHECK (temperature BETWEEN -1 AND 100),
	    present_cores  INTEGER NOT NULL CHECK (present_cores >= 1),
	    max_frequency  INTEGER NOT NULL,
	    min_frequency  INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS core_frequencies (
	    metric_id  INTEGER NOT NULL REFERENCES metrics(id) ON DELETE CASCADE,
	    core       INTEGER NOT NULL,
	    frequency  INTEGER NOT NULL,
	    PRIMARY KEY (metric_id, core)
	);`

	insertMetricSQL = `
    INSERT INTO metrics (
        timestamp, temperature, present_cores, max_frequency, min_frequency
    ) VALUES (?, ?, ?, ?, ?)`

	insertCoreFrequencySQL = `
    INSERT INTO core_frequencies (metric_id, core, frequency)
    VALUES (?, ?, ?)`
)

func schema() database.Schema {
	return database.Schema{
		Name:      "metrics",
		Version:   SchemaVersion,
		CreateSQL: createTablesSQL,
		Tables:    []string{"core_frequencies", "metrics"},
	}
}
