package metrics_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/cpuctl/internal/logger"
	"codeberg.org/mutker/cpuctl/internal/metrics"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(temp int) *metrics.Snapshot {
	return &metrics.Snapshot{
		Timestamp:    time.Unix(1700000000, 0),
		Temperature:  temp,
		PresentCores: 4,
		MaxFrequency: "2400000",
		MinFrequency: "300000",
		Cores: []metrics.CoreSample{
			{Core: 0, Frequency: "1800000"},
			{Core: 1, Frequency: ""},
		},
	}
}

func count(t *testing.T, path, table string) int {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestDisabledCollectorIsNoop(t *testing.T) {
	collector, err := metrics.NewCollector(metrics.DefaultConfig(), logger.New("metrics"))
	require.NoError(t, err)

	assert.NoError(t, collector.Record(context.Background(), sample(40)))
	assert.NoError(t, collector.Close())
}

func TestRecordFlushesOnBatchSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.db")
	collector, err := metrics.NewCollector(metrics.Config{
		DBPath:    path,
		BatchSize: 2,
		Enabled:   true,
	}, logger.New("metrics"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, collector.Record(ctx, sample(40)))
	require.NoError(t, collector.Record(ctx, sample(41)))

	assert.Equal(t, 2, count(t, path, "metrics"))
	assert.Equal(t, 4, count(t, path, "core_frequencies"))
	require.NoError(t, collector.Close())
}

func TestCloseFlushesPartialBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.db")
	collector, err := metrics.NewCollector(metrics.Config{
		DBPath:       path,
		BatchSize:    10,
		BatchTimeout: 30,
		Enabled:      true,
	}, logger.New("metrics"))
	require.NoError(t, err)

	require.NoError(t, collector.Record(context.Background(), sample(-1)))
	require.NoError(t, collector.Close())

	assert.Equal(t, 1, count(t, path, "metrics"))
}

func TestRecordRejectsNilSnapshot(t *testing.T) {
	collector, err := metrics.NewCollector(metrics.Config{
		DBPath:  filepath.Join(t.TempDir(), "metrics.db"),
		Enabled: true,
	}, logger.New("metrics"))
	require.NoError(t, err)
	defer collector.Close()

	assert.Error(t, collector.Record(context.Background(), nil))
}

func TestRecordRejectsOutOfRangeSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.db")
	collector, err := metrics.NewCollector(metrics.Config{
		DBPath:    path,
		BatchSize: 1,
		Enabled:   true,
	}, logger.New("metrics"))
	require.NoError(t, err)

	hot := sample(150)
	assert.Error(t, collector.Record(context.Background(), hot))

	noCores := sample(40)
	noCores.PresentCores = 0
	assert.Error(t, collector.Record(context.Background(), noCores))

	require.NoError(t, collector.Record(context.Background(), sample(-1)))
	require.NoError(t, collector.Close())
	assert.Equal(t, 1, count(t, path, "metrics"))
}

func TestRecordHonoursCancelledContext(t *testing.T) {
	collector, err := metrics.NewCollector(metrics.Config{
		DBPath:    filepath.Join(t.TempDir(), "metrics.db"),
		BatchSize: 1,
		Enabled:   true,
	}, logger.New("metrics"))
	require.NoError(t, err)
	defer collector.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, collector.Record(ctx, sample(30)))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, metrics.DefaultConfig().Validate())
	assert.Error(t, metrics.Config{Enabled: true}.Validate())
	assert.Error(t, metrics.Config{BatchSize: -1}.Validate())
}
