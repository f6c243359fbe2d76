// Package storage provides a SQLite-backed journal of generated maps.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/maze-arcade/internal/maze"
)

// Store manages the SQLite database connection for the build journal.
type Store struct {
	db *sql.DB
}

// BuildRecord is one journaled map build.
type BuildRecord struct {
	ID          int64
	Level       int
	Tier        int
	Seed        int64
	TilesX      int
	TilesY      int
	Walls       int
	Goals       int
	GoalTarget  int
	BorderTiles int
	CreatedAt   time.Time
}

// Shortfall returns how many goal slots were left empty.
func (r BuildRecord) Shortfall() int {
	return max(r.GoalTarget-r.Goals, 0)
}

// NewBuildRecord summarizes a build result for the journal.
func NewBuildRecord(res *maze.MapBuildResult, seed int64) BuildRecord {
	return BuildRecord{
		Level:       res.Profile.Level,
		Tier:        res.Profile.Tier,
		Seed:        seed,
		TilesX:      res.TilesX,
		TilesY:      res.TilesY,
		Walls:       len(res.Walls),
		Goals:       len(res.Goals),
		GoalTarget:  res.Profile.GoalCount,
		BorderTiles: len(res.Border.Tiles),
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS builds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			tier INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			tiles_x INTEGER NOT NULL,
			tiles_y INTEGER NOT NULL,
			walls INTEGER NOT NULL,
			goals INTEGER NOT NULL,
			goal_target INTEGER NOT NULL,
			border_tiles INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_builds_level ON builds(level);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBuild records a build and returns the ID of the inserted row.
func (s *Store) SaveBuild(r BuildRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO builds
		 (level, tier, seed, tiles_x, tiles_y, walls, goals, goal_target, border_tiles)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Level, r.Tier, r.Seed, r.TilesX, r.TilesY, r.Walls, r.Goals, r.GoalTarget, r.BorderTiles,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save build: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const buildColumns = `id, level, tier, seed, tiles_x, tiles_y, walls, goals, goal_target, border_tiles, created_at`

// RecentBuilds retrieves the most recent builds, newest first.
func (s *Store) RecentBuilds(limit int) ([]BuildRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+buildColumns+`
		 FROM builds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query builds: %w", err)
	}
	return scanBuilds(rows)
}

// BuildsForLevel retrieves the most recent builds of one level, newest first.
func (s *Store) BuildsForLevel(level, limit int) ([]BuildRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+buildColumns+`
		 FROM builds
		 WHERE level = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query builds: %w", err)
	}
	return scanBuilds(rows)
}

// BuildBySeed returns the latest build of level with the given seed, or nil.
func (s *Store) BuildBySeed(level int, seed int64) (*BuildRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+buildColumns+`
		 FROM builds
		 WHERE level = ? AND seed = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		level, seed,
	)

	r, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query build: %w", err)
	}
	return &r, nil
}

// ClearBuilds deletes the whole journal.
func (s *Store) ClearBuilds() error {
	if _, err := s.db.Exec("DELETE FROM builds"); err != nil {
		return fmt.Errorf("storage: cannot clear builds: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for one level.
type LevelStats struct {
	Level      int
	Builds     int
	AvgWalls   float64
	AvgGoals   float64
	Shortfalls int // Builds that placed fewer goals than requested
	LastBuilt  time.Time
}

// GetLevelStats retrieves statistics for every level that has been built.
func (s *Store) GetLevelStats() (map[int]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), AVG(walls), AVG(goals),
		        SUM(CASE WHEN goals < goal_target THEN 1 ELSE 0 END), MAX(created_at)
		 FROM builds
		 GROUP BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var lastBuilt any
		if err := rows.Scan(&st.Level, &st.Builds, &st.AvgWalls, &st.AvgGoals, &st.Shortfalls, &lastBuilt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastBuilt = parseTime(lastBuilt)
		stats[st.Level] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBuild(row scanner) (BuildRecord, error) {
	var r BuildRecord
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.Level,
		&r.Tier,
		&r.Seed,
		&r.TilesX,
		&r.TilesY,
		&r.Walls,
		&r.Goals,
		&r.GoalTarget,
		&r.BorderTiles,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func scanBuilds(rows *sql.Rows) ([]BuildRecord, error) {
	defer rows.Close()

	var records []BuildRecord
	for rows.Next() {
		r, err := scanBuild(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles the datetime column as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
