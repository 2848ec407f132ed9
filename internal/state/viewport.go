package state

import (
	"database/sql"
	"errors"
	"time"
)

// maxViewportEntries bounds the number of remembered images.
const maxViewportEntries = 500

// ViewportState is the remembered zoom and position for one image file.
type ViewportState struct {
	Path      string // absolute image path
	SourceX   uint32
	SourceY   uint32
	Zoom      float32
	UpdatedAt time.Time
}

func getViewport(db *sql.DB, path string) (*ViewportState, error) {
	row := db.QueryRow(`
		SELECT source_x, source_y, zoom, updated_at
		FROM viewport_state WHERE path = ?
	`, path)

	state := ViewportState{Path: path}
	var sourceX, sourceY, updatedAt int64
	var zoom float64

	err := row.Scan(&sourceX, &sourceY, &zoom, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // nil state means nothing remembered, not an error
	}
	if err != nil {
		return nil, err
	}

	state.SourceX = clampUint32(sourceX)
	state.SourceY = clampUint32(sourceY)
	state.Zoom = float32(zoom)
	state.UpdatedAt = time.Unix(updatedAt, 0)
	return &state, nil
}

// saveViewport upserts state and drops the oldest entries beyond
// maxViewportEntries.
func saveViewport(db *sql.DB, state ViewportState) error {
	updatedAt := state.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(`
		INSERT INTO viewport_state (path, source_x, source_y, zoom, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			source_x = excluded.source_x,
			source_y = excluded.source_y,
			zoom = excluded.zoom,
			updated_at = excluded.updated_at
	`, state.Path, int64(state.SourceX), int64(state.SourceY), float64(state.Zoom), updatedAt.Unix())
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		DELETE FROM viewport_state WHERE path NOT IN (
			SELECT path FROM viewport_state ORDER BY updated_at DESC, path LIMIT ?
		)
	`, maxViewportEntries)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func clampUint32(v int64) uint32 {
	switch {
	case v < 0:
		return 0
	case v > int64(^uint32(0)):
		return ^uint32(0)
	}
	return uint32(v)
}
