package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/easel/internal/tools"
)

// Session state keys.
const (
	KeyLastTool  = "last_tool"
	KeyLastColor = "last_color"
)

// SaveToolSettings upserts the options-panel values of t.
func (db *DB) SaveToolSettings(ctx context.Context, t tools.Type, s tools.Settings) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO tool_settings (tool, width, tolerance, text_size, shape, filled, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(tool) DO UPDATE SET
			width = excluded.width,
			tolerance = excluded.tolerance,
			text_size = excluded.text_size,
			shape = excluded.shape,
			filled = excluded.filled,
			updated_at = CURRENT_TIMESTAMP`,
		t.String(), s.Width, int(s.Tolerance), s.TextSize, string(s.Shape), s.Filled,
	)
	if err != nil {
		return fmt.Errorf("saving %s settings: %w", t, err)
	}
	return nil
}

// ToolSettings returns the stored settings of t. ok is false when nothing
// was stored.
func (db *DB) ToolSettings(ctx context.Context, t tools.Type) (s tools.Settings, ok bool, err error) {
	var tolerance int
	var shape string
	err = db.QueryRowContext(ctx,
		`SELECT width, tolerance, text_size, shape, filled FROM tool_settings WHERE tool = ?`,
		t.String(),
	).Scan(&s.Width, &tolerance, &s.TextSize, &shape, &s.Filled)
	if err == sql.ErrNoRows {
		return tools.Settings{}, false, nil
	}
	if err != nil {
		return tools.Settings{}, false, fmt.Errorf("loading %s settings: %w", t, err)
	}
	s.Tolerance = uint8(tolerance)
	s.Shape = tools.ShapeKind(shape)
	return s, true, nil
}

// AllToolSettings returns every stored row keyed by tool type. Rows naming a
// tool type this build does not know are skipped.
func (db *DB) AllToolSettings(ctx context.Context) (map[tools.Type]tools.Settings, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT tool, width, tolerance, text_size, shape, filled FROM tool_settings ORDER BY tool`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[tools.Type]tools.Settings)
	for rows.Next() {
		var name, shape string
		var tolerance int
		var s tools.Settings
		if err := rows.Scan(&name, &s.Width, &tolerance, &s.TextSize, &shape, &s.Filled); err != nil {
			return nil, err
		}
		t, err := tools.ParseType(name)
		if err != nil {
			continue
		}
		s.Tolerance = uint8(tolerance)
		s.Shape = tools.ShapeKind(shape)
		out[t] = s
	}
	return out, rows.Err()
}

// SetState stores a session value under key.
func (db *DB) SetState(ctx context.Context, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO session_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// State returns the session value under key, or "" if unset.
func (db *DB) State(ctx context.Context, key string) (string, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT value FROM session_state WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return v, err
}
