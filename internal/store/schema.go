package store

const schema = `
CREATE TABLE IF NOT EXISTS tool_settings (
	tool TEXT PRIMARY KEY,
	width INTEGER NOT NULL,
	tolerance INTEGER NOT NULL,
	text_size REAL NOT NULL,
	shape TEXT NOT NULL,
	filled INTEGER NOT NULL DEFAULT 0,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS session_state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
