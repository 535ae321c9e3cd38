package migrate

// All lists the schema migrations in order. Append only; never edit an
// applied migration.
var All = []Migration{
	{
		Version: 1,
		Name:    "create_user_preferences",
		SQL: `
			CREATE TABLE user_preferences (
				session_key    TEXT PRIMARY KEY,
				theme          TEXT NOT NULL DEFAULT 'light',
				language       TEXT NOT NULL DEFAULT 'zh-hans',
				favorite_tools TEXT NOT NULL DEFAULT '[]',
				created_at     TEXT NOT NULL,
				updated_at     TEXT NOT NULL
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_tool_usage",
		SQL: `
			CREATE TABLE tool_usage (
				tool_name   TEXT PRIMARY KEY,
				usage_count INTEGER NOT NULL DEFAULT 0,
				last_used   TEXT NOT NULL
			)
		`,
	},
	{
		Version: 3,
		Name:    "create_user_history",
		SQL: `
			CREATE TABLE user_history (
				id             INTEGER PRIMARY KEY AUTOINCREMENT,
				session_key    TEXT NOT NULL,
				tool_name      TEXT NOT NULL,
				parameters     TEXT NOT NULL DEFAULT '{}',
				result_preview TEXT NOT NULL DEFAULT '',
				created_at     TEXT NOT NULL
			)
		`,
	},
	{
		Version: 4,
		Name:    "index_user_history_session",
		SQL: `
			CREATE INDEX idx_user_history_session_created
			ON user_history (session_key, created_at DESC)
		`,
	},
}
