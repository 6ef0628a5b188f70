package sqlite

import "fmt"

const currentSchemaVersion = 1

func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	if err := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}
	return nil
}

func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			email       TEXT NOT NULL DEFAULT '',
			designation TEXT,
			department  TEXT,
			role        TEXT NOT NULL DEFAULT 'Employee',
			manager_id  TEXT REFERENCES users(id)
		)`,

		`CREATE TABLE IF NOT EXISTS goals (
			goal_id             TEXT PRIMARY KEY,
			user_id             TEXT NOT NULL REFERENCES users(id),
			created_by          TEXT,
			goal_title          TEXT NOT NULL,
			year                INTEGER NOT NULL,
			quarter             INTEGER NOT NULL,
			month               INTEGER NOT NULL,
			monthly_target      REAL NOT NULL DEFAULT 0,
			monthly_achievement REAL NOT NULL DEFAULT 0,
			week1_target        REAL NOT NULL DEFAULT 0,
			week2_target        REAL NOT NULL DEFAULT 0,
			week3_target        REAL NOT NULL DEFAULT 0,
			week4_target        REAL NOT NULL DEFAULT 0,
			week1_achievement   REAL NOT NULL DEFAULT 0,
			week2_achievement   REAL NOT NULL DEFAULT 0,
			week3_achievement   REAL NOT NULL DEFAULT 0,
			week4_achievement   REAL NOT NULL DEFAULT 0,
			status              TEXT,
			start_date          TEXT,
			end_date            TEXT,
			created_at          TEXT,
			completed_at        TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS goal_feedback (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			goal_id       TEXT NOT NULL REFERENCES goals(goal_id),
			feedback_by   TEXT NOT NULL,
			feedback_type TEXT,
			rating        INTEGER,
			comment       TEXT,
			created_at    TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS team_rankings (
			manager_id      TEXT NOT NULL,
			employee_id     TEXT NOT NULL,
			year            INTEGER NOT NULL,
			month           INTEGER NOT NULL,
			rank            INTEGER NOT NULL,
			total_goals     INTEGER NOT NULL,
			completed_goals INTEGER NOT NULL,
			completion_rate REAL NOT NULL,
			avg_progress    REAL NOT NULL,
			on_time_rate    REAL NOT NULL,
			score           REAL NOT NULL,
			saved_at        TEXT NOT NULL,
			UNIQUE (manager_id, employee_id, year, month)
		)`,

		`CREATE TABLE IF NOT EXISTS job_runs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			scope        TEXT NOT NULL,
			job_type     TEXT NOT NULL,
			status       TEXT NOT NULL,
			details_json TEXT,
			started_at   TEXT NOT NULL,
			completed_at TEXT
		)`,

		`CREATE INDEX IF NOT EXISTS idx_goals_period ON goals(user_id, year, quarter, month)`,
		`CREATE INDEX IF NOT EXISTS idx_users_manager ON users(manager_id)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_goal ON goal_feedback(goal_id)`,

		`DELETE FROM schema_version`,
		fmt.Sprintf(`INSERT INTO schema_version (version) VALUES (%d)`, currentSchemaVersion),
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
