package persistence

// Schema statements are idempotent (IF NOT EXISTS) and never alter existing tables.
// Profile attributes are copied unvalidated: SQLite keeps age, years_in_industry
// and job_hops untyped so each value keeps its document type, PostgreSQL stores
// every attribute as TEXT.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS person (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seq INTEGER NOT NULL UNIQUE,
		name TEXT,
		gender TEXT,
		age
	)`,
	`CREATE TABLE IF NOT EXISTS person_basic (
		person_id INTEGER PRIMARY KEY REFERENCES person(id) ON DELETE CASCADE,
		hobby TEXT,
		personality TEXT,
		family TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS person_work (
		person_id INTEGER PRIMARY KEY REFERENCES person(id) ON DELETE CASCADE,
		years_in_industry,
		job_hops,
		previous_job TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS person_education (
		person_id INTEGER PRIMARY KEY REFERENCES person(id) ON DELETE CASCADE,
		degree TEXT,
		school TEXT,
		major TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS ability_score (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		person_id INTEGER NOT NULL REFERENCES person(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		ability TEXT NOT NULL,
		level_text TEXT,
		score REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ability_score_person_id ON ability_score(person_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ability_score_category ON ability_score(category, ability)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS person (
		id BIGSERIAL PRIMARY KEY,
		seq BIGINT NOT NULL UNIQUE,
		name TEXT,
		gender TEXT,
		age TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS person_basic (
		person_id BIGINT PRIMARY KEY REFERENCES person(id) ON DELETE CASCADE,
		hobby TEXT,
		personality TEXT,
		family TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS person_work (
		person_id BIGINT PRIMARY KEY REFERENCES person(id) ON DELETE CASCADE,
		years_in_industry TEXT,
		job_hops TEXT,
		previous_job TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS person_education (
		person_id BIGINT PRIMARY KEY REFERENCES person(id) ON DELETE CASCADE,
		degree TEXT,
		school TEXT,
		major TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS ability_score (
		id BIGSERIAL PRIMARY KEY,
		person_id BIGINT NOT NULL REFERENCES person(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		ability TEXT NOT NULL,
		level_text TEXT,
		score DOUBLE PRECISION
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ability_score_person_id ON ability_score(person_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ability_score_category ON ability_score(category, ability)`,
}

var countTables = []string{"person", "person_basic", "person_work", "person_education", "ability_score"}
