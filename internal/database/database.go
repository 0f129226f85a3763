package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "agora_user")
	password := getEnv("DB_PASSWORD", "agora_password")
	dbname := getEnv("DB_NAME", "agora")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS user_xp (
		user_id    BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		total_xp   BIGINT NOT NULL DEFAULT 0,
		level      INT NOT NULL DEFAULT 1,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS user_streaks (
		user_id            BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		current_streak     INT NOT NULL DEFAULT 0,
		longest_streak     INT NOT NULL DEFAULT 0,
		last_activity_date DATE,
		updated_at         TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS unlocked_achievements (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		achievement_id VARCHAR(100) NOT NULL,
		unlocked_at    TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, achievement_id)
	);

	CREATE TABLE IF NOT EXISTS xp_events (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		event_type  VARCHAR(50) NOT NULL,
		xp_amount   INT NOT NULL,
		metadata    JSONB,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS morality_profiles (
		user_id               BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		alignment             VARCHAR(100) NOT NULL,
		alignment_description TEXT NOT NULL,
		spectrums             JSONB NOT NULL,
		total_answered        INT NOT NULL DEFAULT 0,
		updated_at            TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS arena_progress (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		philosopher_id VARCHAR(50) NOT NULL,
		arena_level    INT NOT NULL CHECK (arena_level >= 1 AND arena_level <= 100),
		score          INT NOT NULL DEFAULT 0,
		passed         BOOLEAN NOT NULL DEFAULT FALSE,
		best_score     INT NOT NULL DEFAULT 0,
		attempts       INT NOT NULL DEFAULT 0,
		updated_at     TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, philosopher_id, arena_level)
	);

	CREATE INDEX IF NOT EXISTS idx_xp_events_user ON xp_events(user_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_achievements_user ON unlocked_achievements(user_id);
	CREATE INDEX IF NOT EXISTS idx_arena_user ON arena_progress(user_id, philosopher_id);
	CREATE INDEX IF NOT EXISTS idx_arena_passed ON arena_progress(user_id) WHERE passed;
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
