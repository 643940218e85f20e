package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema DDL, applied at startup. Statements are idempotent so repeated
// boots are safe; there is no down migration for this application.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		title TEXT NOT NULL,
		bio TEXT NOT NULL,
		location TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		linkedin TEXT,
		github TEXT,
		website TEXT,
		profile_image TEXT,
		resume_file TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS experiences (
		id TEXT PRIMARY KEY,
		company TEXT NOT NULL,
		position TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE,
		current BOOLEAN NOT NULL DEFAULT false,
		description TEXT NOT NULL,
		achievements TEXT[] NOT NULL DEFAULT '{}',
		challenges TEXT[] NOT NULL DEFAULT '{}',
		learnings TEXT[] NOT NULL DEFAULT '{}',
		technologies TEXT[] NOT NULL DEFAULT '{}',
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		long_desc TEXT,
		images TEXT[] NOT NULL DEFAULT '{}',
		demo_url TEXT,
		repo_url TEXT,
		technologies TEXT[] NOT NULL DEFAULT '{}',
		highlights TEXT[] NOT NULL DEFAULT '{}',
		category TEXT NOT NULL DEFAULT 'web',
		featured BOOLEAN NOT NULL DEFAULT false,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		name TEXT NOT NULL,
		level TEXT NOT NULL DEFAULT 'intermediate',
		icon TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tech_stacks (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		name TEXT NOT NULL,
		icon TEXT,
		preferred BOOLEAN NOT NULL DEFAULT false,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS "references" (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		company TEXT NOT NULL,
		relationship TEXT NOT NULL,
		testimonial TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		linkedin TEXT,
		avatar TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
