// Package itf holds integration-test helpers for the PostgreSQL backend.
package itf

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iota-uz/talent-import/pkg/configuration"
)

// PostgreSQL identifiers are limited to 63 bytes.
const maxDBNameLength = 63

var unsafeDBNameChars = regexp.MustCompile(`[^a-z0-9_]+`)

// CanDialPostgres reports whether DB_HOST:DB_PORT accepts TCP connections.
func CanDialPostgres(tb testing.TB) bool {
	tb.Helper()

	host := strings.TrimSpace(os.Getenv("DB_HOST"))
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(os.Getenv("DB_PORT"))
	if port == "" {
		port = "5432"
	}

	dialer := &net.Dialer{Timeout: 250 * time.Millisecond}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// RequirePostgres skips tb when PostgreSQL is unreachable, except on CI where it fails.
func RequirePostgres(tb testing.TB) {
	tb.Helper()
	if CanDialPostgres(tb) {
		return
	}
	if strings.TrimSpace(os.Getenv("CI")) != "" || strings.EqualFold(strings.TrimSpace(os.Getenv("GITHUB_ACTIONS")), "true") {
		tb.Fatalf("postgres is not reachable (DB_HOST/DB_PORT)")
	}
	tb.Skip("postgres is not reachable; skipping integration test")
}

// NewDatabase recreates a database named after tb and returns a pool on it.
func NewDatabase(tb testing.TB) *pgxpool.Pool {
	tb.Helper()
	RequirePostgres(tb)

	name := SanitizeDBName(tb.Name())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := CreateDB(ctx, name); err != nil {
		tb.Fatalf("create database %s: %v", name, err)
	}
	pool, err := pgxpool.New(ctx, DbOpts(name))
	if err != nil {
		tb.Fatalf("connect %s: %v", name, err)
	}
	tb.Cleanup(pool.Close)
	return pool
}

func CreateDB(ctx context.Context, name string) error {
	conn, err := pgx.Connect(ctx, DbOpts("postgres"))
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(context.Background()) }()

	ident := pgx.Identifier{name}.Sanitize()
	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		return err
	}
	_, err = conn.Exec(ctx, "CREATE DATABASE "+ident)
	return err
}

func DbOpts(name string) string {
	c := configuration.Use()
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, name, c.Database.Password,
	)
}

// SanitizeDBName lowercases a test name into a valid identifier; names over
// the limit are truncated and suffixed with a hash of the original.
func SanitizeDBName(name string) string {
	s := unsafeDBNameChars.ReplaceAllString(strings.ToLower(name), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		s = "test_db"
	}
	if len(s) <= maxDBNameLength {
		return s
	}
	sum := sha256.Sum256([]byte(name))
	suffix := fmt.Sprintf("_%x", sum[:4])
	return strings.TrimRight(s[:maxDBNameLength-len(suffix)], "_") + suffix
}
