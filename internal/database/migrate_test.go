package database

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/keyxmakerx/teamcal/internal/contrast"
)

// migrationsDir returns the absolute path to db/migrations/ from the project root.
func migrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	// thisFile is internal/database/migrate_test.go, project root is two dirs up.
	projectRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")
	dir := filepath.Join(projectRoot, "db", "migrations")
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("migrations directory not found at %s: %v", dir, err)
	}
	return dir
}

// TestMigrations_PriorityColors scans every seed statement for quoted
// '#......' literals and checks each one decodes as #RRGGBB. The column is
// CHAR(7), so a shorthand like '#fff' would insert fine and then fail every
// contrast lookup at runtime.
func TestMigrations_PriorityColors(t *testing.T) {
	dir := migrationsDir(t)
	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		t.Fatalf("globbing migration files: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no migration files found")
	}

	colorPattern := regexp.MustCompile(`'(#[^']*)'`)
	found := 0

	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}
		content := string(data)
		if !strings.Contains(content, "event_priorities") {
			continue
		}

		for _, match := range colorPattern.FindAllStringSubmatch(content, -1) {
			found++
			if _, err := contrast.ParseHex(match[1]); err != nil {
				t.Errorf("%s: %v", filepath.Base(f), err)
			}
		}
	}

	if found == 0 {
		t.Error("no priority colors found in migrations; seed file missing?")
	}
}

// TestMigrations_UpDownPairs ensures every .up.sql has a matching .down.sql.
func TestMigrations_UpDownPairs(t *testing.T) {
	dir := migrationsDir(t)
	upFiles, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		t.Fatalf("globbing up files: %v", err)
	}

	for _, up := range upFiles {
		down := strings.Replace(up, ".up.sql", ".down.sql", 1)
		if _, err := os.Stat(down); err != nil {
			t.Errorf("missing down migration for %s", filepath.Base(up))
		}
	}
}
