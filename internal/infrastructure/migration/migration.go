package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/estately/estately/internal/shared/logger"
)

//go:embed scripts/mysql/*.sql scripts/postgres/*.sql
var scriptsFS embed.FS

// Migrator runs the versioned SQL scripts embedded in the binary. Scripts
// are kept per dialect under scripts/{mysql,postgres}.
type Migrator struct {
	db      *sql.DB
	dialect string
	dir     string
	logger  logger.Interface
}

// NewMigrator picks the script set matching the gorm dialector.
func NewMigrator(db *gorm.DB, log logger.Interface) (*Migrator, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	switch name := db.Dialector.Name(); name {
	case "mysql":
		return newMigrator(sqlDB, "mysql", "scripts/mysql", log), nil
	case "postgres":
		return newMigrator(sqlDB, "postgres", "scripts/postgres", log), nil
	default:
		return nil, fmt.Errorf("no migration scripts for dialect %q", name)
	}
}

func newMigrator(db *sql.DB, dialect, dir string, log logger.Interface) *Migrator {
	return &Migrator{
		db:      db,
		dialect: dialect,
		dir:     dir,
		logger:  log.With("component", "migration.goose"),
	}
}

func (m *Migrator) prepare() error {
	goose.SetBaseFS(scriptsFS)
	goose.SetLogger(gooseLogger{m.logger})
	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (m *Migrator) Up(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}

	from, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.UpContext(ctx, m.db, m.dir); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	to, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migration completed successfully", "from_version", from, "to_version", to)
	return nil
}

func (m *Migrator) Down(ctx context.Context, steps int) error {
	if err := m.prepare(); err != nil {
		return err
	}
	if steps < 1 {
		steps = 1
	}

	m.logger.Infow("starting down migration", "steps", steps)
	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, m.db, m.dir); err != nil {
			m.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	m.logger.Infow("down migration completed successfully")
	return nil
}

func (m *Migrator) Status(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, m.db, m.dir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	if err := m.prepare(); err != nil {
		return 0, err
	}
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// Pending returns the number of embedded scripts newer than the database
// version.
func (m *Migrator) Pending(ctx context.Context) (int, error) {
	current, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}

	migrations, err := goose.CollectMigrations(m.dir, 0, goose.MaxVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to collect migrations: %w", err)
	}

	pending := 0
	for _, mig := range migrations {
		if mig.Version > current {
			pending++
		}
	}
	return pending, nil
}

// Create writes a new sequentially numbered script for dialect into
// sourceRoot, the migration package directory of a source checkout.
func Create(sourceRoot, dialect, name string) (string, error) {
	dir := filepath.Join(sourceRoot, "scripts", dialect)
	goose.SetSequential(true)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return "", fmt.Errorf("failed to create migration: %w", err)
	}
	return dir, nil
}

// gooseLogger routes goose output to the application logger.
type gooseLogger struct {
	logger logger.Interface
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
