// Package schema owns the relational schema of the store: table definitions,
// their dependency order, and version-gated (re)initialisation.
//
// The design is deliberately destructive: when the stored schema version is
// behind the desired one, every table is dropped (children before parents)
// and recreated from scratch, then the default data is reseeded. There is no
// in-place column migration.
package schema

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/database/seeders"
	"github.com/shashiranjanraj/bookmart/pkg/dberr"
	"github.com/shashiranjanraj/bookmart/pkg/logger"
)

// Version is the schema version this build of the application expects.
// Bump it when any model definition changes shape.
const Version = 1

// schemaInfo is the single-row meta table tracking the stored version.
// It sits outside the domain tables and survives rebuilds.
type schemaInfo struct {
	ID        uint      `gorm:"primaryKey"`
	Version   int       `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (schemaInfo) TableName() string { return "schema_info" }

// tables lists every domain table in dependency order: parents first, so
// creation runs top-to-bottom and drops run bottom-to-top without tripping
// foreign keys.
var tables = []struct {
	name  string
	model interface{}
}{
	{"users", &models.User{}},
	{"categories", &models.Category{}},
	{"books", &models.Book{}},
	{"orders", &models.Order{}},
	{"order_items", &models.OrderItem{}},
	{"reviews", &models.Review{}},
	{"cart_items", &models.CartItem{}},
	{"notifications", &models.Notification{}},
}

// Manager performs version-gated schema initialisation against one store.
// Construct one per session with New; Open is a blocking, serialized startup
// step and must not run concurrently.
type Manager struct {
	db *gorm.DB
}

// New creates a Manager backed by the provided gorm.DB.
func New(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// Open ensures the store exists at desiredVersion.
//
// A fresh store gets all tables created in dependency order and the default
// data seeded. A store at a lower version is dropped wholesale and rebuilt.
// A store at a higher version is refused: the version is monotonic and this
// build cannot interpret a future schema.
func (m *Manager) Open(desiredVersion int) error {
	if err := m.db.AutoMigrate(&schemaInfo{}); err != nil {
		return dberr.NewSchemaError("ensure schema_info", err)
	}

	stored, err := m.Version()
	if err != nil {
		return dberr.NewSchemaError("read version", err)
	}

	switch {
	case stored == desiredVersion:
		logger.Debug("schema: up to date", "version", stored)
		return nil
	case stored > desiredVersion:
		return dberr.NewSchemaError("open",
			fmt.Errorf("store is at version %d, newer than requested %d (downgrade unsupported)", stored, desiredVersion))
	}

	if stored == 0 {
		logger.Info("schema: creating fresh store", "version", desiredVersion)
	} else {
		logger.Warn("schema: version behind, rebuilding store (all rows are lost)",
			"stored", stored, "desired", desiredVersion)
	}

	return m.rebuild(desiredVersion)
}

// Fresh drops and recreates the schema unconditionally, then reseeds.
// Exposed for the migrate:fresh CLI command and for tests.
func (m *Manager) Fresh(desiredVersion int) error {
	if err := m.db.AutoMigrate(&schemaInfo{}); err != nil {
		return dberr.NewSchemaError("ensure schema_info", err)
	}
	return m.rebuild(desiredVersion)
}

// rebuild drops everything, recreates all tables, seeds, and records the
// version. On a mid-sequence creation failure the tables created so far are
// dropped again, so no partial schema is ever left observable.
func (m *Manager) rebuild(version int) error {
	if err := m.dropAll(); err != nil {
		return err
	}

	for i, t := range tables {
		if err := m.db.AutoMigrate(t.model); err != nil {
			m.dropFirst(i + 1)
			return dberr.NewSchemaError("create "+t.name, err)
		}
	}

	if err := seeders.RunAll(m.db); err != nil {
		return dberr.NewSchemaError("seed", err)
	}

	if err := m.setVersion(version); err != nil {
		return dberr.NewSchemaError("record version", err)
	}

	logger.Info("schema: ready", "version", version)
	return nil
}

// dropAll removes every domain table in reverse dependency order.
// The schema_info meta table is kept.
func (m *Manager) dropAll() error {
	for i := len(tables) - 1; i >= 0; i-- {
		t := tables[i]
		if !m.db.Migrator().HasTable(t.model) {
			continue
		}
		if err := m.db.Migrator().DropTable(t.model); err != nil {
			return dberr.NewSchemaError("drop "+t.name, err)
		}
	}
	return nil
}

// dropFirst drops tables[0:n] in reverse order, ignoring errors; it is the
// rollback path after a failed creation sequence.
func (m *Manager) dropFirst(n int) {
	for i := n - 1; i >= 0; i-- {
		if m.db.Migrator().HasTable(tables[i].model) {
			_ = m.db.Migrator().DropTable(tables[i].model)
		}
	}
}

// Version returns the stored schema version, or 0 for a fresh store.
func (m *Manager) Version() (int, error) {
	var info schemaInfo
	err := m.db.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return info.Version, nil
}

func (m *Manager) setVersion(version int) error {
	var info schemaInfo
	err := m.db.First(&info).Error
	switch {
	case err == nil:
		info.Version = version
		return m.db.Save(&info).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return m.db.Create(&schemaInfo{Version: version}).Error
	default:
		return err
	}
}

// Status logs the stored version and per-table existence; backs the
// migrate:status CLI command.
func (m *Manager) Status() error {
	stored, err := m.Version()
	if err != nil {
		return err
	}

	logger.Info("schema: status", "stored_version", stored, "expected_version", Version)
	for _, t := range tables {
		logger.Info("schema: table", "name", t.name, "present", m.db.Migrator().HasTable(t.model))
	}
	return nil
}
