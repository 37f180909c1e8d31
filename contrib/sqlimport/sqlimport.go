// Package sqlimport builds scriba unit models from live database catalogs.
//
// The importer reads the table and column catalog of a database opened with
// database/sql and produces one Pascal class per table: private backing
// fields plus public read/write properties, with SQL column types mapped to
// their closest Delphi equivalents. MySQL ENUM columns become dedicated
// enumerated types declared ahead of the class that uses them.
//
// Usage:
//
//	db, err := sql.Open("mysql", dsn)
//	if err != nil {
//		// handle error
//	}
//	imp, err := sqlimport.NewImporter(
//		sqlimport.WithUnitName("Models"),
//		sqlimport.WithNamespace("App"),
//	)
//	if err != nil {
//		// handle error
//	}
//	unit, err := imp.ImportDB(ctx, sqlimport.MySQL, db)
package sqlimport

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/scriba-dev/scriba/compiler/gen"
	"github.com/scriba-dev/scriba/schema"
)

// Driver names accepted by ImportDB. They match the names the corresponding
// database/sql drivers register under.
const (
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Config holds the importer configuration.
type Config struct {
	// UnitName is the name of the produced unit. Defaults to "Models".
	UnitName string
	// Namespace holds the dotted-prefix segments of the produced unit,
	// outermost first. Empty by default.
	Namespace []string
	// TypePrefix is prepended to every generated type name. Defaults to "T".
	TypePrefix string
	// TableFilter decides which catalog tables are imported. A nil filter
	// imports every table.
	TableFilter func(table string) bool
}

// includeTable reports whether the table passes the configured filter.
func (c *Config) includeTable(name string) bool {
	return c.TableFilter == nil || c.TableFilter(name)
}

// Option configures the importer.
type Option func(*Config) error

// WithUnitName sets the name of the produced unit.
func WithUnitName(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return gen.NewConfigError("UnitName", name, "unit name cannot be empty")
		}
		c.UnitName = name
		return nil
	}
}

// WithNamespace sets the namespace segments of the produced unit, outermost
// first.
func WithNamespace(segments ...string) Option {
	return func(c *Config) error {
		for _, s := range segments {
			if s == "" {
				return gen.NewConfigError("Namespace", segments, "namespace segments cannot be empty")
			}
		}
		c.Namespace = segments
		return nil
	}
}

// WithTypePrefix sets the prefix prepended to generated type names.
func WithTypePrefix(prefix string) Option {
	return func(c *Config) error {
		if prefix == "" {
			return gen.NewConfigError("TypePrefix", prefix, "type prefix cannot be empty")
		}
		c.TypePrefix = prefix
		return nil
	}
}

// WithTableFilter restricts the import to tables the filter accepts.
func WithTableFilter(filter func(table string) bool) Option {
	return func(c *Config) error {
		if filter == nil {
			return gen.NewConfigError("TableFilter", nil, "table filter cannot be nil")
		}
		c.TableFilter = filter
		return nil
	}
}

// Report summarizes an import run. Columns whose SQL type has no Delphi
// mapping are imported as Variant and listed in Unknown rather than failing
// the run.
type Report struct {
	Tables  int
	Columns int
	Unknown []string // "table.column (sql type)" entries
}

// Importer reads database catalogs and produces unit models.
type Importer struct {
	config *Config

	mu     sync.Mutex
	report Report
}

// NewImporter creates an importer with the given options.
func NewImporter(opts ...Option) (*Importer, error) {
	config := &Config{
		UnitName:   "Models",
		TypePrefix: "T",
	}
	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}
	return &Importer{config: config}, nil
}

// Report returns a copy of the accumulated import report.
func (im *Importer) Report() Report {
	im.mu.Lock()
	defer im.mu.Unlock()
	report := im.report
	report.Unknown = append([]string(nil), im.report.Unknown...)
	return report
}

// ImportDB reads the catalog of the database behind db and returns a unit
// declaring one class per table. driverName selects the catalog dialect and
// must be one of MySQL, Postgres or SQLite.
func (im *Importer) ImportDB(ctx context.Context, driverName string, db *sql.DB) (*schema.Unit, error) {
	if db == nil {
		return nil, NewImportError(driverName, "", "nil database handle", nil)
	}
	tables, err := im.readCatalog(ctx, driverName, db)
	if err != nil {
		return nil, err
	}
	return im.buildUnit(driverName, tables), nil
}

// buildUnit maps the catalog tables onto a unit model and folds the run into
// the importer's report.
func (im *Importer) buildUnit(driverName string, tables []table) *schema.Unit {
	unit := schema.NewUnit(schema.NewUnitIdentifier(im.config.UnitName, im.config.Namespace...))
	unit.Comment = &schema.AnnotationComment{
		Lines: []string{fmt.Sprintf("Imported from a %s catalog by scriba.", driverName)},
	}

	var (
		report       Report
		needSysUtils bool
		needVariants bool
	)
	for _, t := range tables {
		report.Tables++
		className := im.config.TypePrefix + gen.ToCase(gen.Singularize(t.Name), gen.CasePascal)
		class := &schema.ClassDeclaration{Name: className}

		types := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			report.Columns++
			if values := enumValues(col.SQLType); len(values) > 0 {
				enum := im.buildEnum(className, col.Name, values)
				unit.AddDeclaration(enum)
				types[i] = enum.Name
				continue
			}
			mapped, known := delphiType(col.SQLType)
			if !known {
				report.Unknown = append(report.Unknown,
					fmt.Sprintf("%s.%s (%s)", t.Name, col.Name, col.SQLType))
			}
			switch mapped {
			case "TBytes":
				needSysUtils = true
			case "Variant":
				needVariants = true
			}
			types[i] = mapped
		}

		for i, col := range t.Columns {
			class.AddMember(schema.Private, &schema.FieldDeclaration{
				Name:     fieldName(col.Name),
				TypeName: types[i],
			})
		}
		for i, col := range t.Columns {
			class.AddMember(schema.Public, &schema.PropertyDeclaration{
				Name:     gen.ToCase(col.Name, gen.CasePascal),
				TypeName: types[i],
				Reader:   fieldName(col.Name),
				Writer:   fieldName(col.Name),
			})
		}
		unit.AddDeclaration(class)
	}

	if needSysUtils {
		unit.AddInterfaceUses(schema.NewUnitReference("System.SysUtils"))
	}
	if needVariants {
		unit.AddInterfaceUses(schema.NewUnitReference("System.Variants"))
	}

	im.mu.Lock()
	im.report.Tables += report.Tables
	im.report.Columns += report.Columns
	im.report.Unknown = append(im.report.Unknown, report.Unknown...)
	im.mu.Unlock()
	return unit
}

// buildEnum declares the enumerated type for a MySQL ENUM column. The type is
// named after the owning class and the column; values carry the Delphi-style
// prefix derived from the type name, "TUserStatus" giving "usActive".
func (im *Importer) buildEnum(className, columnName string, values []string) *schema.EnumDeclaration {
	enum := &schema.EnumDeclaration{
		Name: className + gen.ToCase(columnName, gen.CasePascal),
	}
	prefix := enumValuePrefix(enum.Name, im.config.TypePrefix)
	for _, v := range values {
		enum.AddValue(prefix + gen.ToCase(v, gen.CasePascal))
	}
	return enum
}

// fieldName returns the backing-field name for a column.
func fieldName(columnName string) string {
	return "F" + gen.ToCase(columnName, gen.CasePascal)
}
