package sqlimport

import (
	"context"
	"database/sql"
)

// table is one catalog table with its columns in ordinal order.
type table struct {
	Name    string
	Columns []column
}

// column is one catalog column. SQLType is the type as the catalog reports
// it, length and precision suffixes included ("varchar(255)", "numeric(10,2)",
// "enum('a','b')").
type column struct {
	Name    string
	SQLType string
}

// Catalog queries per driver. MySQL exposes COLUMN_TYPE, which keeps the
// enum value list that DATA_TYPE strips. SQLite has no information_schema;
// the table list comes from sqlite_master and the columns from the
// pragma_table_info table-valued function.
const (
	mysqlColumnsQuery = `SELECT TABLE_NAME, COLUMN_NAME, COLUMN_TYPE FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_SCHEMA = DATABASE() ORDER BY TABLE_NAME, ORDINAL_POSITION`

	postgresColumnsQuery = `SELECT table_name, column_name, data_type FROM information_schema.columns WHERE table_schema = 'public' ORDER BY table_name, ordinal_position`

	sqliteTablesQuery  = `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
	sqliteColumnsQuery = `SELECT name, type FROM pragma_table_info(?) ORDER BY cid`
)

// readCatalog dispatches to the driver-specific catalog reader.
func (im *Importer) readCatalog(ctx context.Context, driverName string, db *sql.DB) ([]table, error) {
	switch driverName {
	case MySQL:
		return im.mysqlCatalog(ctx, db)
	case Postgres:
		return im.postgresCatalog(ctx, db)
	case SQLite:
		return im.sqliteCatalog(ctx, db)
	}
	return nil, NewImportError(driverName, "", "unsupported driver", ErrUnknownDriver)
}

func (im *Importer) mysqlCatalog(ctx context.Context, db *sql.DB) ([]table, error) {
	rows, err := db.QueryContext(ctx, mysqlColumnsQuery)
	if err != nil {
		return nil, NewImportError(MySQL, "", "query information_schema columns", err)
	}
	defer rows.Close()
	return im.collectColumns(MySQL, rows)
}

func (im *Importer) postgresCatalog(ctx context.Context, db *sql.DB) ([]table, error) {
	rows, err := db.QueryContext(ctx, postgresColumnsQuery)
	if err != nil {
		return nil, NewImportError(Postgres, "", "query information_schema columns", err)
	}
	defer rows.Close()
	return im.collectColumns(Postgres, rows)
}

// collectColumns groups a (table, column, type) result set into tables,
// preserving row order within each table. Filtered-out tables are skipped.
func (im *Importer) collectColumns(driver string, rows *sql.Rows) ([]table, error) {
	var (
		tables []table
		index  = make(map[string]int)
	)
	for rows.Next() {
		var tableName, columnName, columnType string
		if err := rows.Scan(&tableName, &columnName, &columnType); err != nil {
			return nil, NewImportError(driver, tableName, "scan catalog row", err)
		}
		if !im.config.includeTable(tableName) {
			continue
		}
		i, ok := index[tableName]
		if !ok {
			i = len(tables)
			index[tableName] = i
			tables = append(tables, table{Name: tableName})
		}
		tables[i].Columns = append(tables[i].Columns, column{Name: columnName, SQLType: columnType})
	}
	if err := rows.Err(); err != nil {
		return nil, NewImportError(driver, "", "iterate catalog rows", err)
	}
	return tables, nil
}

func (im *Importer) sqliteCatalog(ctx context.Context, db *sql.DB) ([]table, error) {
	rows, err := db.QueryContext(ctx, sqliteTablesQuery)
	if err != nil {
		return nil, NewImportError(SQLite, "", "query sqlite_master", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, NewImportError(SQLite, "", "scan table name", err)
		}
		if im.config.includeTable(name) {
			names = append(names, name)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, NewImportError(SQLite, "", "iterate table names", err)
	}
	rows.Close()

	tables := make([]table, 0, len(names))
	for _, name := range names {
		t, err := im.sqliteTableColumns(ctx, db, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func (im *Importer) sqliteTableColumns(ctx context.Context, db *sql.DB, name string) (table, error) {
	rows, err := db.QueryContext(ctx, sqliteColumnsQuery, name)
	if err != nil {
		return table{}, NewImportError(SQLite, name, "query table info", err)
	}
	defer rows.Close()

	t := table{Name: name}
	for rows.Next() {
		var columnName, columnType string
		if err := rows.Scan(&columnName, &columnType); err != nil {
			return table{}, NewImportError(SQLite, name, "scan table info row", err)
		}
		t.Columns = append(t.Columns, column{Name: columnName, SQLType: columnType})
	}
	if err := rows.Err(); err != nil {
		return table{}, NewImportError(SQLite, name, "iterate table info rows", err)
	}
	return t, nil
}
