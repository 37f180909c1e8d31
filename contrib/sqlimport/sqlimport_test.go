package sqlimport

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriba-dev/scriba/compiler/gen"
	"github.com/scriba-dev/scriba/schema"
)

func TestImportMySQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT TABLE_NAME, COLUMN_NAME, COLUMN_TYPE FROM INFORMATION_SCHEMA.COLUMNS").
		WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME", "COLUMN_NAME", "COLUMN_TYPE"}).
			AddRow("users", "id", "bigint(20)").
			AddRow("users", "name", "varchar(255)").
			AddRow("users", "is_admin", "tinyint(1)").
			AddRow("users", "status", "enum('active','archived')").
			AddRow("users", "created_at", "timestamp"))

	imp, err := NewImporter(WithUnitName("Models"), WithNamespace("App"))
	require.NoError(t, err)
	unit, err := imp.ImportDB(context.Background(), MySQL, db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "App.Models", unit.Heading.String())
	require.NotNil(t, unit.Comment)
	assert.Contains(t, unit.Comment.Lines[0], "mysql")

	require.Len(t, unit.Interface.Declarations, 2)
	enum, ok := unit.Interface.Declarations[0].(*schema.EnumDeclaration)
	require.True(t, ok)
	assert.Equal(t, "TUserStatus", enum.Name)
	require.Len(t, enum.Values, 2)
	assert.Equal(t, "usActive", enum.Values[0].Name)
	assert.Equal(t, "usArchived", enum.Values[1].Name)

	class, ok := unit.Interface.Declarations[1].(*schema.ClassDeclaration)
	require.True(t, ok)
	assert.Equal(t, "TUser", class.Name)
	require.Len(t, class.Elements, 10)

	field := class.Elements[0].(*schema.ClassMemberDeclaration)
	assert.Equal(t, schema.Private, field.Visibility)
	assert.Equal(t, &schema.FieldDeclaration{Name: "FId", TypeName: "Int64"}, field.Member)

	property := class.Elements[8].(*schema.ClassMemberDeclaration)
	assert.Equal(t, schema.Public, property.Visibility)
	assert.Equal(t, &schema.PropertyDeclaration{
		Name:     "Status",
		TypeName: "TUserStatus",
		Reader:   "FStatus",
		Writer:   "FStatus",
	}, property.Member)

	report := imp.Report()
	assert.Equal(t, 1, report.Tables)
	assert.Equal(t, 5, report.Columns)
	assert.Empty(t, report.Unknown)

	out, err := gen.NewWriter().Render(unit)
	require.NoError(t, err)
	assert.Contains(t, out, "unit App.Models;")
	assert.Contains(t, out, "TUserStatus = (")
	assert.Contains(t, out, "    usActive,")
	assert.Contains(t, out, "FIsAdmin: Boolean;")
	assert.Contains(t, out, "FCreatedAt: TDateTime;")
	assert.Contains(t, out, "property Status: TUserStatus read FStatus write FStatus;")
}

func TestImportPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT table_name, column_name, data_type FROM information_schema.columns").
		WillReturnRows(sqlmock.NewRows([]string{"table_name", "column_name", "data_type"}).
			AddRow("orders", "id", "bigint").
			AddRow("orders", "amount", "numeric").
			AddRow("orders", "payload", "bytea").
			AddRow("orders", "placed_at", "timestamp with time zone").
			AddRow("schema_migrations", "version", "character varying"))

	imp, err := NewImporter(WithTableFilter(func(table string) bool {
		return table != "schema_migrations"
	}))
	require.NoError(t, err)
	unit, err := imp.ImportDB(context.Background(), Postgres, db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "Models", unit.Heading.String())
	require.Len(t, unit.Interface.Declarations, 1)
	class := unit.Interface.Declarations[0].(*schema.ClassDeclaration)
	assert.Equal(t, "TOrder", class.Name)

	require.Len(t, unit.Interface.Uses, 1)
	assert.Equal(t, "System.SysUtils", unit.Interface.Uses[0].Primary.String())

	report := imp.Report()
	assert.Equal(t, 1, report.Tables)
	assert.Equal(t, 4, report.Columns)

	out, err := gen.NewWriter().Render(unit)
	require.NoError(t, err)
	assert.Contains(t, out, "FAmount: Currency;")
	assert.Contains(t, out, "FPayload: TBytes;")
	assert.Contains(t, out, "FPlacedAt: TDateTime;")
	assert.NotContains(t, out, "schema_migrations")
}

func TestImportSQLite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name FROM sqlite_master").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("notes").
			AddRow("tags"))
	mock.ExpectQuery("FROM pragma_table_info").
		WithArgs("notes").
		WillReturnRows(sqlmock.NewRows([]string{"name", "type"}).
			AddRow("id", "INTEGER").
			AddRow("body", "TEXT").
			AddRow("score", "REAL"))
	mock.ExpectQuery("FROM pragma_table_info").
		WithArgs("tags").
		WillReturnRows(sqlmock.NewRows([]string{"name", "type"}).
			AddRow("id", "INTEGER").
			AddRow("label", "TEXT"))

	imp, err := NewImporter()
	require.NoError(t, err)
	unit, err := imp.ImportDB(context.Background(), SQLite, db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, unit.Interface.Declarations, 2)
	assert.Equal(t, "TNote", unit.Interface.Declarations[0].DeclaredName())
	assert.Equal(t, "TTag", unit.Interface.Declarations[1].DeclaredName())

	out, err := gen.NewWriter().Render(unit)
	require.NoError(t, err)
	assert.Contains(t, out, "FBody: string;")
	assert.Contains(t, out, "FScore: Double;")

	report := imp.Report()
	assert.Equal(t, 2, report.Tables)
	assert.Equal(t, 5, report.Columns)
}

func TestImportUnknownColumnTypes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT table_name, column_name, data_type FROM information_schema.columns").
		WillReturnRows(sqlmock.NewRows([]string{"table_name", "column_name", "data_type"}).
			AddRow("places", "name", "text").
			AddRow("places", "location", "point").
			AddRow("places", "mood", "USER-DEFINED"))

	imp, err := NewImporter()
	require.NoError(t, err)
	unit, err := imp.ImportDB(context.Background(), Postgres, db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	class := unit.Interface.Declarations[0].(*schema.ClassDeclaration)
	location := class.Elements[1].(*schema.ClassMemberDeclaration).Member.(*schema.FieldDeclaration)
	assert.Equal(t, "Variant", location.TypeName)

	require.Len(t, unit.Interface.Uses, 1)
	assert.Equal(t, "System.Variants", unit.Interface.Uses[0].Primary.String())

	report := imp.Report()
	assert.Equal(t, []string{
		"places.location (point)",
		"places.mood (USER-DEFINED)",
	}, report.Unknown)
}

func TestImportUnknownDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	imp, err := NewImporter()
	require.NoError(t, err)
	_, err = imp.ImportDB(context.Background(), "oracle", db)
	require.Error(t, err)
	assert.True(t, IsImportError(err))
	assert.ErrorIs(t, err, ErrUnknownDriver)
	assert.Contains(t, err.Error(), "oracle")
}

func TestImportQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT TABLE_NAME, COLUMN_NAME, COLUMN_TYPE FROM INFORMATION_SCHEMA.COLUMNS").
		WillReturnError(errors.New("connection refused"))

	imp, err := NewImporter()
	require.NoError(t, err)
	_, err = imp.ImportDB(context.Background(), MySQL, db)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImportFailed)
	assert.Contains(t, err.Error(), "query information_schema columns")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestImportNilDatabase(t *testing.T) {
	imp, err := NewImporter()
	require.NoError(t, err)
	_, err = imp.ImportDB(context.Background(), MySQL, nil)
	require.Error(t, err)
	assert.True(t, IsImportError(err))
}

func TestImporterOptions(t *testing.T) {
	t.Run("defaults apply without options", func(t *testing.T) {
		imp, err := NewImporter()
		require.NoError(t, err)
		assert.Equal(t, "Models", imp.config.UnitName)
		assert.Equal(t, "T", imp.config.TypePrefix)
		assert.Nil(t, imp.config.TableFilter)
	})
	t.Run("empty unit name is rejected", func(t *testing.T) {
		_, err := NewImporter(WithUnitName(""))
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
	})
	t.Run("empty namespace segment is rejected", func(t *testing.T) {
		_, err := NewImporter(WithNamespace("App", ""))
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
	})
	t.Run("empty type prefix is rejected", func(t *testing.T) {
		_, err := NewImporter(WithTypePrefix(""))
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
	})
	t.Run("nil table filter is rejected", func(t *testing.T) {
		_, err := NewImporter(WithTableFilter(nil))
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
	})
	t.Run("type prefix changes generated names", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM INFORMATION_SCHEMA.COLUMNS").
			WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME", "COLUMN_NAME", "COLUMN_TYPE"}).
				AddRow("users", "id", "int"))

		imp, err := NewImporter(WithTypePrefix("TX"))
		require.NoError(t, err)
		unit, err := imp.ImportDB(context.Background(), MySQL, db)
		require.NoError(t, err)
		assert.Equal(t, "TXUser", unit.Interface.Declarations[0].DeclaredName())
	})
}
