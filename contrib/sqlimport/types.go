package sqlimport

import (
	"strings"

	"github.com/scriba-dev/scriba/compiler/gen"
)

// delphiType maps an SQL column type to the closest Delphi type. Catalogs
// report types with length and precision suffixes ("varchar(255)",
// "numeric(10,2)"); the base name alone decides the mapping. The second
// return is false when the type has no mapping, in which case the column is
// imported as Variant.
func delphiType(sqlType string) (string, bool) {
	base := strings.ToLower(strings.TrimSpace(sqlType))
	// MySQL reports BOOL columns as tinyint(1).
	if base == "tinyint(1)" {
		return "Boolean", true
	}
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}
	switch base {
	case "varchar", "char", "character", "character varying", "nvarchar",
		"nchar", "text", "tinytext", "mediumtext", "longtext", "clob",
		"uuid", "json", "jsonb":
		return "string", true
	case "tinyint", "smallint", "mediumint", "int", "integer", "int2",
		"int4", "serial", "smallserial", "year":
		return "Integer", true
	case "bigint", "int8", "bigserial":
		return "Int64", true
	case "bool", "boolean":
		return "Boolean", true
	case "date", "time", "datetime", "timestamp", "timestamptz",
		"timestamp with time zone", "timestamp without time zone",
		"time with time zone", "time without time zone":
		return "TDateTime", true
	case "decimal", "numeric", "money":
		return "Currency", true
	case "float", "real", "double", "double precision":
		return "Double", true
	case "blob", "tinyblob", "mediumblob", "longblob", "binary",
		"varbinary", "bytea":
		return "TBytes", true
	}
	return "Variant", false
}

// enumValues parses the value list out of a MySQL enum column type,
// "enum('active','archived')". Values keep their declared case; embedded
// quotes arrive doubled and are unescaped. Returns nil when the type is not
// an enum.
func enumValues(sqlType string) []string {
	t := strings.TrimSpace(sqlType)
	if len(t) < len("enum()") || !strings.EqualFold(t[:len("enum(")], "enum(") || !strings.HasSuffix(t, ")") {
		return nil
	}
	inner := t[len("enum(") : len(t)-1]

	var (
		values  []string
		current strings.Builder
		inQuote bool
	)
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case c == '\'' && inQuote && i+1 < len(inner) && inner[i+1] == '\'':
			current.WriteByte('\'')
			i++
		case c == '\'':
			if inQuote {
				values = append(values, current.String())
				current.Reset()
			}
			inQuote = !inQuote
		case inQuote:
			current.WriteByte(c)
		}
	}
	return values
}

// enumValuePrefix derives the Delphi-style value prefix from an enum type
// name: the lowercased initials of its words after the type prefix,
// "TUserStatus" giving "us".
func enumValuePrefix(enumName, typePrefix string) string {
	return gen.Initials(strings.TrimPrefix(enumName, typePrefix))
}
