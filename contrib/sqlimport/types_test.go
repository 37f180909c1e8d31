package sqlimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelphiType(t *testing.T) {
	tests := []struct {
		sqlType string
		want    string
		known   bool
	}{
		{"varchar(255)", "string", true},
		{"character varying", "string", true},
		{"TEXT", "string", true},
		{"longtext", "string", true},
		{"uuid", "string", true},
		{"jsonb", "string", true},
		{"int(11)", "Integer", true},
		{"INTEGER", "Integer", true},
		{"smallint", "Integer", true},
		{"serial", "Integer", true},
		{"bigint(20)", "Int64", true},
		{"bigserial", "Int64", true},
		{"boolean", "Boolean", true},
		{"tinyint(1)", "Boolean", true},
		{"tinyint(4)", "Integer", true},
		{"timestamp", "TDateTime", true},
		{"timestamp with time zone", "TDateTime", true},
		{"datetime", "TDateTime", true},
		{"date", "TDateTime", true},
		{"decimal(10,2)", "Currency", true},
		{"numeric", "Currency", true},
		{"money", "Currency", true},
		{"double precision", "Double", true},
		{"REAL", "Double", true},
		{"float", "Double", true},
		{"blob", "TBytes", true},
		{"varbinary(16)", "TBytes", true},
		{"bytea", "TBytes", true},
		{"point", "Variant", false},
		{"USER-DEFINED", "Variant", false},
		{"", "Variant", false},
	}
	for _, tt := range tests {
		t.Run(tt.sqlType, func(t *testing.T) {
			got, known := delphiType(tt.sqlType)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestEnumValues(t *testing.T) {
	tests := []struct {
		name    string
		sqlType string
		want    []string
	}{
		{
			name:    "plain value list",
			sqlType: "enum('active','archived')",
			want:    []string{"active", "archived"},
		},
		{
			name:    "uppercase keyword",
			sqlType: "ENUM('a','b')",
			want:    []string{"a", "b"},
		},
		{
			name:    "declared case is kept",
			sqlType: "enum('Active','On Hold')",
			want:    []string{"Active", "On Hold"},
		},
		{
			name:    "comma inside a value",
			sqlType: "enum('a,b','c')",
			want:    []string{"a,b", "c"},
		},
		{
			name:    "doubled quote unescapes",
			sqlType: "enum('it''s','plain')",
			want:    []string{"it's", "plain"},
		},
		{
			name:    "not an enum",
			sqlType: "varchar(255)",
			want:    nil,
		},
		{
			name:    "empty value list",
			sqlType: "enum()",
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enumValues(tt.sqlType))
		})
	}
}

func TestEnumValuePrefix(t *testing.T) {
	tests := []struct {
		enumName   string
		typePrefix string
		want       string
	}{
		{"TUserStatus", "T", "us"},
		{"TOrderPaymentState", "T", "ops"},
		{"TXColor", "TX", "c"},
		{"TMood", "T", "m"},
	}
	for _, tt := range tests {
		t.Run(tt.enumName, func(t *testing.T) {
			assert.Equal(t, tt.want, enumValuePrefix(tt.enumName, tt.typePrefix))
		})
	}
}
