// Package graphql imports GraphQL schema definitions into scriba unit models.
//
// Import parses an SDL document with gqlparser and produces one Pascal class
// per object or input type, one enumerated type per GraphQL enum, and one
// COM-style interface with a deterministic GUID per GraphQL interface.
// Built-in scalars map onto Delphi primitives (Int to Integer, Float to
// Double, String and ID to string, Boolean to Boolean); list wrappers become
// TArray<...> and non-null wrappers are dropped. Introspection types and the
// root operation types are excluded.
//
// # Usage
//
//	src, err := os.ReadFile("schema.graphql")
//	if err != nil {
//		// handle error
//	}
//	unit, err := graphql.Import(src,
//		graphql.WithUnitName("Models"),
//		graphql.WithNamespace("API"),
//		graphql.WithScalar("DateTime", "TDateTime"),
//	)
//
// # Configuration
//
// Custom scalar mappings and unit naming can also come from a yaml
// configuration file, loaded with LoadConfig and applied with WithConfig:
//
//	schema: schema.graphql
//	unit: Models
//	namespace: [API]
//	scalars:
//	  DateTime: TDateTime
//	  Upload: TBytes
//
// Custom scalars without a configured mapping import as string, their
// serialized form. Union-typed fields import as Variant.
package graphql
