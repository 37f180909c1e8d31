package schema

// EnumDeclaration declares an enumerated type.
type EnumDeclaration struct {
	Name        string
	Comment     *AnnotationComment
	Annotations []*ConditionalAttributeAnnotation
	Values      []*EnumValueDeclaration
}

// DeclaredName returns the enum type name.
func (e *EnumDeclaration) DeclaredName() string { return e.Name }

// AddValue appends a value without an explicit ordinal.
func (e *EnumDeclaration) AddValue(name string) *EnumDeclaration {
	e.Values = append(e.Values, &EnumValueDeclaration{Name: name})
	return e
}

// AddOrdinalValue appends a value with an explicit ordinal.
func (e *EnumDeclaration) AddOrdinalValue(name string, ordinal int) *EnumDeclaration {
	e.Values = append(e.Values, &EnumValueDeclaration{Name: name, Ordinal: &ordinal})
	return e
}

// EnumValueDeclaration is one enum constant, optionally pinned to an explicit
// ordinal.
type EnumValueDeclaration struct {
	Name    string
	Ordinal *int // Optional explicit ordinal, nil for compiler-assigned
}
