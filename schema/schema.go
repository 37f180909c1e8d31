package schema

import "strings"

// SourceFile is the set of top-level compilable file kinds: *Unit and
// *Program. It is a closed sum; the writer dispatches on the concrete type
// and treats anything else as a precondition violation.
type SourceFile interface {
	isSourceFile()
	// BaseName returns the file name (without extension) the file would
	// conventionally be stored under.
	BaseName() string
}

func (*Unit) isSourceFile()    {}
func (*Program) isSourceFile() {}

// UnitIdentifier names a unit: ordered namespace segments plus the unit name.
// Segment order is significant and preserved.
type UnitIdentifier struct {
	Namespace []string // Optional dotted-prefix segments, outermost first
	Name      string
}

// NewUnitIdentifier returns an identifier for name under the given namespace
// segments.
func NewUnitIdentifier(name string, namespace ...string) *UnitIdentifier {
	return &UnitIdentifier{Namespace: namespace, Name: name}
}

// ParseUnitIdentifier splits a dotted path ("System.Generics.Collections")
// into namespace segments and a unit name. A path without dots becomes a
// bare unit name.
func ParseUnitIdentifier(path string) *UnitIdentifier {
	segments := strings.Split(path, ".")
	return &UnitIdentifier{
		Namespace: segments[:len(segments)-1],
		Name:      segments[len(segments)-1],
	}
}

// Path returns the full dotted path as a segment list, namespace first.
func (id *UnitIdentifier) Path() []string {
	return append(append([]string{}, id.Namespace...), id.Name)
}

// String returns the dotted form of the identifier.
func (id *UnitIdentifier) String() string {
	return strings.Join(id.Path(), ".")
}

// CompilationCondition names a preprocessor symbol that switches a
// conditional element.
type CompilationCondition struct {
	Symbol string
}

// AnnotationComment is a documentation comment attached to a declaration,
// rendered as consecutive "/// " lines immediately preceding it.
type AnnotationComment struct {
	Lines []string
}

// ConditionalUnitReference is one uses-clause entry. Primary and Alternative
// are each optional; Condition switches between them:
//
//   - no condition: Primary is emitted unconditionally (and must be present)
//   - condition, both set: Primary under {$IFDEF}, Alternative under {$ELSE}
//   - condition, only Primary: {$IFDEF} block
//   - condition, only Alternative: {$IFNDEF} block
type ConditionalUnitReference struct {
	Primary     *UnitIdentifier
	Alternative *UnitIdentifier
	Condition   *CompilationCondition
}

// NewUnitReference returns an unconditional reference to the unit named by
// the dotted path.
func NewUnitReference(path string) *ConditionalUnitReference {
	return &ConditionalUnitReference{Primary: ParseUnitIdentifier(path)}
}

// Effective returns the identifier that determines the reference's sort
// position: the primary element when present, the alternative otherwise.
func (r *ConditionalUnitReference) Effective() *UnitIdentifier {
	if r.Primary != nil {
		return r.Primary
	}
	return r.Alternative
}

// ConditionalAttributeAnnotation is one attribute annotation ("[...]" line)
// on a declaration, with the same optional-branch semantics as
// ConditionalUnitReference. Branch text is the bare annotation content,
// without the surrounding brackets.
type ConditionalAttributeAnnotation struct {
	Primary     string
	Alternative string
	Condition   *CompilationCondition
}

// NewAttributeAnnotation returns an unconditional annotation with the given
// content.
func NewAttributeAnnotation(text string) *ConditionalAttributeAnnotation {
	return &ConditionalAttributeAnnotation{Primary: text}
}

// Unit is a library-like Pascal source file: a heading, optional leading
// comment, include directives, and the interface/implementation section pair.
type Unit struct {
	Heading        *UnitIdentifier
	Comment        *AnnotationComment // Optional, precedes the heading
	Includes       []string           // Include-file names, one {$INCLUDE} line each
	Interface      *InterfaceSection
	Implementation *ImplementationSection
}

// NewUnit returns a unit with the given heading and empty sections.
func NewUnit(heading *UnitIdentifier) *Unit {
	return &Unit{
		Heading:        heading,
		Interface:      &InterfaceSection{},
		Implementation: &ImplementationSection{},
	}
}

// BaseName returns the full dotted heading, which is the file name Pascal
// compilers resolve a namespaced unit under.
func (u *Unit) BaseName() string {
	if u.Heading == nil {
		return ""
	}
	return u.Heading.String()
}

// AddInterfaceUses appends references to the interface section's uses clause.
func (u *Unit) AddInterfaceUses(refs ...*ConditionalUnitReference) *Unit {
	if u.Interface == nil {
		u.Interface = &InterfaceSection{}
	}
	u.Interface.Uses = append(u.Interface.Uses, refs...)
	return u
}

// AddImplementationUses appends references to the implementation section's
// uses clause.
func (u *Unit) AddImplementationUses(refs ...*ConditionalUnitReference) *Unit {
	if u.Implementation == nil {
		u.Implementation = &ImplementationSection{}
	}
	u.Implementation.Uses = append(u.Implementation.Uses, refs...)
	return u
}

// AddDeclaration appends a type declaration to the interface section.
func (u *Unit) AddDeclaration(decls ...Declaration) *Unit {
	if u.Interface == nil {
		u.Interface = &InterfaceSection{}
	}
	u.Interface.Declarations = append(u.Interface.Declarations, decls...)
	return u
}

// AddMethod appends a method body to the implementation section.
func (u *Unit) AddMethod(methods ...*MethodDeclaration) *Unit {
	if u.Implementation == nil {
		u.Implementation = &ImplementationSection{}
	}
	u.Implementation.Methods = append(u.Implementation.Methods, methods...)
	return u
}

// InterfaceSection is the public half of a unit: a uses clause and the type
// declarations visible to other units.
type InterfaceSection struct {
	Uses         []*ConditionalUnitReference
	Declarations []Declaration
}

// ImplementationSection is the body half of a unit: a uses clause and the
// method implementations.
type ImplementationSection struct {
	Uses    []*ConditionalUnitReference
	Methods []*MethodDeclaration
}

// Program is an executable-entry-point Pascal source file. Variable
// declarations and statements are raw pre-formatted lines.
type Program struct {
	Name       string
	Comment    *AnnotationComment // Optional, precedes the heading
	Includes   []string
	Uses       []*ConditionalUnitReference
	Variables  []string // Raw declaration text for the var block
	Statements []string // Raw statement text for the begin..end block
}

// NewProgram returns an empty program with the given heading name.
func NewProgram(name string) *Program {
	return &Program{Name: name}
}

// BaseName returns the program's heading name.
func (p *Program) BaseName() string {
	return p.Name
}

// AddUses appends references to the program's uses clause.
func (p *Program) AddUses(refs ...*ConditionalUnitReference) *Program {
	p.Uses = append(p.Uses, refs...)
	return p
}

// Declaration is the set of type declarations an interface section can hold:
// *ClassDeclaration, *EnumDeclaration and *InterfaceTypeDeclaration. It is a
// closed sum; the writer treats any other implementation as a precondition
// violation.
type Declaration interface {
	isDeclaration()
	// DeclaredName returns the name the declaration introduces.
	DeclaredName() string
}

func (*ClassDeclaration) isDeclaration()         {}
func (*EnumDeclaration) isDeclaration()          {}
func (*InterfaceTypeDeclaration) isDeclaration() {}
