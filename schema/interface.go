package schema

import (
	"strings"

	"github.com/google/uuid"
)

// InterfaceTypeDeclaration declares a COM-style interface type. Members are
// restricted to methods and properties; a member's visibility is ignored
// since interface members are implicitly public.
type InterfaceTypeDeclaration struct {
	Name     string
	Ancestor string // Ancestor interface, conventionally "IInterface"
	GUID     string // Registry-format GUID, "{XXXXXXXX-...}"
	Comment  *AnnotationComment
	Members  []*ClassMemberDeclaration
}

// DeclaredName returns the interface type name.
func (i *InterfaceTypeDeclaration) DeclaredName() string { return i.Name }

// NewGUID returns a random interface GUID in Delphi registry format,
// uppercase hex wrapped in braces.
func NewGUID() string {
	return formatGUID(uuid.New())
}

// DeterministicGUID derives a stable GUID from the interface name, so
// repeated generation runs assign the same identity to the same interface.
func DeterministicGUID(name string) string {
	return formatGUID(uuid.NewSHA1(uuid.NameSpaceOID, []byte("scriba.interface/"+name)))
}

func formatGUID(id uuid.UUID) string {
	return "{" + strings.ToUpper(id.String()) + "}"
}
