package schema

// Deep copies for every node kind. All Clone methods are nil-safe so that
// optional children clone transparently.

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

// Clone returns a deep copy of the identifier.
func (id *UnitIdentifier) Clone() *UnitIdentifier {
	if id == nil {
		return nil
	}
	return &UnitIdentifier{Namespace: cloneStrings(id.Namespace), Name: id.Name}
}

// Clone returns a copy of the condition.
func (c *CompilationCondition) Clone() *CompilationCondition {
	if c == nil {
		return nil
	}
	return &CompilationCondition{Symbol: c.Symbol}
}

// Clone returns a deep copy of the comment.
func (c *AnnotationComment) Clone() *AnnotationComment {
	if c == nil {
		return nil
	}
	return &AnnotationComment{Lines: cloneStrings(c.Lines)}
}

// Clone returns a deep copy of the reference.
func (r *ConditionalUnitReference) Clone() *ConditionalUnitReference {
	if r == nil {
		return nil
	}
	return &ConditionalUnitReference{
		Primary:     r.Primary.Clone(),
		Alternative: r.Alternative.Clone(),
		Condition:   r.Condition.Clone(),
	}
}

// Clone returns a deep copy of the annotation.
func (a *ConditionalAttributeAnnotation) Clone() *ConditionalAttributeAnnotation {
	if a == nil {
		return nil
	}
	return &ConditionalAttributeAnnotation{
		Primary:     a.Primary,
		Alternative: a.Alternative,
		Condition:   a.Condition.Clone(),
	}
}

func cloneReferences(refs []*ConditionalUnitReference) []*ConditionalUnitReference {
	if refs == nil {
		return nil
	}
	out := make([]*ConditionalUnitReference, len(refs))
	for i, r := range refs {
		out[i] = r.Clone()
	}
	return out
}

func cloneAnnotations(anns []*ConditionalAttributeAnnotation) []*ConditionalAttributeAnnotation {
	if anns == nil {
		return nil
	}
	out := make([]*ConditionalAttributeAnnotation, len(anns))
	for i, a := range anns {
		out[i] = a.Clone()
	}
	return out
}

// Clone returns a deep copy of the unit.
func (u *Unit) Clone() *Unit {
	if u == nil {
		return nil
	}
	return &Unit{
		Heading:        u.Heading.Clone(),
		Comment:        u.Comment.Clone(),
		Includes:       cloneStrings(u.Includes),
		Interface:      u.Interface.Clone(),
		Implementation: u.Implementation.Clone(),
	}
}

// Clone returns a deep copy of the program.
func (p *Program) Clone() *Program {
	if p == nil {
		return nil
	}
	return &Program{
		Name:       p.Name,
		Comment:    p.Comment.Clone(),
		Includes:   cloneStrings(p.Includes),
		Uses:       cloneReferences(p.Uses),
		Variables:  cloneStrings(p.Variables),
		Statements: cloneStrings(p.Statements),
	}
}

// Clone returns a deep copy of the section.
func (s *InterfaceSection) Clone() *InterfaceSection {
	if s == nil {
		return nil
	}
	out := &InterfaceSection{Uses: cloneReferences(s.Uses)}
	if s.Declarations != nil {
		out.Declarations = make([]Declaration, len(s.Declarations))
		for i, d := range s.Declarations {
			out.Declarations[i] = CloneDeclaration(d)
		}
	}
	return out
}

// Clone returns a deep copy of the section.
func (s *ImplementationSection) Clone() *ImplementationSection {
	if s == nil {
		return nil
	}
	out := &ImplementationSection{Uses: cloneReferences(s.Uses)}
	if s.Methods != nil {
		out.Methods = make([]*MethodDeclaration, len(s.Methods))
		for i, m := range s.Methods {
			out.Methods[i] = m.Clone()
		}
	}
	return out
}

// CloneDeclaration returns a deep copy of any declaration kind.
func CloneDeclaration(d Declaration) Declaration {
	switch d := d.(type) {
	case *ClassDeclaration:
		return d.Clone()
	case *EnumDeclaration:
		return d.Clone()
	case *InterfaceTypeDeclaration:
		return d.Clone()
	}
	return nil
}

// Clone returns a deep copy of the class declaration.
func (c *ClassDeclaration) Clone() *ClassDeclaration {
	if c == nil {
		return nil
	}
	out := &ClassDeclaration{
		Name:        c.Name,
		Ancestor:    c.Ancestor,
		Interfaces:  cloneStrings(c.Interfaces),
		Comment:     c.Comment.Clone(),
		Annotations: cloneAnnotations(c.Annotations),
	}
	if c.Elements != nil {
		out.Elements = make([]ClassElement, len(c.Elements))
		for i, el := range c.Elements {
			out.Elements[i] = CloneClassElement(el)
		}
	}
	return out
}

// CloneClassElement returns a deep copy of any class element kind.
func CloneClassElement(el ClassElement) ClassElement {
	switch el := el.(type) {
	case *NestedTypeDeclaration:
		return el.Clone()
	case *NestedConstDeclaration:
		return el.Clone()
	case *ClassMemberDeclaration:
		return el.Clone()
	}
	return nil
}

// Clone returns a deep copy of the nested type declaration.
func (d *NestedTypeDeclaration) Clone() *NestedTypeDeclaration {
	if d == nil {
		return nil
	}
	return &NestedTypeDeclaration{
		Visibility:  d.Visibility,
		Declaration: CloneDeclaration(d.Declaration),
	}
}

// Clone returns a copy of the nested const declaration.
func (d *NestedConstDeclaration) Clone() *NestedConstDeclaration {
	if d == nil {
		return nil
	}
	return &NestedConstDeclaration{Visibility: d.Visibility, Name: d.Name, Value: d.Value}
}

// Clone returns a deep copy of the member declaration.
func (d *ClassMemberDeclaration) Clone() *ClassMemberDeclaration {
	if d == nil {
		return nil
	}
	return &ClassMemberDeclaration{
		Visibility:  d.Visibility,
		Annotations: cloneAnnotations(d.Annotations),
		Member:      CloneClassMember(d.Member),
	}
}

// CloneClassMember returns a deep copy of any member kind.
func CloneClassMember(m ClassMember) ClassMember {
	switch m := m.(type) {
	case *MethodInterfaceDeclaration:
		return m.Clone()
	case *FieldDeclaration:
		return m.Clone()
	case *PropertyDeclaration:
		return m.Clone()
	}
	return nil
}

// Clone returns a deep copy of the parameter.
func (p *Parameter) Clone() *Parameter {
	if p == nil {
		return nil
	}
	return &Parameter{Name: p.Name, TypeName: p.TypeName}
}

// Clone returns a deep copy of the prototype.
func (p *Prototype) Clone() *Prototype {
	if p == nil {
		return nil
	}
	out := &Prototype{Kind: p.Kind, Name: p.Name, ReturnType: p.ReturnType}
	if p.Parameters != nil {
		out.Parameters = make([]*Parameter, len(p.Parameters))
		for i, param := range p.Parameters {
			out.Parameters[i] = param.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the method interface declaration.
func (m *MethodInterfaceDeclaration) Clone() *MethodInterfaceDeclaration {
	if m == nil {
		return nil
	}
	return &MethodInterfaceDeclaration{
		Prototype: m.Prototype.Clone(),
		Binding:   m.Binding,
		Comment:   m.Comment.Clone(),
	}
}

// Clone returns a copy of the field declaration.
func (f *FieldDeclaration) Clone() *FieldDeclaration {
	if f == nil {
		return nil
	}
	return &FieldDeclaration{Name: f.Name, TypeName: f.TypeName}
}

// Clone returns a copy of the property declaration.
func (p *PropertyDeclaration) Clone() *PropertyDeclaration {
	if p == nil {
		return nil
	}
	return &PropertyDeclaration{Name: p.Name, TypeName: p.TypeName, Reader: p.Reader, Writer: p.Writer}
}

// Clone returns a deep copy of the method body.
func (m *MethodDeclaration) Clone() *MethodDeclaration {
	if m == nil {
		return nil
	}
	return &MethodDeclaration{
		Class:      m.Class,
		Prototype:  m.Prototype.Clone(),
		LocalDecls: cloneStrings(m.LocalDecls),
		Statements: cloneStrings(m.Statements),
	}
}

// Clone returns a deep copy of the enum declaration.
func (e *EnumDeclaration) Clone() *EnumDeclaration {
	if e == nil {
		return nil
	}
	out := &EnumDeclaration{
		Name:        e.Name,
		Comment:     e.Comment.Clone(),
		Annotations: cloneAnnotations(e.Annotations),
	}
	if e.Values != nil {
		out.Values = make([]*EnumValueDeclaration, len(e.Values))
		for i, v := range e.Values {
			out.Values[i] = v.Clone()
		}
	}
	return out
}

// Clone returns a copy of the enum value.
func (v *EnumValueDeclaration) Clone() *EnumValueDeclaration {
	if v == nil {
		return nil
	}
	out := &EnumValueDeclaration{Name: v.Name}
	if v.Ordinal != nil {
		ordinal := *v.Ordinal
		out.Ordinal = &ordinal
	}
	return out
}

// Clone returns a deep copy of the interface type declaration.
func (i *InterfaceTypeDeclaration) Clone() *InterfaceTypeDeclaration {
	if i == nil {
		return nil
	}
	out := &InterfaceTypeDeclaration{
		Name:     i.Name,
		Ancestor: i.Ancestor,
		GUID:     i.GUID,
		Comment:  i.Comment.Clone(),
	}
	if i.Members != nil {
		out.Members = make([]*ClassMemberDeclaration, len(i.Members))
		for j, m := range i.Members {
			out.Members[j] = m.Clone()
		}
	}
	return out
}
