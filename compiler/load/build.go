package load

import (
	"fmt"

	"github.com/scriba-dev/scriba/schema"
)

// SourceFile maps the document onto the schema model. Shape violations,
// including conditional wrappers without branches, are reported as
// DecodeErrors naming the offending entry; no partially built tree escapes.
func (d *Document) SourceFile() (schema.SourceFile, error) {
	switch {
	case d.Unit != nil && d.Program != nil:
		return nil, NewDecodeError("document", "unit and program are mutually exclusive", nil)
	case d.Unit != nil:
		return d.Unit.Build()
	case d.Program != nil:
		return d.Program.Build()
	default:
		return nil, NewDecodeError("document", "missing unit or program", nil)
	}
}

// Build maps the unit document onto a schema.Unit.
func (u *Unit) Build() (*schema.Unit, error) {
	if u.Name == "" {
		return nil, NewDecodeError("unit.name", "missing unit name", nil)
	}
	out := schema.NewUnit(schema.NewUnitIdentifier(u.Name, u.Namespace...))
	out.Comment = buildComment(u.Comment)
	out.Includes = cloneStrings(u.Includes)
	if u.Interface != nil {
		uses, err := buildReferences("unit.interface.uses", u.Interface.Uses)
		if err != nil {
			return nil, err
		}
		out.Interface.Uses = uses
		for i, d := range u.Interface.Declarations {
			decl, err := d.build(fmt.Sprintf("unit.interface.declarations[%d]", i))
			if err != nil {
				return nil, err
			}
			out.Interface.Declarations = append(out.Interface.Declarations, decl)
		}
	}
	if u.Implementation != nil {
		uses, err := buildReferences("unit.implementation.uses", u.Implementation.Uses)
		if err != nil {
			return nil, err
		}
		out.Implementation.Uses = uses
		for i, m := range u.Implementation.Methods {
			method, err := m.build(fmt.Sprintf("unit.implementation.methods[%d]", i))
			if err != nil {
				return nil, err
			}
			out.Implementation.Methods = append(out.Implementation.Methods, method)
		}
	}
	return out, nil
}

// Build maps the program document onto a schema.Program.
func (p *Program) Build() (*schema.Program, error) {
	if p.Name == "" {
		return nil, NewDecodeError("program.name", "missing program name", nil)
	}
	out := schema.NewProgram(p.Name)
	out.Comment = buildComment(p.Comment)
	out.Includes = cloneStrings(p.Includes)
	uses, err := buildReferences("program.uses", p.Uses)
	if err != nil {
		return nil, err
	}
	out.Uses = uses
	out.Variables = cloneStrings(p.Variables)
	out.Statements = cloneStrings(p.Statements)
	return out, nil
}

func buildReferences(path string, refs []*Reference) ([]*schema.ConditionalUnitReference, error) {
	var out []*schema.ConditionalUnitReference
	for i, r := range refs {
		ref, err := r.build(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

func (r *Reference) build(path string) (*schema.ConditionalUnitReference, error) {
	if r == nil {
		return nil, NewDecodeError(path, "missing reference", nil)
	}
	switch {
	case r.IfDef == "" && r.Unit == "":
		return nil, NewDecodeError(path, "missing unit name", nil)
	case r.IfDef == "" && r.Alt != "":
		return nil, NewDecodeError(path, "alt requires ifdef", nil)
	case r.IfDef != "" && r.Unit == "" && r.Alt == "":
		return nil, NewDecodeError(path, "conditional reference has no branches", nil)
	}
	ref := &schema.ConditionalUnitReference{}
	if r.Unit != "" {
		ref.Primary = schema.ParseUnitIdentifier(r.Unit)
	}
	if r.Alt != "" {
		ref.Alternative = schema.ParseUnitIdentifier(r.Alt)
	}
	if r.IfDef != "" {
		ref.Condition = &schema.CompilationCondition{Symbol: r.IfDef}
	}
	return ref, nil
}

func buildAnnotations(path string, annotations []*Annotation) ([]*schema.ConditionalAttributeAnnotation, error) {
	var out []*schema.ConditionalAttributeAnnotation
	for i, a := range annotations {
		an, err := a.build(fmt.Sprintf("%s.annotations[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, an)
	}
	return out, nil
}

func (a *Annotation) build(path string) (*schema.ConditionalAttributeAnnotation, error) {
	if a == nil {
		return nil, NewDecodeError(path, "missing annotation", nil)
	}
	switch {
	case a.IfDef == "" && a.Text == "":
		return nil, NewDecodeError(path, "missing annotation text", nil)
	case a.IfDef == "" && a.Alt != "":
		return nil, NewDecodeError(path, "alt requires ifdef", nil)
	case a.IfDef != "" && a.Text == "" && a.Alt == "":
		return nil, NewDecodeError(path, "conditional annotation has no branches", nil)
	}
	an := &schema.ConditionalAttributeAnnotation{Primary: a.Text, Alternative: a.Alt}
	if a.IfDef != "" {
		an.Condition = &schema.CompilationCondition{Symbol: a.IfDef}
	}
	return an, nil
}

func (d *Declaration) build(path string) (schema.Declaration, error) {
	if d == nil {
		return nil, NewDecodeError(path, "missing declaration", nil)
	}
	if n := count(d.Class != nil, d.Enum != nil, d.Interface != nil); n != 1 {
		return nil, NewDecodeError(path, "exactly one of class, enum or interface must be set", nil)
	}
	switch {
	case d.Class != nil:
		return d.Class.build(path + ".class")
	case d.Enum != nil:
		return d.Enum.build(path + ".enum")
	default:
		return d.Interface.build(path + ".interface")
	}
}

func (c *Class) build(path string) (*schema.ClassDeclaration, error) {
	if c.Name == "" {
		return nil, NewDecodeError(path, "missing class name", nil)
	}
	annotations, err := buildAnnotations(path, c.Annotations)
	if err != nil {
		return nil, err
	}
	out := &schema.ClassDeclaration{
		Name:        c.Name,
		Ancestor:    c.Ancestor,
		Interfaces:  cloneStrings(c.Implements),
		Comment:     buildComment(c.Comment),
		Annotations: annotations,
	}
	for i, el := range c.Members {
		built, err := el.build(fmt.Sprintf("%s.members[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out.Elements = append(out.Elements, built)
	}
	return out, nil
}

func (el *ClassElement) build(path string) (schema.ClassElement, error) {
	if el == nil {
		return nil, NewDecodeError(path, "missing class element", nil)
	}
	visibility, err := parseVisibility(path, el.Visibility)
	if err != nil {
		return nil, err
	}
	if n := count(el.Const != nil, el.Type != nil, el.Field != nil, el.Method != nil, el.Property != nil); n != 1 {
		return nil, NewDecodeError(path, "exactly one of const, type, field, method or property must be set", nil)
	}
	switch {
	case el.Const != nil:
		if len(el.Annotations) > 0 {
			return nil, NewDecodeError(path, "annotations are not supported on consts", nil)
		}
		if el.Const.Name == "" || el.Const.Value == "" {
			return nil, NewDecodeError(path+".const", "missing name or value", nil)
		}
		return &schema.NestedConstDeclaration{
			Visibility: visibility,
			Name:       el.Const.Name,
			Value:      el.Const.Value,
		}, nil
	case el.Type != nil:
		if len(el.Annotations) > 0 {
			return nil, NewDecodeError(path, "annotations are not supported on nested types", nil)
		}
		inner, err := el.Type.build(path + ".type")
		if err != nil {
			return nil, err
		}
		return &schema.NestedTypeDeclaration{Visibility: visibility, Declaration: inner}, nil
	default:
		member, err := el.buildMember(path)
		if err != nil {
			return nil, err
		}
		member.Visibility = visibility
		return member, nil
	}
}

// buildMember maps the field/method/property union shared by class and
// interface members.
func (el *ClassElement) buildMember(path string) (*schema.ClassMemberDeclaration, error) {
	annotations, err := buildAnnotations(path, el.Annotations)
	if err != nil {
		return nil, err
	}
	out := &schema.ClassMemberDeclaration{Annotations: annotations}
	switch {
	case el.Field != nil:
		if el.Field.Name == "" || el.Field.Type == "" {
			return nil, NewDecodeError(path+".field", "missing name or type", nil)
		}
		out.Member = &schema.FieldDeclaration{Name: el.Field.Name, TypeName: el.Field.Type}
	case el.Method != nil:
		prototype, err := buildPrototype(path+".method", el.Method.Kind, el.Method.Name, el.Method.Params, el.Method.Returns)
		if err != nil {
			return nil, err
		}
		binding, err := parseBinding(path+".method", el.Method.Binding)
		if err != nil {
			return nil, err
		}
		out.Member = &schema.MethodInterfaceDeclaration{
			Prototype: prototype,
			Binding:   binding,
			Comment:   buildComment(el.Method.Comment),
		}
	case el.Property != nil:
		if el.Property.Name == "" || el.Property.Type == "" {
			return nil, NewDecodeError(path+".property", "missing name or type", nil)
		}
		out.Member = &schema.PropertyDeclaration{
			Name:     el.Property.Name,
			TypeName: el.Property.Type,
			Reader:   el.Property.Read,
			Writer:   el.Property.Write,
		}
	default:
		return nil, NewDecodeError(path, "missing member", nil)
	}
	return out, nil
}

func (e *Enum) build(path string) (*schema.EnumDeclaration, error) {
	if e.Name == "" {
		return nil, NewDecodeError(path, "missing enum name", nil)
	}
	annotations, err := buildAnnotations(path, e.Annotations)
	if err != nil {
		return nil, err
	}
	out := &schema.EnumDeclaration{
		Name:        e.Name,
		Comment:     buildComment(e.Comment),
		Annotations: annotations,
	}
	for i, v := range e.Values {
		if v == nil || v.Name == "" {
			return nil, NewDecodeError(fmt.Sprintf("%s.values[%d]", path, i), "missing value name", nil)
		}
		value := &schema.EnumValueDeclaration{Name: v.Name}
		if v.Ordinal != nil {
			ordinal := *v.Ordinal
			value.Ordinal = &ordinal
		}
		out.Values = append(out.Values, value)
	}
	return out, nil
}

func (i *Interface) build(path string) (*schema.InterfaceTypeDeclaration, error) {
	if i.Name == "" {
		return nil, NewDecodeError(path, "missing interface name", nil)
	}
	out := &schema.InterfaceTypeDeclaration{
		Name:     i.Name,
		Ancestor: i.Ancestor,
		GUID:     i.GUID,
		Comment:  buildComment(i.Comment),
	}
	for j, el := range i.Members {
		elPath := fmt.Sprintf("%s.members[%d]", path, j)
		if el == nil {
			return nil, NewDecodeError(elPath, "missing interface member", nil)
		}
		if el.Visibility != "" {
			return nil, NewDecodeError(elPath, "interface members have no visibility", nil)
		}
		if el.Const != nil || el.Type != nil || el.Field != nil {
			return nil, NewDecodeError(elPath, "interface members must be methods or properties", nil)
		}
		member, err := el.buildMember(elPath)
		if err != nil {
			return nil, err
		}
		out.Members = append(out.Members, member)
	}
	return out, nil
}

func (m *Method) build(path string) (*schema.MethodDeclaration, error) {
	prototype, err := buildPrototype(path, m.Kind, m.Name, m.Params, m.Returns)
	if err != nil {
		return nil, err
	}
	return &schema.MethodDeclaration{
		Class:      m.Class,
		Prototype:  prototype,
		LocalDecls: cloneStrings(m.Locals),
		Statements: cloneStrings(m.Body),
	}, nil
}

func buildPrototype(path, kind, name string, params []*Param, returns string) (*schema.Prototype, error) {
	k, err := parseKind(path, kind)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, NewDecodeError(path, "missing method name", nil)
	}
	switch {
	case k == schema.Function && returns == "":
		return nil, NewDecodeError(path, "function requires returns", nil)
	case k != schema.Function && returns != "":
		return nil, NewDecodeError(path, "returns is only valid on functions", nil)
	}
	out := &schema.Prototype{Kind: k, Name: name, ReturnType: returns}
	for i, p := range params {
		if p == nil || p.Name == "" || p.Type == "" {
			return nil, NewDecodeError(fmt.Sprintf("%s.params[%d]", path, i), "missing name or type", nil)
		}
		out.Parameters = append(out.Parameters, &schema.Parameter{Name: p.Name, TypeName: p.Type})
	}
	return out, nil
}

func buildComment(lines []string) *schema.AnnotationComment {
	if len(lines) == 0 {
		return nil
	}
	return &schema.AnnotationComment{Lines: cloneStrings(lines)}
}

func parseVisibility(path, s string) (schema.Visibility, error) {
	switch s {
	case "":
		return schema.Unspecified, nil
	case "private":
		return schema.Private, nil
	case "protected":
		return schema.Protected, nil
	case "public":
		return schema.Public, nil
	default:
		return 0, NewDecodeError(path, fmt.Sprintf("unknown visibility %q", s), nil)
	}
}

func parseKind(path, s string) (schema.PrototypeKind, error) {
	switch s {
	case "procedure":
		return schema.Procedure, nil
	case "function":
		return schema.Function, nil
	case "constructor":
		return schema.Constructor, nil
	case "destructor":
		return schema.Destructor, nil
	case "":
		return 0, NewDecodeError(path, "missing method kind", nil)
	default:
		return 0, NewDecodeError(path, fmt.Sprintf("unknown method kind %q", s), nil)
	}
}

func parseBinding(path, s string) (schema.Binding, error) {
	switch s {
	case "":
		return schema.Static, nil
	case "virtual":
		return schema.Virtual, nil
	case "override":
		return schema.Override, nil
	default:
		return 0, NewDecodeError(path, fmt.Sprintf("unknown binding %q", s), nil)
	}
}

func count(set ...bool) int {
	n := 0
	for _, s := range set {
		if s {
			n++
		}
	}
	return n
}
