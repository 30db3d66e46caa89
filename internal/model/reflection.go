// Package model contains the documentation generator's serialized reflection tree.
//
// Only the fields needed to find and rewrite source references are typed. Every other field survives a decode and encode round trip untouched.
package model

// SourceReference is a location in the original source tree where a reflection is declared
type SourceReference struct {
	FileName  string `json:"fileName,omitempty"`
	Line      int    `json:"line,omitempty"`
	Character int    `json:"character,omitempty"`
	URL       string `json:"url,omitempty"`

	extra fields
}

// Reflection is a single documented symbol of any kind
type Reflection struct {
	ID              int                `json:"id,omitempty"`
	Name            string             `json:"name,omitempty"`
	Kind            Kind               `json:"kind,omitempty"`
	Sources         []*SourceReference `json:"sources,omitempty"`
	Children        []*Reflection      `json:"children,omitempty"`
	Signatures      []*Reflection      `json:"signatures,omitempty"`
	IndexSignature  *Reflection        `json:"indexSignature,omitempty"`
	IndexSignatures []*Reflection      `json:"indexSignatures,omitempty"`
	GetSignature    *Reflection        `json:"getSignature,omitempty"`
	SetSignature    *Reflection        `json:"setSignature,omitempty"`
	Parameters      []*Reflection      `json:"parameters,omitempty"`
	TypeParameters  []*Reflection      `json:"typeParameters,omitempty"`
	Type            *Type              `json:"type,omitempty"`

	extra fields
}

// Type is a reflection's type. Object literal types carry their own Declaration reflection,
// and any composite type may nest one inside its member types.
type Type struct {
	Type          string      `json:"type,omitempty"`
	Declaration   *Reflection `json:"declaration,omitempty"`
	ElementType   *Type       `json:"elementType,omitempty"`
	Types         []*Type     `json:"types,omitempty"`
	TypeArguments []*Type     `json:"typeArguments,omitempty"`

	// tuple and named tuple members
	Elements []*Type `json:"elements,omitempty"`
	Element  *Type   `json:"element,omitempty"`
	// indexed access
	ObjectType *Type `json:"objectType,omitempty"`
	IndexType  *Type `json:"indexType,omitempty"`
	// conditional
	CheckType   *Type `json:"checkType,omitempty"`
	ExtendsType *Type `json:"extendsType,omitempty"`
	TrueType    *Type `json:"trueType,omitempty"`
	FalseType   *Type `json:"falseType,omitempty"`
	// mapped
	ParameterType *Type `json:"parameterType,omitempty"`
	TemplateType  *Type `json:"templateType,omitempty"`
	NameType      *Type `json:"nameType,omitempty"`
	// predicate and query
	TargetType *Type `json:"targetType,omitempty"`
	QueryType  *Type `json:"queryType,omitempty"`
	// Target is the operand of a type operator. Other types use "target" for a reflection ID, which is kept as is.
	Target *Type `json:"-"`

	extra fields
}

// Project is the root reflection of a documentation model
type Project struct {
	Reflection
}

// Traverse calls fn on every reflection owned by r, depth-first. r itself is not visited.
// Returning false from fn skips that reflection's descendants.
func (r *Reflection) Traverse(fn func(*Reflection) bool) {
	for _, child := range r.owned() {
		if fn(child) {
			child.Traverse(fn)
		}
	}
}

func (r *Reflection) owned() []*Reflection {
	var owned []*Reflection
	add := func(reflections ...*Reflection) {
		for _, reflection := range reflections {
			if reflection != nil {
				owned = append(owned, reflection)
			}
		}
	}
	add(r.Children...)
	add(r.Signatures...)
	add(r.IndexSignature)
	add(r.IndexSignatures...)
	add(r.GetSignature, r.SetSignature)
	add(r.Parameters...)
	add(r.TypeParameters...)
	add(r.Type.declarations()...)
	return owned
}

func (t *Type) declarations() []*Reflection {
	if t == nil {
		return nil
	}
	var declarations []*Reflection
	if t.Declaration != nil {
		declarations = append(declarations, t.Declaration)
	}
	for _, nested := range t.nested() {
		declarations = append(declarations, nested.declarations()...)
	}
	return declarations
}

func (t *Type) nested() []*Type {
	nested := []*Type{
		t.ElementType,
		t.Element,
		t.Target,
		t.ObjectType,
		t.IndexType,
		t.CheckType,
		t.ExtendsType,
		t.TrueType,
		t.FalseType,
		t.ParameterType,
		t.TemplateType,
		t.NameType,
		t.TargetType,
		t.QueryType,
	}
	nested = append(nested, t.Types...)
	nested = append(nested, t.TypeArguments...)
	return append(nested, t.Elements...)
}

// Reflections returns every reflection in the project regardless of kind, including the project itself.
// Each reflection is returned once, even if it is reachable from more than one parent.
func (p *Project) Reflections() []*Reflection {
	var reflections []*Reflection
	seen := make(map[*Reflection]bool)
	visit := func(r *Reflection) bool {
		if seen[r] {
			return false
		}
		seen[r] = true
		reflections = append(reflections, r)
		return true
	}
	visit(&p.Reflection)
	p.Traverse(visit)
	return reflections
}

// ReflectionsByKind returns every reflection in the project matching kind, including the project itself.
// KindAll matches every reflection, even those with a missing or unrecognized kind.
func (p *Project) ReflectionsByKind(kind Kind) []*Reflection {
	all := p.Reflections()
	if kind == KindAll {
		return all
	}
	var reflections []*Reflection
	for _, r := range all {
		if r.Kind.Has(kind) {
			reflections = append(reflections, r)
		}
	}
	return reflections
}
