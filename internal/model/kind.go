package model

import "strings"

// Kind is a bit set of reflection kinds. The values match the documentation generator's serialized model.
type Kind uint32

const (
	KindProject Kind = 1 << iota
	KindModule
	KindNamespace
	KindEnum
	KindEnumMember
	KindVariable
	KindFunction
	KindClass
	KindInterface
	KindConstructor
	KindProperty
	KindMethod
	KindCallSignature
	KindIndexSignature
	KindConstructorSignature
	KindParameter
	KindTypeLiteral
	KindTypeParameter
	KindAccessor
	KindGetSignature
	KindSetSignature
	KindTypeAlias
	KindReference

	kindEnd
)

// KindAll matches every reflection kind
const KindAll = kindEnd - 1

var kindNames = []string{
	"Project",
	"Module",
	"Namespace",
	"Enum",
	"EnumMember",
	"Variable",
	"Function",
	"Class",
	"Interface",
	"Constructor",
	"Property",
	"Method",
	"CallSignature",
	"IndexSignature",
	"ConstructorSignature",
	"Parameter",
	"TypeLiteral",
	"TypeParameter",
	"Accessor",
	"GetSignature",
	"SetSignature",
	"TypeAlias",
	"Reference",
}

// Has returns true if k shares any kind with other
func (k Kind) Has(other Kind) bool {
	return k&other != 0
}

func (k Kind) String() string {
	if k == KindAll {
		return "All"
	}
	var names []string
	for i, name := range kindNames {
		if k.Has(1 << uint(i)) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}
