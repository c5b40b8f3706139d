package luau

// Kind is a runtime value kind as reported by the `type` global.
type Kind uint8

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindTable
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTable:
		return "table"
	case KindFunction:
		return "function"
	}
	return "unknown"
}

// IsKind builds a runtime kind test for value.
func IsKind(value Expression, kind Kind) *KindTest {
	return &KindTest{Value: value, Kind: kind}
}

// Lower expands the test into the plain call/compare form it prints as.
func (t *KindTest) Lower() *BinaryExpression {
	return Binary(Call(Globals.Type, t.Value), "==", String(t.Kind.String()))
}
