package jsx

// ResolveKey returns the statically known string value of the attribute
// named name on el. Non-literal values and missing attributes resolve to
// no key.
func ResolveKey(el *Element, name string) (string, bool) {
	for _, a := range el.Attributes {
		attr, ok := a.(*Attribute)
		if !ok || attr.Name != name {
			continue
		}
		if lit, ok := attr.Value.(StringLiteral); ok {
			return lit.StringValue(), true
		}
		return "", false
	}
	return "", false
}
