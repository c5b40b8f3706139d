package luau

// Temps allocates temporary identifiers for one compilation.
// IDs increase monotonically; a Temps value must not be shared between
// independent compilations.
type Temps struct {
	next int
}

// New returns a fresh temporary identifier named after hint.
func (t *Temps) New(hint string) *TemporaryIdentifier {
	t.next++
	return &TemporaryIdentifier{Hint: hint, ID: t.next}
}
