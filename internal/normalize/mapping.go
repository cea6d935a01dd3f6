package normalize

// Field maps one source key of a document to one target key of a response.
type Field struct {
	Source  string
	Target  string
	Default *string
	Coerce  Coercion
}

// Apply reshapes doc according to fields. Every target key is present in
// the result; a missing or unusable source value yields the field default,
// which is nil unless the table says otherwise.
func Apply(doc map[string]any, fields []Field) map[string]*string {
	out := make(map[string]*string, len(fields))
	for _, f := range fields {
		out[f.Target] = f.value(doc)
	}
	return out
}

func (f Field) value(doc map[string]any) *string {
	raw, ok := doc[f.Source]
	if !ok || raw == nil {
		return f.Default
	}
	coerce := f.Coerce
	if coerce == nil {
		coerce = Text
	}
	s, ok := coerce(raw)
	if !ok {
		return f.Default
	}
	return &s
}

// Derived is a field computed as Minuend - Subtrahend from two source keys.
// A negative Places keeps the exact difference.
type Derived struct {
	Target     string
	Minuend    string
	Subtrahend string
	Places     int32
	ZeroAsNull bool
}

// Eval returns nil unless both operands parse as numbers.
func (d Derived) Eval(doc map[string]any) *string {
	a, ok := Decimal(doc[d.Minuend])
	if !ok {
		return nil
	}
	b, ok := Decimal(doc[d.Subtrahend])
	if !ok {
		return nil
	}
	diff := a.Sub(b)
	if d.Places >= 0 {
		diff = diff.Round(d.Places)
	}
	if d.ZeroAsNull && diff.IsZero() {
		return nil
	}
	var s string
	if d.Places >= 0 {
		s = diff.StringFixed(d.Places)
	} else {
		s = diff.String()
	}
	return &s
}
