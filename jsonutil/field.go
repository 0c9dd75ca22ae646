package jsonutil

// Field is one key/value pair attached to a log event or recorded on
// a span.  Order is preserved when fields are serialized.
type Field struct {
	Key   string
	Value interface{}
}

type Fields []Field

// AppendObject adds the fields as one JSON object.  Values that cannot
// be encoded are replaced with the encoding error text so that one bad
// value never invalidates the object.
func (fields Fields) AppendObject(b *JBuilder) {
	b.Comma()
	b.AppendByte('{')
	for _, f := range fields {
		b.AddKey(f.Key)
		if err := b.AddAny(f.Value); err != nil {
			b.AddString(err.Error())
		}
	}
	b.AppendByte('}')
}
