package jsonline

import (
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/nicmue/tracing-stable-trace-id-example/jsonutil"
	"github.com/nicmue/tracing-stable-trace-id-example/spanreg"
)

// the misspelling is historical and downstream matchers expect it
const spanFieldTypeError = "field was no a valid object"

// appendSpanFields renders one span as a JSON object: the span's
// frozen field record flattened to top-level entries, then "name".
//
// The record was produced by an upstream recorder and is re-parsed
// here rather than trusted.  A record that is valid JSON but not an
// object comes out as a "field" entry plus a fixed "field_error"
// diagnostic; a record that does not parse comes out as a
// "field_error" entry carrying the parse error.  Either way the span
// entry and the surrounding line survive.  Only WithStrictSpanFields
// turns these cases into errors.
func (f *Formatter) appendSpanFields(b *jsonutil.JBuilder, span spanreg.Span) error {
	blob := span.FieldBlob()
	b.AppendByte('{') // }
	v, err := fastjson.ParseBytes(blob)
	switch {
	case err != nil:
		if f.strict {
			return errors.Wrapf(err, "stored fields %q do not parse", blob)
		}
		b.AddSafeKey("field_error")
		b.AddString(err.Error())
	case v.Type() == fastjson.TypeObject:
		obj, _ := v.Object()
		obj.Visit(func(key []byte, value *fastjson.Value) {
			b.AddKey(string(key))
			b.B = value.MarshalTo(b.B)
		})
	default:
		if f.strict {
			return errors.Errorf("stored fields %q are not a JSON object", blob)
		}
		b.AddSafeKey("field")
		b.B = v.MarshalTo(b.B)
		b.AddSafeKey("field_error")
		b.AddSafeString(spanFieldTypeError)
	}
	b.AddSafeKey("name")
	b.AddString(span.Name())
	// {
	b.AppendByte('}')
	return nil
}
