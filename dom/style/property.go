/*
Package style resolves text styles for positions in a text block tree.

Raw CSS declarations travel through the system as key/value pairs of
type Property. They are interpreted into resolver steps: functions which
derive a TextStyle from the style of the enclosing scope. A Resolver
collects these steps for one scope and computes the resolved TextStyle
lazily, at most once per rendering context.

	root := style.NewResolver()
	sub := root.Sub()
	style.Enqueue(sub, style.Italic, true)
	ts, err := sub.Resolve(ctx).Get()

Resolvers are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styledtext/css"
)

// tracer will return a tracer. We are tracing to 'styledtext.style'
func tracer() tracing.Trace {
	return tracing.Select("styledtext.style")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("style: "+msg, msgargs...)
		panic(msg)
	}
}

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p.normalized() == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p.normalized() == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// Keyword returns the property value lower-cased and trimmed, for
// comparison against CSS keywords.
func (p Property) Keyword() string {
	return p.normalized()
}

// Color interprets the property as a color value.
func (p Property) Color() (color.Color, error) {
	return css.ParseColor(string(p))
}

// Length interprets the property as a length.
func (p Property) Length() (css.Length, error) {
	return css.ParseLength(string(p))
}

func (p Property) normalized() string {
	return strings.ToLower(strings.TrimSpace(string(p)))
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// Flatten turns key/value pairs into a flat sequence k0, v0, k1, v1, …,
// the form in which node metadata stores raw declarations.
func Flatten(kvs []KeyValue) []string {
	flat := make([]string, 0, 2*len(kvs))
	for _, kv := range kvs {
		flat = append(flat, kv.Key, string(kv.Value))
	}
	return flat
}

// Pairs is the inverse of Flatten. A trailing key without a value is dropped.
func Pairs(flat []string) []KeyValue {
	kvs := make([]KeyValue, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		kvs = append(kvs, KeyValue{Key: flat[i], Value: Property(flat[i+1])})
	}
	return kvs
}
