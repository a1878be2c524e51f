package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ParseInline parses the value of an HTML style attribute, e.g.
//
//	color: red; font-size: 1.2em
//
// into key/value pairs, in source order. Keys are lower-cased; values are
// kept as written (font family names are case sensitive).
func ParseInline(attr string) ([]KeyValue, error) {
	if strings.TrimSpace(attr) == "" {
		return nil, nil
	}
	// douceur drops the value of an unterminated last declaration
	if !strings.HasSuffix(strings.TrimSpace(attr), ";") {
		attr += ";"
	}
	decls, err := parser.ParseDeclarations(attr)
	if err != nil {
		return nil, fmt.Errorf("style: cannot parse inline style %q: %w", attr, err)
	}
	kvs := make([]KeyValue, 0, len(decls))
	for _, d := range decls {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		if key == "" {
			continue
		}
		if d.Important {
			tracer().Debugf("style: ignoring !important for inline property %s", key)
		}
		kvs = append(kvs, KeyValue{Key: key, Value: Property(strings.TrimSpace(d.Value))})
	}
	return kvs, nil
}
