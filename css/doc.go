/*
Package css provides small immutable value types for CSS box and length
values: lengths, margins and borders.

Lengths come in two units only: EM, relative to the font size of the
resolved text style, and PX, an absolute logical pixel. Print units found
in style sheets (pt, mm, in) are normalized to PX when parsing, using the
dimension constants of package tyse/core/dimen.

Margins and borders are per-edge compositions of optional values. They are
never mutated; CopyWith produces a new value taking overrides where given
and falling back to the receiver per field.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styledtext.css'.
func tracer() tracing.Trace {
	return tracing.Select("styledtext.css")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("css: "+msg, msgargs...)
		panic(msg)
	}
}
