/*
Package dom collects per-element metadata for HTML element trees and defines
build ops, the extension units which transform elements into styled text.

Overview

For every element of a parse tree (golang.org/x/net/html) a Metadata
instance accumulates style and behaviour intents. Intents arrive from
several independent call sites: inline style attributes, user agent
defaults and the build ops bound to the element. They are merged with
Merge:

	meta = dom.Merge(meta,
	    dom.WithOp(boldOp),
	    dom.WithFontWeight(style.FontWeightBold),
	    dom.WithStyles("color", "red"))

Binding the metadata to its element (BindElement) sorts its build ops by
priority, once and for all. Afterwards the ops are frozen: merging an op
which is not already bound is a contract violation.

Build Ops

A build op is any type implementing Op. Ops may contribute up to four
hooks, each by implementing an optional interface: DefaultStyler,
ChildHook, PiecesHook and WidgetsHook. Package functions of the same
names dispatch to these hooks and fall back to the identity. OpFuncs is
a ready-made implementation with function-valued fields.

Ops are shared between elements and must not carry per-use state. They
are compared by identity, i.e. with ==, so their dynamic types must be
comparable; pointer types are recommended.

Contract violations (assigning a write-once field twice, mutating frozen
state, odd-length style batches) panic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'styledtext.dom'
func tracer() tracing.Trace {
	return tracing.Select("styledtext.dom")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dom: "+msg, msgargs...)
		panic(msg)
	}
}
