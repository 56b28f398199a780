// Package jsondec converts untyped JSON value trees into statically typed
// domain values through composable decoders.
//
//   - A closed Value union over the six JSON variants
//     (null/bool/number/string/array/object)
//   - A stable error model via Issues (JSON Pointer, code, message)
//   - Text entry points (FromText/FromBytes/FromReader/FromYAML) with
//     duplicate-key/depth/size enforcement over a pluggable token Source
//   - The decoder DSL lives under dec/: primitives, Named fields,
//     Decode1..Decode8, and an ordered object builder with struct binding
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations
//     under internal/.
//   - Place the DSL under dec/, token sources under source/, and the CLI under
//     cmd/jsondec.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := jsondec.FromText(`{"name":"Ann","age":30}`)
//	if err != nil { ... }
//	person, err := dec.Decode2(
//		dec.Named("name", dec.String()),
//		dec.Named("age", dec.Int()),
//		func(n string, a int) Person { return Person{Name: n, Age: a} },
//	)(v)
package jsondec
