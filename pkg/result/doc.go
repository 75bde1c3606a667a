// Package result provides Result, the success-or-failure value produced by
// every conversion and validation step of the binding engine.
//
// A Result either holds a value (Ok) or a Failure describing why the value was
// rejected. Failures carry a human-readable message plus optional translation
// metadata so messages can be localized at the point where they are displayed.
//
// # Usage
//
//	r := result.Ok(42)
//	doubled := result.Map(r, func(v int) int { return v * 2 })
//
//	bad := result.Error[int]("must be a number")
//	if msg, ok := bad.Message(); ok {
//	    fmt.Println(msg)
//	}
//
// Go does not allow type parameters on methods, so type-changing combinators
// (Map, FlatMap, Fold, Recast) are package-level functions.
package result
