// Package cache provides a small generic LRU cache.
//
// The binding engine uses it to memoize locale-derived data that is expensive
// to rebuild on every conversion (for example the grouping and decimal symbols
// of a locale), while keeping memory bounded when many locales are in play.
//
// # Usage
//
//	symbols := cache.NewLRU[language.Tag, numberSymbols](32)
//	s := symbols.GetOrLoad(tag, loadSymbols)
//
// All operations are O(1) and safe for concurrent use.
package cache
