// Package gojaurl exposes the WHATWG URL and URLSearchParams APIs, as
// implemented by [github.com/joeycumines/go-whatwgurl], to JavaScript
// running in [github.com/dop251/goja].
//
// Nothing is registered on import. Use [Require] to create a
// [github.com/dop251/goja_nodejs/require.ModuleLoader], or create a
// [Module] directly with [New], then call [Module.SetupExports] or
// [Module.SetupGlobals].
//
//	registry := require.NewRegistry()
//	registry.RegisterNativeModule("url", gojaurl.Require())
//
// From JavaScript:
//
//	const { URL, URLSearchParams } = require('url');
//	const u = new URL('/b?c=d', 'https://example.com/a');
//	u.searchParams.append('e', 'f g');
//	u.href; // "https://example.com/b?c=d&e=f+g"
//
// # Errors
//
// The URL constructor, and the href setter, throw a TypeError with a message
// such as "Invalid host" on failure. All other setters silently ignore
// invalid values.
//
// # Concurrency
//
// A [Module] is bound to a single [goja.Runtime], and must only be used
// from the goroutine driving that runtime.
package gojaurl
