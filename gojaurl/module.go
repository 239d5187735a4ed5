package gojaurl

import (
	"fmt"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
	whatwgurl "github.com/joeycumines/go-whatwgurl"
)

// Module provides the URL and URLSearchParams classes for a
// [goja.Runtime]. Each Module instance is bound to a single runtime.
type Module struct {
	runtime *goja.Runtime
	parser  *whatwgurl.Parser

	urlCtor     *goja.Object
	urlProto    *goja.Object
	paramsCtor  *goja.Object
	paramsProto *goja.Object
	iterProto   *goja.Object

	// slots for the Go values, on JS instances
	urlSlot    *goja.Symbol
	paramsSlot *goja.Symbol
	// searchParamsSlot holds the URLSearchParams object of a URL object
	searchParamsSlot *goja.Symbol
}

// New creates a new [Module] bound to the given [goja.Runtime].
//
// New panics if runtime is nil, as this is a programming error
// (invariant violation). It returns an error if option validation
// fails.
func New(runtime *goja.Runtime, opts ...Option) (*Module, error) {
	if runtime == nil {
		panic("gojaurl: runtime must not be nil")
	}

	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("gojaurl: %w", err)
	}

	m := &Module{
		runtime:          runtime,
		parser:           cfg.parser,
		urlSlot:          goja.NewSymbol("url"),
		paramsSlot:       goja.NewSymbol("urlSearchParams"),
		searchParamsSlot: goja.NewSymbol("searchParams"),
	}

	m.bindIterator()
	m.bindSearchParams()
	m.bindURL()

	return m, nil
}

// SetupExports wires the module's JS API onto the given exports object.
// This is equivalent to the setup performed by [Require] but allows
// external consumers to configure exports without the require() mechanism.
func (m *Module) SetupExports(exports *goja.Object) {
	_ = exports.Set("URL", m.urlCtor)
	_ = exports.Set("URLSearchParams", m.paramsCtor)
}

// SetupGlobals installs URL and URLSearchParams on the runtime's global
// object, replacing any existing values.
func (m *Module) SetupGlobals() {
	m.SetupExports(m.runtime.GlobalObject())
}

// Require returns a [require.ModuleLoader] that registers the url module.
// This follows the standard Goja Node.js module pattern.
//
//	registry := require.NewRegistry()
//	registry.RegisterNativeModule("url", gojaurl.Require())
func Require(opts ...Option) require.ModuleLoader {
	return func(runtime *goja.Runtime, module *goja.Object) {
		m, err := New(runtime, opts...)
		if err != nil {
			panic(err)
		}
		exports := module.Get("exports").(*goja.Object)
		m.SetupExports(exports)
	}
}

// method sets a non-enumerable function property.
func (m *Module) method(obj *goja.Object, name string, fn func(call goja.FunctionCall) goja.Value) {
	_ = obj.DefineDataProperty(name, m.runtime.ToValue(fn), goja.FLAG_TRUE, goja.FLAG_TRUE, goja.FLAG_FALSE)
}

// accessor defines a property with a getter, and optionally a setter.
func (m *Module) accessor(obj *goja.Object, name string, get func(this *goja.Object) goja.Value, set func(this *goja.Object, value goja.Value)) {
	getter := m.runtime.ToValue(func(call goja.FunctionCall) goja.Value {
		return get(m.thisObject(call.This))
	})
	var setter goja.Value
	if set != nil {
		setter = m.runtime.ToValue(func(call goja.FunctionCall) goja.Value {
			set(m.thisObject(call.This), call.Argument(0))
			return goja.Undefined()
		})
	}
	_ = obj.DefineAccessorProperty(name, getter, setter, goja.FLAG_TRUE, goja.FLAG_TRUE)
}

func (m *Module) thisObject(this goja.Value) *goja.Object {
	if obj, ok := this.(*goja.Object); ok {
		return obj
	}
	panic(m.runtime.NewTypeError("Illegal invocation"))
}

// newClass creates a constructor, returning it and its prototype.
func (m *Module) newClass(name string, ctor func(call goja.ConstructorCall) *goja.Object) (ctorObj, proto *goja.Object) {
	ctorObj = m.runtime.ToValue(ctor).ToObject(m.runtime)
	if v := ctorObj.Get("prototype"); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
		proto = v.ToObject(m.runtime)
	} else {
		proto = m.runtime.NewObject()
		_ = ctorObj.Set("prototype", proto)
		_ = proto.DefineDataProperty("constructor", ctorObj, goja.FLAG_TRUE, goja.FLAG_TRUE, goja.FLAG_FALSE)
	}
	_ = ctorObj.DefineDataProperty("name", m.runtime.ToValue(name), goja.FLAG_FALSE, goja.FLAG_TRUE, goja.FLAG_FALSE)
	_ = proto.DefineDataPropertySymbol(goja.SymToStringTag, m.runtime.ToValue(name), goja.FLAG_FALSE, goja.FLAG_TRUE, goja.FLAG_FALSE)
	return ctorObj, proto
}

// bindIterator creates the prototype shared by URLSearchParams iterators,
// which are themselves iterable.
func (m *Module) bindIterator() {
	m.iterProto = m.runtime.NewObject()
	_ = m.iterProto.DefineDataPropertySymbol(goja.SymIterator, m.runtime.ToValue(func(call goja.FunctionCall) goja.Value {
		return call.This
	}), goja.FLAG_TRUE, goja.FLAG_TRUE, goja.FLAG_FALSE)
	_ = m.iterProto.DefineDataPropertySymbol(goja.SymToStringTag, m.runtime.ToValue("URLSearchParams Iterator"), goja.FLAG_FALSE, goja.FLAG_TRUE, goja.FLAG_FALSE)
}
