package gojaurl

import (
	"github.com/dop251/goja"
	whatwgurl "github.com/joeycumines/go-whatwgurl"
)

// bindSearchParams creates the URLSearchParams class.
func (m *Module) bindSearchParams() {
	m.paramsCtor, m.paramsProto = m.newClass("URLSearchParams", m.jsNewSearchParams)
	proto := m.paramsProto

	m.method(proto, "append", func(call goja.FunctionCall) goja.Value {
		m.thisSearchParams(call.This).Append(call.Argument(0).String(), call.Argument(1).String())
		return goja.Undefined()
	})

	m.method(proto, "delete", func(call goja.FunctionCall) goja.Value {
		sp := m.thisSearchParams(call.This)
		if value := call.Argument(1); goja.IsUndefined(value) {
			sp.Delete(call.Argument(0).String())
		} else {
			sp.DeleteValue(call.Argument(0).String(), value.String())
		}
		return goja.Undefined()
	})

	m.method(proto, "get", func(call goja.FunctionCall) goja.Value {
		if value, ok := m.thisSearchParams(call.This).Get(call.Argument(0).String()); ok {
			return m.runtime.ToValue(value)
		}
		return goja.Null()
	})

	m.method(proto, "getAll", func(call goja.FunctionCall) goja.Value {
		values := m.thisSearchParams(call.This).GetAll(call.Argument(0).String())
		items := make([]any, len(values))
		for i, v := range values {
			items[i] = v
		}
		return m.runtime.NewArray(items...)
	})

	m.method(proto, "has", func(call goja.FunctionCall) goja.Value {
		sp := m.thisSearchParams(call.This)
		if value := call.Argument(1); !goja.IsUndefined(value) {
			return m.runtime.ToValue(sp.HasValue(call.Argument(0).String(), value.String()))
		}
		return m.runtime.ToValue(sp.Has(call.Argument(0).String()))
	})

	m.method(proto, "set", func(call goja.FunctionCall) goja.Value {
		m.thisSearchParams(call.This).Set(call.Argument(0).String(), call.Argument(1).String())
		return goja.Undefined()
	})

	m.method(proto, "sort", func(call goja.FunctionCall) goja.Value {
		m.thisSearchParams(call.This).Sort()
		return goja.Undefined()
	})

	// forEach(callback, thisArg) calls callback(value, name, searchParams).
	m.method(proto, "forEach", func(call goja.FunctionCall) goja.Value {
		sp := m.thisSearchParams(call.This)
		callback, ok := goja.AssertFunction(call.Argument(0))
		if !ok {
			panic(m.runtime.NewTypeError("forEach requires a function"))
		}
		sp.ForEach(func(name, value string) {
			if _, err := callback(call.Argument(1), m.runtime.ToValue(value), m.runtime.ToValue(name), call.This); err != nil {
				panic(err)
			}
		})
		return goja.Undefined()
	})

	m.method(proto, "keys", func(call goja.FunctionCall) goja.Value {
		return m.newIterator(m.thisSearchParams(call.This), func(name, _ string) goja.Value {
			return m.runtime.ToValue(name)
		})
	})

	m.method(proto, "values", func(call goja.FunctionCall) goja.Value {
		return m.newIterator(m.thisSearchParams(call.This), func(_, value string) goja.Value {
			return m.runtime.ToValue(value)
		})
	})

	entries := m.runtime.ToValue(func(call goja.FunctionCall) goja.Value {
		return m.newIterator(m.thisSearchParams(call.This), func(name, value string) goja.Value {
			return m.runtime.NewArray(name, value)
		})
	})
	_ = proto.DefineDataProperty("entries", entries, goja.FLAG_TRUE, goja.FLAG_TRUE, goja.FLAG_FALSE)
	_ = proto.DefineDataPropertySymbol(goja.SymIterator, entries, goja.FLAG_TRUE, goja.FLAG_TRUE, goja.FLAG_FALSE)

	m.method(proto, "toString", func(call goja.FunctionCall) goja.Value {
		return m.runtime.ToValue(m.thisSearchParams(call.This).String())
	})

	m.accessor(proto, "size",
		func(this *goja.Object) goja.Value {
			return m.runtime.ToValue(m.thisSearchParams(this).Size())
		},
		nil,
	)
}

// jsNewSearchParams implements new URLSearchParams(init), where init may
// be a string, an iterable of pairs, a record, or another URLSearchParams.
func (m *Module) jsNewSearchParams(call goja.ConstructorCall) *goja.Object {
	var sp *whatwgurl.SearchParams
	switch init := call.Argument(0).(type) {
	case *goja.Object:
		sp = m.searchParamsFromObject(init)
	default:
		if init == nil || goja.IsUndefined(init) {
			sp = new(whatwgurl.SearchParams)
		} else {
			sp = whatwgurl.NewSearchParams(init.String())
		}
	}
	m.attachSearchParams(call.This, sp)
	return call.This
}

func (m *Module) searchParamsFromObject(init *goja.Object) *whatwgurl.SearchParams {
	if v := init.GetSymbol(m.paramsSlot); v != nil {
		if sp, ok := v.Export().(*whatwgurl.SearchParams); ok {
			return sp.Clone()
		}
	}

	if _, ok := goja.AssertFunction(init.GetSymbol(goja.SymIterator)); ok {
		var pairs [][2]string
		m.forOf(init, func(item goja.Value) {
			obj, ok := item.(*goja.Object)
			if !ok {
				panic(m.runtime.NewTypeError("Each pair must be an iterable"))
			}
			var pair []string
			m.forOf(obj, func(v goja.Value) {
				pair = append(pair, v.String())
			})
			if len(pair) != 2 {
				panic(m.runtime.NewTypeError("Each pair must have exactly two items"))
			}
			pairs = append(pairs, [2]string{pair[0], pair[1]})
		})
		return whatwgurl.NewSearchParamsFromPairs(pairs)
	}

	keys := init.Keys()
	pairs := make([][2]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, [2]string{key, init.Get(key).String()})
	}
	return whatwgurl.NewSearchParamsFromPairs(pairs)
}

// forOf iterates obj per the iteration protocol.
func (m *Module) forOf(obj *goja.Object, fn func(v goja.Value)) {
	iterFn, ok := goja.AssertFunction(obj.GetSymbol(goja.SymIterator))
	if !ok {
		panic(m.runtime.NewTypeError("object is not iterable"))
	}
	iterVal, err := iterFn(obj)
	if err != nil {
		panic(err)
	}
	iter := iterVal.ToObject(m.runtime)
	next, ok := goja.AssertFunction(iter.Get("next"))
	if !ok {
		panic(m.runtime.NewTypeError("iterator.next is not a function"))
	}
	// an abrupt exit from fn closes the iterator, errors from next do not
	var inBody bool
	defer func() {
		if !inBody {
			return
		}
		if r := recover(); r != nil {
			if ret, ok := goja.AssertFunction(iter.Get("return")); ok {
				_, _ = ret(iter)
			}
			panic(r)
		}
	}()
	for {
		result, err := next(iter)
		if err != nil {
			panic(err)
		}
		resultObj := result.ToObject(m.runtime)
		if resultObj.Get("done").ToBoolean() {
			return
		}
		inBody = true
		fn(resultObj.Get("value"))
		inBody = false
	}
}

func (m *Module) attachSearchParams(obj *goja.Object, sp *whatwgurl.SearchParams) {
	_ = obj.DefineDataPropertySymbol(m.paramsSlot, m.runtime.ToValue(sp), goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_FALSE)
}

func (m *Module) thisSearchParams(this goja.Value) *whatwgurl.SearchParams {
	if v := m.thisObject(this).GetSymbol(m.paramsSlot); v != nil {
		if sp, ok := v.Export().(*whatwgurl.SearchParams); ok {
			return sp
		}
	}
	panic(m.runtime.NewTypeError("Illegal invocation"))
}

// newIterator returns a live iterator, which reads the list by index on
// each call to next.
func (m *Module) newIterator(sp *whatwgurl.SearchParams, value func(name, value string) goja.Value) *goja.Object {
	iter := m.runtime.NewObject()
	iter.SetPrototype(m.iterProto)
	index := 0
	m.method(iter, "next", func(goja.FunctionCall) goja.Value {
		result := m.runtime.NewObject()
		if index >= sp.Size() {
			_ = result.Set("done", true)
			_ = result.Set("value", goja.Undefined())
			return result
		}
		_ = result.Set("done", false)
		_ = result.Set("value", value(sp.At(index)))
		index++
		return result
	})
	return iter
}
