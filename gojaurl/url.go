package gojaurl

import (
	"errors"

	"github.com/dop251/goja"
	whatwgurl "github.com/joeycumines/go-whatwgurl"
)

// bindURL creates the URL class.
func (m *Module) bindURL() {
	m.urlCtor, m.urlProto = m.newClass("URL", m.jsNewURL)

	m.method(m.urlCtor, "canParse", func(call goja.FunctionCall) goja.Value {
		_, err := m.parse(call.Argument(0), call.Argument(1))
		return m.runtime.ToValue(err == nil)
	})

	m.method(m.urlCtor, "parse", func(call goja.FunctionCall) goja.Value {
		u, err := m.parse(call.Argument(0), call.Argument(1))
		if err != nil {
			return goja.Null()
		}
		obj := m.runtime.NewObject()
		obj.SetPrototype(m.urlProto)
		m.attachURL(obj, u)
		return obj
	})

	m.accessor(m.urlProto, "href",
		func(this *goja.Object) goja.Value { return m.runtime.ToValue(m.thisURL(this).Href()) },
		func(this *goja.Object, value goja.Value) {
			if err := m.thisURL(this).SetHref(value.String()); err != nil {
				panic(m.typeError(err))
			}
		},
	)
	m.accessor(m.urlProto, "origin",
		func(this *goja.Object) goja.Value { return m.runtime.ToValue(m.thisURL(this).Origin()) },
		nil,
	)

	for _, field := range [...]struct {
		name string
		get  func(*whatwgurl.URL) string
		set  func(*whatwgurl.URL, string)
	}{
		{"protocol", (*whatwgurl.URL).Protocol, (*whatwgurl.URL).SetProtocol},
		{"username", (*whatwgurl.URL).Username, (*whatwgurl.URL).SetUsername},
		{"password", (*whatwgurl.URL).Password, (*whatwgurl.URL).SetPassword},
		{"host", (*whatwgurl.URL).Host, (*whatwgurl.URL).SetHost},
		{"hostname", (*whatwgurl.URL).Hostname, (*whatwgurl.URL).SetHostname},
		{"port", (*whatwgurl.URL).Port, (*whatwgurl.URL).SetPort},
		{"pathname", (*whatwgurl.URL).Pathname, (*whatwgurl.URL).SetPathname},
		{"search", (*whatwgurl.URL).Search, (*whatwgurl.URL).SetSearch},
		{"hash", (*whatwgurl.URL).Hash, (*whatwgurl.URL).SetHash},
	} {
		m.accessor(m.urlProto, field.name,
			func(this *goja.Object) goja.Value { return m.runtime.ToValue(field.get(m.thisURL(this))) },
			func(this *goja.Object, value goja.Value) { field.set(m.thisURL(this), value.String()) },
		)
	}

	m.accessor(m.urlProto, "searchParams",
		func(this *goja.Object) goja.Value {
			m.thisURL(this)
			return this.GetSymbol(m.searchParamsSlot)
		},
		nil,
	)

	href := func(call goja.FunctionCall) goja.Value {
		return m.runtime.ToValue(m.thisURL(m.thisObject(call.This)).Href())
	}
	m.method(m.urlProto, "toString", href)
	m.method(m.urlProto, "toJSON", href)
}

// jsNewURL implements new URL(url, base).
func (m *Module) jsNewURL(call goja.ConstructorCall) *goja.Object {
	u, err := m.parse(call.Argument(0), call.Argument(1))
	if err != nil {
		panic(m.typeError(err))
	}
	m.attachURL(call.This, u)
	return call.This
}

// parse parses input, resolving it against base, unless base is undefined.
func (m *Module) parse(input, base goja.Value) (*whatwgurl.URL, error) {
	if base == nil || goja.IsUndefined(base) {
		return m.parser.Parse(input.String())
	}
	return m.parser.ParseWithBase(input.String(), base.String())
}

// attachURL binds u to obj, along with a URLSearchParams object, sharing
// the URL's bound [whatwgurl.SearchParams].
func (m *Module) attachURL(obj *goja.Object, u *whatwgurl.URL) {
	_ = obj.DefineDataPropertySymbol(m.urlSlot, m.runtime.ToValue(u), goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_FALSE)
	params := m.runtime.NewObject()
	params.SetPrototype(m.paramsProto)
	m.attachSearchParams(params, u.SearchParams())
	_ = obj.DefineDataPropertySymbol(m.searchParamsSlot, params, goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_FALSE)
}

func (m *Module) thisURL(this *goja.Object) *whatwgurl.URL {
	if v := this.GetSymbol(m.urlSlot); v != nil {
		if u, ok := v.Export().(*whatwgurl.URL); ok {
			return u
		}
	}
	panic(m.runtime.NewTypeError("Illegal invocation"))
}

// typeError converts a parse failure to a TypeError, with the message of
// the failure kind, e.g. "Invalid host".
func (m *Module) typeError(err error) *goja.Object {
	var parseErr *whatwgurl.ParseError
	if errors.As(err, &parseErr) {
		return m.runtime.NewTypeError("%s", parseErr.Kind.Error())
	}
	return m.runtime.NewTypeError("%s", err.Error())
}
