package gojaurl_test

import (
	"testing"

	"github.com/dop251/goja"
	gojaurl "github.com/joeycumines/go-whatwgurl/gojaurl"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	rt *goja.Runtime
	m  *gojaurl.Module
	t  *testing.T
}

func newTestEnv(t *testing.T, opts ...gojaurl.Option) *testEnv {
	t.Helper()
	rt := goja.New()
	m, err := gojaurl.New(rt, opts...)
	require.NoError(t, err)
	m.SetupGlobals()
	return &testEnv{rt: rt, m: m, t: t}
}

func (e *testEnv) run(code string) goja.Value {
	e.t.Helper()
	v, err := e.rt.RunString(code)
	require.NoError(e.t, err)
	return v
}

func (e *testEnv) mustFail(code string) error {
	e.t.Helper()
	_, err := e.rt.RunString(code)
	require.Error(e.t, err)
	return err
}

func (e *testEnv) str(code string) string {
	e.t.Helper()
	return e.run(code).String()
}
