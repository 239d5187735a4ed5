package whatwgurl_test

import (
	"encoding/json"
	"maps"
	"slices"
	"testing"

	whatwgurl "github.com/joeycumines/go-whatwgurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	assert.Equal(t, [][2]string{
		{`a`, `1`},
		{`b`, ``},
		{``, `c`},
		{`d`, `=e`},
	}, whatwgurl.ParseQuery(`a=1&&b&=c&d==e`))
	assert.Equal(t, [][2]string{{`a b`, `c+d`}, {`é`, "�"}}, whatwgurl.ParseQuery(`a+b=c%2Bd&%C3%A9=%FF`))
	assert.Equal(t, [][2]string{{`?a`, `1`}}, whatwgurl.ParseQuery(`?a=1`))
	assert.Nil(t, whatwgurl.ParseQuery(``))
	assert.Nil(t, whatwgurl.ParseQuery(`&&`))
}

func TestEncodeQuery(t *testing.T) {
	assert.Equal(t, `a+b=c%2Bd&%C3%A9=&=%26%3D`, whatwgurl.EncodeQuery([][2]string{
		{`a b`, `c+d`},
		{`é`, ``},
		{``, `&=`},
	}))
	assert.Equal(t, ``, whatwgurl.EncodeQuery(nil))
}

func TestNewSearchParams(t *testing.T) {
	sp := whatwgurl.NewSearchParams(`??a=1`)
	assert.Equal(t, [][2]string{{`?a`, `1`}}, sp.Pairs())

	sp = whatwgurl.NewSearchParamsFromMap(map[string]string{`b`: `2`, `a`: `1`, `c`: `3`})
	assert.Equal(t, `a=1&b=2&c=3`, sp.String())

	pairs := [][2]string{{`x`, `1`}}
	sp = whatwgurl.NewSearchParamsFromPairs(pairs)
	pairs[0][1] = `changed`
	v, ok := sp.Get(`x`)
	assert.True(t, ok)
	assert.Equal(t, `1`, v)

	sp = whatwgurl.NewSearchParamsFromSeq(maps.All(map[string]string{`k`: `v`}))
	assert.Equal(t, `k=v`, sp.String())

	var zero whatwgurl.SearchParams
	zero.Append(`a`, `b`)
	assert.Equal(t, `a=b`, zero.String())
}

func TestSearchParams_methods(t *testing.T) {
	sp := whatwgurl.NewSearchParams(`a=1&b=2&a=3&c=4&a=5`)
	assert.Equal(t, 5, sp.Size())

	v, ok := sp.Get(`a`)
	assert.True(t, ok)
	assert.Equal(t, `1`, v)
	_, ok = sp.Get(`missing`)
	assert.False(t, ok)
	assert.Equal(t, []string{`1`, `3`, `5`}, sp.GetAll(`a`))
	assert.Equal(t, []string{}, sp.GetAll(`missing`))
	assert.True(t, sp.Has(`b`))
	assert.True(t, sp.HasValue(`a`, `3`))
	assert.False(t, sp.HasValue(`a`, `2`))

	sp.Set(`a`, `x`)
	assert.Equal(t, `a=x&b=2&c=4`, sp.String())

	sp.Set(`d`, `y`)
	assert.Equal(t, `a=x&b=2&c=4&d=y`, sp.String())

	sp.Append(`b`, `3`)
	sp.DeleteValue(`b`, `2`)
	assert.Equal(t, `a=x&c=4&d=y&b=3`, sp.String())

	sp.Delete(`a`)
	assert.Equal(t, `c=4&d=y&b=3`, sp.String())

	name, value := sp.At(1)
	assert.Equal(t, `d`, name)
	assert.Equal(t, `y`, value)

	clone := sp.Clone()
	clone.Delete(`c`)
	assert.Equal(t, 3, sp.Size())
	assert.Equal(t, 2, clone.Size())
}

func TestSearchParams_Sort(t *testing.T) {
	// U+FFFD sorts after U+1F600, per UTF-16 code units
	sp := whatwgurl.NewSearchParamsFromPairs([][2]string{
		{"�", `1`},
		{"\U0001F600", `2`},
		{`b`, `3`},
		{`a`, `4`},
		{`b`, `5`},
		{`a`, `6`},
		{``, `7`},
	})
	sp.Sort()
	assert.Equal(t, [][2]string{
		{``, `7`},
		{`a`, `4`},
		{`a`, `6`},
		{`b`, `3`},
		{`b`, `5`},
		{"\U0001F600", `2`},
		{"�", `1`},
	}, sp.Pairs())
}

func TestSearchParams_iteration(t *testing.T) {
	sp := whatwgurl.NewSearchParams(`a=1&b=2`)
	assert.Equal(t, []string{`a`, `b`}, slices.Collect(sp.Keys()))
	assert.Equal(t, []string{`1`, `2`}, slices.Collect(sp.Values()))

	var names []string
	for name, value := range sp.Entries() {
		names = append(names, name+`=`+value)
		if name == `a` {
			sp.Append(`c`, `3`)
		}
	}
	assert.Equal(t, []string{`a=1`, `b=2`, `c=3`}, names)

	names = nil
	sp.ForEach(func(name, _ string) {
		names = append(names, name)
		if name == `a` {
			sp.Delete(`a`)
		}
	})
	// the deletion shifts b into the visited index
	assert.Equal(t, []string{`a`, `c`}, names)

	for range sp.Keys() {
		break
	}
}

func TestSearchParams_boundToURL(t *testing.T) {
	u, err := whatwgurl.Parse(`https://example.com/?a=1&b=%20`)
	require.NoError(t, err)
	sp := u.SearchParams()
	assert.Same(t, sp, u.SearchParams())
	v, _ := sp.Get(`b`)
	assert.Equal(t, ` `, v)

	sp.Append(`c`, `d e`)
	assert.Equal(t, `https://example.com/?a=1&b=+&c=d+e`, u.Href())

	u.SetSearch(`?x=y`)
	assert.Equal(t, [][2]string{{`x`, `y`}}, sp.Pairs())

	sp.Delete(`x`)
	assert.Equal(t, `https://example.com/`, u.Href())
	_, ok := u.Query()
	assert.False(t, ok)

	require.NoError(t, u.SetHref(`http://other/?k=v`))
	assert.Same(t, sp, u.SearchParams())
	assert.Equal(t, [][2]string{{`k`, `v`}}, sp.Pairs())

	sp.Sort()
	assert.Equal(t, `http://other/?k=v`, u.Href())
}

func TestSearchParams_opaquePathTrailingSpaces(t *testing.T) {
	u, err := whatwgurl.Parse(`data:space   ?a=b`)
	require.NoError(t, err)
	assert.Equal(t, `space   `, u.Pathname())
	u.SearchParams().Delete(`a`)
	assert.Equal(t, `data:space`, u.Href())

	u, err = whatwgurl.Parse(`data:space   ?a=b#f`)
	require.NoError(t, err)
	u.SearchParams().Delete(`a`)
	assert.Equal(t, `data:space   #f`, u.Href())
}

func TestSearchParams_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(whatwgurl.NewSearchParams(`a=1&b="x"&a`))
	require.NoError(t, err)
	assert.JSONEq(t, `[["a","1"],["b","\"x\""],["a",""]]`, string(b))

	b, err = json.Marshal(new(whatwgurl.SearchParams))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))
}
