package whatwgurl_test

import (
	"testing"

	whatwgurl "github.com/joeycumines/go-whatwgurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_setters(t *testing.T) {
	for _, tc := range [...]struct {
		name string
		href string
		set  func(u *whatwgurl.URL)
		want string
	}{
		{`protocol`, `http://x/`, func(u *whatwgurl.URL) { u.SetProtocol(`https`) }, `https://x/`},
		{`protocol with colon and trailing`, `http://x/`, func(u *whatwgurl.URL) { u.SetProtocol(`wss:ignored`) }, `wss://x/`},
		{`protocol uppercase`, `sc://x/`, func(u *whatwgurl.URL) { u.SetProtocol(`FOO+BAR`) }, `foo+bar://x/`},
		{`protocol special to non-special`, `http://x/`, func(u *whatwgurl.URL) { u.SetProtocol(`sc`) }, `http://x/`},
		{`protocol non-special to special`, `sc://x/`, func(u *whatwgurl.URL) { u.SetProtocol(`http`) }, `sc://x/`},
		{`protocol invalid`, `http://x/`, func(u *whatwgurl.URL) { u.SetProtocol(`ht tp`) }, `http://x/`},
		{`protocol empty`, `http://x/`, func(u *whatwgurl.URL) { u.SetProtocol(``) }, `http://x/`},
		{`protocol drops default port`, `http://x:443/`, func(u *whatwgurl.URL) { u.SetProtocol(`https`) }, `https://x/`},
		{`protocol to file with credentials`, `http://u@x/`, func(u *whatwgurl.URL) { u.SetProtocol(`file`) }, `http://u@x/`},
		{`protocol to file with port`, `http://x:81/`, func(u *whatwgurl.URL) { u.SetProtocol(`file`) }, `http://x:81/`},
		{`protocol from file with empty host`, `file:///a`, func(u *whatwgurl.URL) { u.SetProtocol(`http`) }, `file:///a`},
		{`username`, `http://x/`, func(u *whatwgurl.URL) { u.SetUsername(`a b@:`) }, `http://a%20b%40%3A@x/`},
		{`username empty`, `http://u:p@x/`, func(u *whatwgurl.URL) { u.SetUsername(``) }, `http://:p@x/`},
		{`username no host`, `mailto:x`, func(u *whatwgurl.URL) { u.SetUsername(`u`) }, `mailto:x`},
		{`username file`, `file://host/`, func(u *whatwgurl.URL) { u.SetUsername(`u`) }, `file://host/`},
		{`password`, `http://u@x/`, func(u *whatwgurl.URL) { u.SetPassword(`p/w`) }, `http://u:p%2Fw@x/`},
		{`password empty`, `http://u:p@x/`, func(u *whatwgurl.URL) { u.SetPassword(``) }, `http://u@x/`},
		{`password empty host`, `sc:///p`, func(u *whatwgurl.URL) { u.SetPassword(`p`) }, `sc:///p`},
		{`host`, `http://x/p`, func(u *whatwgurl.URL) { u.SetHost(`EXAMPLE.com:8080`) }, `http://example.com:8080/p`},
		{`host default port`, `https://x:1/`, func(u *whatwgurl.URL) { u.SetHost(`y:443`) }, `https://y/`},
		{`host without port keeps port`, `http://x:81/`, func(u *whatwgurl.URL) { u.SetHost(`y`) }, `http://y:81/`},
		{`host invalid port partial`, `http://x:81/`, func(u *whatwgurl.URL) { u.SetHost(`example.com:99999`) }, `http://example.com:81/`},
		{`host trailing path ignored`, `http://x/p`, func(u *whatwgurl.URL) { u.SetHost(`y/z?q#f`) }, `http://y/p`},
		{`host empty special`, `http://x/`, func(u *whatwgurl.URL) { u.SetHost(``) }, `http://x/`},
		{`host empty non-special`, `sc://x/p`, func(u *whatwgurl.URL) { u.SetHost(``) }, `sc:///p`},
		{`host empty with port`, `sc://x:8/p`, func(u *whatwgurl.URL) { u.SetHost(``) }, `sc://x:8/p`},
		{`host invalid`, `http://x/`, func(u *whatwgurl.URL) { u.SetHost(`a b`) }, `http://x/`},
		{`host ipv6`, `http://x/`, func(u *whatwgurl.URL) { u.SetHost(`[::1]:81`) }, `http://[::1]:81/`},
		{`host opaque path`, `mailto:x`, func(u *whatwgurl.URL) { u.SetHost(`y`) }, `mailto:x`},
		{`host file localhost`, `file://server/a`, func(u *whatwgurl.URL) { u.SetHost(`localhost`) }, `file:///a`},
		{`host file port rejected`, `file://server/a`, func(u *whatwgurl.URL) { u.SetHost(`other:80`) }, `file://server/a`},
		{`hostname`, `http://x:81/`, func(u *whatwgurl.URL) { u.SetHostname(`y`) }, `http://y:81/`},
		{`hostname with port rejected`, `http://x/`, func(u *whatwgurl.URL) { u.SetHostname(`y:81`) }, `http://x/`},
		{`hostname ipv6`, `http://x/`, func(u *whatwgurl.URL) { u.SetHostname(`[::1]`) }, `http://[::1]/`},
		{`hostname file`, `file:///a`, func(u *whatwgurl.URL) { u.SetHostname(`server`) }, `file://server/a`},
		{`port`, `http://x/`, func(u *whatwgurl.URL) { u.SetPort(`8080`) }, `http://x:8080/`},
		{`port leading digits`, `http://x/`, func(u *whatwgurl.URL) { u.SetPort(`8080abc`) }, `http://x:8080/`},
		{`port default`, `http://x:81/`, func(u *whatwgurl.URL) { u.SetPort(`80`) }, `http://x/`},
		{`port empty`, `http://x:81/`, func(u *whatwgurl.URL) { u.SetPort(``) }, `http://x/`},
		{`port invalid`, `http://x:81/`, func(u *whatwgurl.URL) { u.SetPort(`abc`) }, `http://x:81/`},
		{`port out of range`, `http://x:81/`, func(u *whatwgurl.URL) { u.SetPort(`65536`) }, `http://x:81/`},
		{`port file`, `file://host/`, func(u *whatwgurl.URL) { u.SetPort(`81`) }, `file://host/`},
		{`pathname`, `http://x/a?q#f`, func(u *whatwgurl.URL) { u.SetPathname(`b c/../d`) }, `http://x/d?q#f`},
		{`pathname query chars encoded`, `http://x/`, func(u *whatwgurl.URL) { u.SetPathname(`/a?b#c`) }, `http://x/a%3Fb%23c`},
		{`pathname non-special`, `sc://x/a`, func(u *whatwgurl.URL) { u.SetPathname(`b`) }, `sc://x/b`},
		{`pathname non-special no host`, `sc:/a`, func(u *whatwgurl.URL) { u.SetPathname(``) }, `sc:/`},
		{`pathname opaque`, `mailto:x`, func(u *whatwgurl.URL) { u.SetPathname(`/y`) }, `mailto:x`},
		{`search`, `http://x/?a#f`, func(u *whatwgurl.URL) { u.SetSearch(`b c`) }, `http://x/?b%20c#f`},
		{`search prefixed`, `http://x/`, func(u *whatwgurl.URL) { u.SetSearch(`??a`) }, `http://x/??a`},
		{`search question mark only`, `http://x/?a`, func(u *whatwgurl.URL) { u.SetSearch(`?`) }, `http://x/?`},
		{`search empty`, `http://x/?a#f`, func(u *whatwgurl.URL) { u.SetSearch(``) }, `http://x/#f`},
		{`search empty opaque`, `data:x  ?a`, func(u *whatwgurl.URL) { u.SetSearch(``) }, `data:x`},
		{`hash`, `http://x/#a`, func(u *whatwgurl.URL) { u.SetHash(`b c`) }, `http://x/#b%20c`},
		{`hash prefixed`, `http://x/`, func(u *whatwgurl.URL) { u.SetHash(`#f`) }, `http://x/#f`},
		{`hash empty`, `http://x/#a`, func(u *whatwgurl.URL) { u.SetHash(``) }, `http://x/`},
		{`hash empty opaque`, `data:x  #a`, func(u *whatwgurl.URL) { u.SetHash(``) }, `data:x`},
		{`hash opaque`, `mailto:x`, func(u *whatwgurl.URL) { u.SetHash(`y`) }, `mailto:x#y`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			u, err := whatwgurl.Parse(tc.href)
			require.NoError(t, err)
			tc.set(u)
			assert.Equal(t, tc.want, u.Href())
		})
	}
}

func TestURL_SetHref(t *testing.T) {
	u, err := whatwgurl.Parse(`http://x/?a=1`)
	require.NoError(t, err)

	err = u.SetHref(`not a url`)
	require.ErrorIs(t, err, whatwgurl.ErrInvalidScheme)
	assert.Equal(t, `http://x/?a=1`, u.Href())

	require.NoError(t, u.SetHref(`https://y/z#f`))
	assert.Equal(t, `https://y/z#f`, u.Href())
	assert.Equal(t, 0, u.SearchParams().Size())
}

func TestURL_settersSyncSearchParams(t *testing.T) {
	u, err := whatwgurl.Parse(`http://x/?a=1`)
	require.NoError(t, err)
	sp := u.SearchParams()

	u.SetSearch(`b=2&c=3`)
	assert.Equal(t, [][2]string{{`b`, `2`}, {`c`, `3`}}, sp.Pairs())

	u.SetSearch(``)
	assert.Equal(t, 0, sp.Size())

	u.SetPathname(`/p`)
	u.SetSearch(`?d=4`)
	v, ok := sp.Get(`d`)
	assert.True(t, ok)
	assert.Equal(t, `4`, v)
}
