package whatwgurl

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// SearchParams is an ordered list of name-value pairs, implementing the
// URLSearchParams API. It may be bound to a [URL], see [URL.SearchParams],
// in which case every mutation is written back to the URL's query.
//
// The zero value is an empty, unbound list, ready to use.
type SearchParams struct {
	url  *URL
	list [][2]string
}

// NewSearchParams parses init as an application/x-www-form-urlencoded
// string, after removing a single leading "?".
func NewSearchParams(init string) *SearchParams {
	return &SearchParams{list: ParseQuery(strings.TrimPrefix(init, `?`))}
}

// NewSearchParamsFromPairs initializes from a copy of pairs.
func NewSearchParamsFromPairs(pairs [][2]string) *SearchParams {
	return &SearchParams{list: slices.Clone(pairs)}
}

// NewSearchParamsFromMap initializes from a record of names to values,
// which are added in sorted order, by name.
func NewSearchParamsFromMap(record map[string]string) *SearchParams {
	x := &SearchParams{list: make([][2]string, 0, len(record))}
	for _, name := range slices.Sorted(maps.Keys(record)) {
		x.list = append(x.list, [2]string{name, record[name]})
	}
	return x
}

// NewSearchParamsFromSeq initializes from a sequence of name-value pairs.
func NewSearchParamsFromSeq(seq iter.Seq2[string, string]) *SearchParams {
	x := new(SearchParams)
	for name, value := range seq {
		x.list = append(x.list, [2]string{name, value})
	}
	return x
}

// Clone returns an unbound copy.
func (x *SearchParams) Clone() *SearchParams {
	return &SearchParams{list: slices.Clone(x.list)}
}

// Append adds a pair, to the end of the list.
func (x *SearchParams) Append(name, value string) {
	x.list = append(x.list, [2]string{name, value})
	x.update()
}

// Delete removes all pairs with the given name.
func (x *SearchParams) Delete(name string) {
	x.list = slices.DeleteFunc(x.list, func(pair [2]string) bool {
		return pair[0] == name
	})
	x.update()
}

// DeleteValue removes all pairs with the given name and value.
func (x *SearchParams) DeleteValue(name, value string) {
	x.list = slices.DeleteFunc(x.list, func(pair [2]string) bool {
		return pair[0] == name && pair[1] == value
	})
	x.update()
}

// Get returns the value of the first pair with the given name.
func (x *SearchParams) Get(name string) (string, bool) {
	for _, pair := range x.list {
		if pair[0] == name {
			return pair[1], true
		}
	}
	return ``, false
}

// GetAll returns the values of all pairs with the given name, in order.
func (x *SearchParams) GetAll(name string) []string {
	values := []string{}
	for _, pair := range x.list {
		if pair[0] == name {
			values = append(values, pair[1])
		}
	}
	return values
}

// Has reports whether any pair has the given name.
func (x *SearchParams) Has(name string) bool {
	_, ok := x.Get(name)
	return ok
}

// HasValue reports whether any pair has the given name and value.
func (x *SearchParams) HasValue(name, value string) bool {
	return slices.Contains(x.list, [2]string{name, value})
}

// Set replaces the value of the first pair with the given name, removing
// any others, or appends a new pair, if there were none.
func (x *SearchParams) Set(name, value string) {
	match := func(pair [2]string) bool { return pair[0] == name }
	if i := slices.IndexFunc(x.list, match); i >= 0 {
		x.list[i][1] = value
		tail := slices.DeleteFunc(x.list[i+1:], match)
		x.list = x.list[:i+1+len(tail)]
	} else {
		x.list = append(x.list, [2]string{name, value})
	}
	x.update()
}

// Sort stably sorts the pairs by name, comparing UTF-16 code units.
func (x *SearchParams) Sort() {
	slices.SortStableFunc(x.list, func(a, b [2]string) int {
		return compareUTF16(a[0], b[0])
	})
	x.update()
}

// ForEach calls fn for each pair, in order. Modifications made during
// iteration are observed, as iteration is by index.
func (x *SearchParams) ForEach(fn func(name, value string)) {
	for i := 0; i < len(x.list); i++ {
		fn(x.list[i][0], x.list[i][1])
	}
}

// Keys iterates over the names, see also [SearchParams.Entries].
func (x *SearchParams) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(x.list); i++ {
			if !yield(x.list[i][0]) {
				return
			}
		}
	}
}

// Values iterates over the values, see also [SearchParams.Entries].
func (x *SearchParams) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(x.list); i++ {
			if !yield(x.list[i][1]) {
				return
			}
		}
	}
}

// Entries iterates over the pairs. Like the other iterators, it is live,
// reading the list by index on each step.
func (x *SearchParams) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i := 0; i < len(x.list); i++ {
			if !yield(x.list[i][0], x.list[i][1]) {
				return
			}
		}
	}
}

// At returns the pair at index i, which must be in the range [0, Size()).
func (x *SearchParams) At(i int) (name, value string) {
	return x.list[i][0], x.list[i][1]
}

// Pairs returns a copy of the list.
func (x *SearchParams) Pairs() [][2]string { return slices.Clone(x.list) }

// Size returns the number of pairs.
func (x *SearchParams) Size() int { return len(x.list) }

// String serializes the list as application/x-www-form-urlencoded, without
// any leading "?".
func (x *SearchParams) String() string { return EncodeQuery(x.list) }

// reset replaces the list with the parsed query, without updating the URL.
func (x *SearchParams) reset(query string, hasQuery bool) {
	if !hasQuery {
		x.list = nil
		return
	}
	x.list = ParseQuery(query)
}

// update writes the serialized list back to the bound URL, if any.
func (x *SearchParams) update() {
	if x.url == nil {
		return
	}
	query := x.String()
	if query == `` {
		x.url.query, x.url.hasQuery = ``, false
		x.url.stripTrailingSpacesFromOpaquePath()
		return
	}
	x.url.query, x.url.hasQuery = query, true
}

// compareUTF16 orders strings by their UTF-16 code units, which differs
// from byte order for code points above U+FFFF.
func compareUTF16(a, b string) int {
	for a != `` && b != `` {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			a1, a2 := utf16Units(ra)
			b1, b2 := utf16Units(rb)
			if a1 != b1 {
				return cmp.Compare(a1, b1)
			}
			return cmp.Compare(a2, b2)
		}
		a, b = a[na:], b[nb:]
	}
	return cmp.Compare(len(a), len(b))
}

func utf16Units(r rune) (rune, rune) {
	if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
		return r1, r2
	}
	return r, 0
}
