package extract_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/recipepipe/core/extract"
)

func collect(t *testing.T, html string) []string {
	t.Helper()
	seq, err := extract.LDJSON(html)
	require.NoError(t, err)
	return slices.Collect(seq)
}

func TestLocate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "empty body",
			html: "",
			want: nil,
		},
		{
			name: "no structured data",
			html: `<html><head><script>var x = 1;</script></head><body><p>application/ld+json</p></body></html>`,
			want: nil,
		},
		{
			name: "document order across head and body",
			html: `<html><head>
				<script type="application/ld+json">{"a":1}</script>
				<script type="text/javascript">{"skip":true}</script>
				</head><body>
				<script type="application/ld+json">{"b":2}</script>
				</body></html>`,
			want: []string{`{"a":1}`, `{"b":2}`},
		},
		{
			name: "media type is case-insensitive and may carry parameters",
			html: `<script type="Application/LD+JSON; charset=utf-8">{"c":3}</script>`,
			want: []string{`{"c":3}`},
		},
		{
			name: "empty script is still a candidate",
			html: `<script type="application/ld+json"></script>`,
			want: []string{""},
		},
		{
			name: "payload is not validated or unescaped",
			html: `<script type="application/ld+json">{"name":"Fish &amp; Chips"} not json</script>`,
			want: []string{`{"name":"Fish &amp; Chips"} not json`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, collect(t, tt.html))
		})
	}
}

func TestLocate_StopsEarly(t *testing.T) {
	t.Parallel()

	seq, err := extract.New().Locate(`<script type="application/ld+json">1</script><script type="application/ld+json">2</script>`)
	require.NoError(t, err)

	var seen []string
	for payload := range seq {
		seen = append(seen, payload)
		break
	}
	assert.Equal(t, []string{"1"}, seen)
}
