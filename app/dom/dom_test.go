package dom

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd" xmlns:bitlove="http://bitlove.org">
  <channel>
    <title>  Padded title  </title>
    <itunes:image href=" http://example.org/cover.jpg "/>
    <!-- comment -->
    <item>
      <enclosure url="http://example.org/ep.mp3" bitlove:guid="abc"/>
    </item>
  </channel>
</rss>`

func TestParse(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)

	assert.Equal(t, "rss", root.LocalName())
	assert.Equal(t, "", root.NamespaceURI())
	assert.Equal(t, "2.0", root.Attr("version"))

	channel, ok := root.Child("", "channel")
	require.True(t, ok)

	children := channel.Children()
	require.Len(t, children, 3)
	assert.Equal(t, "title", children[0].LocalName())
	assert.Equal(t, "Padded title", children[0].Text())

	assert.True(t, children[1].Is("http://www.itunes.com/dtds/podcast-1.0.dtd", "image"))
	assert.Equal(t, "http://example.org/cover.jpg", children[1].Attr("href"))

	enclosure, ok := children[2].Child("", "enclosure")
	require.True(t, ok)
	assert.Equal(t, "abc", enclosure.AttrNS("http://bitlove.org", "guid"))
	assert.Equal(t, "", enclosure.Attr("guid"))

	attrs := enclosure.Attrs()
	require.Len(t, attrs, 2)
	assert.Equal(t, Attr{LocalName: "url", Value: "http://example.org/ep.mp3"}, attrs[0])
	assert.Equal(t, Attr{NamespaceURI: "http://bitlove.org", LocalName: "guid", Value: "abc"}, attrs[1])
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse(strings.NewReader("this is not xml <"))
	assert.Error(t, err)
}

func TestZeroNode(t *testing.T) {
	var n Node
	assert.True(t, n.IsZero())
	assert.Equal(t, "", n.Text())
	assert.Nil(t, n.Children())
	_, ok := n.Child("", "title")
	assert.False(t, ok)
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{"yes", boolPtr(true)},
		{"TRUE", boolPtr(true)},
		{" no ", boolPtr(false)},
		{"false", boolPtr(false)},
		{"explicit", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBool(tt.input))
		})
	}
}

func TestParseExplicit(t *testing.T) {
	assert.Equal(t, boolPtr(true), ParseExplicit("explicit"))
	assert.Equal(t, boolPtr(false), ParseExplicit("Clean"))
	assert.Equal(t, boolPtr(true), ParseExplicit("yes"))
	assert.Nil(t, ParseExplicit("maybe"))
}

func TestParseNumbers(t *testing.T) {
	require.NotNil(t, ParseInt(" 42 "))
	assert.Equal(t, 42, *ParseInt(" 42 "))
	assert.Nil(t, ParseInt("4.2"))
	assert.Nil(t, ParseInt("abc"))

	require.NotNil(t, ParseInt64("78589133"))
	assert.Equal(t, int64(78589133), *ParseInt64("78589133"))
	assert.Nil(t, ParseInt64(""))
}

func TestParseDate(t *testing.T) {
	expected := time.Date(2018, time.March, 16, 22, 49, 8, 0, time.UTC)

	for _, input := range []string{
		"Fri, 16 Mar 2018 22:49:08 +0000",
		"2018-03-16T22:49:08Z",
		"Fri, 16 Mar 2018 22:49:08 GMT",
	} {
		t.Run(input, func(t *testing.T) {
			got := ParseDate(input)
			require.NotNil(t, got)
			assert.True(t, expected.Equal(*got), "got %v", got)
		})
	}

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("not a date"))
}

func TestParseSeconds(t *testing.T) {
	got := ParseSeconds("73.5")
	require.NotNil(t, got)
	assert.Equal(t, 73500*time.Millisecond, *got)

	got = ParseSeconds("60")
	require.NotNil(t, got)
	assert.Equal(t, time.Minute, *got)

	assert.Nil(t, ParseSeconds("1:30"))
	assert.Nil(t, ParseSeconds("NaN"))
}

func boolPtr(b bool) *bool {
	return &b
}
