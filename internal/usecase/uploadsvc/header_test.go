package uploadsvc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePartHeader_Filename(t *testing.T) {
	block := []byte("\r\nContent-Disposition: form-data; name=\"file\"; filename=\"books/war.epub\"\r\nContent-Type: application/epub+zip")

	h := parsePartHeader(block)
	require.Equal(t, "books/war.epub", h.Filename)
	require.Len(t, h.Lines, 2)
}

func TestParsePartHeader_NoFilename(t *testing.T) {
	block := []byte("Content-Disposition: form-data; name=\"comment\"")

	h := parsePartHeader(block)
	require.Empty(t, h.Filename)
}

func TestParsePartHeader_CaseInsensitiveDisposition(t *testing.T) {
	block := []byte("content-disposition: form-data; name=\"f\"; filename=\"a.txt\"")

	h := parsePartHeader(block)
	require.Equal(t, "a.txt", h.Filename)
}

func TestParsePartHeader_PercentEncoded(t *testing.T) {
	block := []byte("Content-Disposition: form-data; name=\"f\"; filename=\"%D0%BA%D0%BD%D0%B8%D0%B3%D0%B0.txt\"")

	h := parsePartHeader(block)
	require.Equal(t, "книга.txt", h.Filename)
}

func TestPercentDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain.txt", "plain.txt"},
		{"with%20space.txt", "with space.txt"},
		{"a+b.txt", "a+b.txt"}, // '+' не значит пробел
		{"100%", "100%"},       // оборванный escape остаётся как есть
		{"%zz.txt", "%zz.txt"}, // не-hex после '%' остаётся как есть
		{"%2F%2e%2e", "/.."},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, percentDecode(tc.in), "input %q", tc.in)
	}
}
