package uploadsvc

import (
	"strconv"
	"strings"
)

// partHeader — результат разбора заголовочного блока одной части.
type partHeader struct {
	Filename string   // относительное имя файла после percent-декодирования
	Lines    []string // остальные заголовочные строки; пока не используются
}

// parsePartHeader извлекает filename="..." из строки Content-Disposition.
// Блок без имени файла означает не-файловое поле формы — такая часть
// пропускается вызывающей стороной.
func parsePartHeader(block []byte) partHeader {
	var h partHeader

	for _, line := range strings.Split(string(block), "\r\n") {
		if line == "" {
			continue
		}
		h.Lines = append(h.Lines, line)

		if !strings.HasPrefix(strings.ToLower(line), "content-disposition:") {
			continue
		}

		const marker = `filename="`
		i := strings.Index(line, marker)
		if i < 0 {
			continue
		}
		rest := line[i+len(marker):]
		j := strings.IndexByte(rest, '"')
		if j < 0 {
			continue
		}

		h.Filename = percentDecode(rest[:j])
	}

	return h
}

// percentDecode разворачивает %XX в байт, восстанавливая исходное имя файла.
// '+' передаётся буквально: имя кодируется не по правилам query-string.
func percentDecode(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}

	return b.String()
}
