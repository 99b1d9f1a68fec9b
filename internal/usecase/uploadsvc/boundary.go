package uploadsvc

import "bytes"

// delims хранит производные от boundary значения, неизменные на всё время
// жизни сессии.
type delims struct {
	token    []byte // "--" + boundary: открывает каждую часть
	terminal []byte // token + "--": завершает всё тело
	inner    []byte // "\r\n" + token: разделитель внутри содержимого части
}

func newDelims(boundary string) delims {
	token := append([]byte("--"), boundary...)

	return delims{
		token:    token,
		terminal: append(append([]byte(nil), token...), '-', '-'),
		inner:    append([]byte("\r\n"), token...),
	}
}

// canClassify сообщает, хватает ли в окне байтов после token по смещению off,
// чтобы отличить обычную границу от терминальной: суффикс "--" может прийти
// только со следующим чанком.
func (d delims) canClassify(w *window, off int) bool {
	return w.Len()-off >= len(d.token)+2
}

// isTerminal проверяет, начинается ли с off терминальный вариант границы.
func (d delims) isTerminal(w *window, off int) bool {
	return bytes.HasPrefix(w.Bytes()[off:], d.terminal)
}
