package uploadsvc

import "bytes"

// window — накопительный буфер между чтениями чанков. Все срезы и усечения
// выражены именованными операциями вместо арифметики индексов; инвариант
// ограниченности (длина не растёт пропорционально телу) поддерживает Session.
type window struct {
	buf     []byte
	scanned int // длина префикса, уже проверенного на отсутствие искомого
}

func (w *window) Append(p []byte) {
	w.buf = append(w.buf, p...)
}

func (w *window) Len() int {
	return len(w.buf)
}

// Bytes отдаёт содержимое окна. Срез действителен до следующей мутации.
func (w *window) Bytes() []byte {
	return w.buf
}

// Find ищет первое вхождение needle. Байты, признанные «пустыми» прошлым
// неудачным поиском, повторно не сканируются: поиск возобновляется с хвоста,
// отступив на len(needle)-1 — ровно столько, сколько нужно, чтобы поймать
// вхождение, разорванное границей двух чанков.
func (w *window) Find(needle []byte) int {
	from := w.scanned - (len(needle) - 1)
	if from < 0 {
		from = 0
	}

	if idx := bytes.Index(w.buf[from:], needle); idx >= 0 {
		return from + idx
	}

	w.scanned = len(w.buf)
	return -1
}

// DropThrough отбрасывает первые n байт окна.
func (w *window) DropThrough(n int) {
	w.buf = w.buf[:copy(w.buf, w.buf[n:])]
	w.scanned = 0
}

// RetainTail оставляет только последние n байт, отбрасывая остальное.
func (w *window) RetainTail(n int) {
	if len(w.buf) > n {
		w.DropThrough(len(w.buf) - n)
	}
}

// Flushable возвращает префикс, который можно безопасно отдать наружу:
// всё, кроме последних keep байт, где ещё может прятаться начало
// разделителя. Срез действителен до следующей мутации окна.
func (w *window) Flushable(keep int) []byte {
	if len(w.buf) <= keep {
		return nil
	}

	return w.buf[:len(w.buf)-keep]
}

func (w *window) Reset() {
	w.buf = w.buf[:0]
	w.scanned = 0
}
