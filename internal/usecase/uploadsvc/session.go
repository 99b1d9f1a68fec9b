package uploadsvc

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/inkreader/cardfs/internal/fsops"
	"github.com/inkreader/cardfs/internal/models"
)

// parserState — фаза разбора multipart-тела. Активна ровно одна.
type parserState int

const (
	stateSeekingBoundary parserState = iota
	stateParsingHeaders
	stateStreamingContent
	stateFinished
)

var headerTerminator = []byte("\r\n\r\n")

// activePart — открытая в данный момент часть.
type activePart struct {
	name  string
	out   sink
	store bool // false — часть пропускается и в результат не попадает
}

// Session восстанавливает файлы из multipart-тела, скармливаемого чанками.
// Окно, удерживаемое между вызовами Feed, ограничено длиной разделителя:
// содержимое любого размера протекает на диск в O(1) дополнительной памяти.
type Session struct {
	id        string
	targetDir string
	d         delims
	state     parserState
	win       window
	part      *activePart
	files     []string
}

// NewSession создаёт сессию записи в targetDir (абсолютный каталог на карте)
// по boundary-значению из Content-Type запроса.
func NewSession(targetDir, boundary string) (*Session, error) {
	if boundary == "" {
		return nil, fmt.Errorf("%w: empty multipart boundary", models.ErrMalformedRequest)
	}

	return &Session{
		id:        uuid.NewString(),
		targetDir: targetDir,
		d:         newDelims(boundary),
	}, nil
}

// ID возвращает идентификатор сессии для корреляции логов.
func (s *Session) ID() string {
	return s.id
}

// Done сообщает, что терминальная граница уже встречена и дальнейшие байты
// тела не обрабатываются.
func (s *Session) Done() bool {
	return s.state == stateFinished
}

// Feed скармливает очередной чанк тела в том порядке, в котором он пришёл из
// сети. Всё, что доказуемо не входит в разделитель, уходит в sink до
// возврата; в окне остаётся лишь хвост, где разделитель мог быть разорван.
func (s *Session) Feed(chunk []byte) error {
	if s.state == stateFinished {
		return nil
	}
	s.win.Append(chunk)

	for {
		switch s.state {
		case stateSeekingBoundary:
			off := s.win.Find(s.d.token)
			if off < 0 {
				// Преамбула до первой границы не накапливается: границу
				// нельзя распознать меньше чем по её полной длине.
				if s.win.Len() > len(s.d.terminal) {
					s.win.RetainTail(len(s.d.token) - 1)
				}
				return nil
			}
			s.win.DropThrough(off)
			if !s.d.canClassify(&s.win, 0) {
				return nil // суффикс границы придёт со следующим чанком
			}
			if s.d.isTerminal(&s.win, 0) {
				s.state = stateFinished
				s.win.Reset()
				return nil
			}
			s.win.DropThrough(len(s.d.token))
			s.state = stateParsingHeaders

		case stateParsingHeaders:
			end := s.win.Find(headerTerminator)
			if end < 0 {
				return nil // заголовочный блок мал по построению протокола
			}
			s.openPart(s.win.Bytes()[:end])
			s.win.DropThrough(end + len(headerTerminator))
			s.state = stateStreamingContent

		case stateStreamingContent:
			off := s.win.Find(s.d.inner)
			if off < 0 {
				p := s.win.Flushable(len(s.d.inner) - 1)
				s.flush(p)
				s.win.DropThrough(len(p))
				return nil
			}
			s.flush(s.win.Bytes()[:off])
			s.closePart()
			// CRLF перед границей структурный и в содержимое не входит.
			s.win.DropThrough(off + 2)
			s.state = stateSeekingBoundary

		case stateFinished:
			return nil
		}
	}
}

// Consume читает тело окнами по chunkSize байт и ведёт сессию до конца.
// Ошибка чтения фатальна: сессия прерывается, неполный файл удаляется.
func (s *Session) Consume(ctx context.Context, body io.Reader, chunkSize int) (models.UploadResult, error) {
	if chunkSize <= 0 {
		return models.UploadResult{}, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	buf := make([]byte, chunkSize)
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			s.Abort()
			return models.UploadResult{}, err
		}

		n, err := body.Read(buf)
		if n > 0 {
			if ferr := s.Feed(buf[:n]); ferr != nil {
				s.Abort()
				return models.UploadResult{}, ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			s.Abort()
			return models.UploadResult{}, fmt.Errorf("read chunk: %w", err)
		}
	}

	return s.Finish()
}

// Finish завершает сессию. Тело, оборвавшееся без терминальной границы, —
// ошибка разбора: открытая часть закрывается и её неполный файл удаляется,
// а файлы, записанные целиком до обрыва, остаются и входят в результат.
func (s *Session) Finish() (models.UploadResult, error) {
	res := models.UploadResult{Files: s.files, Count: len(s.files)}
	if res.Files == nil {
		res.Files = []string{}
	}

	if s.state != stateFinished {
		s.Abort()
		return res, models.ErrTruncatedBody
	}

	return res, nil
}

// Abort прерывает сессию: текущий sink закрывается, частично записанный
// файл удаляется, дальнейшие Feed игнорируются.
func (s *Session) Abort() {
	part := s.part
	s.part = nil
	if part != nil {
		if err := part.out.Discard(); err != nil {
			log.Printf("upload %s: discard %q: %v", s.id, part.name, err)
		}
	}

	s.state = stateFinished
	s.win.Reset()
}

// openPart разбирает заголовочный блок и открывает sink под содержимое.
// Часть без имени файла, с именем вне каталога назначения или с ошибкой
// файловой системы деградирует до пропуска: её байты выедаются nullSink'ом
// до следующей границы, обработка последующих частей продолжается.
func (s *Session) openPart(block []byte) {
	s.part = &activePart{out: nullSink{}}

	h := parsePartHeader(block)
	if h.Filename == "" {
		return
	}
	s.part.name = h.Filename

	dst, err := fsops.Resolve(s.targetDir, h.Filename)
	if err != nil {
		log.Printf("upload %s: reject filename %q: %v", s.id, h.Filename, err)
		return
	}
	if err := fsops.EnsureDir(filepath.Dir(dst)); err != nil {
		log.Printf("upload %s: mkdir for %q: %v", s.id, h.Filename, err)
		return
	}

	out, err := newFileSink(dst)
	if err != nil {
		log.Printf("upload %s: create %q: %v", s.id, h.Filename, err)
		return
	}

	s.part.out = out
	s.part.store = true
}

// flush пишет подтверждённое содержимое текущей части. Ошибка записи
// локальна для части: файл уничтожается, остаток выедается nullSink'ом.
func (s *Session) flush(p []byte) {
	if len(p) == 0 || s.part == nil {
		return
	}

	if err := s.part.out.Write(p); err != nil {
		log.Printf("upload %s: write %q: %v", s.id, s.part.name, err)
		_ = s.part.out.Discard()
		s.part.out = nullSink{}
		s.part.store = false
	}
}

// closePart закрывает sink и фиксирует часть в списке завершённых.
func (s *Session) closePart() {
	part := s.part
	s.part = nil
	if part == nil {
		return
	}

	if err := part.out.Close(); err != nil {
		log.Printf("upload %s: close %q: %v", s.id, part.name, err)
		_ = part.out.Discard()
		return
	}

	if part.store {
		s.files = append(s.files, part.name)
	}
}
