package uploadsvc

import "os"

// sink принимает содержимое одной части по мере того, как байты
// подтверждаются не принадлежащими разделителю.
type sink interface {
	Write(p []byte) error
	Close() error
	// Discard закрывает sink и уничтожает частично записанный результат.
	Discard() error
}

// fileSink пишет часть в файл на карте. Одновременно открыт не более чем
// один на сессию.
type fileSink struct {
	f    *os.File
	path string
}

func newFileSink(path string) (*fileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &fileSink{f: f, path: path}, nil
}

func (s *fileSink) Write(p []byte) error {
	_, err := s.f.Write(p)
	return err
}

func (s *fileSink) Close() error {
	return s.f.Close()
}

func (s *fileSink) Discard() error {
	_ = s.f.Close()
	return os.Remove(s.path)
}

// nullSink молча выедает байты пропускаемой части, удерживая поток в
// синхроне до следующей границы.
type nullSink struct{}

func (nullSink) Write([]byte) error { return nil }
func (nullSink) Close() error       { return nil }
func (nullSink) Discard() error     { return nil }
