package models

// UploadResult возвращается после обработки multipart-запроса и содержит
// список относительных имён всех полностью записанных файлов.
type UploadResult struct {
	Files []string
	Count int
}
