// Package cardproto описывает HTTP-протокол файлового сервера карты памяти:
// пути эндпоинтов и JSON-формы ответов, общие для сервера, клиента и тестов.
package cardproto

// Эндпоинты REST-протокола. Пути параметризуются query-параметрами
// path/dir, а не сегментами URL: так их понимает веб-клиент читалки.
const (
	InfoPath        = "/api/info"
	ListPath        = "/api/list"
	FilePath        = "/api/file"
	MkdirPath       = "/api/mkdir"
	RmdirPath       = "/api/rmdir"
	UploadBatchPath = "/api/upload-batch"
)

// Entry — элемент листинга каталога. Size присутствует только у файлов.
type Entry struct {
	Name string `json:"name"`
	Type string `json:"type"` // "file" или "directory"
	Size *int64 `json:"size,omitempty"`
}

// ListResponse — ответ GET /api/list.
type ListResponse struct {
	Path  string  `json:"path"`
	Items []Entry `json:"items"`
}

// InfoResponse — сводка по серверу и занятости карты.
type InfoResponse struct {
	Device  string      `json:"device"`
	Root    string      `json:"root"`
	Storage StorageInfo `json:"storage"`
}

// StorageInfo — суммарный объём данных под корнем карты.
type StorageInfo struct {
	Used int64 `json:"used"`
}

// OpResponse — ответ операций над одним путём (put/delete/mkdir/rmdir).
type OpResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
	Size    int64  `json:"size,omitempty"`
}

// UploadBatchResponse — результат батч-загрузки.
type UploadBatchResponse struct {
	Success bool     `json:"success"`
	Files   []string `json:"files"`
	Count   int      `json:"count"`
}

// ErrorResponse — стандартный конверт ошибки.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
