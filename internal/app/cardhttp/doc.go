// Package cardhttp реализует REST API файлового сервера карты памяти.
// Основные эндпоинты:
//   - GET /api/info — сводка по серверу и занятости карты.
//   - GET /api/list?path= — листинг каталога.
//   - GET/POST/DELETE /api/file?path= — скачивание, загрузка и удаление
//     одного файла (или пустого каталога).
//   - POST /api/mkdir?path= — рекурсивное создание каталога.
//   - DELETE /api/rmdir?path= — рекурсивное удаление дерева; корень защищён.
//   - POST /api/upload-batch?dir= — потоковая батч-загрузка multipart-тела,
//     делегируется uploadsvc.Session.
package cardhttp
