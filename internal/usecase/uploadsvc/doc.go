// Package uploadsvc реализует потоковый разбор multipart/form-data для
// батч-загрузки файлов на карту памяти. Тело запроса читается небольшими
// окнами фиксированного размера; сессия восстанавливает из него N файлов
// произвольной длины, не буферизуя тело целиком:
//   - Session — конечный автомат разбора, продвигаемый вызовами Feed;
//   - window — ограниченный байтовый буфер, переживающий стык двух чанков
//     (разделитель может прийти разорванным между ними);
//   - sink — открытый файл, принимающий содержимое текущей части.
package uploadsvc
