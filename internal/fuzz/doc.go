// Package fuzztests houses Go fuzz harnesses for the front end of the Grit
// toolchain (source -> lexer -> parser). They guard against panics, hangs and
// lost bytes on arbitrary input.
//
// Назначение: прогонять произвольные байты через лексер и парсер и проверять,
// что дерево печатается обратно в тот же текст.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/testkit.
package fuzztests
