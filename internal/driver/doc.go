// Package driver runs lex, parse, lint and tree checks over many files.
//
// Файлы читаются через afero.Fs, разбор идёт параллельно (errgroup с
// ограничением jobs), прогресс уходит в ProgressSink, фазы пишутся в
// observ.Timer и trace.
package driver
