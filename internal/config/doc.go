// Package config loads grit.toml and the GRIT_* environment overrides.
//
// Порядок: значения по умолчанию, затем файл, затем окружение; флаги CLI
// применяет вызывающий код поверх результата.
package config
