// Package web — шаблоны и статика, зашитые в бинарник.
package web

import "embed"

//go:embed templates static
var FS embed.FS
