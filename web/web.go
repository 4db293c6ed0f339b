// Package web carries the embedded single-page browser interface.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
