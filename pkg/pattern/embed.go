package pattern

import "embed"

// builtinFS embeds the default pattern set used when no patterns file is
// given.
//
//go:embed builtin/default.yaml
var builtinFS embed.FS
