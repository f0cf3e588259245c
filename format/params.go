package format

import (
	"strconv"
	"strings"

	"github.com/sqlfmtgo/sqlfmt/errs"
	"github.com/sqlfmtgo/sqlfmt/token"
)

// resolvePlaceholder returns the literal text to emit in place of a
// PLACEHOLDER token: positional placeholders ("?") consume
// Params.Positional in encounter order; named/numbered placeholders
// ("$1", ":name", "@name") look up Params.Named, trying first the bare key
// with its prefix stripped and then, for purely numeric keys, a 1-based
// positional fallback into Params.Positional.
func (f *formatter) resolvePlaceholder(tok token.Token) (string, error) {
	text := tok.Text
	if len(f.opts.Params.Positional) == 0 && len(f.opts.Params.Named) == 0 {
		// Nothing was supplied to substitute with, so leave placeholders as
		// literal text rather than treating every one as unresolved.
		return text, nil
	}
	if text == "?" {
		if f.nextPositional >= len(f.opts.Params.Positional) {
			return "", errs.PlaceholderError{Key: strconv.Itoa(f.nextPositional + 1), Text: text}
		}
		v := f.opts.Params.Positional[f.nextPositional]
		f.nextPositional++
		return v, nil
	}

	key := strings.TrimLeft(text, "$:@")
	if v, ok := f.opts.Params.Named[key]; ok {
		return v, nil
	}
	if n, err := strconv.Atoi(key); err == nil {
		idx := n - 1
		if idx >= 0 && idx < len(f.opts.Params.Positional) {
			return f.opts.Params.Positional[idx], nil
		}
	}
	return "", errs.PlaceholderError{Key: key, Text: text}
}
