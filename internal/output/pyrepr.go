package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/vburojevic/hdrift/internal/domain"
)

// FormatValue renders a scalar value the way the text report has always
// shown it: strings bare, True/False, None, integers verbatim and floats in
// shortest round-trip form with a ".0" suffix when integral.
func FormatValue(v domain.Value) string {
	switch v.Kind {
	case domain.KindNull:
		return "None"
	case domain.KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case domain.KindString:
		return v.Str
	case domain.KindNumber:
		return formatNumber(v.Raw)
	default:
		return v.Raw
	}
}

func formatNumber(raw string) string {
	if !strings.ContainsAny(raw, ".eE") {
		if raw == "-0" {
			return "0"
		}
		return raw
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !math.IsInf(f, 0) {
		return raw
	}
	return formatFloat(f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatSignature renders a signature as a bracketed list of quoted keys,
// e.g. ['a', 'b'].
func FormatSignature(sig domain.Signature) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, k := range sig {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteKey(k))
	}
	b.WriteByte(']')
	return b.String()
}

// quoteKey prefers single quotes and switches to double quotes only when
// the key contains a single quote and no double quote.
func quoteKey(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == ' ' || unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}
