package cli

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/vburojevic/hdrift/internal/decode"
)

func hintForDecode(err error) string {
	var de *decode.Error
	if !errors.As(err, &de) {
		return ""
	}
	if strings.HasPrefix(de.Reason, "expected JSON object") {
		return "Every line must hold one JSON object; use --on-error skip to continue past other lines"
	}
	return "Fix or remove the malformed line, or use --on-error skip to continue past it"
}

func hintForRead(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, fs.ErrPermission) {
		return "Check read permissions on the file"
	}
	if strings.Contains(err.Error(), "token too long") {
		return "Raise --max-line-bytes to accept longer lines"
	}
	return ""
}
