package quote

import (
	"fmt"
	"regexp"
	"strings"
)

var versionSuffixRe = regexp.MustCompile(`(?i)/v\d+$`)

// FormatNumber builds an offer number from a yearly sequence value,
// e.g. FormatNumber(17, 2026) -> "P-0017/2026". Version 1 carries no suffix.
func FormatNumber(seq int64, year int) string {
	return fmt.Sprintf("P-%04d/%d", seq, year)
}

// ChainBase strips a trailing /vN version suffix, returning the number shared
// by every document in the chain.
func ChainBase(number string) string {
	return versionSuffixRe.ReplaceAllString(number, "")
}

// VersionNumber derives the document number for the given version: the chain
// base for version 1, base + "/vN" for later versions.
func VersionNumber(number string, version int) string {
	base := ChainBase(number)
	if version <= 1 {
		return base
	}
	return fmt.Sprintf("%s/v%d", base, version)
}

// SafeFileName turns an offer number into a file name for the rendered PDF.
// Path separators inside the number ("P-0017/2026/v2") are flattened out.
func SafeFileName(number string) string {
	sanitized := strings.NewReplacer("/", "-", "\\", "-").Replace(number)
	return sanitized + ".pdf"
}
