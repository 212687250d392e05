package textutil

import "strings"

// folderNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var folderNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
	"\x00", "",
)

// SanitizeFolderName turns name into a single safe path segment. Slashes,
// backslashes, colons, and asterisks become dashes; other unsafe characters are
// removed. Names that would resolve to the current or parent directory yield
// "".
func SanitizeFolderName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.TrimSpace(folderNameReplacer.Replace(name))
	if strings.Trim(name, ".") == "" {
		return ""
	}
	return name
}
