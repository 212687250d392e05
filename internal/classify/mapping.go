package classify

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"foldersort/internal/textutil"
)

// Fallback is the category for extensions with no mapping entry.
const Fallback = "Others"

var defaultCategories = map[string][]string{
	"Images":        {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg"},
	"Documents":     {".pdf", ".doc", ".docx", ".odt", ".txt", ".rtf"},
	"Spreadsheets":  {".xls", ".xlsx", ".csv"},
	"Presentations": {".ppt", ".pptx"},
	"Archives":      {".zip", ".tar", ".gz", ".rar", ".7z"},
	"Video":         {".mp4", ".mkv", ".mov", ".avi"},
	"Audio":         {".mp3", ".wav", ".flac"},
	"Code":          {".py", ".js", ".ts", ".java", ".c", ".cpp", ".cs", ".html", ".css"},
}

// Mapping is a case-insensitive extension to category table.
type Mapping struct {
	entries map[string]string
}

// Entry is one extension/category pair.
type Entry struct {
	Extension string `json:"extension"`
	Category  string `json:"category"`
}

// New returns an empty mapping. Every lookup on it yields Fallback.
func New() *Mapping {
	return &Mapping{entries: make(map[string]string)}
}

// Default returns a mapping seeded with the built-in categories.
func Default() *Mapping {
	m := New()
	for category, exts := range defaultCategories {
		for _, ext := range exts {
			m.Set(ext, category)
		}
	}
	return m
}

// Set adds or replaces the category for ext. Categories are reduced to a
// single folder name; blank extensions or categories are ignored.
func (m *Mapping) Set(ext, category string) {
	key := NormalizeExtension(ext)
	category = textutil.SanitizeFolderName(category)
	if key == "" || category == "" {
		return
	}
	m.entries[key] = category
}

// Merge copies every entry from other into m, overriding existing keys.
func (m *Mapping) Merge(other map[string]string) {
	for ext, category := range other {
		m.Set(ext, category)
	}
}

// Classify returns the category folder for ext, or Fallback when unmapped.
// An empty extension is treated as unmapped.
func (m *Mapping) Classify(ext string) string {
	if m == nil {
		return Fallback
	}
	if category, ok := m.entries[lower(strings.TrimSpace(ext))]; ok {
		return category
	}
	return Fallback
}

// Len reports the number of mapped extensions.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries lists the mapping sorted by category, then extension.
func (m *Mapping) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, 0, len(m.entries))
	for ext, category := range m.entries {
		out = append(out, Entry{Extension: ext, Category: category})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Extension < out[j].Extension
	})
	return out
}

// NormalizeExtension trims and lowercases ext and ensures a leading dot.
// It returns "" for blank input.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return lower(ext)
}

func lower(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}
