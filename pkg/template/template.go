// Package template loads and renders prompt templates: the global
// header/footer, the per-file item fragment, and the part-level wrapper
// used when output has to be split into multiple parts.
package template

// Template is the parsed form of a template file.
type Template struct {
	Prompt PromptSection
	Part   PartSection
}

// PromptSection wraps the whole prompt: Header and Footer surround the
// output, File is applied once per included file.
type PromptSection struct {
	Header string
	File   string
	Footer string
}

// PartSection wraps each part of a multi-part output.
type PartSection struct {
	Header  string
	Footer  string
	Pending string
}
