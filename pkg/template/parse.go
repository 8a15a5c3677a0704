package template

import (
	"fmt"
	"strings"
)

// Parse parses a template file into its sections. Sections are delimited
// with XML-like tags; the content between the first opening and the last
// closing tag is taken and trimmed, so fragments may freely contain angle
// brackets of their own.
func Parse(text string) (Template, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	templateContent, err := textInsideTag(text, "template")
	if err != nil {
		return Template{}, err
	}

	promptContent, err := textInsideTag(templateContent, "prompt")
	if err != nil {
		return Template{}, err
	}
	partContent, err := textInsideTag(templateContent, "part")
	if err != nil {
		return Template{}, err
	}

	prompt, err := parsePromptSection(promptContent)
	if err != nil {
		return Template{}, err
	}
	part, err := parsePartSection(partContent)
	if err != nil {
		return Template{}, err
	}

	return Template{Prompt: prompt, Part: part}, nil
}

func parsePromptSection(content string) (PromptSection, error) {
	header, err := textInsideTag(content, "header")
	if err != nil {
		return PromptSection{}, err
	}
	file, err := textInsideTag(content, "file")
	if err != nil {
		return PromptSection{}, err
	}
	footer, err := textInsideTag(content, "footer")
	if err != nil {
		return PromptSection{}, err
	}

	return PromptSection{Header: header, File: file, Footer: footer}, nil
}

func parsePartSection(content string) (PartSection, error) {
	header, err := textInsideTag(content, "header")
	if err != nil {
		return PartSection{}, err
	}
	footer, err := textInsideTag(content, "footer")
	if err != nil {
		return PartSection{}, err
	}
	pending, err := textInsideTag(content, "pending")
	if err != nil {
		return PartSection{}, err
	}

	return PartSection{Header: header, Footer: footer, Pending: pending}, nil
}

// textInsideTag extracts the text between the first <tag> and the last
// </tag> in text, trimmed of surrounding whitespace.
func textInsideTag(text, tag string) (string, error) {
	opening := "<" + tag + ">"
	closing := "</" + tag + ">"

	start := strings.Index(text, opening)
	if start < 0 {
		return "", fmt.Errorf("opening tag %s not found in the template", opening)
	}
	end := strings.LastIndex(text, closing)
	if end < 0 {
		return "", fmt.Errorf("closing tag %s not found in the template", closing)
	}
	if end < start {
		return "", fmt.Errorf("closing tag %s found before opening tag %s", closing, opening)
	}

	return strings.TrimSpace(text[start+len(opening) : end]), nil
}
