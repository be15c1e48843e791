package icons

import (
	"regexp"
	"strings"
)

const (
	licenseOpen  = "<!--!"
	commentClose = "-->"
	rootClose    = "</svg>"

	propSpread = " {...props}"
)

// svgOpenTag matches an opening <svg> tag, attributes included.
var svgOpenTag = regexp.MustCompile(`<svg\b[^>]*>`)

// TransformMarkup rewrites raw icon markup into the JSX body of a component.
// The steps run in a fixed order and are not idempotent.
func TransformMarkup(content string) string {
	content = strings.ReplaceAll(content, licenseOpen, "      \n      {/*")
	content = strings.ReplaceAll(content, commentClose, "*/}\n      ")
	content = InjectProps(content)
	content = strings.ReplaceAll(content, rootClose, "\n    "+rootClose)
	return content
}

// InjectProps adds the prop spread to the first <svg> opening tag.
// A self-closing first tag is returned unchanged.
func InjectProps(content string) string {
	loc := svgOpenTag.FindStringIndex(content)
	if loc == nil {
		return content
	}

	end := loc[1] - 1
	if content[end-1] == '/' {
		return content
	}

	return content[:end] + propSpread + content[end:]
}
