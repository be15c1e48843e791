package icons

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	SourceExt    = ".svg"
	ComponentExt = ".tsx"
)

var ErrInvalidName = errors.New("invalid component name")

// ComponentName turns "arrow-right.svg" into "ArrowRight".
// Only the first character of each segment is touched.
func ComponentName(filename string) string {
	base := strings.TrimSuffix(filename, SourceExt)

	var b strings.Builder
	for _, part := range strings.Split(base, "-") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

// ValidateComponentName rejects names JSX would not treat as a component.
func ValidateComponentName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}

	first, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(first) {
		return fmt.Errorf("%w: %q must start with an upper-case letter", ErrInvalidName, name)
	}

	for _, r := range name {
		if r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, r)
	}
	return nil
}

// OutputName is the file name the component module is written under.
func OutputName(filename string) string {
	return ComponentName(filename) + ComponentExt
}
