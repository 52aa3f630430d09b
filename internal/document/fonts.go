package document

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// fontFamily is the name the faces are registered under in every document.
const fontFamily = "Body"

// Fonts holds TrueType data for the faces the renderer uses. Bold and Italic
// fall back to Regular when empty.
type Fonts struct {
	Regular []byte
	Bold    []byte
	Italic  []byte
}

// GoFonts returns the Go font family, which covers Latin, Greek, and Cyrillic.
func GoFonts() Fonts {
	return Fonts{Regular: goregular.TTF, Bold: gobold.TTF, Italic: goitalic.TTF}
}

// LoadFontFile reads one TrueType file and uses it for every face. Use it for
// scripts the Go fonts lack, such as CJK.
func LoadFontFile(path string) (Fonts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fonts{}, fmt.Errorf("document: read font %s: %w", path, err)
	}
	if len(data) == 0 {
		return Fonts{}, fmt.Errorf("document: font %s is empty", path)
	}
	return Fonts{Regular: data}, nil
}

func (f Fonts) withDefaults() Fonts {
	if len(f.Regular) == 0 {
		return GoFonts()
	}
	if len(f.Bold) == 0 {
		f.Bold = f.Regular
	}
	if len(f.Italic) == 0 {
		f.Italic = f.Regular
	}
	return f
}
