package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Semantic band. Lang-item collection reports here; the 1xxx/2xxx
	// lexer and parser bands stay reserved for the front end proper.
	SemaInfo              Code = 3000
	SemaDuplicateLangItem Code = 3001
	SemaMissingLangItem   Code = 3002

	// Driver / IO band.
	IOInfo        Code = 4000
	IOBadUnitMeta Code = 4001
	IOBadManifest Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	SemaInfo:              "semantic note",
	SemaDuplicateLangItem: "duplicate lang item binding",
	SemaMissingLangItem:   "missing required lang item",

	IOInfo:        "driver note",
	IOBadUnitMeta: "unreadable unit metadata",
	IOBadManifest: "unreadable unit manifest",
}

// ID renders the short band-prefixed code, e.g. SEM3001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	default:
		return fmt.Sprintf("UNK%04d", ic)
	}
}

// Title returns the human-readable description for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
