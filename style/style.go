// Package style defines the closed vocabulary of semantic regions that a
// prompt marks in its output.
//
// Prompts never decide colors. They open and close regions around the
// pieces of text they emit (the question, the typed input, each option of
// a list, the validation message, ...) and a renderer decides how every
// region looks. The Kind names returned by Kind.String are stable and are
// meant to be used as keys by themes.
package style

// Kind identifies the type of a region.
type Kind int

// Region kinds.
const (
	KindQuery Kind = iota
	KindAnswer
	KindToggle
	KindOption
	KindOptionExclusive
	KindList
	KindListItem
	KindValidator
	KindPlaceholder
	KindInput
	KindPage
	KindMessage
)

var kindNames = map[Kind]string{
	KindQuery:           "query",
	KindAnswer:          "answer",
	KindToggle:          "toggle",
	KindOption:          "option",
	KindOptionExclusive: "option_exclusive",
	KindList:            "list",
	KindListItem:        "list_item",
	KindValidator:       "validator",
	KindPlaceholder:     "placeholder",
	KindInput:           "input",
	KindPage:            "page",
	KindMessage:         "message",
}

// String returns the stable identifier of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Flags describes the state of an option inside a list.
type Flags uint8

// Option flags.
const (
	Focused Flags = 1 << iota
	Selected
	Disabled
)

// Has reports whether all bits of o are set in f.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// Region is a semantic span of prompt output. Only the fields that belong
// to the region's Kind are meaningful; use the constructors below instead
// of building a Region by hand.
type Region struct {
	Kind      Kind
	Answered  bool  // KindQuery
	Show      bool  // KindAnswer
	Selected  bool  // KindToggle
	Flags     Flags // KindOption, KindOptionExclusive
	First     bool  // KindListItem
	Valid     bool  // KindValidator
	Page      int   // KindPage, zero based
	PageCount int   // KindPage
}

// Regions without parameters.
var (
	List        = Region{Kind: KindList}
	Placeholder = Region{Kind: KindPlaceholder}
	Input       = Region{Kind: KindInput}
	Message     = Region{Kind: KindMessage}
)

// Query marks the question of a prompt. answered is true in the final draw.
func Query(answered bool) Region {
	return Region{Kind: KindQuery, Answered: answered}
}

// Answer marks the submitted value in the final draw. show is false when
// the value must not be revealed (hidden passwords).
func Answer(show bool) Region {
	return Region{Kind: KindAnswer, Show: show}
}

// Toggle marks one of the two labels of a confirm or toggle prompt.
func Toggle(selected bool) Region {
	return Region{Kind: KindToggle, Selected: selected}
}

// Option marks an option of a multi-select list.
func Option(flags Flags) Region {
	return Region{Kind: KindOption, Flags: flags}
}

// OptionExclusive marks an option of a single-select list.
func OptionExclusive(flags Flags) Region {
	return Region{Kind: KindOptionExclusive, Flags: flags}
}

// ListItem marks one element of a List. first is true for the first one.
func ListItem(first bool) Region {
	return Region{Kind: KindListItem, First: first}
}

// Validator marks the validation message below an input.
func Validator(valid bool) Region {
	return Region{Kind: KindValidator, Valid: valid}
}

// Page marks the page indicator of a paginated list.
func Page(index, count int) Region {
	return Region{Kind: KindPage, Page: index, PageCount: count}
}
