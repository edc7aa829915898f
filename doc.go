// Package ask provides interactive terminal prompts for command line tools.
//
// Every prompt is a small state machine fed with key events. The same
// prompt can be shown on a terminal (this package) or inside a frame loop
// owned by another program (package hosted).
//
// Prompts:
//
//   - Confirm: yes/no question, yields bool
//   - Toggle: choice between two labels, yields the chosen label
//   - Text: single line of text with optional default, placeholder,
//     validator and history
//   - Password: like Text, masked with '*' or not echoed at all
//   - Number[N]: typed number; only characters that can form an N are accepted
//   - Select[T]: one option of a paginated list
//   - MultiSelect[T]: any number of options, with optional Min and Max
//   - Message: notice acknowledged with Enter or Space
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/ask"
//	)
//
//	func main() {
//		name, err := ask.NewText("What is your name?").
//			Placeholder("anonymous").
//			Prompt()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s\n", name)
//	}
//
// Running several prompts on one terminal:
//
//	t, err := ask.NewTerminal(ask.WithColorScheme(ask.ThemeDracula))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer t.Close()
//
//	ok, err := ask.Run[bool](ctx, t, ask.NewConfirm("Continue?").Initial(true))
//	lang, err := ask.Run[string](ctx, t, ask.NewSelect("Language", []string{"Go", "Rust", "Zig"}))
//
// Key Bindings:
//
//   - Enter: submit
//   - Escape / Ctrl+C: cancel, the prompt returns ErrCancel
//   - Left / Right: move the cursor, switch labels or change page
//   - Up / Down: move the focus in lists, recall history in Text
//   - Home / Ctrl+A, End / Ctrl+E: beginning and end of the line
//   - Backspace / Delete: delete backwards and forwards
//   - Space: toggle an option of a MultiSelect
//   - h, j, k, l: vi movement in lists and toggles
//
// Key bindings can be changed with a custom KeyMap:
//
//	keyMap := ask.NewDefaultKeyMap()
//	keyMap.Bind('\x0b', ask.KeyEnd)            // Ctrl+K
//	keyMap.BindSequence("[Z", ask.KeyUp)       // Shift+Tab
//	t, err := ask.NewTerminal(ask.WithKeyMap(keyMap))
//
// Error Handling:
//
//   - ErrCancel: the user pressed Escape or Ctrl+C
//   - ErrInvalidValue: a Number prompt could not parse its input
//   - ErrIO: the terminal could not be read or written
//   - context errors: the context passed to PromptContext or Run ended
//
// Validation errors (ValidationError, CountError) never reach the caller;
// they are shown below the prompt and the user keeps editing.
//
// Thread Safety:
//
// Prompts and Terminals are not safe for concurrent use. Run one prompt at a
// time per terminal.
package ask
