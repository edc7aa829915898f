// Package main demonstrates every prompt of the ask library on a terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/ask"
)

type language struct {
	Name string
	Year int
}

func main() {
	t, err := ask.NewTerminal(ask.WithColorScheme(ask.ThemeDracula))
	if err != nil {
		log.Fatal(err)
	}
	defer t.Close()

	if err := run(context.Background(), t); err != nil {
		if errors.Is(err, ask.ErrCancel) {
			fmt.Println("Cancelled.")
			return
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, t *ask.Terminal) error {
	name, err := ask.Run[string](ctx, t, ask.NewText("What is your name?").
		Placeholder("gopher").
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("name must not be empty")
			}
			return nil
		}))
	if err != nil {
		return err
	}

	secret, err := ask.Run[string](ctx, t, ask.NewPassword("Choose a password").Validate(func(s string) error {
		if len(s) < 8 {
			return errors.New("at least 8 characters")
		}
		return nil
	}))
	if err != nil {
		return err
	}

	age, err := ask.Run[uint8](ctx, t, ask.NewNumber[uint8]("How old are you?").Default(30))
	if err != nil {
		return err
	}

	lang, err := ask.Run[language](ctx, t, ask.NewSelectOptions("Favorite language?", []ask.SelectOption[language]{
		{Title: "Go", Value: language{"Go", 2009}, Description: "simple and fast"},
		{Title: "Rust", Value: language{"Rust", 2010}},
		{Title: "Zig", Value: language{"Zig", 2016}},
		{Title: "COBOL", Value: language{"COBOL", 1959}, Disabled: true},
	}))
	if err != nil {
		return err
	}

	editors, err := ask.Run[[]string](ctx, t, ask.NewMultiSelect("Editors you use", []string{"vim", "emacs", "vscode", "helix", "nano"}).
		Min(1).
		Max(3).
		PerPage(4))
	if err != nil {
		return err
	}

	indent, err := ask.Run[string](ctx, t, ask.NewToggle("Indent with", [2]string{"tabs", "spaces"}))
	if err != nil {
		return err
	}

	ok, err := ask.Run[bool](ctx, t, ask.NewConfirm("Save profile?").Initial(true))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	fmt.Printf("%s (%d), %s since %d, %s, indents with %s, password of %d characters\n",
		name, age, lang.Name, lang.Year, strings.Join(editors, "/"), indent, len(secret))
	_, err = ask.Run[struct{}](ctx, t, ask.NewMessage("Profile saved.").Action("Done"))
	return err
}
