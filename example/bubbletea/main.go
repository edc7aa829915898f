// Package main hosts ask prompts inside a Bubble Tea program.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nao1215/ask"
	"github.com/nao1215/ask/hosted"
	"github.com/nao1215/ask/hosted/teahost"
)

func main() {
	var summary string
	err := teahost.Run(context.Background(), func(ctx context.Context, f *hosted.Facade) error {
		name, err := hosted.Ask[string](ctx, f, ask.NewText("Project name?").Default("demo"), "name")
		if err != nil {
			return err
		}
		kind, err := hosted.Ask[string](ctx, f, ask.NewSelect("Template", []string{"cli", "service", "library"}), "kind")
		if err != nil {
			return err
		}
		ok, err := hosted.Ask[bool](ctx, f, ask.NewConfirm(fmt.Sprintf("Create %s %s?", kind, name)), "confirm")
		if err != nil {
			return err
		}
		if _, err := f.Delay(500 * time.Millisecond).Wait(ctx); err != nil {
			return err
		}
		if ok {
			summary = fmt.Sprintf("created %s (%s)", name, kind)
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	if summary != "" {
		fmt.Println(summary)
	}
}
