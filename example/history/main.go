// Package main demonstrates a Text prompt recalling earlier answers from a
// history file.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/ask"
)

func main() {
	config := ask.DefaultHistoryConfig()
	config.File = ask.DefaultHistoryFile()

	history, err := ask.NewHistory(config)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("History Example with File Persistence")
	fmt.Println("Use Up/Down arrow keys to navigate history")
	fmt.Println("Type 'history' to see command history")
	fmt.Println("Type 'clear' to clear history")
	fmt.Println("Type 'exit' or 'quit' to exit")
	fmt.Printf("History is saved to %s\n", history.File())
	fmt.Println()

	defer func() {
		if err := history.Save(); err != nil {
			log.Printf("failed to save history: %v", err)
		}
	}()

	for {
		result, err := ask.NewText("command").History(history).Prompt()
		if err != nil {
			if errors.Is(err, ask.ErrCancel) {
				fmt.Println("Goodbye!")
				return
			}
			log.Printf("Error: %v\n", err)
			return
		}

		switch strings.TrimSpace(result) {
		case "":
			continue
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "history":
			for i, entry := range history.Entries() {
				fmt.Printf("%4d  %s\n", i+1, entry)
			}
		case "clear":
			history.Clear()
			fmt.Println("History cleared")
		default:
			fmt.Printf("Executed: %s\n", result)
		}
	}
}
