package teahost

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/nao1215/ask/hosted"
)

// Run starts a Bubble Tea program hosting prompts and calls fn with the
// adapter's facade on another goroutine. The program quits when fn
// returns; prompts still pending when the program stops resolve with
// ask.ErrCancel.
func Run(ctx context.Context, fn func(ctx context.Context, f *hosted.Facade) error, opts ...tea.ProgramOption) error {
	scene := hosted.NewMemoryScene()
	adapter := hosted.NewAdapter(scene)
	p := tea.NewProgram(NewModel(adapter, scene), append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer adapter.Close()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("bubble tea: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		defer p.Quit()
		return fn(gctx, adapter.Facade())
	})
	return g.Wait()
}
