package tui

import (
	"context"
	"fmt"

	"github.com/statepane/statepane/history"
	"github.com/statepane/statepane/key"
	"github.com/statepane/statepane/log"
	"github.com/statepane/statepane/provider"
	"github.com/statepane/statepane/query"
	"github.com/statepane/statepane/source"
	"github.com/statepane/statepane/util"
	"github.com/statepane/statepane/viewstate"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type sourceCreatedMsg struct {
	source source.Source
}

type loadedMsg struct {
	generation int
	items      []*source.Item
	err        error
}

func (b *statefulBubble) loadProviders() tea.Cmd {
	items := lo.Map(provider.All(), func(p *provider.Provider, _ int) list.Item {
		return &listItem{internal: p}
	})
	return b.providersC.SetItems(items)
}

func (b *statefulBubble) createSource(p *provider.Provider) tea.Cmd {
	return func() tea.Msg {
		log.Info("creating source " + p.ID)
		s, err := p.CreateSource()
		if err != nil {
			log.Error(err)
			return fmt.Errorf("create source %s: %w", p.Name, err)
		}

		log.Info("source " + p.ID + " created")
		return sourceCreatedMsg{source: s}
	}
}

// startLoad cancels the running load, asks the controller for the loading placeholder and returns
// the command that loads the current target.
func (b *statefulBubble) startLoad() tea.Cmd {
	if b.cancel != nil {
		b.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.generation++

	b.loadingP.status = fmt.Sprintf("Loading %q from %s", b.target, b.selectedSource.Name())
	b.emptyP.target = b.target
	b.controller.StartLoading(b.animate, nil)

	return tea.Batch(b.load(ctx, b.generation, b.selectedSource, b.target), b.loadingP.spinner.Tick)
}

func (b *statefulBubble) load(ctx context.Context, generation int, src source.Source, target string) tea.Cmd {
	return func() tea.Msg {
		log.Infof("loading %q from %s", target, src.Name())

		items, err := src.Load(ctx, target)
		if err != nil {
			log.Error(err)
		} else {
			log.Infof("loaded %s", util.Quantify(len(items), "item", "items"))
		}

		return loadedMsg{
			generation: generation,
			items:      items,
			err:        err,
		}
	}
}

// finishLoad applies a load result. Results of cancelled loads are dropped.
func (b *statefulBubble) finishLoad(msg loadedMsg) tea.Cmd {
	if msg.generation != b.generation {
		return nil
	}

	var cmd tea.Cmd
	if msg.err == nil {
		items := lo.Map(source.Indexed(msg.items), func(item *source.Item, _ int) list.Item {
			return &listItem{internal: item}
		})
		cmd = b.contentC.SetItems(items)

		if len(items) > 0 {
			b.remember(len(items))
		}
	} else {
		b.errorP.err = msg.err
	}

	b.controller.EndLoading(b.animate, msg.err, nil)
	return cmd
}

func (b *statefulBubble) remember(items int) {
	src, target := b.selectedSource, b.target

	go func() {
		if err := query.Remember(target, 1); err != nil {
			log.Warn(err)
		}

		if !viper.GetBool(key.HistorySave) {
			return
		}

		if err := history.Save(src, target, items); err != nil {
			log.Warn(err)
		}
	}()
}

// leaveBrowse cancels the load and hides every placeholder.
func (b *statefulBubble) leaveBrowse() tea.Cmd {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.generation++

	b.controller.Scheduler().RequestTransition(viewstate.None, false, nil)
	return b.contentC.SetItems(nil)
}
