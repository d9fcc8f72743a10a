package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/tinylink/internal/client/cache"
	"github.com/dmitrijs2005/tinylink/internal/client/models"
)

// listWaitTimeout bounds how long List blocks for the first refresh before
// falling back to whatever is cached.
const listWaitTimeout = 5 * time.Second

// Shorten prompts for a URL (and an optional alias) and creates a short link.
// The created link is printed immediately from the server's response; the
// cached list catches up via invalidation.
func (a *App) Shorten(ctx context.Context) error {
	url, err := getSimpleText(a.reader, "URL to shorten", os.Stdout)
	if err != nil {
		return err
	}
	alias, err := getSimpleText(a.reader, "Custom alias (leave empty for a generated one)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.CreateLinkRequest{RedirectURL: url, CustomAlias: alias}

	link, err := a.createForm.Run(ctx, func(ctx context.Context) (*models.Link, error) {
		return a.client.CreateLink(ctx, req)
	})
	if err != nil {
		if errors.Is(err, cache.ErrMutationInFlight) {
			a.sink.Info("still submitting the previous link, hold on")
			return err
		}
		a.reportError(ctx, err)
		return err
	}

	a.sink.Success("URL shortened successfully!")
	printLink(*link)
	return nil
}

// List prints the current link list. If no value is cached yet it waits for
// the first refresh, bounded by listWaitTimeout.
func (a *App) List(ctx context.Context) error {
	sub := a.links.Subscribe(ctx)
	defer sub.Close()

	select {
	case links := <-sub.Updates():
		printLinks(links)
		return nil
	case <-time.After(listWaitTimeout):
		if links, ok := a.links.Snapshot(); ok {
			printLinks(links)
			return nil
		}
		a.sink.Error("could not load links, try again later")
		return errors.New("link list unavailable")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Update changes a link's destination or alias. Empty answers leave the
// corresponding field unchanged.
func (a *App) Update(ctx context.Context, id string) error {
	url, err := getSimpleText(a.reader, "New URL (leave empty to keep current)", os.Stdout)
	if err != nil {
		return err
	}
	alias, err := getSimpleText(a.reader, "New alias (leave empty to keep current)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.UpdateLinkRequest{RedirectURL: url, CustomAlias: alias}

	a.sink.Info("Updating URL...")
	link, err := a.updateForm.Run(ctx, func(ctx context.Context) (*models.Link, error) {
		return a.client.UpdateLink(ctx, id, req)
	})
	if err != nil {
		if errors.Is(err, cache.ErrMutationInFlight) {
			a.sink.Info("still submitting the previous update, hold on")
			return err
		}
		a.reportError(ctx, err)
		return err
	}

	a.sink.Success("URL updated successfully!")
	printLink(*link)
	return nil
}

// Watch streams list refreshes to the terminal until the user presses Enter.
// While at least one watcher is attached, the background poller keeps the
// list converging with the server, so click counters stay up to date.
func (a *App) Watch(ctx context.Context) error {
	sub := a.links.Subscribe(ctx)
	defer sub.Close()

	printlnFn("Watching your links, press Enter to stop.")

	stop := make(chan struct{})
	go func() {
		_, _ = a.reader.ReadString('\n')
		close(stop)
	}()

	for {
		select {
		case links := <-sub.Updates():
			printLinks(links)
		case <-stop:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func printLinks(links []models.Link) {
	if len(links) == 0 {
		printlnFn("No links yet. Use shorten to create one.")
		return
	}
	for _, l := range links {
		printLink(l)
	}
}

func printLink(l models.Link) {
	printlnFn(fmt.Sprintf("%s  %s -> %s  (%d clicks)  id=%s", l.ShortURL, l.CustomAlias, l.RedirectURL, l.Clicks, l.ID))
}
