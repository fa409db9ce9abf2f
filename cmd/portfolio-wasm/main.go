//go:build js && wasm

// Command portfolio-wasm runs the portfolio components in the browser.
//
//	GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/portfolio-wasm
package main

import (
	"context"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/Zachkp/microx-portfolio/internal/config"
	"github.com/Zachkp/microx-portfolio/internal/contact"
	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/dom/jsdom"
	"github.com/Zachkp/microx-portfolio/internal/logging"
	"github.com/Zachkp/microx-portfolio/internal/page"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

// configID is the element holding the browser configuration as JSON.
const configID = "portfolio-config"

func main() {
	log, err := logging.Console("info")
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(context.Background(), log); err != nil {
		log.Error("Portfolio failed to start", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *zap.Logger) error {
	loop := scheduler.NewLoop(scheduler.DefaultQueueSize)
	doc, win := jsdom.New(loop)

	var raw []byte
	doc.ByID(configID).WhenSome(func(el dom.Element) {
		raw = []byte(el.Text())
	})
	fe, err := config.ParseFrontend(raw)
	if err != nil {
		return err
	}

	endpoint, err := fe.ResolveEndpoint(win.Location())
	if err != nil {
		return err
	}

	app, err := page.New(page.Deps{
		Document:  doc,
		Window:    win,
		Scheduler: loop,
		Submitter: contact.NewHTTPSubmitter(endpoint, &http.Client{
			Timeout: fe.SubmitTimeout.Std(),
		}),
		Frontend: fe,
		Log:      log,
	})
	if err != nil {
		return err
	}

	loop.Post(func() {
		app.Start(ctx)
	})
	log.Debug("Portfolio started",
		zap.String("endpoint", endpoint),
		zap.Bool("typing", app.Typing.IsSome()),
		zap.Bool("preloader", app.Preloader.IsSome()),
		zap.Stringer("contact", app.Contact.State()),
	)

	loop.Run(ctx)
	return nil
}
