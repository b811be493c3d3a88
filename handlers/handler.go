package handlers

import (
	"portfolio/mailer"
	"portfolio/render"
	"portfolio/sanity"
)

// Handler carries the dependencies the endpoints need: the content store
// client, the mail sender and the rich-text renderer. Everything is wired up
// once in main.
type Handler struct {
	store    *sanity.Client
	mail     mailer.Sender
	renderer *render.HTMLRenderer
}

func New(store *sanity.Client, mail mailer.Sender) *Handler {
	return &Handler{
		store:    store,
		mail:     mail,
		renderer: render.NewHTMLRenderer(store),
	}
}
