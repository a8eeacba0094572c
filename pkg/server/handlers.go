package server

import (
	"Tube/handler"
)

type Handlers struct {
	User         *handler.User
	Subscription *handler.Subscription
	Feed         *handler.Feed
	Video        *handler.Video
}
