// Package tracker abstracts the issue tracker the bot sweeps. The core only
// ever sees the types and operations defined here; the GitHub implementation
// lives alongside.
package tracker

import (
	"context"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=tracker.go -destination=mocks/tracker.gen.go -package=mocks

// PageSize is the number of items requested per listing page.
const PageSize = 100

// ItemKind distinguishes issues from pull requests.
type ItemKind string

// Item kinds.
const (
	KindIssue       ItemKind = "issue"
	KindPullRequest ItemKind = "pull-request"
)

// Item is a point-in-time snapshot of an open issue or pull request.
type Item struct {
	Number    int
	Title     string
	URL       string
	Kind      ItemKind
	Labels    []string
	Assignees []string
	UpdatedAt time.Time
}

// AuthorKind classifies a comment author as a person or an automation actor.
type AuthorKind string

// Author kinds.
const (
	AuthorHuman AuthorKind = "human"
	AuthorBot   AuthorKind = "bot"
)

// Comment is one comment on an item.
type Comment struct {
	Author     string
	AuthorKind AuthorKind
	CreatedAt  time.Time
}

// EventKind is the kind of a historical event on an item.
type EventKind string

// Event kinds. Only label applications matter to the bot; everything else is
// collapsed into EventOther.
const (
	EventLabeled EventKind = "labeled"
	EventOther   EventKind = "other"
)

// Event is one historical action recorded on an item. Label is set only when
// Kind is EventLabeled.
type Event struct {
	Kind      EventKind
	Label     string
	CreatedAt time.Time
}

// Tracker interface defines the tracker operations the bot needs. Every call
// corresponds to one unit of API work.
type Tracker interface {
	// ListOpenItems returns one page of open issues and pull requests, in
	// the tracker's listing order.
	ListOpenItems(ctx context.Context, page int) ([]Item, error)
	// ListComments returns the comments on an item posted after since.
	ListComments(ctx context.Context, number int, since time.Time) ([]Comment, error)
	// ListEvents returns one page of an item's historical events in event
	// order, plus the next page number (0 when there are no further pages).
	ListEvents(ctx context.Context, number int, page int) ([]Event, int, error)
	// AddLabel adds a label to an item.
	AddLabel(ctx context.Context, number int, label string) error
	// RemoveLabel removes a label from an item.
	RemoveLabel(ctx context.Context, number int, label string) error
	// PostComment posts a comment on an item.
	PostComment(ctx context.Context, number int, body string) error
	// Close sets an item's state to closed.
	Close(ctx context.Context, number int) error
}
