// Package lifecycle defines the legal status transitions of a post.
//
//	draft --publish--> published --archive--> archived --restore--> draft
//
// Each state offers exactly one action. The generic update path is not
// governed by this graph.
package lifecycle

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-admin-console/internal/models"
)

// Action is an operator-triggered post transition.
type Action string

// Supported actions
const (
	ActionPublish Action = "publish"
	ActionArchive Action = "archive"
	ActionRestore Action = "restore"
)

var (
	// ErrTransitionNotAllowed is returned when an action is attempted from a state lacking that transition.
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	// ErrUnknownAction is returned by ParseAction for anything but publish, archive or restore.
	ErrUnknownAction = errors.New("unknown action")
)

type edge struct {
	from models.PostStatus
	to   models.PostStatus
}

var graph = map[Action]edge{
	ActionPublish: {from: models.PostDraft, to: models.PostPublished},
	ActionArchive: {from: models.PostPublished, to: models.PostArchived},
	ActionRestore: {from: models.PostArchived, to: models.PostDraft},
}

// ParseAction converts s to an Action.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := graph[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

// Next returns the status reached by applying a to a post in status from.
func Next(from models.PostStatus, a Action) (models.PostStatus, error) {
	e, ok := graph[a]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
	}
	if e.from != from {
		return "", fmt.Errorf("%w: cannot %s a %s post", ErrTransitionNotAllowed, a, from)
	}
	return e.to, nil
}

// Allowed reports whether a may be applied to a post in status from.
func Allowed(from models.PostStatus, a Action) bool {
	e, ok := graph[a]
	return ok && e.from == from
}

// Actions returns the actions offered for a post in status s.
func Actions(s models.PostStatus) []Action {
	var out []Action
	for _, a := range []Action{ActionPublish, ActionArchive, ActionRestore} {
		if graph[a].from == s {
			out = append(out, a)
		}
	}
	return out
}

// Label returns the past-tense Korean verb shown after a successful action.
func (a Action) Label() string {
	switch a {
	case ActionPublish:
		return "게시"
	case ActionArchive:
		return "보관"
	case ActionRestore:
		return "복원"
	}
	return string(a)
}
