package lifecycle

import (
	"testing"

	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/stretchr/testify/assert"
)

var (
	statuses = []models.PostStatus{models.PostDraft, models.PostPublished, models.PostArchived}
	actions  = []Action{ActionPublish, ActionArchive, ActionRestore}
)

func TestNext(t *testing.T) {
	legal := map[models.PostStatus]map[Action]models.PostStatus{
		models.PostDraft:     {ActionPublish: models.PostPublished},
		models.PostPublished: {ActionArchive: models.PostArchived},
		models.PostArchived:  {ActionRestore: models.PostDraft},
	}

	for _, from := range statuses {
		for _, a := range actions {
			t.Run(string(from)+"/"+string(a), func(t *testing.T) {
				to, err := Next(from, a)
				want, ok := legal[from][a]
				if ok {
					assert.NoError(t, err)
					assert.Equal(t, want, to)
					assert.True(t, Allowed(from, a))
					return
				}
				assert.ErrorIs(t, err, ErrTransitionNotAllowed)
				assert.Empty(t, to)
				assert.False(t, Allowed(from, a))
			})
		}
	}
}

func TestNext_UnknownAction(t *testing.T) {
	_, err := Next(models.PostDraft, Action("delete"))
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.False(t, Allowed(models.PostDraft, Action("delete")))
}

func TestActions(t *testing.T) {
	assert.Equal(t, []Action{ActionPublish}, Actions(models.PostDraft))
	assert.Equal(t, []Action{ActionArchive}, Actions(models.PostPublished))
	assert.Equal(t, []Action{ActionRestore}, Actions(models.PostArchived))
	assert.Empty(t, Actions(models.PostStatus("unknown")))
}

func TestPublishTwice(t *testing.T) {
	status, err := Next(models.PostDraft, ActionPublish)
	assert.NoError(t, err)

	_, err = Next(status, ActionPublish)
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
}

func TestParseAction(t *testing.T) {
	for _, a := range actions {
		got, err := ParseAction(string(a))
		assert.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAction("unpublish")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "게시", ActionPublish.Label())
	assert.Equal(t, "보관", ActionArchive.Label())
	assert.Equal(t, "복원", ActionRestore.Label())
}
