// Package console holds the state of the management page: the active entity
// kind, its list, the create and edit forms, and the result banners.
package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-admin-console/internal/lifecycle"
	"github.com/sbilibin2017/gw-admin-console/internal/logger"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/sbilibin2017/gw-admin-console/internal/validation"
)

//go:generate mockgen -source=page.go -destination=page_mock.go -package=console

// Banner and prompt texts
const (
	MsgUserCreated   = "사용자가 생성되었습니다"
	MsgPostCreated   = "게시글이 생성되었습니다"
	MsgUserUpdated   = "사용자가 수정되었습니다"
	MsgPostUpdated   = "게시글이 수정되었습니다"
	MsgDeleted       = "삭제되었습니다"
	MsgLoadFailed    = "데이터를 불러오는데 실패했습니다"
	MsgCreateFailed  = "생성에 실패했습니다"
	MsgUpdateFailed  = "수정에 실패했습니다"
	MsgDeleteFailed  = "삭제에 실패했습니다"
	MsgActionFailed  = "작업에 실패했습니다"
	PromptDelete     = "정말 삭제하시겠습니까?"
	transitionSuffix = "되었습니다"
)

var (
	// ErrKindMismatch is returned by Edit for an entity of the inactive kind.
	ErrKindMismatch = errors.New("entity kind does not match the active page")
	// ErrActionNotAvailable is returned by Transition when the action is not
	// offered for the post, or the page is not showing posts.
	ErrActionNotAvailable = errors.New("action not available")
	// ErrUnknownKind is returned by Switch for anything but user or post.
	ErrUnknownKind = errors.New("unknown entity kind")
)

// UserCollaborator performs user CRUD.
type UserCollaborator interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, in models.UserInput) (*models.User, error)
	Update(ctx context.Context, id int64, in models.UserInput) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// PostCollaborator performs post CRUD and lifecycle transitions.
type PostCollaborator interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, in models.PostInput) (*models.Post, error)
	Update(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
	Publish(ctx context.Context, id int64) (*models.Post, error)
	Archive(ctx context.Context, id int64) (*models.Post, error)
	Restore(ctx context.Context, id int64) (*models.Post, error)
}

// Confirmer asks the operator a yes/no question.
type Confirmer func(prompt string) bool

// serverMessager is implemented by errors carrying a message for the operator.
type serverMessager interface {
	ServerMessage() string
}

// Page is the management page state. It is not safe for concurrent use.
type Page struct {
	users   UserCollaborator
	posts   PostCollaborator
	confirm Confirmer

	kind       models.EntityKind
	items      []models.Entity
	forms      forms
	createOpen bool
	editOpen   bool
	selected   models.Entity
	success    string
	failure    string
}

// NewPage creates a page showing posts. Nothing is loaded until Load or
// Switch is called.
func NewPage(users UserCollaborator, posts PostCollaborator, confirm Confirmer) *Page {
	return &Page{
		users:   users,
		posts:   posts,
		confirm: confirm,
		kind:    models.KindPost,
		forms:   defaultForms(),
	}
}

// Kind returns the active entity kind.
func (p *Page) Kind() models.EntityKind { return p.kind }

// Items returns the loaded entities of the active kind.
func (p *Page) Items() []models.Entity { return p.items }

// CreateOpen reports whether the create modal is open.
func (p *Page) CreateOpen() bool { return p.createOpen }

// EditOpen reports whether the edit modal is open.
func (p *Page) EditOpen() bool { return p.editOpen }

// Selected returns the entity being edited, if any.
func (p *Page) Selected() models.Entity { return p.selected }

// CreateForm returns a copy of the create form of the active kind.
func (p *Page) CreateForm() Form { return p.forms.create(p.kind).clone() }

// EditForm returns a copy of the edit form of the active kind.
func (p *Page) EditForm() Form { return p.forms.update(p.kind).clone() }

// Success returns the success banner, empty when hidden.
func (p *Page) Success() string { return p.success }

// Failure returns the error banner, empty when hidden.
func (p *Page) Failure() string { return p.failure }

// DismissSuccess hides the success banner.
func (p *Page) DismissSuccess() { p.success = "" }

// DismissFailure hides the error banner.
func (p *Page) DismissFailure() { p.failure = "" }

// Switch changes the active kind. All four forms are reset together, both
// modals close and the selection is cleared before the new list is loaded.
func (p *Page) Switch(ctx context.Context, kind models.EntityKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	p.kind = kind
	p.items = nil
	p.forms = defaultForms()
	p.createOpen = false
	p.editOpen = false
	p.selected = nil

	p.Load(ctx)
	return nil
}

// Load replaces the list with a fresh copy from the collaborator. On failure
// the previous list is kept and the error banner is shown.
func (p *Page) Load(ctx context.Context) {
	var (
		items []models.Entity
		err   error
	)
	switch p.kind {
	case models.KindUser:
		var users []models.User
		users, err = p.users.List(ctx)
		items = models.UsersToEntities(users)
	case models.KindPost:
		var posts []models.Post
		posts, err = p.posts.List(ctx)
		items = models.PostsToEntities(posts)
	}
	if err != nil {
		logger.Log.Warnw("failed to load list", "kind", p.kind, "err", err)
		p.failure = MsgLoadFailed
		return
	}
	p.items = items
}

// OpenCreate opens the create modal.
func (p *Page) OpenCreate() { p.createOpen = true }

// CloseCreate closes the create modal. Form values are kept.
func (p *Page) CloseCreate() { p.createOpen = false }

// CloseEdit closes the edit modal and clears the selection.
func (p *Page) CloseEdit() {
	p.editOpen = false
	p.selected = nil
}

// SubmitCreate merges payload into the create form and submits it. It
// returns true when the entity was created. Validation failures are stored
// on the form and no call is issued.
func (p *Page) SubmitCreate(ctx context.Context, payload validation.Payload) bool {
	form := p.forms.create(p.kind)
	form.merge(payload)

	var (
		msg string
		err error
	)
	switch p.kind {
	case models.KindUser:
		in, errs := validation.CreateUser.Validate(form.Values)
		if errs != nil {
			form.Errors = errs
			return false
		}
		_, err = p.users.Create(ctx, in)
		msg = MsgUserCreated
	case models.KindPost:
		in, errs := validation.CreatePost.Validate(form.Values)
		if errs != nil {
			form.Errors = errs
			return false
		}
		_, err = p.posts.Create(ctx, in)
		msg = MsgPostCreated
	}
	form.Errors = nil

	if err != nil {
		p.fail("create", err, MsgCreateFailed)
		return false
	}

	p.Load(ctx)
	p.createOpen = false
	p.forms.resetCreate(p.kind)
	p.success = msg
	return true
}

// Edit selects entity and pre-fills the edit form with its editable fields.
func (p *Page) Edit(entity models.Entity) error {
	if entity == nil || entity.EntityKind() != p.kind {
		return ErrKindMismatch
	}

	form := p.forms.update(p.kind)
	switch e := entity.(type) {
	case models.User:
		*form = Form{Values: validation.UserPayload(e.Input())}
	case models.Post:
		*form = Form{Values: validation.PostPayload(e.Input())}
	}

	p.selected = entity
	p.editOpen = true
	return nil
}

// SubmitEdit merges payload into the edit form and submits it for the
// selected entity. Without a selection it does nothing and returns false.
func (p *Page) SubmitEdit(ctx context.Context, payload validation.Payload) bool {
	if p.selected == nil {
		return false
	}

	id := p.selected.EntityID()
	form := p.forms.update(p.kind)
	form.merge(payload)

	var (
		msg string
		err error
	)
	switch p.kind {
	case models.KindUser:
		in, errs := validation.UpdateUser.Validate(form.Values)
		if errs != nil {
			form.Errors = errs
			return false
		}
		_, err = p.users.Update(ctx, id, in)
		msg = MsgUserUpdated
	case models.KindPost:
		in, errs := validation.UpdatePost.Validate(form.Values)
		if errs != nil {
			form.Errors = errs
			return false
		}
		_, err = p.posts.Update(ctx, id, in)
		msg = MsgPostUpdated
	}
	form.Errors = nil

	if err != nil {
		p.fail("update", err, MsgUpdateFailed)
		return false
	}

	p.Load(ctx)
	p.editOpen = false
	p.forms.resetUpdate(p.kind)
	p.selected = nil
	p.success = msg
	return true
}

// Delete removes entity id of the active kind after operator confirmation.
// Declining issues no call and changes nothing.
func (p *Page) Delete(ctx context.Context, id int64) {
	if p.confirm == nil || !p.confirm(PromptDelete) {
		return
	}

	var err error
	switch p.kind {
	case models.KindUser:
		err = p.users.Delete(ctx, id)
	case models.KindPost:
		err = p.posts.Delete(ctx, id)
	}
	if err != nil {
		p.fail("delete", err, MsgDeleteFailed)
		return
	}

	p.Load(ctx)
	p.success = MsgDeleted
}

// Transition applies action to post id. The action must be offered for the
// post's current status in the loaded list; otherwise no call is issued.
func (p *Page) Transition(ctx context.Context, id int64, action lifecycle.Action) error {
	if p.kind != models.KindPost {
		return ErrActionNotAvailable
	}
	post, ok := p.findPost(id)
	if !ok || !lifecycle.Allowed(post.Status, action) {
		return ErrActionNotAvailable
	}

	var err error
	switch action {
	case lifecycle.ActionPublish:
		_, err = p.posts.Publish(ctx, id)
	case lifecycle.ActionArchive:
		_, err = p.posts.Archive(ctx, id)
	case lifecycle.ActionRestore:
		_, err = p.posts.Restore(ctx, id)
	}
	if err != nil {
		p.fail(string(action), err, MsgActionFailed)
		return nil
	}

	p.Load(ctx)
	p.success = action.Label() + transitionSuffix
	return nil
}

// Find returns the loaded entity with id.
func (p *Page) Find(id int64) (models.Entity, bool) {
	for _, e := range p.items {
		if e.EntityID() == id {
			return e, true
		}
	}
	return nil, false
}

func (p *Page) findPost(id int64) (models.Post, bool) {
	e, ok := p.Find(id)
	if !ok {
		return models.Post{}, false
	}
	post, ok := e.(models.Post)
	return post, ok
}

func (p *Page) fail(op string, err error, fallback string) {
	logger.Log.Warnw("operation failed", "op", op, "kind", p.kind, "err", err)

	var sm serverMessager
	if errors.As(err, &sm) && sm.ServerMessage() != "" {
		p.failure = sm.ServerMessage()
		return
	}
	p.failure = fallback
}
