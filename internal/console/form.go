package console

import (
	"maps"

	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/sbilibin2017/gw-admin-console/internal/validation"
)

// Form is the state of one create or edit form: the current field values
// and the messages of the last failed validation.
type Form struct {
	Values validation.Payload
	Errors validation.Errors
}

func (f Form) clone() Form {
	return Form{Values: maps.Clone(f.Values), Errors: maps.Clone(f.Errors)}
}

func (f *Form) merge(p validation.Payload) {
	for k, v := range p {
		f.Values[k] = v
	}
}

func defaultUserForm() Form {
	return Form{Values: validation.UserPayload(models.UserInput{
		Role:   models.RoleUser,
		Status: models.UserActive,
	})}
}

func defaultPostForm() Form {
	return Form{Values: validation.PostPayload(models.PostInput{
		Category: models.CategoryDevelopment,
		Status:   models.PostDraft,
	})}
}

// forms groups the four forms of the page. They are only ever replaced
// together.
type forms struct {
	createUser Form
	updateUser Form
	createPost Form
	updatePost Form
}

func defaultForms() forms {
	return forms{
		createUser: defaultUserForm(),
		updateUser: defaultUserForm(),
		createPost: defaultPostForm(),
		updatePost: defaultPostForm(),
	}
}

func (f *forms) create(kind models.EntityKind) *Form {
	if kind == models.KindUser {
		return &f.createUser
	}
	return &f.createPost
}

func (f *forms) update(kind models.EntityKind) *Form {
	if kind == models.KindUser {
		return &f.updateUser
	}
	return &f.updatePost
}

func (f *forms) resetCreate(kind models.EntityKind) {
	if kind == models.KindUser {
		f.createUser = defaultUserForm()
		return
	}
	f.createPost = defaultPostForm()
}

func (f *forms) resetUpdate(kind models.EntityKind) {
	if kind == models.KindUser {
		f.updateUser = defaultUserForm()
		return
	}
	f.updatePost = defaultPostForm()
}
