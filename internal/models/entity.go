package models

// EntityKind names the resource type shown on the management page.
type EntityKind string

// Supported entity kinds
const (
	KindUser EntityKind = "user"
	KindPost EntityKind = "post"
)

// Valid reports whether k is a known entity kind.
func (k EntityKind) Valid() bool {
	return k == KindUser || k == KindPost
}

// Entity is either a User or a Post. The set is closed: only types in this
// package implement it, so a type switch over User and Post is exhaustive.
type Entity interface {
	EntityID() int64
	EntityKind() EntityKind
	entity()
}

func (u User) EntityID() int64        { return u.ID }
func (u User) EntityKind() EntityKind { return KindUser }
func (User) entity()                  {}

func (p Post) EntityID() int64        { return p.ID }
func (p Post) EntityKind() EntityKind { return KindPost }
func (Post) entity()                  {}

// UsersToEntities wraps users as entities.
func UsersToEntities(users []User) []Entity {
	out := make([]Entity, 0, len(users))
	for _, u := range users {
		out = append(out, u)
	}
	return out
}

// PostsToEntities wraps posts as entities.
func PostsToEntities(posts []Post) []Entity {
	out := make([]Entity, 0, len(posts))
	for _, p := range posts {
		out = append(out, p)
	}
	return out
}
