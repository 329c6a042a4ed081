package validation

import (
	"strings"
	"testing"

	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() Payload {
	return Payload{
		"username": "john_doe",
		"email":    "john@example.com",
		"role":     "user",
		"status":   "active",
	}
}

func validPost() Payload {
	return Payload{
		"title":    "Hello World",
		"content":  "",
		"author":   "Jo",
		"category": "development",
		"status":   "draft",
	}
}

func with(p Payload, key string, value any) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	out[key] = value
	return out
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name      string
		payload   Payload
		wantField string
		wantMsg   string
	}{
		{name: "valid", payload: validUser()},
		{name: "hangul and underscore", payload: with(validUser(), "username", "홍길동_01")},
		{name: "username two chars", payload: with(validUser(), "username", "ab")},
		{name: "username twenty chars", payload: with(validUser(), "username", strings.Repeat("a", 20))},
		{name: "username too short", payload: with(validUser(), "username", "a"), wantField: "username", wantMsg: MsgUsernameMin},
		{name: "username empty", payload: with(validUser(), "username", ""), wantField: "username", wantMsg: MsgUsernameMin},
		{name: "username too long", payload: with(validUser(), "username", strings.Repeat("a", 21)), wantField: "username", wantMsg: MsgUsernameMax},
		{name: "username bad chars", payload: with(validUser(), "username", "john-doe"), wantField: "username", wantMsg: MsgUsernamePattern},
		{name: "username short and bad chars", payload: with(validUser(), "username", "-"), wantField: "username", wantMsg: MsgUsernameMin},
		{name: "email empty", payload: with(validUser(), "email", ""), wantField: "email", wantMsg: MsgEmailRequired},
		{name: "email missing at", payload: with(validUser(), "email", "john.example.com"), wantField: "email", wantMsg: MsgEmailInvalid},
		{name: "email without tld", payload: with(validUser(), "email", "john@example"), wantField: "email", wantMsg: MsgEmailInvalid},
		{name: "email with display name", payload: with(validUser(), "email", "John <john@example.com>"), wantField: "email", wantMsg: MsgEmailInvalid},
		{name: "email with hangul local part", payload: with(validUser(), "email", "홍길동@example.com"), wantField: "email", wantMsg: MsgEmailInvalid},
		{name: "email with one letter tld", payload: with(validUser(), "email", "a@b.c"), wantField: "email", wantMsg: MsgEmailInvalid},
		{name: "email with underscore in domain", payload: with(validUser(), "email", "john@exa_mple.com"), wantField: "email", wantMsg: MsgEmailInvalid},
		{name: "email with leading hyphen in domain", payload: with(validUser(), "email", "john@-example.com"), wantField: "email", wantMsg: MsgEmailInvalid},
		{name: "email with double dot", payload: with(validUser(), "email", "john..doe@example.com"), wantField: "email", wantMsg: MsgEmailInvalid},
		{name: "unknown role", payload: with(validUser(), "role", "root"), wantField: "role", wantMsg: MsgRoleRequired},
		{name: "unknown status", payload: with(validUser(), "status", "banned"), wantField: "status", wantMsg: MsgStatusRequired},
		{name: "non-string email", payload: with(validUser(), "email", 42), wantField: "email", wantMsg: MsgNotString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := CreateUser.Validate(tt.payload)
			if tt.wantField == "" {
				require.Nil(t, errs)
				assert.Equal(t, tt.payload["username"], got.Username)
				assert.Equal(t, tt.payload["email"], got.Email)
				return
			}
			require.NotNil(t, errs)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
			assert.Equal(t, models.UserInput{}, got)
		})
	}
}

func TestCreateUser_ScenarioTooShort(t *testing.T) {
	_, errs := CreateUser.Validate(Payload{
		"username": "a",
		"email":    "x@x.com",
		"role":     "user",
		"status":   "active",
	})
	assert.Equal(t, Errors{"username": MsgUsernameMin}, errs)
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name      string
		payload   Payload
		wantField string
		wantMsg   string
	}{
		{name: "valid", payload: validPost()},
		{name: "title five chars", payload: with(validPost(), "title", "Hello")},
		{name: "title hundred chars", payload: with(validPost(), "title", strings.Repeat("t", 100))},
		{name: "title hangul five chars", payload: with(validPost(), "title", "안녕하세요")},
		{name: "content 5000 chars", payload: with(validPost(), "content", strings.Repeat("c", 5000))},
		{name: "content missing", payload: func() Payload { p := validPost(); delete(p, "content"); return p }()},
		{name: "published on create", payload: with(validPost(), "status", "published")},
		{name: "title empty", payload: with(validPost(), "title", ""), wantField: "title", wantMsg: MsgTitleRequired},
		{name: "title four chars", payload: with(validPost(), "title", "Hell"), wantField: "title", wantMsg: MsgTitleMin},
		{name: "title two chars", payload: with(validPost(), "title", "Hi"), wantField: "title", wantMsg: MsgTitleMin},
		{name: "title 101 chars", payload: with(validPost(), "title", strings.Repeat("t", 101)), wantField: "title", wantMsg: MsgTitleMax},
		{name: "content 5001 chars", payload: with(validPost(), "content", strings.Repeat("c", 5001)), wantField: "content", wantMsg: MsgContentMax},
		{name: "author empty", payload: with(validPost(), "author", ""), wantField: "author", wantMsg: MsgAuthorRequired},
		{name: "author one char", payload: with(validPost(), "author", "J"), wantField: "author", wantMsg: MsgAuthorMin},
		{name: "author 51 chars", payload: with(validPost(), "author", strings.Repeat("a", 51)), wantField: "author", wantMsg: MsgAuthorMax},
		{name: "unknown category", payload: with(validPost(), "category", "marketing"), wantField: "category", wantMsg: MsgCategoryRequired},
		{name: "missing category", payload: func() Payload { p := validPost(); delete(p, "category"); return p }(), wantField: "category", wantMsg: MsgCategoryRequired},
		{name: "unknown status", payload: with(validPost(), "status", "deleted"), wantField: "status", wantMsg: MsgStatusRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := CreatePost.Validate(tt.payload)
			if tt.wantField == "" {
				require.Nil(t, errs)
				assert.Equal(t, tt.payload["title"], got.Title)
				return
			}
			require.NotNil(t, errs)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
		})
	}
}

func TestCreatePost_MultipleFields(t *testing.T) {
	_, errs := CreatePost.Validate(Payload{"title": "Hi", "author": "", "category": "x", "status": "draft"})
	assert.Equal(t, Errors{
		"title":    MsgTitleMin,
		"author":   MsgAuthorRequired,
		"category": MsgCategoryRequired,
	}, errs)
	assert.True(t, errs.HasErrors())
	assert.Equal(t, "author: 작성자는 필수입니다; category: 카테고리를 선택해주세요; title: 제목은 최소 5자 이상이어야 합니다", errs.Error())
}

func TestCreatePost_TypedRecord(t *testing.T) {
	got, errs := CreatePost.Validate(validPost())
	require.Nil(t, errs)
	assert.Equal(t, models.PostInput{
		Title:    "Hello World",
		Content:  "",
		Author:   "Jo",
		Category: models.CategoryDevelopment,
		Status:   models.PostDraft,
	}, got)
}

func TestUpdateSchemasShareRules(t *testing.T) {
	assert.Equal(t, CreateUser.Fields(), UpdateUser.Fields())
	assert.Equal(t, CreatePost.Fields(), UpdatePost.Fields())

	// no field becomes optional on update
	_, errs := UpdatePost.Validate(Payload{"title": "Hello World"})
	assert.Contains(t, errs, "author")
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "status")
}

func TestPayloadRoundTrip(t *testing.T) {
	in := models.UserInput{Username: "관리자", Email: "admin@example.com", Role: models.RoleAdmin, Status: models.UserSuspended}
	got, errs := UpdateUser.Validate(UserPayload(in))
	require.Nil(t, errs)
	assert.Equal(t, in, got)

	post := models.PostInput{Title: "Accessible forms", Content: "body", Author: "Kim", Category: models.CategoryAccessibility, Status: models.PostArchived}
	gotPost, errs := UpdatePost.Validate(PostPayload(post))
	require.Nil(t, errs)
	assert.Equal(t, post, gotPost)
}
