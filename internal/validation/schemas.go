package validation

import (
	"github.com/sbilibin2017/gw-admin-console/internal/models"
)

// Field names of the editable user and post field sets.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldRole     = "role"
	FieldStatus   = "status"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldAuthor   = "author"
	FieldCategory = "category"
)

// User messages
const (
	MsgUsernameMin     = "사용자명은 최소 2자 이상이어야 합니다"
	MsgUsernameMax     = "사용자명은 최대 20자까지 입력 가능합니다"
	MsgUsernamePattern = "사용자명은 영문, 한글, 숫자, 언더스코어만 가능합니다"
	MsgEmailRequired   = "이메일은 필수입니다"
	MsgEmailInvalid    = "올바른 이메일 형식이 아닙니다"
	MsgRoleRequired    = "역할을 선택해주세요"
	MsgStatusRequired  = "상태를 선택해주세요"
)

// Post messages
const (
	MsgTitleRequired    = "제목은 필수입니다"
	MsgTitleMin         = "제목은 최소 5자 이상이어야 합니다"
	MsgTitleMax         = "제목은 최대 100자까지 입력 가능합니다"
	MsgContentMax       = "내용은 최대 5000자까지 입력 가능합니다"
	MsgAuthorRequired   = "작성자는 필수입니다"
	MsgAuthorMin        = "작성자명은 최소 2자 이상이어야 합니다"
	MsgAuthorMax        = "작성자명은 최대 50자까지 입력 가능합니다"
	MsgCategoryRequired = "카테고리를 선택해주세요"
)

// CreateUser validates the payload of a new user.
var CreateUser = NewSchema(
	func(v map[string]string) models.UserInput {
		return models.UserInput{
			Username: v[FieldUsername],
			Email:    v[FieldEmail],
			Role:     models.UserRole(v[FieldRole]),
			Status:   models.UserStatus(v[FieldStatus]),
		}
	},
	Field{Name: FieldUsername, Rules: []Rule{
		MinLen(2, MsgUsernameMin),
		MaxLen(20, MsgUsernameMax),
		Tag(TagUsername, MsgUsernamePattern),
	}},
	Field{Name: FieldEmail, Rules: []Rule{
		Required(MsgEmailRequired),
		Email(MsgEmailInvalid),
	}},
	Field{Name: FieldRole, Rules: []Rule{
		OneOf(MsgRoleRequired, string(models.RoleUser), string(models.RoleModerator), string(models.RoleAdmin)),
	}},
	Field{Name: FieldStatus, Rules: []Rule{
		OneOf(MsgStatusRequired, string(models.UserActive), string(models.UserInactive), string(models.UserSuspended)),
	}},
)

// UpdateUser is the same rule set as CreateUser; update always carries the
// full editable field set.
var UpdateUser = CreateUser

// CreatePost validates the payload of a new post. Any status is accepted.
var CreatePost = NewSchema(
	func(v map[string]string) models.PostInput {
		return models.PostInput{
			Title:    v[FieldTitle],
			Content:  v[FieldContent],
			Author:   v[FieldAuthor],
			Category: models.PostCategory(v[FieldCategory]),
			Status:   models.PostStatus(v[FieldStatus]),
		}
	},
	Field{Name: FieldTitle, Rules: []Rule{
		Required(MsgTitleRequired),
		MinLen(5, MsgTitleMin),
		MaxLen(100, MsgTitleMax),
	}},
	Field{Name: FieldContent, Rules: []Rule{
		MaxLen(5000, MsgContentMax),
	}},
	Field{Name: FieldAuthor, Rules: []Rule{
		Required(MsgAuthorRequired),
		MinLen(2, MsgAuthorMin),
		MaxLen(50, MsgAuthorMax),
	}},
	Field{Name: FieldCategory, Rules: []Rule{
		OneOf(MsgCategoryRequired, string(models.CategoryDevelopment), string(models.CategoryDesign), string(models.CategoryAccessibility)),
	}},
	Field{Name: FieldStatus, Rules: []Rule{
		OneOf(MsgStatusRequired, string(models.PostDraft), string(models.PostPublished), string(models.PostArchived)),
	}},
)

// UpdatePost is the same rule set as CreatePost. Status is checked for enum
// membership only; the lifecycle graph does not apply to updates.
var UpdatePost = CreatePost

// UserPayload converts a typed user back into a payload.
func UserPayload(in models.UserInput) Payload {
	return Payload{
		FieldUsername: in.Username,
		FieldEmail:    in.Email,
		FieldRole:     string(in.Role),
		FieldStatus:   string(in.Status),
	}
}

// PostPayload converts a typed post back into a payload.
func PostPayload(in models.PostInput) Payload {
	return Payload{
		FieldTitle:    in.Title,
		FieldContent:  in.Content,
		FieldAuthor:   in.Author,
		FieldCategory: string(in.Category),
		FieldStatus:   string(in.Status),
	}
}
