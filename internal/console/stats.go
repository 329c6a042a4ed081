package console

import (
	"github.com/sbilibin2017/gw-admin-console/internal/lifecycle"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
)

// Stat is one labelled summary figure.
type Stat struct {
	Label string
	Value int64
}

// Stats summarises the loaded list.
type Stats struct {
	Total int
	Items []Stat
}

// Stats computes the summary of the active list. Users: 활성, 비활성, 정지,
// 관리자. Posts: 게시됨, 임시저장, 보관됨 and the sum of views.
func (p *Page) Stats() Stats {
	st := Stats{Total: len(p.items)}

	switch p.kind {
	case models.KindUser:
		var active, inactive, suspended, admins int64
		for _, e := range p.items {
			u, ok := e.(models.User)
			if !ok {
				continue
			}
			switch u.Status {
			case models.UserActive:
				active++
			case models.UserInactive:
				inactive++
			case models.UserSuspended:
				suspended++
			}
			if u.Role == models.RoleAdmin {
				admins++
			}
		}
		st.Items = []Stat{
			{Label: "활성", Value: active},
			{Label: "비활성", Value: inactive},
			{Label: "정지", Value: suspended},
			{Label: "관리자", Value: admins},
		}
	case models.KindPost:
		var published, drafts, archived, views int64
		for _, e := range p.items {
			post, ok := e.(models.Post)
			if !ok {
				continue
			}
			switch post.Status {
			case models.PostPublished:
				published++
			case models.PostDraft:
				drafts++
			case models.PostArchived:
				archived++
			}
			views += post.Views
		}
		st.Items = []Stat{
			{Label: "게시됨", Value: published},
			{Label: "임시저장", Value: drafts},
			{Label: "보관됨", Value: archived},
			{Label: "총 조회수", Value: views},
		}
	}
	return st
}

var badgeLabels = map[string]string{
	string(models.UserActive):    "활성",
	string(models.UserInactive):  "비활성",
	string(models.UserSuspended): "정지",
	string(models.PostPublished): "게시됨",
	string(models.PostDraft):     "임시저장",
	string(models.PostArchived):  "보관됨",
}

// BadgeLabel returns the display label of a user or post status. Unknown
// values are shown as is.
func BadgeLabel(status string) string {
	if l, ok := badgeLabels[status]; ok {
		return l
	}
	return status
}

// Row is one line of the list table.
type Row struct {
	Entity  models.Entity
	Badge   string
	Actions []lifecycle.Action
}

// Rows returns the loaded entities with their status badge and the
// lifecycle actions offered for each. Users never offer actions.
func (p *Page) Rows() []Row {
	rows := make([]Row, 0, len(p.items))
	for _, e := range p.items {
		switch v := e.(type) {
		case models.User:
			rows = append(rows, Row{Entity: v, Badge: BadgeLabel(string(v.Status))})
		case models.Post:
			rows = append(rows, Row{Entity: v, Badge: BadgeLabel(string(v.Status)), Actions: lifecycle.Actions(v.Status)})
		}
	}
	return rows
}
