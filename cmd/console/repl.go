package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/shlex"
	"github.com/sbilibin2017/gw-admin-console/internal/console"
	"github.com/sbilibin2017/gw-admin-console/internal/lifecycle"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/sbilibin2017/gw-admin-console/internal/validation"
)

const helpText = `commands:
  users | posts              switch the active list
  list                       show the list
  stats                      show the summary
  new                        open the create form
  create key=value ...       submit the create form
  edit <id>                  open the edit form for an item
  save key=value ...         submit the edit form
  cancel                     close the open form
  delete <id>                delete an item (asks for confirmation)
  publish|archive|restore <id>
  dismiss                    hide the banners
  help | quit`

const timeLayout = "2006-01-02 15:04"

var errQuit = errors.New("quit")

// repl reads commands line by line and drives a management page.
type repl struct {
	in   *bufio.Scanner
	out  io.Writer
	page *console.Page
}

// newREPL creates a repl. newPage receives the confirmer that reads the
// operator's answer from in.
func newREPL(in *bufio.Scanner, out io.Writer, newPage func(console.Confirmer) *console.Page) *repl {
	r := &repl{in: in, out: out}
	r.page = newPage(r.confirm)
	return r
}

func (r *repl) run(ctx context.Context) error {
	r.page.Load(ctx)
	r.render()
	r.prompt()

	for r.in.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		err := r.exec(ctx, r.in.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(r.out, "error:", err)
		}
		r.prompt()
	}
	return r.in.Err()
}

func (r *repl) prompt() {
	fmt.Fprintf(r.out, "[%s]> ", r.page.Kind())
}

func (r *repl) confirm(prompt string) bool {
	fmt.Fprintf(r.out, "%s (y/N) ", prompt)
	if !r.in.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(r.in.Text())) {
	case "y", "yes", "예":
		return true
	}
	return false
}

func (r *repl) exec(ctx context.Context, line string) error {
	args, err := splitArgs(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprintln(r.out, helpText)
		return nil
	case "users", "posts":
		if err := r.page.Switch(ctx, models.EntityKind(strings.TrimSuffix(cmd, "s"))); err != nil {
			return err
		}
		r.render()
	case "list":
		r.page.Load(ctx)
		r.render()
	case "stats":
		r.printStats()
	case "new":
		r.page.OpenCreate()
		r.printForm("create", r.page.CreateForm())
	case "create":
		payload, err := parseAssignments(rest)
		if err != nil {
			return err
		}
		if !r.page.SubmitCreate(ctx, payload) {
			r.printForm("create", r.page.CreateForm())
		}
		r.render()
	case "edit":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		e, ok := r.page.Find(id)
		if !ok {
			return fmt.Errorf("no %s with id %d", r.page.Kind(), id)
		}
		if err := r.page.Edit(e); err != nil {
			return err
		}
		r.printForm("edit", r.page.EditForm())
	case "save":
		if r.page.Selected() == nil {
			return errors.New("nothing selected, use edit <id> first")
		}
		payload, err := parseAssignments(rest)
		if err != nil {
			return err
		}
		if !r.page.SubmitEdit(ctx, payload) {
			r.printForm("edit", r.page.EditForm())
		}
		r.render()
	case "cancel":
		r.page.CloseCreate()
		r.page.CloseEdit()
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		r.page.Delete(ctx, id)
		r.render()
	case "publish", "archive", "restore":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		action, err := lifecycle.ParseAction(cmd)
		if err != nil {
			return err
		}
		if err := r.page.Transition(ctx, id, action); err != nil {
			return err
		}
		r.render()
	case "dismiss":
		r.page.DismissSuccess()
		r.page.DismissFailure()
	default:
		return fmt.Errorf("unknown command %q, type help", cmd)
	}
	return nil
}

func (r *repl) render() {
	if msg := r.page.Success(); msg != "" {
		fmt.Fprintf(r.out, "[OK] %s\n", msg)
	}
	if msg := r.page.Failure(); msg != "" {
		fmt.Fprintf(r.out, "[ERROR] %s\n", msg)
	}
	r.printTable()
}

func (r *repl) printTable() {
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	if r.page.Kind() == models.KindUser {
		fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tSTATUS\tCREATED\tLAST LOGIN")
	} else {
		fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCATEGORY\tSTATUS\tVIEWS\tCREATED\tACTIONS")
	}

	for _, row := range r.page.Rows() {
		switch e := row.Entity.(type) {
		case models.User:
			lastLogin := "-"
			if e.LastLogin != nil {
				lastLogin = e.LastLogin.Format(timeLayout)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				e.ID, e.Username, e.Email, e.Role, row.Badge, formatTime(e.CreatedAt), lastLogin)
		case models.Post:
			actions := make([]string, 0, len(row.Actions))
			for _, a := range row.Actions {
				actions = append(actions, string(a))
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				e.ID, e.Title, e.Author, e.Category, row.Badge, e.Views, formatTime(e.CreatedAt), strings.Join(actions, ","))
		}
	}
}

func (r *repl) printStats() {
	st := r.page.Stats()
	fmt.Fprintf(r.out, "전체: %d\n", st.Total)
	for _, s := range st.Items {
		fmt.Fprintf(r.out, "%s: %d\n", s.Label, s.Value)
	}
}

func (r *repl) printForm(name string, f console.Form) {
	fmt.Fprintf(r.out, "%s form:\n", name)

	var fields []string
	if r.page.Kind() == models.KindUser {
		fields = validation.CreateUser.Fields()
	} else {
		fields = validation.CreatePost.Fields()
	}

	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	for _, field := range fields {
		line := fmt.Sprintf("  %s\t%v", field, f.Values[field])
		if msg, ok := f.Errors[field]; ok {
			line += "\t! " + msg
		}
		fmt.Fprintln(tw, line)
	}
	tw.Flush()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.New("expected exactly one id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// parseAssignments turns key=value arguments into a payload.
func parseAssignments(args []string) (validation.Payload, error) {
	p := make(validation.Payload, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", a)
		}
		p[k] = v
	}
	return p, nil
}

// splitArgs splits line with shell quoting rules, so title="Hello World" is
// one argument.
func splitArgs(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parse command line: %w", err)
	}
	return args, nil
}
