package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
	"github.com/murkotick/inventory-ledger/internal/app/product/ledger"
)

const helpText = `commands:
  list                  show products
  stats                 show totals
  refresh               reload from the server
  new                   open the form for a new product
  edit <id>             open the form for product <id>
  set <field> <value>   set make, model, description, quantity or unitPrice
  form                  show the open form
  submit                save the open form
  cancel                close the form without saving
  delete <id>           delete product <id>
  help                  show this text
  quit                  exit`

// terminal is the line-oriented presenter. It also serves as the store's
// Notifier and Confirmer, both of which block on the user.
type terminal struct {
	lines    <-chan string
	out      io.Writer
	currency string

	title lipgloss.Style
	label lipgloss.Style
	alert lipgloss.Style
}

func newTerminal(in io.Reader, out io.Writer, currency string) *terminal {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	return &terminal{
		lines:    lines,
		out:      out,
		currency: currency,
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:    lipgloss.NewStyle().Faint(true),
		alert:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// next blocks for one input line. ok is false on EOF or cancellation.
func (t *terminal) next(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-t.lines:
		return line, ok
	}
}

// Notify shows message and waits for the user to acknowledge it.
func (t *terminal) Notify(ctx context.Context, message string) {
	fmt.Fprintf(t.out, "\n%s\n(press Enter) ", t.alert.Render("! "+message))
	t.next(ctx)
}

// Confirm accepts only an explicit y or yes.
func (t *terminal) Confirm(ctx context.Context, prompt string) bool {
	fmt.Fprintf(t.out, "%s [y/N] ", prompt)
	line, ok := t.next(ctx)
	if !ok {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// run reads commands until quit, EOF or cancellation.
func (t *terminal) run(ctx context.Context, sess *ledger.Session) {
	t.renderStats(sess)
	t.renderRecords(sess)

	for {
		fmt.Fprint(t.out, "\n> ")
		line, ok := t.next(ctx)
		if !ok {
			return
		}
		if quit := t.dispatch(ctx, sess, line); quit {
			return
		}
	}
}

func (t *terminal) dispatch(ctx context.Context, sess *ledger.Session, line string) bool {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 3)
	arg := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	switch strings.ToLower(parts[0]) {
	case "":
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(t.out, helpText)
	case "list", "ls":
		t.renderRecords(sess)
	case "stats":
		t.renderStats(sess)
	case "refresh":
		if err := sess.Load(ctx); err == nil {
			t.renderStats(sess)
			t.renderRecords(sess)
		}
	case "new":
		sess.OpenCreate()
		t.renderForm(sess)
	case "edit":
		if err := sess.OpenEdit(domain.NewRecordID(arg(1))); err != nil {
			fmt.Fprintf(t.out, "%v\n", err)
			return false
		}
		t.renderForm(sess)
	case "set":
		if err := sess.SetField(arg(1), arg(2)); err != nil {
			fmt.Fprintf(t.out, "%v\n", err)
			return false
		}
		t.renderForm(sess)
	case "form":
		t.renderForm(sess)
	case "submit", "save":
		err := sess.Submit(ctx)
		if err != nil && !isReported(err) {
			fmt.Fprintf(t.out, "%v\n", err)
		}
		if !sess.Form().IsOpen() {
			t.renderStats(sess)
			t.renderRecords(sess)
		}
	case "cancel":
		if edited := sess.Form().EditedFields(); sess.Form().IsOpen() && len(edited) > 0 {
			fmt.Fprintf(t.out, "discarded changes to %s\n", strings.Join(edited, ", "))
		}
		sess.Cancel()
	case "delete", "rm":
		deleted, err := sess.Delete(ctx, domain.NewRecordID(arg(1)))
		if deleted || err != nil {
			t.renderStats(sess)
			t.renderRecords(sess)
		}
	default:
		fmt.Fprintf(t.out, "unknown command %q, try help\n", parts[0])
	}
	return false
}

// isReported reports whether the store already showed err to the user.
func isReported(err error) bool {
	var aerr *domain.ActionError
	return errors.As(err, &aerr)
}

func (t *terminal) renderStats(sess *ledger.Session) {
	st := sess.Stats()
	fmt.Fprintf(t.out, "%s %d   %s %d   %s %s\n",
		t.label.Render("Total Products"), st.Count,
		t.label.Render("Total Units"), st.TotalQuantity,
		t.label.Render("Total Value"), st.DisplayValue(t.currency))
}

func (t *terminal) renderRecords(sess *ledger.Session) {
	fmt.Fprintln(t.out, t.title.Render("Product Inventory"))
	if sess.IsLoading() {
		fmt.Fprintln(t.out, "loading...")
		return
	}
	records := sess.Records()
	if len(records) == 0 {
		fmt.Fprintln(t.out, "No products found. Use `new` to add your first product.")
		return
	}

	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMake\tModel\tDescription\tQuantity\tUnit Price\tTotal")
	for _, r := range records {
		fmt.Fprintf(tw, "#%s\t%s\t%s\t%s\t%d\t%s %s\t%s %s\n",
			r.ID, orNA(r.Make), orNA(r.Model), orNA(r.Description), r.Quantity,
			t.currency, domain.NewMoneyFromFloat(r.UnitPrice).Round2(),
			t.currency, r.TotalPrice.Money().Round2())
	}
	tw.Flush()
}

func (t *terminal) renderForm(sess *ledger.Session) {
	form := sess.Form()
	if !form.IsOpen() {
		fmt.Fprintln(t.out, "no form open")
		return
	}

	heading := "Add New Product"
	if rec, editing := form.ActiveRecord(); editing {
		heading = fmt.Sprintf("Edit Product #%s", rec.ID)
	}
	d := form.Draft()

	fmt.Fprintln(t.out, t.title.Render(heading))
	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	row := func(field string, value interface{}) {
		mark := ""
		if form.Edited(field) {
			mark = " *"
		}
		fmt.Fprintf(tw, "%s%s\t%v\n", field, mark, value)
	}
	row(domain.FieldMake, d.Make)
	row(domain.FieldModel, d.Model)
	row(domain.FieldDescription, d.Description)
	row(domain.FieldQuantity, d.Quantity)
	row(domain.FieldUnitPrice, d.UnitPrice)
	fmt.Fprintf(tw, "Total Price\t%s %s\n", t.currency, sess.LiveTotal())
	tw.Flush()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
