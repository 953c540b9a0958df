package handler

import (
	"fmt"
	"strings"

	"lawlex/internal/catalog"
	"lawlex/internal/domain"
	"lawlex/internal/search"

	tele "gopkg.in/telebot.v3"
)

const listPreviewLen = 60

// Inline keyboard buttons
var (
	btnBrowse = tele.Btn{
		Unique: "browse",
		Text:   "🔎 Browse",
	}
	btnFilter = tele.Btn{
		Unique: "filter",
		Text:   "🏷 Filter",
	}
	btnReset = tele.Btn{
		Unique: "reset",
		Text:   "♻️ Reset",
	}
	btnResults = tele.Btn{
		Unique: "results",
		Text:   "◀️ Results",
	}
	btnAdd = tele.Btn{
		Unique: "add",
		Text:   "➕ Add term",
	}
	btnExport = tele.Btn{
		Unique: "export",
		Text:   "📤 Export",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnBrowse, btnFilter),
		menu.Row(btnAdd, btnExport),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

func mainMenuText(total int) string {
	return fmt.Sprintf(
		"⚖️ Myanmar-English Law Lexicon\n\n%d legal terms loaded.\nSend any word to search, or choose an action:",
		total,
	)
}

func typeBadge(t domain.Type) string {
	if t == "" {
		return "-"
	}
	return string(t)
}

// renderResults builds the paginated list of the displayed set
func renderResults(view search.View, page, pageSize int) (string, *tele.ReplyMarkup) {
	entries, page, totalPages := search.Page(view, page, pageSize)

	var b strings.Builder
	if view.Filtered() {
		fmt.Fprintf(&b, "🔎 %d of %d terms found", view.Count, view.Total)
	} else {
		fmt.Fprintf(&b, "📚 %d terms", view.Total)
	}
	if view.Query != "" {
		fmt.Fprintf(&b, "\nQuery: %q", view.Query)
	}
	if view.Category != domain.CategoryAll {
		fmt.Fprintf(&b, "\nCategory: %s", view.Category.Label())
	}
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString("No terms match. Try another word or reset the filters.")
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	offset := (page - 1) * pageSize
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s (%s) — %s\n",
			offset+i+1,
			e.Term.Word,
			typeBadge(e.Term.Type),
			search.Truncate(e.Term.Definition, listPreviewLen),
		)
		btnText := fmt.Sprintf("%d. %s", offset+i+1, e.Term.Word)
		rows = append(rows, markup.Row(markup.Data(btnText, termData(e.ID))))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("page_%d", page-1)))
		}
		navRow = append(navRow, markup.Data(fmt.Sprintf("%d/%d", page, totalPages), fmt.Sprintf("page_%d", page)))
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("page_%d", page+1)))
		}
		rows = append(rows, navRow)
	}

	rows = append(rows, markup.Row(btnFilter, btnReset), markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return strings.TrimRight(b.String(), "\n"), markup
}

// renderCategories builds the category picker, marking the current one
func renderCategories(current domain.Category) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	row := tele.Row{}
	for _, c := range domain.Categories {
		label := c.Label()
		if c == current {
			label = "• " + label
		}
		row = append(row, markup.Data(label, "cat_"+string(c)))
	}
	markup.Inline(row, markup.Row(btnResults))
	return "🏷 Choose a category:", markup
}

// renderTerm builds the detail card of a single term
func renderTerm(entry catalog.Entry) (string, *tele.ReplyMarkup) {
	text := termCard(entry.Term)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("✏️ Edit", fmt.Sprintf("edit_%d", entry.ID)),
			markup.Data("🗑 Delete", fmt.Sprintf("del_%d", entry.ID)),
		),
		markup.Row(btnResults),
	)
	return text, markup
}

func termCard(term domain.Term) string {
	return fmt.Sprintf(
		"📖 %s\n\nType: %s\nDirection: English → Myanmar\n\n%s",
		term.Word,
		term.Type.Label(),
		term.Definition,
	)
}

// renderDeleteConfirm asks for confirmation before deleting
func renderDeleteConfirm(entry catalog.Entry) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("✅ Yes, delete", fmt.Sprintf("delok_%d", entry.ID)),
		markup.Data("↩️ No", termData(entry.ID)),
	))
	return fmt.Sprintf("Are you sure you want to delete %q?", entry.Term.Word), markup
}

// typeMarkup offers the grammatical types while adding or editing
func typeMarkup(editing bool) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	row := tele.Row{}
	for _, t := range domain.KnownTypes {
		row = append(row, markup.Data(t.Label(), "type_"+string(t)))
	}
	rows := []tele.Row{row, markup.Row(markup.Data("🤖 Detect", "type_auto"))}
	if editing {
		rows = append(rows, markup.Row(markup.Data("Keep current", "type_keep")))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)
	return markup
}

func termData(id int64) string {
	return fmt.Sprintf("term_%d", id)
}
