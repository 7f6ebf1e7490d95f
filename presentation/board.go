package presentation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/as3d12/instaboard/directory"
	"github.com/yuin/goldmark"
)

// Title heads every screen.
const Title = "InstaBoard - User Profiles"

// ErrUnknownCard is returned for a card id not in the current records.
var ErrUnknownCard = errors.New("unknown card")

// Board ties a directory to its display mode and card state.
type Board struct {
	Dir   *directory.State
	Mode  *DisplayMode
	Cards *Cards

	mu      sync.Mutex
	seenGen uint64
}

// NewBoard wires the collaborators together.
func NewBoard(dir *directory.State, mode *DisplayMode, cards *Cards) *Board {
	if mode == nil {
		mode = NewDisplayMode(false)
	}
	if cards == nil {
		cards = NewCards()
	}
	return &Board{Dir: dir, Mode: mode, Cards: cards}
}

// View returns the directory view after syncing card state with it.
func (b *Board) View() directory.View {
	v := b.Dir.View()
	b.sync(v)
	return v
}

// Like adds a like to a card shown in the current records.
func (b *Board) Like(id int) (int, error) {
	if err := b.requireCard(id); err != nil {
		return 0, err
	}
	return b.Cards.Like(id), nil
}

// ToggleEmail flips email visibility of a card shown in the current records.
func (b *Board) ToggleEmail(id int) (bool, error) {
	if err := b.requireCard(id); err != nil {
		return false, err
	}
	return b.Cards.ToggleEmail(id), nil
}

// Render writes the board for v as Markdown.
func (b *Board) Render(w io.Writer, v directory.View) error {
	b.sync(v)
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s %s\n\n", Title, b.Mode.Icon())

	switch v.Phase {
	case directory.InitialLoading:
		sb.WriteString("Loading users...\n")
	case directory.Error:
		fmt.Fprintf(&sb, "> %s\n\n**[Retry]**\n", escapeMarkdown(v.ErrorMessage))
	default:
		b.renderList(&sb, v)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderHTML writes the board for v as an HTML page.
func (b *Board) RenderHTML(w io.Writer, v directory.View) error {
	var md bytes.Buffer
	if err := b.Render(&md, v); err != nil {
		return err
	}
	var body bytes.Buffer
	if err := goldmark.Convert(md.Bytes(), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body class=\"%s\">\n%s</body>\n</html>\n",
		Title, b.Mode.Name(), body.String())
	return err
}

func (b *Board) renderList(sb *strings.Builder, v directory.View) {
	if v.HasQuery() {
		fmt.Fprintf(sb, "Search: `%s`\n\n", strings.ReplaceAll(v.Query, "`", "'"))
		if v.FilteredCount() == 0 {
			fmt.Fprintf(sb, "No users found matching \"%s\"\n\n", escapeMarkdown(v.Query))
		} else {
			fmt.Fprintf(sb, "Found %d user(s) matching \"%s\"\n\n", v.FilteredCount(), escapeMarkdown(v.Query))
		}
	} else {
		sb.WriteString("Search users by name...\n\n")
	}

	for _, r := range v.FilteredRecords {
		cs := b.Cards.Get(r.ID)
		name := escapeMarkdown(r.Name)
		fmt.Fprintf(sb, "### #%d %s\n\n", r.ID, name)
		fmt.Fprintf(sb, "![%s's profile](%s)\n\n", name, r.PictureURL)
		toggle := "Show Email"
		if cs.EmailVisible {
			fmt.Fprintf(sb, "%s\n\n", escapeMarkdown(r.Email))
			toggle = "Hide Email"
		}
		fmt.Fprintf(sb, "❤️ Like (%d) · %s\n\n", cs.Likes, toggle)
	}

	if !v.HasQuery() {
		if v.Phase == directory.AppendLoading {
			sb.WriteString("**Loading...**\n")
		} else {
			sb.WriteString("**[Load More]**\n")
		}
	}
}

// sync drops card state when a fresh load restarted the ids.
func (b *Board) sync(v directory.View) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v.Generation != b.seenGen {
		b.seenGen = v.Generation
		b.Cards.Reset()
	}
}

func (b *Board) requireCard(id int) error {
	v := b.View()
	for _, r := range v.Records {
		if r.ID == id {
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownCard, id)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`,
	"`", "\\`", "#", `\#`, "<", `\<`, ">", `\>`, "!", `\!`,
)

func escapeMarkdown(s string) string { return markdownEscaper.Replace(s) }
