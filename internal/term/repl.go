package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/campusnexus/nexus/internal/app"
	"github.com/campusnexus/nexus/internal/i18n"
)

const helpText = `Commands:
  <question>             ask about your documents
  /tab <id>              chat, upload, analytics, graph, governance
  /lang [code]           en, hi, mr, es, fr, de (pick from a list if omitted)
  /upload <paths...>     upload files; globs like docs/**/*.pdf work
  /approve <id>          approve a pending document
  /reject <id> [reason]  reject a pending document
  /refresh               reload the current panel
  /help                  show this help
  /quit                  leave`

// REPL reads commands and questions until the input closes or /quit.
type REPL struct {
	coord  *app.Coordinator
	reader LineReader
	out    io.Writer
}

// NewREPL creates a session loop over coord.
func NewREPL(coord *app.Coordinator, reader LineReader, out io.Writer) *REPL {
	return &REPL{coord: coord, reader: reader, out: out}
}

// Run processes input lines synchronously. Each command completes before
// the next line is read.
func (r *REPL) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := r.reader.ReadLine(string(r.coord.State().Tab))
		if errors.Is(err, ErrClosed) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if quit := r.Handle(ctx, line); quit {
			return nil
		}
	}
}

// Handle executes one input line and reports whether the session should end.
func (r *REPL) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, "/") {
		if r.coord.State().Tab != app.TabChat {
			_ = r.coord.SwitchTab(ctx, app.TabChat)
		}
		r.coord.SendMessage(ctx, line)
		return false
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "/quit", "/exit", "/q":
		return true
	case "/help", "/?":
		fmt.Fprintln(r.out, helpText)
	case "/tab":
		if len(args) != 1 {
			r.usage("/tab <id>")
			return false
		}
		tab, err := app.ParseTab(args[0])
		if err != nil {
			r.fail(err)
			return false
		}
		_ = r.coord.SwitchTab(ctx, tab)
	case "/lang":
		if len(args) == 0 {
			if code, ok := r.chooseLanguage(); ok {
				r.coord.SetLanguage(code)
			}
			return false
		}
		if len(args) != 1 {
			r.usage("/lang [code]")
			return false
		}
		if !i18n.IsSupported(args[0]) {
			r.fail(fmt.Errorf("unsupported language %q, using %s", args[0], i18n.Name(i18n.DefaultLanguage)))
		}
		r.coord.SetLanguage(args[0])
	case "/upload":
		if len(args) == 0 {
			r.usage("/upload <paths...>")
			return false
		}
		files, err := ExpandFiles(args)
		if err != nil {
			r.fail(err)
			return false
		}
		if r.coord.State().Tab != app.TabUpload {
			_ = r.coord.SwitchTab(ctx, app.TabUpload)
		}
		r.coord.HandleFiles(ctx, files)
	case "/approve":
		if len(args) != 1 {
			r.usage("/approve <id>")
			return false
		}
		_ = r.coord.Approve(ctx, args[0])
	case "/reject":
		if len(args) == 0 {
			r.usage("/reject <id> [reason]")
			return false
		}
		if len(args) > 1 {
			_ = r.coord.RejectWithReason(ctx, args[0], strings.Join(args[1:], " "))
		} else {
			_ = r.coord.Reject(ctx, args[0])
		}
	case "/refresh":
		r.coord.Refresh(ctx)
	default:
		r.fail(fmt.Errorf("unknown command %s (try /help)", cmd))
	}
	return false
}

// chooseLanguage offers the supported languages when the reader can show a
// pick list.
func (r *REPL) chooseLanguage() (string, bool) {
	chooser, ok := r.reader.(Chooser)
	if !ok {
		r.usage("/lang <code>")
		return "", false
	}
	codes := i18n.Supported()
	items := make([]string, len(codes))
	for i, code := range codes {
		items[i] = fmt.Sprintf("%s (%s)", i18n.Name(code), code)
	}
	idx, err := chooser.Choose("Language", items)
	if err != nil {
		if !errors.Is(err, ErrClosed) {
			r.fail(err)
		}
		return "", false
	}
	return codes[idx], true
}

func (r *REPL) usage(u string) {
	fmt.Fprintf(r.out, "usage: %s\n", u)
}

func (r *REPL) fail(err error) {
	errorColor.Fprintf(r.out, "%v\n", err)
}
