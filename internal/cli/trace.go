package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/lydakis/kakui/internal/config"
	"github.com/lydakis/kakui/protocol"
	"github.com/lydakis/kakui/session"
	"github.com/lydakis/kakui/termsize"
)

// uiOptionsArgs renders the configured ui_options defaults as a startup
// command the editor applies before the first draw. Keys are sorted so the
// resulting argv is deterministic.
func uiOptionsArgs(options map[string]string) []string {
	if len(options) == 0 {
		return nil
	}
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("set global ui_options")
	for _, k := range keys {
		b.WriteString(" '")
		b.WriteString(strings.ReplaceAll(k+"="+options[k], "'", "''"))
		b.WriteString("'")
	}
	return []string{"-E", b.String()}
}

// runTrace spawns the editor and prints every incoming request until the
// editor exits or the user interrupts. startupKeys are sent once the
// session is up, after any keys from the config file.
func runTrace(editorArgs, startupKeys []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kakui: %v\n", err)
		return ExitErr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	args := append([]string{}, cfg.Editor.Args...)
	args = append(args, uiOptionsArgs(cfg.UIOptions)...)
	args = append(args, editorArgs...)

	sess, err := session.Start(ctx, session.Options{
		Command: cfg.Editor.Command,
		Args:    args,
		Env:     cfg.Editor.Env,
		Session: cfg.Session,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "kakui: %v\n", err)
		return ExitErr
	}
	defer sess.Close()

	keys := append(append([]string{}, cfg.StartupKeys...), startupKeys...)
	if len(keys) > 0 {
		if err := sess.Send(protocol.Keys(keys)); err != nil {
			fmt.Fprintf(os.Stderr, "kakui: sending startup keys: %v\n", err)
			return ExitErr
		}
	}

	out := termenv.NewOutput(os.Stdout)
	profile := out.Profile

	sizes := termsize.Watch(ctx, os.Stdout.Fd())

	for {
		select {
		case <-ctx.Done():
			return ExitOK

		case r, ok := <-sizes:
			if !ok {
				sizes = nil
				continue
			}
			if err := sess.Send(r); err != nil {
				fmt.Fprintf(os.Stderr, "kakui: sending resize: %v\n", err)
			}

		case err := <-sess.Errors():
			fmt.Fprintf(os.Stderr, "kakui: %v\n", err)

		case req, ok := <-sess.Requests():
			if !ok {
				if err := sess.Wait(); err != nil {
					fmt.Fprintf(os.Stderr, "kakui: editor: %v\n", err)
					return ExitErr
				}
				return ExitOK
			}
			fmt.Println(formatRequest(profile, req))
		}
	}
}
