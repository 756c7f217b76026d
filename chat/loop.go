// Package chat implements the interactive read-one-line loop.
//
// One line of input is processed fully (request sent, reply printed) before
// the next line is read; the provider call is the only suspension point.
// Per-turn errors are printed and the loop resumes. Note that a failed turn
// still leaves the user's message in the session history (the request may
// have reached the server), which can surprise users retrying a message —
// a known rough edge.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"orchat/config"
	"orchat/provider"
	"orchat/session"
)

// SentinelCommand ends the loop. Exact match, checked before any request is
// issued, so quitting never touches the session.
const SentinelCommand = "quit"

const banner = "Chat with the LLM. Type your message and press Enter. Type 'quit' to exit."

// Loop reads lines from in and runs one conversation turn per line until the
// sentinel command or end of input. Only input read errors are returned;
// turn failures are reported to out and the loop continues.
func Loop(ctx context.Context, cfg *config.Config, sess *session.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, BannerStyle.Render(banner))

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(out, PromptStyle.Render(">")+" ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			// EOF ends the session like the sentinel does
			fmt.Fprintln(out)
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == SentinelCommand {
			return nil
		}

		reply, err := sess.Submit(ctx, line)
		if err != nil {
			fmt.Fprintln(out, ErrorStyle.Render(formatTurnError(err)))
			if config.DebugLog != nil {
				config.DebugLog.Printf("[Chat] turn failed: %v (history=%d)", err, sess.Len())
			}
			continue
		}

		if cfg.RenderMarkdown {
			reply = renderMarkdown(reply, cfg.WrapWidth)
		}
		fmt.Fprintln(out, LabelStyle.Render("LLM:")+" "+reply)

		if config.DebugLog != nil {
			config.DebugLog.Printf("[Chat] turn complete (history=%d)", sess.Len())
		}
	}
}

// formatTurnError maps the provider error taxonomy to one-line diagnostics.
func formatTurnError(err error) string {
	var protoErr *provider.ProtocolError
	if errors.As(err, &protoErr) {
		msg := fmt.Sprintf("Request failed with status: %d", protoErr.StatusCode)
		if protoErr.Body != "" {
			msg += "\nError details: " + protoErr.Body
		}
		return msg
	}

	var parseErr *provider.ParseError
	if errors.As(err, &parseErr) {
		return "Failed to parse response: " + parseErr.Reason
	}

	var transportErr *provider.TransportError
	if errors.As(err, &transportErr) {
		return "Error sending request: " + transportErr.Err.Error()
	}

	return "Error: " + err.Error()
}
