package delayinput

import (
	"time"

	"github.com/billie-coop/delaytext/internal/tui/components/core"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// fakeTicker stands in for tea.Tick. Commands it returns fire immediately
// when run, so tests decide when "time passes" by running them.
type fakeTicker struct {
	delays []time.Duration
}

func (f *fakeTicker) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	f.delays = append(f.delays, d)
	return func() tea.Msg { return fn(time.Time{}) }
}

func (f *fakeTicker) option() Option {
	return WithTimerOptions(core.WithTicker(f.tick))
}

// recorder collects callback invocations.
type recorder struct {
	calls []string
}

func (r *recorder) record(v string) {
	r.calls = append(r.calls, v)
}

// drain runs cmd and any batched commands, returning the produced messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// firedMsgs keeps only timer messages.
func firedMsgs(msgs []tea.Msg) []tea.Msg {
	var out []tea.Msg
	for _, msg := range msgs {
		if _, ok := msg.(core.TimerFiredMsg); ok {
			out = append(out, msg)
		}
	}
	return out
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func keyCtrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}
