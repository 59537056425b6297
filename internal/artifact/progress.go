// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package artifact

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type progressMsg float64

type progressDoneMsg struct{}

// progressModel renders a single progress bar while an artifact streams to
// disk.
type progressModel struct {
	bar     progress.Model
	percent float64
}

func newProgressModel() progressModel {
	return progressModel{
		bar: progress.New(progress.WithDefaultGradient()),
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.percent = float64(msg)
		return m, nil
	case progressDoneMsg:
		m.percent = 1
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4 //nolint:mnd
		return m, nil
	}
	return m, nil
}

func (m progressModel) View() string {
	return m.bar.ViewAs(m.percent) + "\n"
}

// progressWriter reports copy progress as a fraction of total.
type progressWriter struct {
	total   int64
	written int64
	send    func(float64)
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	if w.total > 0 {
		w.send(float64(w.written) / float64(w.total))
	}
	return len(p), nil
}

// copyWithProgress copies src to dst while driving a bubbletea progress bar
// on stderr. The copy itself runs in a goroutine so the UI loop can own the
// calling goroutine.
func copyWithProgress(dst io.Writer, src io.Reader, total int64) (int64, error) {
	p := tea.NewProgram(newProgressModel(), tea.WithOutput(os.Stderr))

	type result struct {
		n   int64
		err error
	}
	done := make(chan result, 1)

	go func() {
		pw := &progressWriter{
			total: total,
			send:  func(f float64) { p.Send(progressMsg(f)) },
		}
		n, err := io.Copy(dst, io.TeeReader(src, pw))
		p.Send(progressDoneMsg{})
		done <- result{n: n, err: err}
	}()

	// A UI failure must not fail the download; the copy goroutine owns the
	// real result.
	_, _ = p.Run()

	r := <-done
	return r.n, r.err
}
