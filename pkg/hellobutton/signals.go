package hellobutton

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// NotifyShutdown returns a context that is cancelled by the first of sigs
// (SIGINT and SIGTERM when none are given). Every received signal writes
// "got signal[N]" to out, N being the signal number.
//
// The handler stays installed until the returned CancelFunc is called, so a
// repeated signal during teardown is reported instead of killing the process.
func NotifyShutdown(parent context.Context, out io.Writer, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	if len(sigs) == 0 {
		sigs = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}

	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	done := make(chan struct{})
	go forwardSignals(ch, done, out, cancel)

	var once sync.Once
	stop := func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
		cancel()
	}

	return ctx, stop
}

func forwardSignals(ch <-chan os.Signal, done <-chan struct{}, out io.Writer, cancel context.CancelFunc) {
	for {
		select {
		case sig := <-ch:
			fmt.Fprintf(out, "got signal[%d]\n", signalNumber(sig))
			cancel()
		case <-done:
			return
		}
	}
}

func signalNumber(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return int(s)
	}
	return -1
}
