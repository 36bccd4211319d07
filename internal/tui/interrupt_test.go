package tui

import (
	"testing"
	"time"
)

func TestChanInterrupts(t *testing.T) {
	ch := make(chan struct{}, 1)
	got, stop, err := ChanInterrupts(ch).Watch()
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	ch <- struct{}{}
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("interrupt not delivered")
	}
}

func TestSignalInterrupts_StopIsClean(t *testing.T) {
	ch, stop, err := SignalInterrupts{}.Watch()
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if ch == nil {
		t.Fatal("nil notification channel")
	}
	stop()
}
