package ui

import (
	"testing"

	"torus-life/internal/sim"
)

func TestStatusLine(t *testing.T) {
	cases := []struct {
		st   sim.Status
		want string
	}{
		{sim.Status{State: sim.Paused}, "PAUSED  gen 0  live 0"},
		{sim.Status{State: sim.Playing, Generation: 12, Live: 34}, "PLAYING  gen 12  live 34"},
		{sim.Status{State: sim.Paused, Generation: 3, Live: 5, Pending: true}, "PAUSED  gen 3  live 5  step pending"},
	}
	for _, tc := range cases {
		if got := StatusLine(tc.st); got != tc.want {
			t.Fatalf("StatusLine(%+v) = %q, expected %q", tc.st, got, tc.want)
		}
	}
}
