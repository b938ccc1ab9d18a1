// Package engine exposes the operation catalog of the pool-state engine.
// Every operation takes the affected state snapshots plus an explicit Clock,
// validates authority and gating, mutates the snapshots in place and returns
// the token deltas the hosting environment must settle. Nothing here performs
// I/O and nothing reads a wall clock.
package engine

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/access"
)

// Clock is the host-supplied time reference for one invocation.
type Clock = access.Clock

// Engine binds the operation catalog to a protocol admin identity. State is
// never held between invocations; the host owns persistence and atomicity.
type Engine struct {
	admin solanago.PublicKey
}

func NewEngine(admin solanago.PublicKey) *Engine {
	return &Engine{admin: admin}
}

func (e *Engine) isAdmin(sender solanago.PublicKey) bool {
	return sender.Equals(e.admin)
}
