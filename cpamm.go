package cpamm

import (
	"github.com/krazyTry/cpamm-go/engine"
)

// NewEngine creates the pool-state engine bound to a protocol admin identity.
//
// Example:
//
// eng := cpamm.NewEngine(adminKey)
//
// pool, amounts, _ := eng.InitializePool(creatorKey, initParams, clock)
//
// result, _ := eng.Swap(traderKey, swapParams, clock)
var NewEngine = engine.NewEngine

// Clock is the host-supplied time reference passed to every operation.
type Clock = engine.Clock

// Engine is the operation catalog; see the engine package for the methods.
type Engine = engine.Engine
