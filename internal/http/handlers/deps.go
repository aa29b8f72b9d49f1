package handlers

import (
	"database/sql"
	"sync"

	intconfig "travelease/internal/config"
	"travelease/internal/distance"
	"travelease/internal/gateway"
	"travelease/internal/idempotency"
)

// Deps carries the process-wide collaborators handlers need beyond the
// shared DB handle.
type Deps struct {
	JWTSecret []byte
	Gateway   gateway.Client
	Idem      idempotency.Store
	Estimator distance.Estimator
}

var (
	depsMu sync.RWMutex
	deps   Deps
)

// Configure stores handler dependencies. Called once from the router.
func Configure(d Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = d
}

func getDeps() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

func db() *sql.DB {
	return intconfig.DB
}
