package main

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"

	"go-indexed/pkg/indexed"
)

// ============================================================================
// DOMAIN LOGIC (EXAMPLE USAGE)
// ============================================================================

const (
	workspaceCount = 1_000
	shardCount     = 100_000
	regionCount    = 8
)

// Workspace has no meaningful zero value; an ID-less workspace is invalid.
type Workspace struct {
	ID     string
	Region int
}

// ============================================================================
// DEMONSTRATION
// ============================================================================

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	P := runtime.GOMAXPROCS(0)
	fmt.Printf("--- Building containers (Cores: %d) ---\n", P)
	startTime := time.Now()

	// 1. Dynamic-length build: a table of freshly-minted workspaces.
	// Every element is generated in place; no zero-value pre-pass.
	workspaces := indexed.Slice(workspaceCount, func(i int) Workspace {
		return Workspace{ID: uuid.NewString(), Region: i % regionCount}
	})
	log.Printf("built %d workspaces, first=%s", len(workspaces), workspaces[0].ID)

	// 2. Fixed-size 2D build: inter-region latency matrix.
	// ix[0] is the inner (destination) index, ix[1] the outer (source) index.
	latency := indexed.Array2[[regionCount][regionCount]float64, [regionCount]float64](
		func(ix [2]int) float64 {
			return 1.0 + math.Abs(float64(ix[1]-ix[0]))*0.25
		},
	)
	log.Printf("latency[0][%d]=%.2f latency[%d][0]=%.2f",
		regionCount-1, latency[0][regionCount-1], regionCount-1, latency[regionCount-1][0])

	// 3. Parallel build: shard fingerprints, one FNV hash per shard.
	fingerprints, err := indexed.ParallelSlice(ctx, shardCount, func(i int) (uint64, error) {
		h := fnv.New64a()
		fmt.Fprintf(h, "shard-%d", i)
		return h.Sum64(), nil
	}, indexed.WithParallelism[uint64](P))
	if err != nil {
		log.Fatalf("fingerprint build failed: %v", err)
	}
	log.Printf("built %d shard fingerprints", len(fingerprints))

	fmt.Printf("--- Done in %v ---\n", time.Since(startTime))
}
