// Command distbfs-demo is a thin embedder exercising the distbfs engine
// end to end: load an edge list, build a graph, run level and parent BFS
// from a source, print a summary. It is not the benchmark driver spec.md
// places out of scope (no timing, no CSV, no RMAT) — just enough to show
// the engine wired together (spec §9).
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tingshowliu/distbfs/bfs"
	"github.com/tingshowliu/distbfs/graph"
	"github.com/tingshowliu/distbfs/locale"
	"github.com/tingshowliu/distbfs/mtxio"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s graph.mtx|graph.bin [source] [nodes]\n", os.Args[0])
		os.Exit(1)
	}
	path := os.Args[1]

	source := 0
	if len(os.Args) >= 3 {
		s, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("invalid source argument")
		}
		source = s
	}

	nodes := 4
	if len(os.Args) >= 4 {
		n, err := strconv.Atoi(os.Args[3])
		if err != nil {
			log.Fatal().Err(err).Msg("invalid node count argument")
		}
		nodes = n
	}

	src, dst, err := loadEdges(path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("loading edge list")
	}

	topo := locale.NewTopology(nodes)
	builder := graph.NewBuilder(topo, graph.WithLogger(log))
	ecg, err := builder.Build(src, dst)
	if err != nil {
		log.Fatal().Err(err).Msg("building graph")
	}
	log.Info().Int("vertices", ecg.NumVertices()).Int("edges", ecg.NumEdges()).Msg("graph built")

	ctx := context.Background()
	vcg, err := graph.NewVertexCentricGraph(ctx, ecg)
	if err != nil {
		log.Fatal().Err(err).Msg("deriving vertex-centric view")
	}

	if source < 0 || source >= vcg.NumVertices() {
		log.Fatal().Int("source", source).Int("V", vcg.NumVertices()).Msg("source out of range")
	}

	level, err := bfs.BFSLevel(ctx, vcg, source, bfs.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("running level BFS")
	}
	parent, err := bfs.BFSParent(ctx, vcg, source, bfs.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("running parent BFS")
	}

	printSummary(vcg, level, parent, source)
}

func loadEdges(path string, log zerolog.Logger) (src, dst []int64, err error) {
	if strings.HasSuffix(path, ".bin") {
		offsets, edges, err := mtxio.ReadCSRBinary(path, mtxio.WithLogger(log))
		if err != nil {
			return nil, nil, err
		}
		return csrToEdgeList(offsets, edges)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return mtxio.ReadCoordinate(f, mtxio.WithLogger(log))
}

// csrToEdgeList flattens a CSR adjacency into a (src,dst) arc list.
func csrToEdgeList(offsets []uint64, edges []uint32) (src, dst []int64, err error) {
	src = make([]int64, 0, len(edges))
	dst = make([]int64, 0, len(edges))
	for u := 0; u < len(offsets)-1; u++ {
		for _, v := range edges[offsets[u]:offsets[u+1]] {
			src = append(src, int64(u))
			dst = append(dst, int64(v))
		}
	}
	return src, dst, nil
}

func printSummary(g *graph.VertexCentricGraph, level, parent *locale.DistributedArray[int], source int) {
	v := g.NumVertices()
	levels := level.Snapshot()

	histogram := map[int]int{}
	reached := 0
	maxLevel := -1
	for _, lv := range levels {
		if lv < 0 {
			continue
		}
		reached++
		histogram[lv]++
		if lv > maxLevel {
			maxLevel = lv
		}
	}

	fmt.Printf("source (external id %d) = internal %d\n", g.ExternalID(source), source)
	fmt.Printf("reached %d / %d vertices, max level %d\n", reached, v, maxLevel)
	for lv := 0; lv <= maxLevel; lv++ {
		fmt.Printf("  level %3d: %6d vertices\n", lv, histogram[lv])
	}

	limit := 5
	if v < limit {
		limit = v
	}
	for u := 0; u < limit; u++ {
		fmt.Printf("vertex %d (external %d): level=%d parent=%d\n",
			u, g.ExternalID(u), level.At(u), parent.At(u))
	}
}
