package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	randv2 "math/rand/v2"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/onezeroyl/DataStructure/lib/list"
	"github.com/onezeroyl/DataStructure/lib/xlog"
)

type student struct {
	score  float64
	member string
}

var students = []student{
	{90, "Alice"},
	{85, "Bob"},
	{95, "Charlie"},
	{88, "David"},
	{92, "Eve"},
	{87, "Frank"},
	{93, "Grace"},
}

func stringValCmp(i, j string) int64 {
	return int64(strings.Compare(i, j))
}

// dumpEntries renders the level-0 walk with each node's rank and lane count.
func dumpEntries(skl list.RankSkipList[float64, string]) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Member", "Score", "Node Levels"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	skl.Foreach(func(i int64, item list.SklIterationItem[float64, string]) bool {
		table.Append([]string{
			strconv.FormatInt(item.Rank(), 10),
			item.Val(),
			strconv.FormatFloat(item.Key(), 'f', -1, 64),
			strconv.FormatUint(uint64(item.NodeLevel()), 10),
		})
		return true
	})
	table.Render()
}

// dumpLanes renders one row per active level. A node shows up in every lane
// up to its own level count, so the chains rebuild from the level-0 walk.
func dumpLanes(skl list.RankSkipList[float64, string]) {
	chains := make([][]string, skl.Levels())
	skl.Foreach(func(i int64, item list.SklIterationItem[float64, string]) bool {
		for lvl := uint32(0); lvl < item.NodeLevel(); lvl++ {
			chains[lvl] = append(chains[lvl], item.Val())
		}
		return true
	})
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Level", "Chain"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for lvl := int(skl.Levels()) - 1; lvl >= 0; lvl-- {
		table.Append([]string{
			strconv.Itoa(lvl + 1),
			strings.Join(chains[lvl], " -> ") + " -> NIL",
		})
	}
	table.Render()
}

func runScenario(logger *zap.Logger, seed uint64) {
	skl := list.NewXRankSkl[float64, string](stringValCmp,
		list.WithSklRandLevelGen[float64, string](list.NewSeededSklRand(seed, seed>>1)),
	)
	for _, s := range students {
		skl.Insert(s.score, s.member)
	}
	logger.Info("inserted students", zap.Int("count", len(students)))
	dumpEntries(skl)
	dumpLanes(skl)

	if e := skl.Load(92, "Eve"); e != nil {
		logger.Info("found member", zap.String("member", e.Val()), zap.Float64("score", e.Key()))
	}
	if e := skl.Load(80, "John"); e == nil {
		logger.Info("member absent", zap.String("member", "John"))
	}

	logger.Info("rank query", zap.String("member", "Eve"), zap.Int64("rank", skl.Rank(92, "Eve")))
	for _, rank := range []int64{1, 3} {
		if e := skl.LoadByRank(rank); e != nil {
			logger.Info("rank holder",
				zap.Int64("rank", rank),
				zap.String("member", e.Val()),
				zap.Float64("score", e.Key()))
		}
	}

	removed := skl.Remove(88, "David")
	logger.Info("removed member", zap.String("member", "David"), zap.Bool("removed", removed))
	dumpEntries(skl)

	logger.Info("structure state",
		zap.Int64("len", skl.Len()),
		zap.Int32("levels", skl.Levels()),
		zap.Bool("empty", skl.IsEmpty()))
}

func runOrdMapScenario(logger *zap.Logger) {
	skl := list.NewXOrdMapSkl[string, float64]()
	for _, s := range students {
		skl.Put(s.member, s.score)
	}
	skl.Put("Alice", 91) // upsert
	if v, ok := skl.Load("Alice"); ok {
		logger.Info("ordered map lookup", zap.String("member", "Alice"), zap.Float64("score", v))
	}
	logger.Info("ordered map state", zap.Int64("len", skl.Len()), zap.Int32("levels", skl.Levels()))
}

func runPerf(logger *zap.Logger, n int) {
	skl := list.NewXRankSkl[float64, int](func(i, j int) int64 { return int64(i - j) })

	start := time.Now()
	for i := 0; i < n; i++ {
		skl.Insert(randv2.Float64()*float64(n), i)
	}
	insertCost := time.Since(start)

	start = time.Now()
	found := 0
	for i := 0; i < 1000; i++ {
		v := randv2.IntN(n)
		if skl.Load(float64(v), v) != nil {
			found++
		}
	}
	searchCost := time.Since(start)

	logger.Info("bulk insert",
		zap.Int("n", n),
		zap.Duration("cost", insertCost))
	logger.Info("bulk search",
		zap.Int("queries", 1000),
		zap.Int("found", found),
		zap.Duration("cost", searchCost))
	logger.Info("final structure",
		zap.Int64("len", skl.Len()),
		zap.Int32("levels", skl.Levels()))
}

func main() {
	var (
		n    int
		seed uint64
	)
	flag.IntVar(&n, "n", 10000, "bulk insert size for the timed pass")
	flag.Uint64Var(&seed, "seed", 42, "seed for the level generator")
	flag.Parse()

	logger := xlog.NewConsoleLogger(xlog.LogLevelInfo, "skldemo")
	defer func() {
		_ = logger.Sync()
	}()

	fmt.Println("=== rank skip list demo ===")
	runScenario(logger, seed)
	fmt.Println("=== ordered map skip list demo ===")
	runOrdMapScenario(logger)
	fmt.Println("=== timed pass ===")
	runPerf(logger, n)
}
