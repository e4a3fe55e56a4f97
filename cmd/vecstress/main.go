// Command vecstress soaks a Vector with randomized operation sequences,
// cross-checking every step against a plain-slice reference model.
//
//	vecstress --ops=1000000 --seed=42 --log.level=debug
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/pavanmanishd/vec"
)

var (
	opCount  = kingpin.Flag("ops", "Number of random operations to run.").Default("100000").Int()
	seed     = kingpin.Flag("seed", "PRNG seed; 0 derives one from the clock.").Default("0").Int64()
	maxLen   = kingpin.Flag("max-len", "Upper bound for resize targets.").Default("4096").Int()
	logLevel = kingpin.Flag("log.level", "Log level: debug, info, warn, error.").Default("info").String()
)

func main() {
	kingpin.Parse()

	logger := level.NewFilter(log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)), parseLevel(*logLevel))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	level.Info(logger).Log("msg", "starting soak", "ops", *opCount, "seed", s)

	if err := run(logger, rand.New(rand.NewSource(s))); err != nil {
		level.Error(logger).Log("msg", "soak failed", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "soak passed")
}

func run(logger log.Logger, rng *rand.Rand) error {
	v := vec.New[uint64]()
	defer v.Release()
	var ref []uint64

	start := time.Now()
	for step := 0; step < *opCount; step++ {
		if err := mutate(rng, v, &ref); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if err := verify(v, ref); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if step > 0 && step%10000 == 0 {
			level.Debug(logger).Log("msg", "progress", "step", step, "len", v.Len(), "cap", v.Cap())
		}
	}

	st := v.Stats()
	level.Info(logger).Log(
		"msg", "final state",
		"len", st.Len,
		"cap", st.Cap,
		"live", humanize.Bytes(uint64(st.LiveBytes)),
		"backing", humanize.Bytes(uint64(st.CapBytes)),
		"utilization", fmt.Sprintf("%.2f", st.Utilization),
		"elapsed", time.Since(start),
	)
	return nil
}

// mutate applies one random operation to both the vector and the model.
func mutate(rng *rand.Rand, v *vec.Vector[uint64], ref *[]uint64) error {
	x := rng.Uint64()
	m := *ref
	switch op := rng.Intn(8); {
	case op == 0 && len(m) > 0: // erase
		i := rng.Intn(len(m))
		if err := v.Erase(i); err != nil {
			return err
		}
		*ref = append(m[:i], m[i+1:]...)
	case op == 1 && len(m) > 0: // pop
		v.PopBack()
		*ref = m[:len(m)-1]
	case op == 2: // insert
		i := rng.Intn(len(m) + 1)
		if _, err := v.Insert(i, x); err != nil {
			return err
		}
		m = append(m, 0)
		copy(m[i+1:], m[i:])
		m[i] = x
		*ref = m
	case op == 3: // resize
		n := rng.Intn(*maxLen)
		if err := v.Resize(n); err != nil {
			return err
		}
		for len(m) < n {
			m = append(m, 0)
		}
		*ref = m[:n]
	case op == 4: // reserve
		return v.Reserve(rng.Intn(2 * *maxLen))
	case op == 5 && len(m) > 0: // overwrite through At
		i := rng.Intn(len(m))
		*v.At(i) = x
		m[i] = x
	case op == 6: // round-trip through a clone
		c, err := v.Clone()
		if err != nil {
			return err
		}
		defer c.Release()
		return v.CopyFrom(c)
	default: // push
		if _, err := v.PushBack(x); err != nil {
			return err
		}
		*ref = append(m, x)
	}
	return nil
}

// verify checks full equivalence between the vector and the model.
func verify(v *vec.Vector[uint64], ref []uint64) error {
	if v.Len() != len(ref) {
		return fmt.Errorf("len mismatch: vector %d, model %d", v.Len(), len(ref))
	}
	if v.Cap() < v.Len() {
		return fmt.Errorf("invariant broken: cap %d < len %d", v.Cap(), v.Len())
	}
	for i, p := range v.All() {
		if *p != ref[i] {
			return fmt.Errorf("element %d mismatch: vector %d, model %d", i, *p, ref[i])
		}
	}
	return nil
}

func parseLevel(s string) level.Option {
	switch s {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
