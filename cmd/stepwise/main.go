// Command stepwise runs a deterministic linear-regression training demo:
// generate a synthetic dataset, split it, fit y = a + b*x by mini-batch
// gradient descent, and report the learned parameters against the exact
// least-squares baseline.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/stepwise-ml/stepwise/backend/cpu"
	"github.com/stepwise-ml/stepwise/data"
	"github.com/stepwise-ml/stepwise/model"
	"github.com/stepwise-ml/stepwise/train"
)

type options struct {
	seed      uint64
	n         int
	intercept float64
	slope     float64
	noiseStd  float64
	trainFrac float64
	split     string
	batchSize int
	lr        float64
	epochs    int
	logEvery  int
	lossCSV   string
}

func parseFlags() options {
	var o options
	flag.Uint64Var(&o.seed, "seed", 42, "seed for data generation, splitting, init and shuffling")
	flag.IntVar(&o.n, "n", 100, "number of synthetic samples")
	flag.Float64Var(&o.intercept, "intercept", 1.0, "true intercept of the generating line")
	flag.Float64Var(&o.slope, "slope", 2.0, "true slope of the generating line")
	flag.Float64Var(&o.noiseStd, "noise", 0.1, "label noise standard deviation")
	flag.Float64Var(&o.trainFrac, "train-frac", 0.8, "fraction of samples used for training")
	flag.StringVar(&o.split, "split", "random", "split policy: random or prefix")
	flag.IntVar(&o.batchSize, "batch", 16, "mini-batch size")
	flag.Float64Var(&o.lr, "lr", 0.1, "learning rate")
	flag.IntVar(&o.epochs, "epochs", 1000, "number of training epochs")
	flag.IntVar(&o.logEvery, "log-every", 100, "log progress every N epochs (0 disables)")
	flag.StringVar(&o.lossCSV, "loss-csv", "", "optional path to write the loss history CSV")
	flag.Parse()
	return o
}

func run(o options) error {
	var policy data.SplitPolicy
	switch o.split {
	case "random":
		policy = data.SplitRandom
	case "prefix":
		policy = data.SplitPrefix
	default:
		return fmt.Errorf("unknown split policy %q (want random or prefix)", o.split)
	}

	ds, err := data.Generate(data.GenerateConfig{
		Seed:      o.seed,
		N:         o.n,
		Intercept: o.intercept,
		Slope:     o.slope,
		NoiseStd:  o.noiseStd,
	})
	if err != nil {
		return err
	}

	trainIdx, valIdx, err := data.SplitFraction(ds.Len(), o.trainFrac, policy, o.seed)
	if err != nil {
		return err
	}
	log.Printf("dataset n=%d train=%d val=%d split=%s", ds.Len(), len(trainIdx), len(valIdx), policy)

	tr, err := train.New(train.Config{
		BatchSize:    o.batchSize,
		LearningRate: o.lr,
		Epochs:       o.epochs,
		Seed:         o.seed,
	}, cpu.New(), train.WithEpochEnd[*cpu.Backend](func(epoch int, trainLoss, valLoss float64) bool {
		if o.logEvery > 0 && (epoch+1)%o.logEvery == 0 {
			log.Printf("epoch=%d train_loss=%.6f val_loss=%.6f", epoch+1, trainLoss, valLoss)
		}
		return true
	}))
	if err != nil {
		return err
	}

	res, err := tr.Run(ds, trainIdx, valIdx)
	if err != nil {
		return err
	}

	fmt.Printf("learned   a=%.4f b=%.4f\n", res.A, res.B)
	fmt.Printf("true      a=%.4f b=%.4f\n", o.intercept, o.slope)

	// Exact least squares on the training partition for comparison.
	xs, ys := ds.Gather(trainIdx)
	if olsA, olsB, err := model.FitOLS(xs, ys); err == nil {
		fmt.Printf("least-sq  a=%.4f b=%.4f\n", olsA, olsB)
	}

	if len(res.TrainLoss) > 0 {
		final := res.TrainLoss[len(res.TrainLoss)-1]
		fmt.Printf("train loss: first=%.6f last=%.6f\n", res.TrainLoss[0], final)
		if math.IsNaN(final) || math.IsInf(final, 0) {
			log.Printf("warning: training diverged; try a smaller -lr")
		}
	}

	if o.lossCSV != "" {
		f, err := os.Create(o.lossCSV)
		if err != nil {
			return fmt.Errorf("create loss csv: %w", err)
		}
		defer f.Close()
		if err := train.WriteHistoryCSV(f, res); err != nil {
			return fmt.Errorf("write loss csv: %w", err)
		}
		log.Printf("wrote loss history to %s", o.lossCSV)
	}
	return nil
}

func main() {
	if err := run(parseFlags()); err != nil {
		log.Fatal(err)
	}
}
