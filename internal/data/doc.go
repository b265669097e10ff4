// Package data provides synthetic dataset generation, index splitting, and
// mini-batch loading for the stepwise trainer.
//
// The pipeline is: Generate a Dataset, Split its index range into train and
// validation partitions, then feed each partition through a Loader to obtain
// mini-batches:
//
//	ds, _ := data.Generate(data.GenerateConfig{Seed: 42, N: 100, Intercept: 1, Slope: 2, NoiseStd: 0.1})
//	trainIdx, valIdx, _ := data.SplitFraction(ds.Len(), 0.8, data.SplitRandom, 13)
//	loader, _ := data.NewLoader(ds, trainIdx, 16, true, 13)
//	for _, b := range loader.Batches() {
//	    // b.X, b.Y
//	}
//
// Everything in this package is deterministic: the same seeds reproduce the
// same dataset, the same partition, and the same epoch-by-epoch batch order.
package data
