// Package train drives mini-batch gradient descent for the one-feature
// linear model.
//
// A run is a fixed sequence of states: parameters are initialized once from
// the configured seed, then each epoch performs a training pass (shuffled
// batches, one gradient computation and one parameter update per batch)
// followed by a validation pass (fixed batch order, loss only, no update).
// After the configured number of epochs the run terminates and returns the
// final parameters together with the per-step train and validation loss
// histories.
//
// Example:
//
//	tr, err := train.New(train.Config{
//	    BatchSize:    16,
//	    LearningRate: 0.1,
//	    Epochs:       1000,
//	    Seed:         42,
//	}, cpu.New())
//	if err != nil {
//	    return err
//	}
//	res, err := tr.Run(ds, trainIdx, valIdx)
//
// Divergence is not trapped: a learning rate large enough to blow up the
// parameters shows up as NaN/Inf in the loss histories, exactly as unclipped
// gradient descent behaves. Callers inspect the histories to detect it.
package train
