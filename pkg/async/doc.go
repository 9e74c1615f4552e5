// Package async runs a context-aware call in the background and hands back a
// typed Future for its result.
//
//	future := async.Async(ctx, values, submitter.Submit)
//	select {
//	case <-future.Done():
//		account, err := future.Await()
//		...
//	case <-heartbeat.C:
//	}
package async
