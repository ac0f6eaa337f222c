// Package db holds the hand-written query layer. Methods take the executor
// per call so the same Queries value works against the pool or a transaction.
package db

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
