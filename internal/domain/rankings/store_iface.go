package rankings

import "context"

type SnapshotStore interface {
	// UpsertRanking inserts the snapshot or overwrites the row with the same
	// manager, employee, year and month.
	UpsertRanking(ctx context.Context, snapshot Snapshot) error
	// QueryRankings returns at most limit snapshots, newest month first.
	QueryRankings(ctx context.Context, managerID, employeeID string, limit int) ([]Snapshot, error)
}
