package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/fracdiv/ent"
	"github.com/abhisek/fracdiv/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client. Snapshots are
// ordered by sequence, then id, so two taken at the same instant still
// have a well-defined newest.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := toJSONMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	create := r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetData(data)
	if !snap.Timestamp.IsZero() {
		create = create.SetTimestamp(snap.Timestamp)
	}
	saved, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	snap.ID = saved.ID
	snap.Timestamp = saved.Timestamp
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.newestFirst().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return fromEnt(s)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	keep = max(keep, 0)
	ids, err := r.newestFirst().IDs(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(ids) <= keep {
		return nil
	}
	if _, err := r.client.Snapshot.Delete().Where(snapshot.IDIn(ids[keep:]...)).Exec(ctx); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) newestFirst() *ent.SnapshotQuery {
	return r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence), ent.Desc(snapshot.FieldID))
}

func toJSONMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromEnt(s *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data ProgressData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      data,
	}, nil
}
