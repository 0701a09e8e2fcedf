package editor

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/obj"
)

func TestLedgerSyncCreatesThenUpdates(t *testing.T) {
	l := NewLedger()
	p := obj.NewPeg(nil, nil, obj.PegConfig{
		Position: cp.Vector{X: 1.23456, Y: -2},
		Type:     obj.PegRound,
		Size:     obj.SizeBase,
		Color:    obj.ColorOrange,
	})

	l.Sync(p)
	if l.Len() != 1 {
		t.Fatalf("len = %d after first sync, want 1", l.Len())
	}
	rec, ok := l.Get(p.ID())
	if !ok {
		t.Fatalf("record missing")
	}
	if rec.X != 1.235 || rec.Y != -2 {
		t.Fatalf("record at (%v, %v), want rounded (1.235, -2)", rec.X, rec.Y)
	}
	if rec.Color != "orange" || rec.Type != "round" || rec.PegSize != "base" {
		t.Fatalf("variant fields wrong: %+v", rec)
	}

	p.MoveTo(cp.Vector{X: 3, Y: 4})
	l.Sync(p)
	if l.Len() != 1 {
		t.Fatalf("len = %d after re-sync, want 1", l.Len())
	}
	rec, _ = l.Get(p.ID())
	if rec.X != 3 || rec.Y != 4 {
		t.Fatalf("record not updated: (%v, %v)", rec.X, rec.Y)
	}
}

func TestLedgerOrderStableAcrossDelete(t *testing.T) {
	l := NewLedger()
	a := obj.NewPeg(nil, nil, obj.PegConfig{Position: cp.Vector{X: 1}})
	b := obj.NewPeg(nil, nil, obj.PegConfig{Position: cp.Vector{X: 2}})
	c := obj.NewPeg(nil, nil, obj.PegConfig{Position: cp.Vector{X: 3}})
	l.Sync(a)
	l.Sync(b)
	l.Sync(c)

	l.Delete(b.ID())
	recs := l.Records()
	if len(recs) != 2 {
		t.Fatalf("record count = %d, want 2", len(recs))
	}
	if recs[0].ID != a.ID() || recs[1].ID != c.ID() {
		t.Fatalf("placement order lost after delete")
	}

	// Re-syncing an existing entity must not move it to the back.
	l.Sync(a)
	recs = l.Records()
	if recs[0].ID != a.ID() {
		t.Fatalf("re-sync reordered the ledger")
	}
}

func TestLedgerDeleteUnknownIDNoOp(t *testing.T) {
	l := NewLedger()
	p := obj.NewPeg(nil, nil, obj.PegConfig{})
	l.Sync(p)
	l.Delete(p.ID() + 1000)
	if l.Len() != 1 {
		t.Fatalf("unknown delete changed the ledger")
	}
}
