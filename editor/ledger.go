package editor

import (
	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/obj"
)

// Record is the flat serializable mirror of one live entity. Records are
// keyed by the entity's stable ID, so a ledger lookup never depends on
// matching positions.
type Record struct {
	ID       uint64
	Category obj.Kind

	X, Y, Z  float64
	Rotation float64

	// Type is the kind-specific variant: round/rect/dome for pegs,
	// line/circle for shapes, rect/circle for characteristics.
	Type string

	PegSize string
	Color   string
	Bounce  string

	// Dimensions; which ones are set depends on the category.
	Width  float64
	Height float64
	Radius float64
	Size   float64
}

// Ledger mirrors every live entity for persistence. It preserves placement
// order so saves are stable.
type Ledger struct {
	records map[uint64]*Record
	order   []uint64
}

func NewLedger() *Ledger {
	return &Ledger{records: map[uint64]*Record{}}
}

func (l *Ledger) Len() int { return len(l.order) }

func (l *Ledger) Get(id uint64) (*Record, bool) {
	r, ok := l.records[id]
	return r, ok
}

// Records returns all records in placement order.
func (l *Ledger) Records() []*Record {
	out := make([]*Record, 0, len(l.order))
	for _, id := range l.order {
		if r, ok := l.records[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Sync creates or updates the record for a live entity.
func (l *Ledger) Sync(p obj.Placeable) {
	if l == nil || p == nil {
		return
	}
	r, ok := l.records[p.ID()]
	if !ok {
		r = &Record{ID: p.ID()}
		l.records[p.ID()] = r
		l.order = append(l.order, p.ID())
	}

	pos := p.Position()
	r.Category = p.Kind()
	r.X = common.Round3(pos.X)
	r.Y = common.Round3(pos.Y)
	r.Z = common.Round3(p.Z())
	r.Rotation = common.Round3(p.Rotation())

	switch t := p.(type) {
	case *obj.Peg:
		r.Type = t.Type().String()
		r.PegSize = t.SizeClass().String()
		r.Color = t.Color().String()
	case *obj.Shape:
		r.Type = t.Type().String()
		r.Size = common.Round3(t.Size())
	case *obj.Spacer:
		r.Width = common.Round3(t.Width())
		r.Height = common.Round3(t.Height())
	case *obj.Characteristic:
		r.Type = t.Shape().String()
		r.Bounce = t.Bounce().String()
		if t.Shape() == obj.CharCircle {
			r.Radius = common.Round3(t.Radius())
		} else {
			r.Width = common.Round3(t.Width())
			r.Height = common.Round3(t.Height())
		}
	}
}

func (l *Ledger) Delete(id uint64) {
	if l == nil {
		return
	}
	if _, ok := l.records[id]; !ok {
		return
	}
	delete(l.records, id)
	for i, o := range l.order {
		if o == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *Ledger) Clear() {
	l.records = map[uint64]*Record{}
	l.order = nil
}
