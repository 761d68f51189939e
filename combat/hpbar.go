package combat

// BarKind tells the renderer which colour scheme a bar uses.
type BarKind int

const (
	HealthBar BarKind = iota
	ShieldBar
)

// HPBar is the UI-side view of a tank's hit points or shield. The tank pushes
// values into it; the renderer only reads.
type HPBar struct {
	Owner   *Tank
	Kind    BarKind
	Max     float64
	Current float64
}

func (b *HPBar) Update(v float64) { b.Current = v }

// Fraction returns Current/Max clamped to [0, 1].
func (b *HPBar) Fraction() float64 {
	if b.Max <= 0 {
		return 0
	}
	f := b.Current / b.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
