package mobius

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/kleinian/sl2c"
)

// Observer receives diagnostics from a Classifier. Implementations must be
// safe for concurrent use when the Classifier is shared between goroutines.
type Observer interface {
	// Classified is called once per successful classification.
	Classified(c Classification)

	// Degenerate is called when a parabolic matrix has no bounding geometry.
	Degenerate(m sl2c.Matrix, reason error)
}

// nopHandler discards every record; Enabled reports false so callers skip
// attribute construction entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// SlogObserver writes classification traces to a *slog.Logger.
//
// Levels:
//   - Debug: parabolic geometry (conjugator, translation, circles).
//   - Info:  the kind of every classified matrix and its fixed points.
//   - Warn:  degenerate parabolic matrices.
type SlogObserver struct {
	log *slog.Logger
}

// NewSlogObserver returns an observer writing to l. nil yields a silent one.
func NewSlogObserver(l *slog.Logger) *SlogObserver {
	if l == nil {
		l = slog.New(nopHandler{})
	}

	return &SlogObserver{log: l}
}

// Classified implements Observer.
func (o *SlogObserver) Classified(c Classification) {
	ctx := context.Background()
	if !o.log.Enabled(ctx, slog.LevelDebug) && !o.log.Enabled(ctx, slog.LevelInfo) {
		return
	}
	_ = c.Match(traceVisitor{log: o.log, ctx: ctx, m: c.Source})
}

// Degenerate implements Observer.
func (o *SlogObserver) Degenerate(m sl2c.Matrix, reason error) {
	o.log.Warn("degenerate parabolic", slog.String("matrix", m.String()), slog.Any("reason", reason))
}

// traceVisitor renders one log line per variant.
type traceVisitor struct {
	log *slog.Logger
	ctx context.Context
	m   sl2c.Matrix
}

func (v traceVisitor) VisitParabolic(p Parabolic) {
	g := p.Geometry
	if g != nil && v.log.Enabled(v.ctx, slog.LevelDebug) {
		v.log.DebugContext(v.ctx, "parabolic geometry",
			slog.String("conjugated", g.Conjugated.String()),
			slog.String("inner", g.Inner.String()),
			slog.String("outer", g.Outer.String()),
			slog.String("image", g.MutualInversionImage.String()),
		)
	}
	if !v.log.Enabled(v.ctx, slog.LevelInfo) {
		return
	}
	if g != nil {
		v.log.InfoContext(v.ctx, KindParabolic.String(),
			slog.String("matrix", v.m.String()),
			slog.Any("fixed", g.FixedPoint),
			slog.Any("translation", p.Translation),
		)
		return
	}
	v.log.InfoContext(v.ctx, KindParabolic.String(),
		slog.String("matrix", v.m.String()),
		slog.Any("translation", p.Translation),
		slog.Bool("degenerate", p.Degenerate),
	)
}

func (v traceVisitor) VisitElliptic(f FixedPoints)   { v.fixed(KindElliptic, f) }
func (v traceVisitor) VisitHyperbolic(f FixedPoints) { v.fixed(KindHyperbolic, f) }
func (v traceVisitor) VisitLoxodromic(f FixedPoints) { v.fixed(KindLoxodromic, f) }

func (v traceVisitor) fixed(k Kind, f FixedPoints) {
	if !v.log.Enabled(v.ctx, slog.LevelInfo) {
		return
	}
	v.log.InfoContext(v.ctx, k.String(),
		slog.String("matrix", v.m.String()),
		slog.Any("fixPlus", f.Plus),
		slog.Any("fixMinus", f.Minus),
		slog.Any("k", f.Multiplier),
	)
}
