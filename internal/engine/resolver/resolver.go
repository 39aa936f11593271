// Package resolver turns a catalogue, a toolchain description and a target
// platform into the toolchain invocation to run.
package resolver

import (
	"go.trai.ch/wafer/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver computes invocations. It holds no mutable state and is safe for
// concurrent use.
type Resolver struct {
	catalogue domain.Catalogue
	toolchain domain.Toolchain
}

// New creates a Resolver over the given base catalogue and toolchain.
func New(catalogue domain.Catalogue, tc domain.Toolchain) *Resolver {
	return &Resolver{
		catalogue: catalogue,
		toolchain: tc,
	}
}

// Resolve returns the invocation for p.
//
// The flags are the catalogue flags in catalogue order, with --with-os set to
// p in place, followed by the overlay of p. The prefix depends on the launch
// mechanism of p and the toolchain subcommands sit between prefix and flags.
func (r *Resolver) Resolve(p domain.Platform) (domain.InvocationSpec, error) {
	if !p.Valid() {
		return domain.InvocationSpec{}, zerr.With(zerr.Wrap(domain.ErrUnrecognizedPlatform, ""), "platform", int(p))
	}

	base := r.catalogue.Set(domain.With("os", p.String())).Flags()
	overlay := p.Overlay()

	flags := make([]domain.Flag, 0, len(base)+len(overlay))
	flags = append(flags, base...)
	flags = append(flags, overlay...)

	mechanism := p.Mechanism()

	return domain.NewInvocationSpec(
		p,
		mechanism,
		r.toolchain.Prefix(mechanism),
		r.toolchain.Subcommands,
		flags,
	), nil
}
