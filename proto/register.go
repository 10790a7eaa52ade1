// Package proto registers the built-in vtgate message family.
package proto

import (
	"github.com/anirudhraja/vtwire/proto/query"
	"github.com/anirudhraja/vtwire/proto/topodata"
	"github.com/anirudhraja/vtwire/proto/vtgate"
	"github.com/anirudhraja/vtwire/proto/vtrpc"
	"github.com/anirudhraja/vtwire/registry"
)

// RegisterAll adds every built-in type to r.
func RegisterAll(r *registry.Registry) error {
	for _, register := range []func(*registry.Registry) error{
		vtrpc.Register,
		topodata.Register,
		query.Register,
		vtgate.Register,
	} {
		if err := register(r); err != nil {
			return err
		}
	}
	return nil
}
