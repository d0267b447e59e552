// Package domains lists the resources the console manages, in sidebar order.
package domains

import (
	"fmt"
	"slices"

	bookingModel "hoteladmin/internal/domains/booking/model"
	guestModel "hoteladmin/internal/domains/guest/model"
	hotelModel "hoteladmin/internal/domains/hotel/model"
	paymentModel "hoteladmin/internal/domains/payment/model"
	roomModel "hoteladmin/internal/domains/room/model"
	"hoteladmin/internal/resource"
)

// Registry resolves resources by their route segment.
type Registry struct {
	ordered []resource.Descriptor
	byName  map[string]resource.Descriptor
}

func NewRegistry() (*Registry, error) {
	return newRegistry(
		hotelModel.Resource,
		roomModel.Resource,
		guestModel.Resource,
		bookingModel.Resource,
		paymentModel.Resource,
	)
}

func newRegistry(descriptors ...resource.Descriptor) (*Registry, error) {
	reg := &Registry{
		ordered: descriptors,
		byName:  make(map[string]resource.Descriptor, len(descriptors)),
	}

	for _, desc := range descriptors {
		if err := desc.Validate(); err != nil {
			return nil, err //nolint:wrapcheck
		}

		if _, ok := reg.byName[desc.Name]; ok {
			return nil, fmt.Errorf("duplicate resource %q", desc.Name)
		}

		reg.byName[desc.Name] = desc
	}

	return reg, nil
}

func (r *Registry) Get(name string) (resource.Descriptor, bool) {
	desc, ok := r.byName[name]

	return desc, ok
}

// All returns the resources in sidebar order.
func (r *Registry) All() []resource.Descriptor {
	return slices.Clone(r.ordered)
}

func (r *Registry) Default() resource.Descriptor {
	return r.ordered[0]
}
