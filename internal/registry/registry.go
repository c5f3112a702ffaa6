package registry

import (
	"fmt"
	"sort"
)

// Registry is a read-only collection of the standards declared in one
// manifest, in manifest order.
type Registry struct {
	descriptors []Descriptor
	byID        map[string]int
}

// New builds a Registry from descriptors, rejecting duplicate identifiers.
func New(descriptors []Descriptor) (*Registry, error) {
	r := &Registry{
		descriptors: make([]Descriptor, 0, len(descriptors)),
		byID:        make(map[string]int, len(descriptors)),
	}
	for _, desc := range descriptors {
		if _, exists := r.byID[desc.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, desc.ID)
		}
		r.byID[desc.ID] = len(r.descriptors)
		r.descriptors = append(r.descriptors, desc)
	}
	return r, nil
}

// List returns all descriptors in manifest order.
func (r *Registry) List() []Descriptor {
	return r.descriptors
}

// Len returns the number of registered standards.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Get returns the descriptor for id, or ErrNotFound.
func (r *Registry) Get(id string) (Descriptor, error) {
	idx, ok := r.byID[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r.descriptors[idx], nil
}

// WithTag returns the descriptors carrying tag, in manifest order.
func (r *Registry) WithTag(tag string) []Descriptor {
	result := make([]Descriptor, 0)
	for _, desc := range r.descriptors {
		if desc.HasTag(tag) {
			result = append(result, desc)
		}
	}
	return result
}

// Tags returns all unique tags across all standards, sorted alphabetically.
func (r *Registry) Tags() []string {
	tagSet := make(map[string]bool)
	for _, desc := range r.descriptors {
		for _, tag := range desc.Tags {
			tagSet[tag] = true
		}
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
