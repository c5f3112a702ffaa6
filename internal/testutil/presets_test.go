package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdgph/stdreg/internal/catalog"
	"github.com/wdgph/stdreg/internal/records"
	"github.com/wdgph/stdreg/internal/registry"
)

func TestPreset_DemographicsTestData(t *testing.T) {
	fsys := NewBuilder(t).WithDemographicsTestData().Build()

	reg, err := registry.LoadRegistry(fsys, "registry.yaml")
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len(), "expected 3 standards")

	// Verify manifest order
	var ids []string
	for _, desc := range reg.List() {
		ids = append(ids, desc.ID)
	}
	require.Equal(t, []string{"genders", "marital-statuses", "regions"}, ids)

	// Verify one format of each kind loads
	cat := catalog.New(reg, fsys)
	ctx := context.Background()

	rs, err := cat.Records(ctx, "genders")
	require.NoError(t, err)
	require.Equal(t, []string{"code", "label"}, rs.Fields)
	require.Len(t, rs.Records, 3)

	rs, err = cat.Records(ctx, "marital-statuses")
	require.NoError(t, err)
	require.Len(t, rs.Records, 3)
	require.Equal(t, "Married", rs.Records[1]["label"].String())

	rs, err = cat.Records(ctx, "regions")
	require.NoError(t, err)
	require.Len(t, rs.Records, 2)
	require.Equal(t, "North", rs.Records[0]["name"].String())

	// Verify tags
	require.Len(t, reg.WithTag("demographics"), 2)
	require.Len(t, reg.WithTag("geography"), 1)

	// Verify specific descriptor attributes
	desc, err := reg.Get("genders")
	require.NoError(t, err)
	require.Equal(t, "Gender Codes", desc.Title)
	require.Equal(t, "2.1", desc.Version)
	require.Equal(t, "Identity WG", desc.Maintainer)
	require.Equal(t, "2024-03-15", desc.LastUpdated)
}

func TestPreset_FailureTestData(t *testing.T) {
	fsys := NewBuilder(t).
		WithDemographicsTestData().
		WithFailureTestData().
		Build()

	reg, err := registry.LoadRegistry(fsys, "registry.yaml")
	require.NoError(t, err)
	require.Equal(t, 6, reg.Len(), "expected 6 standards")

	cat := catalog.New(reg, fsys)
	ctx := context.Background()

	// Each preset entry fails in its own way
	_, err = cat.Records(ctx, "missing")
	require.True(t, errors.Is(err, records.ErrFileNotFound))

	_, err = cat.Records(ctx, "malformed")
	var parseErr *records.ParseError
	require.ErrorAs(t, err, &parseErr)

	_, err = cat.Records(ctx, "exotic")
	require.True(t, errors.Is(err, records.ErrUnsupportedFormat))

	// Broken standards never hide the healthy ones
	entries := cat.Overview(ctx)
	require.Len(t, entries, 6)

	failures := 0
	for _, entry := range entries {
		if entry.Err != nil {
			failures++
		}
	}
	require.Equal(t, 3, failures, "expected 3 failing standards")
}
