package request_test

import (
	"strings"
	"testing"

	"cratectl/internal/core/domain"
	"cratectl/internal/engine/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBool(t *testing.T) {
	tests := []struct {
		name    string
		enable  bool
		disable bool
		want    *bool
	}{
		{name: "neither", enable: false, disable: false, want: nil},
		{name: "enabled", enable: true, disable: false, want: boolPtr(true)},
		{name: "disabled", enable: false, disable: true, want: boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := request.ResolveBool(tt.enable, tt.disable)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestSplitFeatures(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{name: "commas and spaces", values: []string{"a,b c"}, want: []string{"a", "b", "c"}},
		{name: "multiple values", values: []string{"a", "b,c"}, want: []string{"a", "b", "c"}},
		{name: "empty fragments dropped", values: []string{",a,, b,"}, want: []string{"a", "b"}},
		{name: "blank value", values: []string{"   "}, want: nil},
		{name: "nothing", values: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, request.SplitFeatures(tt.values...))
		})
	}
}

func TestSplitFeatures_IdempotentOnSplitInput(t *testing.T) {
	split := request.SplitFeatures("a,b c")
	again := request.SplitFeatures(strings.Join(split, " "))
	assert.Equal(t, split, again)
}

func TestBuildDeps_SingleCrateWithSharedFeatures(t *testing.T) {
	deps, err := request.BuildDeps(request.DepInput{
		Crates:   []string{"serde"},
		Features: []string{"derive"},
	})
	require.NoError(t, err)
	require.Len(t, deps, 1)

	dep := deps[0]
	assert.Equal(t, "serde", dep.CrateSpec)
	assert.Equal(t, []string{"derive"}, dep.Features.Names())
	assert.Nil(t, dep.DefaultFeatures)
	assert.Nil(t, dep.Optional)
}

func TestBuildDeps_FeatureTokenAttachesToPrecedingCrate(t *testing.T) {
	deps, err := request.BuildDeps(request.DepInput{
		Crates:        []string{"serde", "+derive", "serde_json"},
		AllowUnstable: true,
	})
	require.NoError(t, err)
	require.Len(t, deps, 2)

	assert.Equal(t, "serde", deps[0].CrateSpec)
	assert.Equal(t, []string{"derive"}, deps[0].Features.Names())
	assert.Equal(t, "serde_json", deps[1].CrateSpec)
	assert.Nil(t, deps[1].Features)
}

func TestBuildDeps_OrderAndMergePreserved(t *testing.T) {
	deps, err := request.BuildDeps(request.DepInput{
		Crates:        []string{"x", "+f1", "+f2", "y", "+g1"},
		AllowUnstable: true,
	})
	require.NoError(t, err)
	require.Len(t, deps, 2)

	assert.Equal(t, "x", deps[0].CrateSpec)
	assert.Equal(t, []string{"f1", "f2"}, deps[0].Features.Names())
	assert.Equal(t, "y", deps[1].CrateSpec)
	assert.Equal(t, []string{"g1"}, deps[1].Features.Names())
}

func TestBuildDeps_DuplicateFeaturesCollapse(t *testing.T) {
	deps, err := request.BuildDeps(request.DepInput{
		Crates:        []string{"serde", "+derive", "+derive,rc"},
		AllowUnstable: true,
	})
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, []string{"derive", "rc"}, deps[0].Features.Names())
}

func TestBuildDeps_AmbiguityWithMultipleCrates(t *testing.T) {
	two := []string{"a", "b"}
	tests := []struct {
		name    string
		in      request.DepInput
		wantErr error
	}{
		{
			name:    "git",
			in:      request.DepInput{Crates: two, Git: "https://example.com/repo.git", AllowUnstable: true},
			wantErr: domain.ErrMultipleCratesWithGit,
		},
		{
			name:    "rename",
			in:      request.DepInput{Crates: two, Rename: "other"},
			wantErr: domain.ErrMultipleCratesWithRename,
		},
		{
			name:    "shared features",
			in:      request.DepInput{Crates: two, Features: []string{"derive"}},
			wantErr: domain.ErrMultipleCratesWithFeatures,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := request.BuildDeps(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildDeps_SingleCrateModifiersAreNotAmbiguous(t *testing.T) {
	tests := []struct {
		name string
		in   request.DepInput
	}{
		{name: "git", in: request.DepInput{Crates: []string{"a"}, Git: "https://example.com/repo.git", AllowUnstable: true}},
		{name: "rename", in: request.DepInput{Crates: []string{"a"}, Rename: "other"}},
		{name: "features", in: request.DepInput{Crates: []string{"a"}, Features: []string{"derive"}}},
		{name: "no crates at all", in: request.DepInput{Rename: "other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := request.BuildDeps(tt.in)
			assert.NoError(t, err)
		})
	}
}

func TestBuildDeps_FeatureTokensDoNotCountAsCrates(t *testing.T) {
	// One crate plus attachment tokens is still a single-crate invocation.
	deps, err := request.BuildDeps(request.DepInput{
		Crates:        []string{"serde", "+derive"},
		Rename:        "serde1",
		AllowUnstable: true,
	})
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "serde1", deps[0].Rename)
}

func TestBuildDeps_GitRequiresUnstable(t *testing.T) {
	_, err := request.BuildDeps(request.DepInput{
		Crates: []string{"serde"},
		Git:    "https://example.com/repo.git",
	})
	assert.ErrorIs(t, err, domain.ErrGitUnstable)
}

func TestBuildDeps_FeatureTokenRequiresUnstable(t *testing.T) {
	_, err := request.BuildDeps(request.DepInput{
		Crates: []string{"serde", "+derive"},
	})
	assert.ErrorIs(t, err, domain.ErrFeatureTokenUnstable)
}

func TestBuildDeps_DanglingFeatureToken(t *testing.T) {
	tests := []struct {
		name   string
		crates []string
	}{
		{name: "only a feature token", crates: []string{"+derive"}},
		{name: "leading feature token", crates: []string{"+derive", "serde"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := request.BuildDeps(request.DepInput{
				Crates:        tt.crates,
				AllowUnstable: true,
			})
			assert.ErrorIs(t, err, domain.ErrDanglingFeatureToken)
		})
	}
}

func TestBuildDeps_SharedModifiersCopiedToEveryRequest(t *testing.T) {
	optional := request.ResolveBool(true, false)
	deps, err := request.BuildDeps(request.DepInput{
		Crates:          []string{"a", "b"},
		Optional:        optional,
		DefaultFeatures: request.ResolveBool(false, true),
		Registry:        "internal",
	})
	require.NoError(t, err)
	require.Len(t, deps, 2)

	for _, dep := range deps {
		require.NotNil(t, dep.Optional)
		assert.True(t, *dep.Optional)
		require.NotNil(t, dep.DefaultFeatures)
		assert.False(t, *dep.DefaultFeatures)
		assert.Equal(t, "internal", dep.Registry)
	}
}

func TestBuildSection(t *testing.T) {
	target := "wasm32-unknown-unknown"
	empty := ""

	tests := []struct {
		name    string
		in      request.SectionInput
		want    domain.Section
		wantErr error
	}{
		{name: "default", in: request.SectionInput{}, want: domain.Section{Kind: domain.SectionNormal}},
		{name: "dev", in: request.SectionInput{Dev: true}, want: domain.Section{Kind: domain.SectionDevelopment}},
		{name: "build", in: request.SectionInput{Build: true}, want: domain.Section{Kind: domain.SectionBuild}},
		{
			name: "dev with target",
			in:   request.SectionInput{Dev: true, Target: &target},
			want: domain.Section{Kind: domain.SectionDevelopment, Target: target},
		},
		{name: "empty target", in: request.SectionInput{Target: &empty}, wantErr: domain.ErrEmptyTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := request.BuildSection(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func boolPtr(v bool) *bool {
	return &v
}
