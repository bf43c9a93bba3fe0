package domain_test

import (
	"testing"

	"cratectl/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestWorkspace_Select(t *testing.T) {
	ws := &domain.Workspace{
		Root: "/repo",
		Members: []domain.PackageRef{
			{Name: "api", ManifestPath: "/repo/api/Cargo.toml"},
			{Name: "cli", ManifestPath: "/repo/cli/Cargo.toml"},
		},
	}

	assert.Len(t, ws.Select(""), 2)
	assert.Equal(t, []domain.PackageRef{{Name: "cli", ManifestPath: "/repo/cli/Cargo.toml"}}, ws.Select("cli"))
	assert.Empty(t, ws.Select("missing"))
}

func TestSection_Label(t *testing.T) {
	tests := []struct {
		name    string
		section domain.Section
		want    string
	}{
		{name: "normal", section: domain.Section{}, want: "dependencies"},
		{name: "dev", section: domain.Section{Kind: domain.SectionDevelopment}, want: "dev-dependencies"},
		{name: "build", section: domain.Section{Kind: domain.SectionBuild}, want: "build-dependencies"},
		{
			name:    "targeted",
			section: domain.Section{Kind: domain.SectionNormal, Target: "cfg(unix)"},
			want:    "dependencies for target `cfg(unix)`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.section.Label())
		})
	}
}
