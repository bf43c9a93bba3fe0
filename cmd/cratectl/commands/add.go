package commands

import (
	"cratectl/internal/app"
	"cratectl/internal/core/domain"
	"cratectl/internal/engine/request"
	"github.com/spf13/cobra"
)

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <DEP>[@<VERSION>] [+<FEATURE>,...] ...",
		Short: "Add dependencies to the manifest",
		Long: `Add dependencies to the manifest.

A dependency can be referenced by name (the latest cached version is used),
by name@version-req, or by filesystem path. A crate token may be followed by
+<FEATURE> tokens attaching features to it.`,
		Example: `  cratectl add regex --build
  cratectl add trycmd --dev
  cratectl add ./crates/parser/
  cratectl add serde +derive serde_json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAdd(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringArrayP("features", "F", nil, "Space or comma separated list of features to activate")
	f.Bool("default-features", false, "Re-enable the default features")
	f.Bool("no-default-features", false, "Disable the default features")
	f.Bool("optional", false, "Mark the dependency as optional")
	f.Bool("no-optional", false, "Mark the dependency as required")
	f.StringP("rename", "r", "", "Rename the dependency")
	f.String("registry", "", "Package registry for this dependency")
	f.BoolP("dev", "D", false, "Add as development dependency")
	f.BoolP("build", "B", false, "Add as build dependency")
	f.String("target", "", "Add as dependency to the given target platform")
	f.String("git", "", "Git repository location")
	f.String("branch", "", "Git branch to download the crate from")
	f.String("tag", "", "Git tag to download the crate from")
	f.String("rev", "", "Git reference to download the crate from")
	f.StringP("package", "p", "", "Package to modify")
	f.String("manifest-path", "", "Path to the manifest file")
	f.Bool("dry-run", false, "Don't actually write the manifest")
	f.Bool("offline", false, "Run without accessing the network")

	// The enable/disable pairs collapse to tri-state values later; declaring
	// them mutually exclusive here is what makes the "both set" case
	// unreachable.
	cmd.MarkFlagsMutuallyExclusive("default-features", "no-default-features")
	cmd.MarkFlagsMutuallyExclusive("optional", "no-optional")
	cmd.MarkFlagsMutuallyExclusive("dev", "build")
	cmd.MarkFlagsMutuallyExclusive("branch", "tag", "rev")
	cmd.MarkFlagsMutuallyExclusive("registry", "git")

	return cmd
}

func (c *CLI) runAdd(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	getString := func(name string) string {
		v, _ := f.GetString(name)
		return v
	}
	getBool := func(name string) bool {
		v, _ := f.GetBool(name)
		return v
	}

	git := getString("git")
	branch := getString("branch")
	tag := getString("tag")
	rev := getString("rev")
	if git == "" && (branch != "" || tag != "" || rev != "") {
		return domain.ErrGitRefWithoutGit
	}

	var target *string
	if f.Changed("target") {
		v := getString("target")
		target = &v
	}

	var features []string
	if f.Changed("features") {
		features, _ = f.GetStringArray("features")
	}

	req := app.AddRequest{
		ManifestPath: getString("manifest-path"),
		Package:      getString("package"),
		DryRun:       getBool("dry-run"),
		Offline:      getBool("offline"),
		Section: request.SectionInput{
			Dev:    getBool("dev"),
			Build:  getBool("build"),
			Target: target,
		},
		Deps: request.DepInput{
			Crates:          args,
			Features:        features,
			DefaultFeatures: request.ResolveBool(getBool("default-features"), getBool("no-default-features")),
			Optional:        request.ResolveBool(getBool("optional"), getBool("no-optional")),
			Rename:          getString("rename"),
			Registry:        getString("registry"),
			Git:             git,
			Branch:          branch,
			Tag:             tag,
			Rev:             rev,
			AllowUnstable:   c.unstableEnabled(),
		},
	}
	return c.app.Add(cmd.Context(), req)
}
