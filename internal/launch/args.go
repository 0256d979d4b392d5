package launch

import "go.dot.industries/ccx/internal/config"

// Separator forces "everything after me is for the launched tool". It
// lets a user pass a first argument that happens to equal a profile
// name without it being routed as one.
const Separator = "--"

// SplitArgs decides which leading token of args names a profile and
// which tokens pass through to the launched tool.
//
// Only an exact match against an existing profile name is treated as a
// profile; otherwise the whole argument list is passthrough and the
// active profile applies. This errs toward never mis-routing a real
// tool argument: the one remaining ambiguity is a first argument that
// collides with a profile name, which the separator resolves.
func SplitArgs(args []string, reg *config.Registry) (string, []string) {
	profile := reg.ActiveProfile
	passthrough := args

	if len(args) > 0 {
		if _, ok := reg.Profiles[args[0]]; ok {
			profile = args[0]
			passthrough = args[1:]
		}
	}

	if len(passthrough) > 0 && passthrough[0] == Separator {
		passthrough = passthrough[1:]
	}

	return profile, passthrough
}
