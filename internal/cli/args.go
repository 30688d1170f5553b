package cli

import "strings"

// legacyNameFlag is the single-dash spelling accepted by the original script
const legacyNameFlag = "-Name"

// NormalizeArgs rewrites "-Name <company>" and "-Name=<company>" to "--name".
// Arguments after "--" are left alone. When the legacy flag is used without a
// subcommand, "ddg" is inserted so the old invocation keeps working.
func NormalizeArgs(args []string, commands []string) []string {
	out := make([]string, 0, len(args)+1)
	legacy := false
	for i, a := range args {
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}
		switch {
		case a == legacyNameFlag:
			a = "--name"
			legacy = true
		case strings.HasPrefix(a, legacyNameFlag+"="):
			a = "--name=" + strings.TrimPrefix(a, legacyNameFlag+"=")
			legacy = true
		}
		out = append(out, a)
	}

	if legacy && !hasCommand(out, commands) {
		out = append([]string{"ddg"}, out...)
	}
	return out
}

// hasCommand reports whether a subcommand name appears among args, ignoring the value of --name
func hasCommand(args []string, commands []string) bool {
	known := make(map[string]bool, len(commands))
	for _, c := range commands {
		known[c] = true
	}
	for i := 0; i < len(args); i++ {
		if args[i] == "--name" {
			i++
			continue
		}
		if known[args[i]] {
			return true
		}
	}
	return false
}
