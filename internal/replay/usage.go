// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package replay

import (
	"fmt"
	"io"
	"strings"

	nosig "github.com/vapier/nosig"
	"github.com/vapier/nosig/internal/platform"
)

const homepage = "https://github.com/vapier/nosig/"

// Usage writes the help text. Options that need realtime signals are
// omitted when the platform lacks them.
func Usage(w io.Writer, caps platform.Caps) {
	fmt.Fprint(w, "Usage: nosig [options] <program> [program args]\n\n"+
		"Like `nohup`, but more advanced signal management.\n"+
		"Signals are specified by name e.g. SIGTERM or TERM.\n")
	if caps.HasRealtime {
		fmt.Fprint(w, "Realtime signals are specified as offsets of SIGRTMIN or SIGRTMAX.\n")
	}
	fmt.Fprint(w, "\n"+
		"The options fall into one of three buckets:\n"+
		" - Oneshots (sigaction(2)): --ignore --default\n"+
		" - Set management (sigsetops(3)): --add --del --empty --fill\n"+
		" - Set usage (sigprocmask(2)): --block --unblock --set\n"+
		"You should manage the set, then use the set.  This may be repeated!\n"+
		"\n"+
		"Options:\n")

	const minpad = 25
	for _, opt := range options {
		if opt.rt && !caps.HasRealtime {
			continue
		}
		var sb strings.Builder
		if opt.short != 0 {
			fmt.Fprintf(&sb, "  -%c, ", opt.short)
		} else {
			sb.WriteString("      ")
		}
		fmt.Fprintf(&sb, "--%s ", opt.long)
		if opt.arg {
			sb.WriteString("<arg> ")
		}
		pad := minpad - sb.Len()
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(w, "%s%*s%s\n", sb.String(), pad, "", opt.help)
	}

	fmt.Fprint(w, "\n"+
		"For more details (and examples), see the nosig(1) man page.\n"+
		"Project homepage: "+homepage+"\n")
}

func showVersion(w io.Writer, caps platform.Caps) {
	fmt.Fprintf(w, "nosig v%s (commit: %s)\n", nosig.Version, nosig.Commit)
	if caps.HasRealtime {
		fmt.Fprint(w, "Realtime signals supported\n")
	} else {
		fmt.Fprint(w, "OS missing realtime signal support\n")
	}
	fmt.Fprint(w, homepage+"\n")
}
