// Package cli wires the picsum-dl command tree.
//
// Commands:
//
//	picsum-dl download [-c N] [-w W] [-H H] [-o DIR] [-g] [-b 1-9] [-q 1-100] [-j 1-20] [-p PREFIX] [-f jpg|png|webp]
//	picsum-dl info --id ID
//	picsum-dl list [--page P] [--limit L]
//	picsum-dl search --author NAME [--limit L]
//	picsum-dl version
//
// Every flag is bound to a viper key, so the same setting can come from a
// YAML config file or a PICSUM_* environment variable. Flags win over the
// environment, which wins over the file.
//
// Input is validated into an immutable config before any request is made.
// A download batch with failed images still exits 0; the summary line tells
// how many succeeded.
package cli
