// Command featex inspects the feature descriptors of an Open Liberty
// install.
//
// Usage:
//
//	featex <command> [flags]
//
// Commands:
//
//	list     List features in display order
//	show     Show one feature's identity details
//	deps     Show a feature's contained features
//	export   Export features as JSON or YAML
//
// The feature directory is taken from --root, the FEATEX_ROOT
// environment variable, or a .featex.yaml config file. An install root
// is accepted in place of the feature directory itself.
//
// Examples:
//
//	# List all public features
//	featex --root /opt/wlp list --visibility public
//
//	# Find features by glob pattern
//	featex list "*servlet*"
//
//	# Show the transitive dependency closure
//	featex deps --transitive servlet-4.0
//
//	# Export matching features as YAML
//	featex export --format yaml "jakarta*"
package main

import "github.com/liberty-tools/featex/cmd/featex/commands"

func main() {
	commands.Execute()
}
