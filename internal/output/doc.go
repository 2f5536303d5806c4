// Package output provides styled terminal output for heron.
//
// # Usage
//
//	output.Success("Migration added")
//	output.Info("Next steps:")
//	output.Step("heron database update")
//	output.Error("Something went wrong")
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("Project directory: /repo/src/Web")
//
// # Notifications
//
// Actions never print failures directly. They report them through a
// Notifier, which the CLI satisfies with a Console:
//
//	var n output.Notifier = output.NewConsole(os.Stderr)
//	n.Error("Please open a project!")
//
// # Styling
//
//   - Success: 🪶 green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
