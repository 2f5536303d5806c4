// Package project locates the open solution and the ASP.NET project inside it.
//
// # Overview
//
// A Workspace plays the part of an editor window: it either has a project
// open (a root directory) or it does not. heron detects the workspace by
// walking up from the working directory until it finds a heron settings
// file, or takes an explicit root from the --project flag.
//
// # Usage
//
//	ws := project.Detect(cwd)
//	dir, ok := project.AspnetProjectDir(ws, bag, notifier)
//	if !ok {
//	    return // the notifier has already reported why
//	}
package project
