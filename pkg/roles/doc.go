// Package roles defines the closed set of event roles and their ordering.
//
// Roles form a total order by capability breadth:
//
//	owner > manager > overseer > keyman > viewer
//
// The order drives threshold checks ("at least manager") across the access
// package. Capabilities themselves are derived elsewhere; this package only
// answers which roles exist and how they compare.
//
// A grant may carry an optional Scope narrowing overseer/keyman management to
// a sub-part of an event (a department or position group). Full-event roles
// (owner, manager) and viewer are never scoped.
//
// Basic usage:
//
//	role, err := roles.Parse("manager")
//	if err != nil {
//	    // unknown role string from user input
//	}
//
//	if roles.AtLeast(role, roles.Overseer) {
//	    // role grants at least overseer-level access
//	}
package roles
