// Package elements defines the concrete node kinds of the framework:
// ordered containers, single-slot frames, region layouts, tab panes,
// menus, and leaf controls.
//
// These are tree participants only. They carry identity, properties, and
// handler registrations; rendering them is the job of a host toolkit.
package elements
