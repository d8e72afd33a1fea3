// Package ogp builds link previews from the Open Graph metadata of remote
// pages. Presentation code consumes them as a plain URL-to-preview lookup.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, regexp/, sqlite/, chi/).
package ogp
