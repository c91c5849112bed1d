// Package pageoverlap finds long runs of text shared by two static HTML pages.
// It loads both pages, discovers their matching blocks with a classic
// sequence matcher, keeps the blocks longer than MinBlockSize characters and
// prints each one with a short preview. Typical use is spotting templated
// boilerplate between near-identical landing pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., difflib/, goquery/, color/).
package pageoverlap
