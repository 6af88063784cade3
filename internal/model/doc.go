package model

// Package model defines domain data structures used across the app: dock
// settings, launcher button descriptors, visibility states, and screen
// geometry. Structures are designed for direct binding in the UI and
// explicit state transitions.
