package model

// Package model defines domain data structures used across the app: releases,
// update check results, export tasks and their status enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
