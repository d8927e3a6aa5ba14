package screen

import (
	"context"

	"animalsctl/internal/api"
)

// ID names one of the four screens.
type ID int

const (
	AnimalListScreen ID = iota
	AnimalDetailScreen
	EnvironmentListScreen
	EnvironmentDetailScreen
)

func (id ID) String() string {
	switch id {
	case AnimalListScreen:
		return "AnimalList"
	case AnimalDetailScreen:
		return "AnimalDetail"
	case EnvironmentListScreen:
		return "EnvironmentList"
	case EnvironmentDetailScreen:
		return "EnvironmentDetail"
	default:
		return "Unknown"
	}
}

// Texts shown for successful loads with nothing in them.
const (
	EmptyAnimalsText      = "No animals found."
	EmptyEnvironmentsText = "No environments found."
	NoGalleryText         = "No gallery images."
	NoFactsText           = "No facts available."
)

// Phase is the lifecycle position of a screen.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseFailed
	PhaseInvalidReference
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseLoaded:
		return "Loaded"
	case PhaseFailed:
		return "Failed"
	case PhaseInvalidReference:
		return "InvalidReference"
	default:
		return "Unknown"
	}
}

// State is a snapshot of a screen. Data is only meaningful when Phase is
// PhaseLoaded; Message, Kind and Err only when it is PhaseFailed or
// PhaseInvalidReference.
type State[T any] struct {
	Phase   Phase
	Data    T
	Message string
	Kind    api.ErrorKind
	Err     error

	empty bool
}

// Loaded reports whether data is available.
func (s State[T]) Loaded() bool { return s.Phase == PhaseLoaded }

// Empty reports a successful load that returned nothing to show.
func (s State[T]) Empty() bool { return s.Phase == PhaseLoaded && s.empty }

// Result is the outcome of one Fetch.
type Result struct {
	Screen     ID
	Generation uint64
	Data       interface{}
	Err        error
}

// Fetch runs the network part of an activation. It blocks and is meant to
// run on its own goroutine.
type Fetch func() Result

// SelectFunc receives the id of an item the user picked.
type SelectFunc func(id string)

// Controller is the part of a screen controller that does not depend on
// the type of data it loads.
type Controller interface {
	Screen() ID
	Activate(ctx context.Context) Fetch
	Apply(r Result) bool
	Leave()
	Phase() Phase
}

var (
	_ Controller = (*AnimalList)(nil)
	_ Controller = (*AnimalDetail)(nil)
	_ Controller = (*EnvironmentList)(nil)
	_ Controller = (*EnvironmentDetail)(nil)
)
