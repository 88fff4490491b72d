package ui

import (
	"fmt"
	"slices"

	"rigid-kernel/internal/physics"
)

// Inspector is a left-side panel showing the state of one selected body.
// Selection is by name so it survives the world replacing body pointers.
type Inspector struct {
	Visible  bool
	selected string
	panel    Panel
}

// NewInspector returns a hidden inspector using style.
func NewInspector(style Style) *Inspector {
	return &Inspector{panel: Panel{Title: "Inspector", Style: style, Width: 380, Margin: 10}}
}

// Selected returns the selected body name, or "" when nothing is selected.
func (in *Inspector) Selected() string {
	return in.selected
}

// Select selects a body by name.
func (in *Inspector) Select(name string) {
	in.selected = name
}

// Next moves the selection to the body after the current one in states, wrapping around.
// With nothing selected, or the selection gone, it picks the first body.
func (in *Inspector) Next(states []physics.BodyState) {
	if len(states) == 0 {
		in.selected = ""
		return
	}
	i := slices.IndexFunc(states, func(s physics.BodyState) bool { return s.Name == in.selected })
	in.selected = states[(i+1)%len(states)].Name
}

// Lines formats st for display.
func Lines(st physics.BodyState) []string {
	return []string{
		fmt.Sprintf("Name: %s", st.Name),
		fmt.Sprintf("Shape: %s / %s", st.Shape3D, st.Shape2D),
		fmt.Sprintf("Mass: %.3g  I: %.3g", st.Mass, st.MomentOfInertia),
		fmt.Sprintf("Position: %.2f, %.2f, %.2f", st.Position.X, st.Position.Y, st.Position.Z),
		fmt.Sprintf("Velocity: %.2f, %.2f, %.2f", st.Velocity.X, st.Velocity.Y, st.Velocity.Z),
		fmt.Sprintf("Angular vel: %.2f, %.2f, %.2f", st.AngularVelocity.X, st.AngularVelocity.Y, st.AngularVelocity.Z),
		fmt.Sprintf("Forces: %d  net %.2f, %.2f, %.2f", st.ActiveForces, st.NetForce.X, st.NetForce.Y, st.NetForce.Z),
		fmt.Sprintf("Time: %.3fs", st.Time),
	}
}

// Draw draws the panel for the selected body if the inspector is visible and the body exists.
func (in *Inspector) Draw(states []physics.BodyState) {
	if !in.Visible {
		return
	}
	i := slices.IndexFunc(states, func(s physics.BodyState) bool { return s.Name == in.selected })
	if i < 0 {
		return
	}
	in.panel.Lines = Lines(states[i])
	in.panel.Draw()
}
