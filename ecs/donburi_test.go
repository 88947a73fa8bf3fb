package ecs

import (
	"testing"

	"github.com/phanxgames/willowui"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitInput(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []willowui.InputEvent
	InputEventType.Subscribe(world, func(w donburi.World, e willowui.InputEvent) {
		received = append(received, e)
	})

	sink.EmitInput(willowui.InputEvent{
		Kind:     willowui.InputMouse,
		Mouse:    willowui.MouseInput{Event: willowui.MouseDown, Location: willowui.Point{X: 100, Y: 200}, Button: willowui.MouseButtonLeft},
		Handled:  true,
		TargetID: "OK_BUTTON",
	})
	sink.EmitInput(willowui.InputEvent{
		Kind: willowui.InputText,
		Text: "hi",
	})

	// Events are queued; process them.
	InputEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Kind != willowui.InputMouse || e0.TargetID != "OK_BUTTON" || !e0.Handled {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Mouse.Location != (willowui.Point{X: 100, Y: 200}) {
		t.Errorf("event 0 location: %v", e0.Mouse.Location)
	}
	if e1 := received[1]; e1.Kind != willowui.InputText || e1.Text != "hi" {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_FromContext(t *testing.T) {
	world := donburi.NewWorld()
	ui := willowui.NewContext(willowui.Settings{}, willowui.WithEventSink(NewDonburiSink(world)))
	b := willowui.NewButton("ok", "OK")
	b.Bounds = willowui.Rect{Width: 50, Height: 20}
	ui.Root().AddChild(b.Widget)

	var clicks, misses int
	InputEventType.Subscribe(world, func(w donburi.World, e willowui.InputEvent) {
		if e.Kind == willowui.InputMouse && e.Mouse.Event == willowui.MouseDown {
			clicks++
		}
	})
	InputEventType.Subscribe(world, Unhandled(func(w donburi.World, e willowui.InputEvent) {
		misses++
	}))

	ui.HandleMouseInput(willowui.MouseInput{Event: willowui.MouseDown, Location: willowui.Point{X: 10, Y: 10}, Button: willowui.MouseButtonLeft})
	ui.HandleMouseInput(willowui.MouseInput{Event: willowui.MouseUp, Location: willowui.Point{X: 10, Y: 10}, Button: willowui.MouseButtonLeft})
	ui.HandleMouseInput(willowui.MouseInput{Event: willowui.MouseDown, Location: willowui.Point{X: 500, Y: 500}, Button: willowui.MouseButtonLeft})
	InputEventType.ProcessEvents(world)

	if clicks != 2 {
		t.Errorf("clicks = %d, want 2", clicks)
	}
	if misses != 1 {
		t.Errorf("unhandled = %d, want 1", misses)
	}
}
