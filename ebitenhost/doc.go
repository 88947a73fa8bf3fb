// Package ebitenhost runs a [willowui.Context] on [Ebitengine].
//
// [Host] implements [ebiten.Game]: each Update it polls the mouse, wheel,
// keyboard and text input, translates them into willowui events, steps an
// optional replay script and ticks the UI. Draw paints the widget tree
// through [Renderer], which fills panels from a [Theme] with the vector
// package and prints text with the debug font.
//
// The simplest way to start is [Run]:
//
//	ui := willowui.NewContext(settings)
//	ui.OpenWindow("MAIN_MENU", nil)
//	ebitenhost.Run(ui, ebitenhost.RunConfig{Title: "Menu"})
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost
