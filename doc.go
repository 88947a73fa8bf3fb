// Package willowui is a retained-mode widget framework for game clients.
//
// Willowui provides the widget tree, declarative bounds, mouse and keyboard
// routing with capture, a focus protocol, a window stack, list and grid
// layouts, scroll panels, dropdowns and tooltips. The core package draws
// through the [Renderer] interface and never touches a graphics API;
// willowui/ebitenhost plugs it into [Ebitengine].
//
// # Quick start
//
//	ui := willowui.NewContext(willowui.DefaultSettings())
//	if err := ui.LoadTemplates(chromeYAML); err != nil {
//		return err
//	}
//	if _, err := ui.OpenWindow("MAIN_MENU", nil); err != nil {
//		return err
//	}
//	return ebitenhost.Run(ui, ebitenhost.RunConfig{Title: "My Game"})
//
// For full control, feed input and frames yourself:
//
//	ui.HandleMouseInput(willowui.MouseInput{Event: willowui.MouseMove, Location: p})
//	ui.Tick()
//	ui.Draw(renderer)
//
// # Widget tree
//
// Every element is a [Widget]. Concrete kinds such as [Button] or
// [ScrollPanel] embed *Widget and attach themselves as its behavior; the
// tree finds optional hooks ([Drawer], [MouseHandler], [ChildObserver] and
// others) on that value. Bounds are declared as integer expressions over
// WINDOW_RIGHT, WINDOW_BOTTOM, PARENT_RIGHT, PARENT_BOTTOM, WIDTH and
// HEIGHT and resolved by [Widget.Initialize]:
//
//	panel := willowui.NewBackground("panel")
//	panel.Width = willowui.Px(300)
//	panel.Height = willowui.MustParseExpr("WINDOW_BOTTOM - 40")
//	panel.X = willowui.MustParseExpr("(WINDOW_RIGHT - WIDTH) / 2")
//
// # Input and focus
//
// Mouse events go first to the widget holding mouse capture and then bubble
// from the topmost widget under the cursor to the root. Key and text events
// go first to the keyboard-focus widget. Focus moves only when the current
// holder agrees to yield; removal from the tree always releases it.
//
// # Templates
//
// Widget trees can be described in YAML and loaded with
// [Context.LoadTemplates]. Settings are read from TOML with [LoadSettings].
// Tweens use [gween]; routed input can be mirrored into a [Donburi] world
// with willowui/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package willowui
