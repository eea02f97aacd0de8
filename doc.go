// Package eventsys routes pointer, touch and navigation input to the
// interactive objects of a retained-mode scene.
//
// Every pass it decides which object each pointer interacts with, tracks the
// per-pointer interaction state across passes and dispatches a fixed
// vocabulary of events (enter/exit, press/release, click, the drag lifecycle,
// selection and navigation) to the objects that declare interest in them.
//
// # Quick start
//
//	root := eventsys.NewNode("root")
//	button := eventsys.NewNode("button")
//	button.HitShape = eventsys.HitRect{Width: 120, Height: 40}
//	button.OnPointerClick = func(ev *eventsys.PointerEvent) {
//		fmt.Println("clicked", ev.ClickCount)
//	}
//	root.AddChild(button)
//
//	sys := eventsys.New(eventsys.WithSource(eventsys.NewEbitenSource()))
//	sys.AddRaycaster(eventsys.NewShapeRaycaster(root, nil))
//	sys.AddModule(eventsys.NewTouchModule())
//	sys.AddModule(eventsys.NewMouseModule())
//	sys.Enable()
//
//	// once per tick, from ebiten.Game.Update:
//	sys.Update()
//
// # Capabilities
//
// A [Node] implements an event by setting the matching callback field
// (OnPointerDown, OnDrag, OnSelect, ...). Dispatch walks the containment
// hierarchy from the hit object toward the root: press, click, drag and
// scroll go to the nearest ancestor implementing them ([ExecuteFirst]); drop
// and hover enter/exit reach every interested ancestor ([ExecuteAll]).
//
// # Hit ordering
//
// Registered [Raycaster]s report candidates as [HitResult]s. [CompareHits]
// orders them by view depth, raycaster priorities, sorting layer, sorting
// order, hierarchy depth, distance and insertion index. The first result is
// the pointer's target for the pass.
//
// # Modules
//
// [InputModule]s turn raw [Source] input into events. Modules are tried in
// registration order each pass and at most one is active. [TouchModule]
// handles multi-touch and falls back to mouse-driven fake touches;
// [MouseModule] handles the mouse with hover, three buttons, scroll and
// keyboard / gamepad navigation to the selected object.
//
// # Sources
//
// [EbitenSource] reads Ebitengine input, [TerminalSource] reads tcell mouse
// and key events, and [InjectSource] replays synthetic input for tests.
// [LoadScript] drives an InjectSource from a JSON script.
//
// # ECS integration
//
// Nodes with a non-zero EntityID forward every dispatched event to the
// system's [EventSink]. The ecs subpackage publishes them to a Donburi world.
package eventsys
